package main

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	abstractbook "github.com/alnah/go-abstractbook"
)

// checkResult is the check command output.
type checkResult struct {
	Status   string               `json:"status"` // "ready", "warnings", "errors"
	Report   *abstractbook.Report `json:"report,omitempty"`
	Warnings []string             `json:"warnings,omitempty"`
	Errors   []string             `json:"errors,omitempty"`
}

// runCheckCmd executes the check command and returns an exit code.
// Exit codes: 0 = ready (including warnings), otherwise the code of the
// first error found.
func runCheckCmd(ctx context.Context, args []string, env *Environment) int {
	f := &checkFlags{}
	positional, err := parse(buildCheckFlagSet(f), args, env.Stderr, printCheckUsage)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err == nil && len(positional) > 1 {
		err = fmt.Errorf("%w: expected at most 1 argument [input], got %d", ErrUsage, len(positional))
	}
	if err != nil {
		return report(err, env)
	}

	result, err := runCheck(ctx, positional, f, env)
	if err != nil && result == nil {
		return report(err, env)
	}

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else if !f.common.quiet {
		printCheckResult(env.Stdout, result)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "ERROR: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runCheck resolves config like generate does and inspects the input.
// A nil result means the input could not be inspected at all.
func runCheck(ctx context.Context, positional []string, f *checkFlags, env *Environment) (*checkResult, error) {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()
	cfg, err := loadConfig(f.common.config, envCfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(envCfg, cfg)
	mergeInputFlags(f.input, cfg)

	input := cmp.Or(arg(positional, 0), cfg.Input.Path, abstractbook.DefaultInput)
	gen, err := newGenerator(cfg, env, newLogger(env.Stderr, f.common))
	if err != nil {
		return nil, err
	}

	rep, err := gen.Inspect(ctx, input)
	if rep == nil {
		return nil, err
	}

	result := &checkResult{Status: "ready", Report: rep}
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
	}
	if err == nil && rep.Included == 0 {
		err = &abstractbook.NoSubmissionsError{Decision: rep.Decision, Rows: rep.Rows, Seen: rep.Decisions}
		result.Errors = append(result.Errors, err.Error())
	}
	if n := len(rep.Duplicates); n > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d duplicate submission IDs: %s", n, strings.Join(rep.Duplicates, ", ")))
	}
	if len(rep.Sheets) > 1 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("workbook has %d sheets, reading %q", len(rep.Sheets), rep.Sheet))
	}

	switch {
	case len(result.Errors) > 0:
		result.Status = "errors"
	case len(result.Warnings) > 0:
		result.Status = "warnings"
	}
	return result, err
}

// printCheckResult outputs a human-readable report.
func printCheckResult(w io.Writer, r *checkResult) {
	rep := r.Report
	fmt.Fprintln(w, "abstractbook check")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Input")
	fmt.Fprintf(w, "  [OK] File: %s\n", rep.Path)
	if rep.Sheet != "" {
		fmt.Fprintf(w, "  [OK] Sheet: %s\n", rep.Sheet)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Columns")
	if len(rep.Missing) == 0 {
		fmt.Fprintln(w, "  [OK] All required columns present")
	}
	for _, m := range rep.Missing {
		fmt.Fprintf(w, "  [ERROR] Missing: %s\n", m)
	}
	fmt.Fprintln(w)

	if len(rep.Missing) == 0 {
		fmt.Fprintln(w, "Rows")
		fmt.Fprintf(w, "  [OK] Data rows: %d\n", rep.Rows)
		for _, d := range sortedDecisions(rep.Decisions) {
			label := d
			if label == "" {
				label = "(empty)"
			}
			fmt.Fprintf(w, "       %-24s %d\n", label, rep.Decisions[d])
		}
		status := "[OK]"
		if rep.Included == 0 {
			status = "[ERROR]"
		}
		fmt.Fprintf(w, "  %s Included (%q): %d\n", status, rep.Decision, rep.Included)
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to generate")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// sortedDecisions orders decision values by count, then name.
func sortedDecisions(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
