package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	flag "github.com/spf13/pflag"

	abstractbook "github.com/alnah/go-abstractbook"
	"github.com/alnah/go-abstractbook/internal/config"
	"github.com/alnah/go-abstractbook/internal/hints"
	"github.com/alnah/go-abstractbook/internal/logfields"
)

// bannerWidth is the width of the "====" rules around the banner.
const bannerWidth = 60

// runGenerate reads the submissions, renders the book and writes it.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeGenerateFlags(flags, cfg)

	input := cmp.Or(arg(positional, 0), cfg.Input.Path, abstractbook.DefaultInput)
	output := cmp.Or(arg(positional, 1), cfg.Output.Path, abstractbook.DefaultOutput)
	track := cmp.Or(arg(positional, 2), cfg.Track, abstractbook.DefaultTrack)

	logger := newLogger(env.Stderr, flags.common)
	gen, err := newGenerator(cfg, env, logger)
	if err != nil {
		return err
	}

	out := env.Stdout
	if flags.common.quiet {
		out = io.Discard
	}
	event := eventFromConfig(cfg)
	printBanner(out, event, input, output, track)

	fmt.Fprintln(out, "Reading submissions...")
	res, err := gen.Generate(ctx, abstractbook.Input{Path: input, Track: track})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Found %d %q submissions (%d rows read, %d skipped)\n",
		res.Included, cmp.Or(cfg.Input.Decision, abstractbook.DefaultDecision), res.Rows, res.Skipped)
	if n := len(res.Duplicates); n > 0 {
		fmt.Fprintf(out, "Warning: %d duplicate submission IDs share links: %s\n", n, strings.Join(res.Duplicates, ", "))
	}

	fmt.Fprintf(out, "Saving to %s...\n", output)
	if err := abstractbook.WriteFile(output, res); err != nil {
		if errors.Is(err, abstractbook.ErrOutputPermission) {
			return withHint(err, hints.ForOutputPermission(output))
		}
		return err
	}
	logger.Debug("book written", logfields.Output(output), logfields.Bytes(len(res.Document)))

	printSummary(out, output, res)
	return nil
}

// loadConfig loads the config named by the flag, else by the environment,
// else the discovered default. No config at all is not an error.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := cmp.Or(flagValue, envValue)
	if name == "" {
		path := config.Discover()
		if path == "" {
			return config.DefaultConfig(), nil
		}
		cfg, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		err = fmt.Errorf("loading config: %w", err)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, withHint(err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, err
	}
	return cfg, nil
}

// mergeGenerateFlags merges CLI flags into config. CLI values win.
func mergeGenerateFlags(f *generateFlags, cfg *config.Config) {
	mergeInputFlags(f.input, cfg)
	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if f.date != "" {
		cfg.Event.Date = f.date
	}
	if f.markup {
		cfg.Markup = true
	}
}

func mergeInputFlags(f inputFlags, cfg *config.Config) {
	if f.sheet != "" {
		cfg.Input.Sheet = f.sheet
	}
	if f.decision != "" {
		cfg.Input.Decision = f.decision
	}
}

// newGenerator builds a Generator from the merged config.
func newGenerator(cfg *config.Config, env *Environment, logger *slog.Logger) (*abstractbook.Generator, error) {
	theme, err := abstractbook.ResolveTheme(env.ThemeLoader, cfg.Theme)
	if err != nil {
		if errors.Is(err, abstractbook.ErrThemeNotFound) {
			return nil, withHint(err, hints.ForThemeNotFound(env.ThemeLoader.ListThemes()))
		}
		return nil, err
	}
	logger.Debug("theme resolved", logfields.Theme(theme.Name))

	c := cfg.Input.Columns
	return abstractbook.NewGenerator(
		abstractbook.WithTheme(theme),
		abstractbook.WithEvent(eventFromConfig(cfg)),
		abstractbook.WithDecision(cfg.Input.Decision),
		abstractbook.WithColumns(abstractbook.Columns{
			ID:       c.ID,
			Title:    c.Title,
			Authors:  c.Authors,
			Abstract: c.Abstract,
			Decision: c.Decision,
		}),
		abstractbook.WithSheet(cfg.Input.Sheet),
		abstractbook.WithInlineMarkup(cfg.Markup),
		abstractbook.WithLogger(logger),
		abstractbook.WithNow(env.Now),
	)
}

// eventFromConfig returns the configured event with defaults filled in.
func eventFromConfig(cfg *config.Config) abstractbook.Event {
	d := abstractbook.DefaultEvent()
	e := cfg.Event
	return abstractbook.Event{
		Name:       cmp.Or(e.Name, d.Name),
		Conference: cmp.Or(e.Conference, d.Conference),
		Host:       cmp.Or(e.Host, d.Host),
		Date:       cmp.Or(e.Date, d.Date),
		Heading:    cmp.Or(e.Heading, d.Heading),
	}
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func rule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))
}

func printBanner(w io.Writer, e abstractbook.Event, input, output, track string) {
	rule(w)
	fmt.Fprintf(w, "%s %s Generator\n", e.Name, e.Heading)
	rule(w)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Input file:  %s\n", input)
	fmt.Fprintf(w, "Output file: %s\n", output)
	fmt.Fprintf(w, "Track:       %s\n", track)
	fmt.Fprintln(w)
}

func printSummary(w io.Writer, output string, res *abstractbook.Result) {
	fmt.Fprintln(w)
	rule(w)
	fmt.Fprintln(w, "SUCCESS")
	rule(w)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Generated: %s\n", output)
	fmt.Fprintf(w, "Total abstracts: %d\n", res.Included)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document includes:")
	fmt.Fprintln(w, "  - Title page with event branding")
	fmt.Fprintln(w, "  - Table of contents with hyperlinks")
	fmt.Fprintln(w, "  - All abstracts with navigation links")
}
