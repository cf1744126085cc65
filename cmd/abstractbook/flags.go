package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag and argument errors.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// inputFlags select and filter rows.
type inputFlags struct {
	sheet    string
	decision string
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common commonFlags
	input  inputFlags
	theme  string
	date   string
	markup bool
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common commonFlags
	input  inputFlags
	json   bool
}

// verifyFlags holds flags for the verify command.
type verifyFlags struct {
	json bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show diagnostic logs")
}

// addInputFlags adds row selection flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVar(&f.sheet, "sheet", "", "worksheet to read (default: first)")
	fs.StringVar(&f.decision, "decision", "", "decision value to include (default: \"Oral Presentation\")")
}

// buildGenerateFlagSet registers the generate flags into f.
func buildGenerateFlagSet(f *generateFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmdGenerate, flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addInputFlags(fs, &f.input)
	fs.StringVar(&f.theme, "theme", "", "theme name or YAML file path")
	fs.StringVar(&f.date, "date", "", "event date: literal, \"auto[:FORMAT]\" or YYYY-MM-DD..YYYY-MM-DD")
	fs.BoolVar(&f.markup, "markup", false, "render *italic*, **bold** and `code` in titles and abstracts")
	return fs
}

// buildCheckFlagSet registers the check flags into f.
func buildCheckFlagSet(f *checkFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmdCheck, flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addInputFlags(fs, &f.input)
	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	return fs
}

// buildVerifyFlagSet registers the verify flags into f.
func buildVerifyFlagSet(f *verifyFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmdVerify, flag.ContinueOnError)
	fs.BoolVar(&f.json, "json", false, "print the result as JSON")
	return fs
}

// parse runs fs over args. Usage goes to w; errors wrap ErrUsage.
func parse(fs *flag.FlagSet, args []string, w io.Writer, usage func(io.Writer)) ([]string, error) {
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return fs.Args(), nil
}

// parseGenerateFlags parses generate flags and returns positional args.
func parseGenerateFlags(args []string, w io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	rest, err := parse(buildGenerateFlagSet(f), args, w, printGenerateUsage)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) > 3 {
		return nil, nil, fmt.Errorf("%w: expected at most 3 arguments [input] [output] [track], got %d", ErrUsage, len(rest))
	}
	return f, rest, nil
}
