package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdGenerate   = "generate"
	cmdCheck      = "check"
	cmdVerify     = "verify"
	cmdVersion    = "version"
	cmdHelp       = "help"
	cmdCompletion = "completion"
)

func main() {
	// A missing .env is the normal case; variables already set win.
	_ = godotenv.Load()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
// Without a command name the arguments are those of generate, so the
// positional form "abstractbook input.xlsx output.docx FAE" works as is.
func runMain(ctx context.Context, args []string, env *Environment) int {
	rest := args[1:]
	if len(rest) == 0 || !isCommand(rest[0]) {
		return report(runGenerate(ctx, rest, env), env)
	}

	cmd, rest := rest[0], rest[1:]
	switch cmd {
	case cmdGenerate:
		return report(runGenerate(ctx, rest, env), env)
	case cmdCheck:
		return runCheckCmd(ctx, rest, env)
	case cmdVerify:
		return runVerifyCmd(rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "go-abstractbook %s\n", Version)
		return ExitSuccess
	case cmdHelp:
		return runHelp(rest, env)
	case cmdCompletion:
		return report(runCompletion(rest, env), env)
	}
	return ExitGeneral
}

// isCommand reports whether arg names a command.
func isCommand(arg string) bool {
	switch arg {
	case cmdGenerate, cmdCheck, cmdVerify, cmdVersion, cmdHelp, cmdCompletion:
		return true
	}
	return false
}

// hasVerboseFlag scans raw arguments before any FlagSet exists.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// report prints err with its hint and returns the matching exit code.
func report(err error, env *Environment) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "ERROR: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}
