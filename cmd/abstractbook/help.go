package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: abstractbook [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate    Build the abstract book (default command)")
	fmt.Fprintln(w, "  check       Inspect the submissions file without writing")
	fmt.Fprintln(w, "  verify      Check the navigation links of a generated book")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, arguments are those of generate:")
	fmt.Fprintln(w, "  abstractbook submissions.xlsx book.docx \"Track Title\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'abstractbook help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: abstractbook generate [input] [output] [track] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a Word abstract book from the accepted submissions.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Submissions file, .xlsx or .csv (default: IMRC2025_submissions.xlsx)")
	fmt.Fprintln(w, "  output    Generated document (default: IMRC2025_Book_of_Abstracts.docx)")
	fmt.Fprintln(w, "  track     Track title shown under the contents heading (default: FAE)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "      --sheet <name>        Worksheet to read (default: first)")
	fmt.Fprintln(w, "      --decision <s>        Decision value to include")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --theme <name|path>   Theme: imrc, classic, or a YAML file")
	fmt.Fprintln(w, "      --date <s>            Date: literal, \"auto\", \"auto:FORMAT\"")
	fmt.Fprintln(w, "                            or a range YYYY-MM-DD..YYYY-MM-DD")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "      --markup              Render *italic*, **bold** and `code`")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: abstractbook check [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read the submissions file and report its sheet, columns and")
	fmt.Fprintln(w, "decision counts without writing a document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "      --sheet <name>        Worksheet to read (default: first)")
	fmt.Fprintln(w, "      --decision <s>        Decision value to include")
	fmt.Fprintln(w, "      --json                Print the report as JSON")
	fmt.Fprintln(w)
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  Ready to generate")
	fmt.Fprintln(w, "  3  Input file missing or unreadable")
	fmt.Fprintln(w, "  4  Missing columns or nothing to include")
}

// printVerifyUsage prints usage for the verify command.
func printVerifyUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: abstractbook verify <book.docx> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that every contents row links to its card and back.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Print the result as JSON")
}

func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show diagnostic logs")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdGenerate:
		printGenerateUsage(env.Stdout)
	case cmdCheck:
		printCheckUsage(env.Stdout)
	case cmdVerify:
		printVerifyUsage(env.Stdout)
	case cmdCompletion:
		printCompletionUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: abstractbook version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: abstractbook help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
