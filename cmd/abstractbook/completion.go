package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-abstractbook/internal/assets"
)

// binaryName is the command the completion scripts register for.
const binaryName = "abstractbook"

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --theme
	Short    string   // -c (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, and enum flags that also take a path
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	FilePattern string // glob for file arguments, empty if none
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string
	FileGlob string
}

// flagCompletionMeta maps flag names to their completion metadata.
// Theme names are read from the embedded themes when scripts are built.
func flagCompletionMeta() map[string]completionMeta {
	return map[string]completionMeta{
		"config": {FileGlob: "*.yaml,*.yml"},
		"theme":  {Values: assets.ListThemes(), FileGlob: "*.yaml,*.yml"},
	}
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	meta := flagCompletionMeta()
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if m, ok := meta[f.Name]; ok {
			fd.FileGlob = m.FileGlob
			switch {
			case len(m.Values) > 0:
				fd.Type = flagEnum
				fd.Values = m.Values
			case m.FileGlob != "":
				fd.Type = flagFile
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags come from the same FlagSet builders the commands parse with.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        cmdGenerate,
			Desc:        "Build the abstract book",
			Flags:       extractFlagsFromFlagSet(buildGenerateFlagSet(&generateFlags{})),
			FilePattern: "*.xlsx,*.csv,*.docx",
		},
		{
			Name:        cmdCheck,
			Desc:        "Inspect the submissions file",
			Flags:       extractFlagsFromFlagSet(buildCheckFlagSet(&checkFlags{})),
			FilePattern: "*.xlsx,*.csv",
		},
		{
			Name:        cmdVerify,
			Desc:        "Check the links of a generated book",
			Flags:       extractFlagsFromFlagSet(buildVerifyFlagSet(&verifyFlags{})),
			FilePattern: "*.docx",
		},
		{Name: cmdVersion, Desc: "Show version information"},
		{Name: cmdHelp, Desc: "Show help for a command"},
		{Name: cmdCompletion, Desc: "Generate shell completion script"},
	}
}

// GenerateCompletion writes shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = generateBash(getCommands())
	case ShellZsh:
		script = generateZsh(getCommands())
	case ShellFish:
		script = generateFish(getCommands())
	case ShellPowerShell:
		script = generatePowerShell(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

func globs(pattern string) []string {
	if pattern == "" {
		return nil
	}
	return strings.Split(pattern, ",")
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func bashFiles(b *strings.Builder, indent, pattern string) {
	for _, g := range globs(pattern) {
		fmt.Fprintf(b, "%sCOMPREPLY+=( $(compgen -f -X '!%s' -- \"$cur\") )\n", indent, g)
	}
	fmt.Fprintf(b, "%sCOMPREPLY+=( $(compgen -d -- \"$cur\") )\n", indent)
}

func bashFlagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

func generateBash(cmds []commandDef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# bash completion for %s\n\n", binaryName)
	fmt.Fprintf(&b, "_%s_completions() {\n", binaryName)
	b.WriteString("    local cur prev cmd w\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	fmt.Fprintf(&b, "    local commands=%q\n\n", commandNames(cmds))

	b.WriteString("    cmd=\"\"\n")
	b.WriteString("    for w in \"${COMP_WORDS[@]:1:COMP_CWORD-1}\"; do\n")
	b.WriteString("        case \" $commands \" in *\" $w \"*) cmd=\"$w\"; break ;; esac\n")
	b.WriteString("    done\n\n")

	// Flag values, shared across commands.
	b.WriteString("    case \"$prev\" in\n")
	seen := map[string]bool{}
	for _, c := range cmds {
		for _, f := range c.Flags {
			if seen[f.Long] || (f.Type != flagEnum && f.Type != flagFile) {
				continue
			}
			seen[f.Long] = true
			pat := "--" + f.Long
			if f.Short != "" {
				pat += "|-" + f.Short
			}
			fmt.Fprintf(&b, "        %s)\n", pat)
			if len(f.Values) > 0 {
				fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(f.Values, " "))
			}
			bashFiles(&b, "            ", f.FileGlob)
			b.WriteString("            return ;;\n")
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		if c.Name == cmdHelp || c.Name == cmdCompletion {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		fmt.Fprintf(&b, "            if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(&b, "                COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", bashFlagWords(c.Flags))
		if c.FilePattern != "" {
			b.WriteString("            else\n")
			bashFiles(&b, "                ", c.FilePattern)
		}
		b.WriteString("            fi ;;\n")
	}
	b.WriteString("        help)\n")
	b.WriteString("            COMPREPLY=( $(compgen -W \"$commands\" -- \"$cur\") ) ;;\n")
	b.WriteString("        completion)\n")
	b.WriteString("            COMPREPLY=( $(compgen -W \"bash zsh fish powershell\" -- \"$cur\") ) ;;\n")
	b.WriteString("        *)\n")
	b.WriteString("            COMPREPLY=( $(compgen -W \"$commands\" -- \"$cur\") )\n")
	bashFiles(&b, "            ", cmds[0].FilePattern)
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F _%s_completions %s\n", binaryName, binaryName)
	return b.String()
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

var zshReplacer = strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`)

func zshGlob(pattern string) string {
	g := globs(pattern)
	for i := range g {
		g[i] = strings.TrimPrefix(g[i], "*.")
	}
	return "*.(" + strings.Join(g, "|") + ")"
}

func zshFlagSpec(f flagDef) string {
	desc := zshReplacer.Replace(f.Desc)
	var action string
	switch f.Type {
	case flagBool:
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(":file:_files -g \"%s\"", zshGlob(f.FileGlob))
	default:
		action = ":" + f.Long + ":"
	}
	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action)
}

func generateZsh(cmds []commandDef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", binaryName)
	fmt.Fprintf(&b, "_%s() {\n", binaryName)
	b.WriteString("    local curcontext=\"$curcontext\" state line\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshReplacer.Replace(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    _arguments -C '1: :->cmds' '*:: :->args'\n\n")
	b.WriteString("    case $state in\n")
	b.WriteString("        cmds)\n")
	fmt.Fprintf(&b, "            _describe -t commands '%s command' commands\n", binaryName)
	fmt.Fprintf(&b, "            _files -g \"%s\"\n", zshGlob(cmds[0].FilePattern))
	b.WriteString("            ;;\n")
	b.WriteString("        args)\n")
	b.WriteString("            case $line[1] in\n")
	for _, c := range cmds {
		switch c.Name {
		case cmdHelp:
			b.WriteString("                help)\n")
			b.WriteString("                    _describe -t commands 'command' commands ;;\n")
			continue
		case cmdCompletion:
			b.WriteString("                completion)\n")
			b.WriteString("                    _values 'shell' bash zsh fish powershell ;;\n")
			continue
		}
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "                %s)\n", c.Name)
		b.WriteString("                    _arguments")
		for _, f := range c.Flags {
			fmt.Fprintf(&b, " \\\n                        %s", zshFlagSpec(f))
		}
		if c.FilePattern != "" {
			fmt.Fprintf(&b, " \\\n                        '*:file:_files -g \"%s\"'", zshGlob(c.FilePattern))
		}
		b.WriteString("\n                    ;;\n")
	}
	b.WriteString("            esac\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef _%s %s\n", binaryName, binaryName)
	return b.String()
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

var fishReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func generateFish(cmds []commandDef) string {
	var b strings.Builder
	names := commandNames(cmds)

	fmt.Fprintf(&b, "# fish completion for %s\n\n", binaryName)
	fmt.Fprintf(&b, "function __fish_%s_needs_command\n", binaryName)
	b.WriteString("    set -l cmd (commandline -opc)\n")
	fmt.Fprintf(&b, "    not contains -- $cmd[2] %s\n", names)
	b.WriteString("end\n\n")
	fmt.Fprintf(&b, "function __fish_%s_using_command\n", binaryName)
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")

	fmt.Fprintf(&b, "complete -c %s -f\n", binaryName)
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c %s -n '__fish_%s_needs_command' -a %s -d '%s'\n",
			binaryName, binaryName, c.Name, fishReplacer.Replace(c.Desc))
	}
	b.WriteString("\n")

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_%s_using_command %s'", binaryName, c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c %s -n %s -l %s", binaryName, cond, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, " -r -a '%s'", strings.Join(f.Values, " "))
				if f.FileGlob != "" {
					b.WriteString(" -F")
				}
			case flagFile:
				b.WriteString(" -r -F")
			case flagString:
				b.WriteString(" -r")
			}
			fmt.Fprintf(&b, " -d '%s'\n", fishReplacer.Replace(f.Desc))
		}
		if c.FilePattern != "" {
			fmt.Fprintf(&b, "complete -c %s -n %s -F\n", binaryName, cond)
		}
	}
	fmt.Fprintf(&b, "complete -c %s -n '__fish_%s_using_command help' -a '%s'\n", binaryName, binaryName, names)
	fmt.Fprintf(&b, "complete -c %s -n '__fish_%s_using_command completion' -a 'bash zsh fish powershell'\n", binaryName, binaryName)
	return b.String()
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func generatePowerShell(cmds []commandDef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# powershell completion for %s\n\n", binaryName)
	fmt.Fprintf(&b, "Register-ArgumentCompleter -Native -CommandName %s -ScriptBlock {\n", binaryName)
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $commands = @{\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        %s = %s\n", psQuote(c.Name), psQuote(c.Desc))
	}
	b.WriteString("    }\n")
	b.WriteString("    $flags = @{\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		var items []string
		for _, f := range c.Flags {
			items = append(items, psQuote("--"+f.Long))
		}
		fmt.Fprintf(&b, "        %s = @(%s)\n", psQuote(c.Name), strings.Join(items, ", "))
	}
	b.WriteString("    }\n\n")
	b.WriteString("    $elements = $commandAst.CommandElements | ForEach-Object { $_.ToString() }\n")
	b.WriteString("    $cmd = $elements | Select-Object -Skip 1 | Where-Object { $commands.ContainsKey($_) } | Select-Object -First 1\n\n")
	b.WriteString("    if (-not $cmd) {\n")
	b.WriteString("        $commands.GetEnumerator() | Where-Object { $_.Key -like \"$wordToComplete*\" } | Sort-Object Key | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    if ($wordToComplete -like '-*' -and $flags.ContainsKey($cmd)) {\n")
	b.WriteString("        $flags[$cmd] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: abstractbook completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(abstractbook completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(abstractbook completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    abstractbook completion fish > ~/.config/fish/completions/abstractbook.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    abstractbook completion powershell | Out-String | Invoke-Expression")
}
