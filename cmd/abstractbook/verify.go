package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	abstractbook "github.com/alnah/go-abstractbook"
)

// ErrBrokenBook reports a book whose internal links do not all resolve.
var ErrBrokenBook = errors.New("book navigation is broken")

// runVerifyCmd reads a generated book back and checks its links.
func runVerifyCmd(args []string, env *Environment) int {
	f := &verifyFlags{}
	positional, err := parse(buildVerifyFlagSet(f), args, env.Stderr, printVerifyUsage)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err == nil && len(positional) != 1 {
		err = fmt.Errorf("%w: verify takes exactly one .docx path", ErrUsage)
	}
	if err != nil {
		return report(err, env)
	}

	path := positional[0]
	v, err := abstractbook.VerifyFile(path)
	if err != nil {
		return report(err, env)
	}

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(v)
	} else {
		printVerification(env.Stdout, path, v)
	}

	if !v.OK() {
		return report(fmt.Errorf("%w: %s", ErrBrokenBook, path), env)
	}
	return ExitSuccess
}

func printVerification(w io.Writer, path string, v *abstractbook.Verification) {
	fmt.Fprintf(w, "abstractbook verify %s\n", path)
	fmt.Fprintln(w)
	mark := func(ok bool) string {
		if ok {
			return "[OK]"
		}
		return "[ERROR]"
	}
	fmt.Fprintf(w, "  %s Contents bookmark\n", mark(v.HasContents))
	fmt.Fprintf(w, "  %s Cards: %d, contents rows: %d\n", mark(len(v.Unpaired) == 0), v.Cards, v.ContentsRows)
	fmt.Fprintf(w, "  %s Internal links: %d, dangling: %d\n", mark(len(v.Dangling) == 0), v.Links, len(v.Dangling))
	if len(v.Unpaired) > 0 {
		fmt.Fprintf(w, "       unpaired IDs: %s\n", strings.Join(v.Unpaired, ", "))
	}
	if len(v.Dangling) > 0 {
		fmt.Fprintf(w, "       dangling anchors: %s\n", strings.Join(v.Dangling, ", "))
	}
	if len(v.Duplicated) > 0 {
		fmt.Fprintf(w, "  [WARN] Bookmarks used more than once: %s\n", strings.Join(v.Duplicated, ", "))
	}
}
