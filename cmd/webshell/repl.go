package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/brettbedarf/webshell"
	"github.com/brettbedarf/webshell/config"
)

// runREPL reads one command per line from in until EOF, writing the banner,
// prompts and results to out
func runREPL(in io.Reader, out io.Writer, con webshell.Console, cfg *config.Config) error {
	fmt.Fprintln(out, cfg.Banner)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s %s", con.Cwd(), cfg.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		res := con.Submit(scanner.Text())
		switch res.Kind {
		case webshell.Rendered, webshell.Failed, webshell.ResetDisplay:
			fmt.Fprintln(out, res.Text)
		}
	}
}
