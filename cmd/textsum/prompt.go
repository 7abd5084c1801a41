package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"textsum/internal/ingest"
	"textsum/internal/service"
)

// runPrompt summarizes a paragraph read from stdin. n is used when the
// sentences flag was given; otherwise the count is asked for.
func runPrompt(cmd *cobra.Command, svc *service.SummaryService, opts *rootOptions, n int) error {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	interactive := isTerminal(in)
	r := ingest.NewReader(in)

	if interactive {
		fmt.Fprintln(out, "Enter paragraph (end input with an empty line):")
	}
	paragraph, err := r.Paragraph()
	if err != nil {
		return err
	}
	if paragraph == "" {
		fmt.Fprintln(out, "No input provided. Exiting.")
		return nil
	}

	if !cmd.Flags().Changed("sentences") {
		if interactive {
			fmt.Fprint(out, "How many sentences should the summary have? (enter 0 for auto): ")
		}
		line, err := r.Line()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		n = svc.Count(line)
	}

	printResult(out, svc.Rank(paragraph, n), opts.scores)
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
