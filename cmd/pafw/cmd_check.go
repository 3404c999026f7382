package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/pafw/pattern"
)

func newCheckCmd() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "check [pattern...]",
		Short: "Validate pattern templates",
		Long: `Validate pattern templates for balanced braces, brackets and parentheses.
With --file, every non-comment line of a pattern file is checked instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := args

			if fromFile != "" {
				data, err := os.ReadFile(fromFile)
				if err != nil {
					return fmt.Errorf("read pattern file: %w", err)
				}
				for _, line := range strings.Split(string(data), "\n") {
					trimmed := strings.TrimSpace(line)
					if trimmed == "" || strings.HasPrefix(trimmed, "#") {
						continue
					}
					templates = append(templates, line)
				}
			}

			if len(templates) == 0 {
				return fmt.Errorf("no patterns to check")
			}

			okColor := color.New(color.FgGreen)
			errColor := color.New(color.FgRed)

			out := cmd.OutOrStdout()
			failed := 0
			for _, t := range templates {
				if err := pattern.Check(t); err != nil {
					errColor.Fprintf(out, "error\t%s\t%s\n", t, err)
					failed++
					continue
				}
				okColor.Fprintf(out, "ok\t%s\n", t)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d patterns invalid", failed, len(templates))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "check every line of a pattern file")

	return cmd
}
