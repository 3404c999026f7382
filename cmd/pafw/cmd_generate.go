package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/pafw/config"
	"github.com/dhamidi/pafw/generate"
	"github.com/dhamidi/pafw/pattern"
)

func newGenerateCmd() *cobra.Command {
	var (
		count       int
		template    string
		wordlistDir string
		showPattern bool
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate passwords",
		Long: `Generate passwords from a pattern template. Without --pattern a random
template from the pattern set is used for each password.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("count") && cfg.Count > 0 {
				count = cfg.Count
			}
			if !cmd.Flags().Changed("pattern") {
				template = cfg.Pattern
			}
			if !cmd.Flags().Changed("wordlist-dir") {
				wordlistDir = cfg.WordlistDir
			}
			if !cmd.Flags().Changed("show-pattern") {
				showPattern = cfg.ShowPattern
			}

			if template != "" {
				if err := pattern.Check(template); err != nil {
					return fmt.Errorf("pattern: %w", err)
				}
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			var opts []generate.Option
			if wordlistDir != "" {
				opts = append(opts, generate.WithWordlistDir(wordlistDir))
			}
			g := generate.New(opts...)

			passwordColor := color.New(color.FgCyan, color.Bold)
			patternColor := color.New(color.Faint)
			if quiet {
				passwordColor.DisableColor()
				patternColor.DisableColor()
			} else {
				// Banner goes to stderr so stdout stays pipeable.
				patternColor.Fprintln(cmd.ErrOrStderr(), "pafw - pattern-based password generator")
			}

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				password := g.Generate(template)
				passwordColor.Fprint(out, password)
				if showPattern {
					patternColor.Fprintf(out, "\t%s", g.LastPattern)
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords to generate")
	cmd.Flags().StringVarP(&template, "pattern", "p", "", "pattern template to use")
	cmd.Flags().StringVarP(&wordlistDir, "wordlist-dir", "d", "", "directory with extra wordlists and patterns.toml")
	cmd.Flags().BoolVar(&showPattern, "show-pattern", false, "print the template next to each password")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "plain output without colors")

	return cmd
}
