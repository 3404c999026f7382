package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/pafw/words"
)

func newPatternsCmd() *cobra.Command {
	var wordlistDir string

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the available pattern templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []words.Option
			if wordlistDir != "" {
				opts = append(opts, words.WithDir(wordlistDir))
			}

			patterns, err := words.NewStore(opts...).Patterns()
			if err != nil {
				return err
			}

			nameColor := color.New(color.Bold)
			out := cmd.OutOrStdout()
			for _, p := range patterns {
				nameColor.Fprintf(out, "%s\t", p.Name)
				cmd.Printf("%s\n", p.Template)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&wordlistDir, "wordlist-dir", "d", "", "directory with extra wordlists and patterns.toml")

	return cmd
}
