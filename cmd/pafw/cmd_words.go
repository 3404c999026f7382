package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/pafw/words"
)

func newWordsCmd() *cobra.Command {
	var wordlistDir string

	cmd := &cobra.Command{
		Use:   "words [list]",
		Short: "List wordlists, or the words in one list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []words.Option
			if wordlistDir != "" {
				opts = append(opts, words.WithDir(wordlistDir))
			}
			store := words.NewStore(opts...)

			if len(args) == 0 {
				for _, name := range store.List() {
					cmd.Println(name)
				}
				return nil
			}

			list, err := store.Words(args[0])
			if err != nil {
				return err
			}
			for _, word := range list {
				cmd.Println(word)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&wordlistDir, "wordlist-dir", "d", "", "directory with extra wordlists and patterns.toml")

	return cmd
}
