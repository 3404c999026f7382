package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pafw/ui"
	"github.com/dhamidi/pafw/words"
)

func newUICmd() *cobra.Command {
	var addr string
	var wordlistDir string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the web UI server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []ui.Option
			if wordlistDir != "" {
				opts = append(opts, ui.WithStore(words.NewStore(words.WithDir(wordlistDir))))
			}

			server, err := ui.NewServer(opts...)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			fmt.Printf("Starting server at http://%s\n", displayAddr)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")
	cmd.Flags().StringVarP(&wordlistDir, "wordlist-dir", "d", "", "directory with extra wordlists and patterns.toml")

	return cmd
}
