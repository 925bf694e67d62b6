package main

import (
	"github.com/spf13/cobra"

	"github.com/sci-42ver/pratt-parsing-demo/arith/langserver"
)

func newLSPCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := langserver.NewServer(version, debug)
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "log protocol traffic")

	return cmd
}
