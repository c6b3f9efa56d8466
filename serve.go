package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jaliph/chatlens/api"
	"github.com/jaliph/chatlens/config"
	"github.com/jaliph/chatlens/lexicon"
	"github.com/jaliph/chatlens/parser"
	"github.com/jaliph/chatlens/server"
	"github.com/jaliph/chatlens/store"
	"github.com/jaliph/chatlens/utils"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the analysis dashboard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			utils.Init(cfg.LogLevel)
			if port != "" {
				cfg.APIPort = port
			}

			lex, err := lexicon.Load()
			if err != nil {
				return fmt.Errorf("load lexicons: %w", err)
			}

			handler := api.NewHandler(
				store.NewSession(),
				lex,
				parser.New(cfg.MediaPlaceholder),
				cfg.TopN,
			)
			srv := server.NewServer(handler)
			return srv.Start(":" + strings.TrimPrefix(cfg.APIPort, ":"))
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides config)")
	return cmd
}
