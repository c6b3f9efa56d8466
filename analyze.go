package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/jaliph/chatlens/analyzer"
	"github.com/jaliph/chatlens/config"
	"github.com/jaliph/chatlens/lexicon"
	"github.com/jaliph/chatlens/models"
	"github.com/jaliph/chatlens/parser"
	"github.com/jaliph/chatlens/render"
	"github.com/jaliph/chatlens/utils"
)

func analyzeCmd() *cobra.Command {
	var user string
	var top int

	cmd := &cobra.Command{
		Use:   "analyze <export.txt>",
		Short: "Print statistics for an exported chat file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			utils.Init(cfg.LogLevel)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read export: %w", err)
			}
			if !utf8.Valid(data) {
				return fmt.Errorf("%s is not valid UTF-8 text", args[0])
			}

			lex, err := lexicon.Load()
			if err != nil {
				return fmt.Errorf("load lexicons: %w", err)
			}

			corpus := models.NewCorpus(parser.New(cfg.MediaPlaceholder).Parse(string(data)))
			if top <= 0 {
				top = cfg.TopN
			}

			report := analyzer.BuildReport(corpus, user, top, lex)
			render.Report(os.Stdout, report)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", models.AllUsers, "restrict statistics to one sender")
	cmd.Flags().IntVar(&top, "top", 0, "size of top-N tables (0 = config default)")
	return cmd
}
