package cmd

import (
	"fmt"

	"github.com/bz888/tavish/internal/api/client"
	"github.com/bz888/tavish/internal/logger"
	"github.com/spf13/cobra"
)

func newModelsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models installed in the Ollama server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.InitLogger(opts.cfg.Dev, opts.cfg.LogPath, nil); err != nil {
				return err
			}
			defer logger.Close()

			ollama, err := client.NewOllamaClient(opts.cfg, logger.NewLogger("ollama"))
			if err != nil {
				return err
			}

			models, err := ollama.ListModels(cmd.Context())
			if err != nil {
				return fmt.Errorf("list models: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, model := range models {
				if client.HasModel([]client.OllamaModel{model}, opts.cfg.Model) {
					fmt.Fprintf(out, "%s (current)\n", model.Name)
					continue
				}
				fmt.Fprintln(out, model.Name)
			}
			return nil
		},
	}
}
