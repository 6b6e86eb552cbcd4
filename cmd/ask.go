package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/bz888/tavish/internal/api/client"
	"github.com/bz888/tavish/internal/chat"
	"github.com/bz888/tavish/internal/config"
	"github.com/bz888/tavish/internal/logger"
	"github.com/bz888/tavish/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newAskCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <prompt...>",
		Short: "Send one prompt through the chat trigger and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd.Context(), opts.cfg, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}
}

// runAsk feeds one triggered chat message through the listener with a
// headless host and returns once its response has been dispatched.
func runAsk(ctx context.Context, cfg *config.Config, prompt string, out io.Writer) error {
	if err := logger.InitLogger(cfg.Dev, cfg.LogPath, nil); err != nil {
		return err
	}
	defer logger.Close()

	ollama, err := client.NewOllamaClient(cfg, logger.NewLogger("ollama"))
	if err != nil {
		return err
	}

	loop := chat.NewMainLoop(1)
	host := ui.NewStreamHost(loop, out)
	listener := chat.NewListener(cfg.Trigger, ollama, host, logger.NewLogger("listener"))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(ctx)
	})
	g.Go(func() error {
		listener.HandleMessage(ctx, chat.Message{Text: cfg.Trigger + prompt})
		listener.Wait()
		loop.Close()
		return nil
	})
	return g.Wait()
}
