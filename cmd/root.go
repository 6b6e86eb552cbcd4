package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bz888/tavish/internal/api/client"
	"github.com/bz888/tavish/internal/chat"
	"github.com/bz888/tavish/internal/config"
	"github.com/bz888/tavish/internal/logger"
	"github.com/bz888/tavish/internal/ui"
	"github.com/spf13/cobra"
)

type options struct {
	flags config.Flags
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tavish",
		Short: "Ask a local Ollama model from chat and run what it answers",
		Long: `tavish watches chat for messages starting with the trigger ("!ai " by default),
sends the rest of the message to a local Ollama server and applies the answer:
"/..." answers run as game commands, "#..." answers go to chat for Baritone,
anything else is shown as an AI message.

Run without arguments to start the terminal chat console.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.flags.ConfigPath)
			if err != nil {
				return err
			}
			opts.flags.Apply(cmd.Flags(), cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd.Context(), opts.cfg)
		},
	}

	opts.flags.Register(root.PersistentFlags())
	root.AddCommand(newAskCmd(opts), newModelsCmd(opts))
	return root
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runConsole(ctx context.Context, cfg *config.Config) error {
	console := ui.NewConsole(cfg.Dev, cfg.Trigger)

	if err := logger.InitLogger(cfg.Dev, cfg.LogPath, console.DebugConsole()); err != nil {
		return err
	}
	defer logger.Close()

	localLogger := logger.NewLogger("main")
	localLogger.Info("Initializing Tavish AI client")

	ollama, err := client.NewOllamaClient(cfg, logger.NewLogger("ollama"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	listener := chat.NewListener(cfg.Trigger, ollama, console, logger.NewLogger("listener"))
	defer func() {
		cancel()
		listener.Wait()
	}()

	console.OnMessage(listener.HandleMessage)
	console.SetModelLister(ollama.ModelNames)

	go func() {
		if err := ollama.CheckAvailability(ctx); err != nil {
			localLogger.Warn(err)
			return
		}
		localLogger.Info("Ollama server available with model", cfg.Model)
	}()

	return console.Run(ctx)
}
