package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/DSado88/Grocery/internal/cli"
	"github.com/DSado88/Grocery/internal/infrastructure/config"
	"github.com/DSado88/Grocery/internal/pkg/common"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel, cfg.LogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogDebug("configuration loaded",
		zap.String("data_dir", cfg.Data.Dir),
		zap.String("chat_provider", cfg.Chat.Provider),
		zap.String("api_key", config.MaskAPIKey(cfg.Chat.APIKey)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cfg)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var cerr *common.CustomError
		if errors.As(err, &cerr) && cerr.ExitCode != 0 {
			os.Exit(cerr.ExitCode)
		}
		os.Exit(1)
	}
}
