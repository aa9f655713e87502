package main

import (
	"context"
	"os"

	"github.com/sandevgo/cuebot/internal/config"
	"github.com/sandevgo/cuebot/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "cue",
	Short: "CueBot — a real-time conversation copilot",
	Long:  `CueBot listens to a live diarized transcript and keeps a short list of conversational cues refreshed.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
