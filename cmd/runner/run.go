package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gehirndienst/anniversary-go-bot/internal/botapi"
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to .env file from the pwd(!)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bot, err := botapi.InitBot(ctx, *envFile)
	if err != nil {
		os.Exit(1)
	}

	if err := bot.Run(ctx); err != nil {
		logger := botapi.GetLogger()
		logger.Error().Err(err).Msg("bot stopped with error")
		os.Exit(1)
	}
}
