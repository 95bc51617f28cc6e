package main

import (
	"os"

	"go.uber.org/zap"

	"command-reset/internal/config"
	"command-reset/internal/service"
	"command-reset/pkg/prompt"
)

func main() {
	cfg := config.New()
	defer cfg.Logger.Sync()

	if err := cfg.Load(); err != nil {
		cfg.Logger.Fatal("could not load settings", zap.Error(err))
	}

	s := service.New(cfg, prompt.New(os.Stdin, os.Stdout))
	if err := s.Run(); err != nil {
		cfg.Logger.Fatal("command reset failed", zap.Error(err))
	}
}
