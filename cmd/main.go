package main

import (
	"context"
	"os"

	"ridebook/config"
	"ridebook/pkg/logger"
	"ridebook/pkg/shell"
	"ridebook/service"
	"ridebook/storage/memory"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	store := memory.New(cfg)
	services := service.New(store, log)

	sh := shell.New(os.Stdin, os.Stdout, services, log)
	if err := sh.Run(context.Background()); err != nil {
		log.Error("shell exited", logger.Error(err))
		os.Exit(1)
	}
}
