package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	server "todo-console"
	"todo-console/internal/cli"
	"todo-console/internal/logger"
	"todo-console/internal/manager"
)

func main() {
	metricsAddr := flag.String("metrics-addr", "", "Address for the metrics/debug HTTP listener (empty = disabled)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debug {
		logger.SetLevel(logger.LevelDebug)
	}

	ctx := context.Background()
	tm := manager.NewTaskManager()

	if *metricsAddr != "" {
		go func() {
			logger.Info(ctx, "Служебный HTTP-сервер запущен", "addr", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, server.NewRouter(tm)); err != nil {
				logger.Error(ctx, err, "Служебный HTTP-сервер остановлен")
			}
		}()
	}

	cli.New(tm, os.Stdin, os.Stdout).Run()
}
