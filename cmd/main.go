package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bartrekker/bartrekker_api/config"
	deps "github.com/bartrekker/bartrekker_api/internal/debs"
	api "github.com/bartrekker/bartrekker_api/internal/http/rest"
	"github.com/bartrekker/bartrekker_api/internal/logger"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	logger.Setup(cfg.LogFile)

	deps := deps.New(cfg)

	a := &api.API{
		Config: cfg,
		Deps:   deps,
		DB:     deps.Pool(),
	}
	go deps.WebSocket.Run()
	go func() {
		logrus.Infof("Server running on port %v ...", cfg.Port)
		logrus.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	logrus.Infof("Request to shutdown server. Draining for %v", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	logrus.Info("Shutting down server...")

	if err := a.Shutdown(); err != nil {
		logrus.Errorf("server shutdown failed: %v", err)
	}
	deps.DB.Close()
	logrus.Info("Database connections closed.")
}
