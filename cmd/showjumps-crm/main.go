// Command showjumps-crm boots the CRM HTTP server.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bjo163/showjumps-crm/config"
	"github.com/bjo163/showjumps-crm/internal/adminapi"
	"github.com/bjo163/showjumps-crm/internal/app"
	"github.com/bjo163/showjumps-crm/internal/webserver"
)

var (
	configFile = flag.String("c", "showjumps-crm.yml", "config file path")
	listenPort = flag.Int("p", 0, "override web listen port")
)

func main() {
	flag.Parse()

	cfg := config.LoadConfig(*configFile)
	if *listenPort != 0 {
		cfg.Web.Port = *listenPort
	}

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	ws := webserver.Init(application)
	adminapi.RegisterRoutes()

	go func() {
		if err := ws.Start(); err != nil && err != http.ErrServerClosed {
			zap.S().Errorf("web server error: %v", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	zap.S().Infof("shutdown signal: %s", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ws.Shutdown(ctx); err != nil {
		zap.S().Errorf("web server shutdown error: %v", err)
	}
	zap.S().Info("service stopped")
}
