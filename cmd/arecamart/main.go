package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sagar1314-oops/ArecaMart/config"
	"github.com/sagar1314-oops/ArecaMart/internal/adminapi"
	"github.com/sagar1314-oops/ArecaMart/internal/app"
	"github.com/sagar1314-oops/ArecaMart/internal/shopapi"
	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
)

var (
	configFile = flag.String("c", "arecamart.yml", "config file path")
	initDb     = flag.Bool("initdb", false, "drop and recreate all tables, then exit")
)

func main() {
	flag.Parse()

	cfg := config.LoadConfig(*configFile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initDb {
		application.InitDb()
		zap.S().Info("database initialized")
		return
	}

	ws := webserver.Init(application)
	adminapi.InitRouter()
	shopapi.InitRouter()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		zap.S().Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = ws.Echo().Shutdown(ctx)
	}()

	if err := webserver.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.S().Fatalf("web server error: %v", err)
	}
}
