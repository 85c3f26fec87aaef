package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ilyamazurenko/Dance-partner-app/app"
	"github.com/ilyamazurenko/Dance-partner-app/config"
	"github.com/ilyamazurenko/Dance-partner-app/db"
	"github.com/ilyamazurenko/Dance-partner-app/internal"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	c, err := config.Setup()
	if err != nil {
		panic(err)
	}

	if err := app.MakeLogger(c.App.LogLevel); err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	validators.RegisterBindingRules()

	conn, err := db.New(c)
	if err != nil {
		zap.L().Fatal("Failed to initialize database", zap.Error(err))
	}

	d, err := internal.NewDeps(c, conn)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := app.NewRouter(ctx, d)
	if err != nil {
		zap.L().Fatal("Failed to initialize router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", c.Host.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.L().Info("Server starting", zap.String("app", c.App.Name), zap.Int("port", c.Host.Port))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zap.L().Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Failed to shut down cleanly", zap.Error(err))
	}
}
