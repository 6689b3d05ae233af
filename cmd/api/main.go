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

	"supportcenter/internal/config"
	"supportcenter/internal/database"
	"supportcenter/internal/logger"
	"supportcenter/internal/server"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../api/swagger --outputTypes go

// @title           Support Center API
// @version         1.0
// @description     Users, roles, permissions and FAQs of the support center.
// @BasePath        /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:    cfg.LogLevel,
		Pretty:   cfg.IsDevelopment(),
		FilePath: cfg.LogFile,
	})
	defer log.Close()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewConnection(cfg.DB, cfg.LogLevel == "debug")
	if err != nil {
		log.Record(fmt.Sprintf("Database connection failed: %v", err), logger.SeverityError)
		return err
	}
	log.Record(fmt.Sprintf("Connected to %s database", cfg.DB.Driver), logger.SeverityInfo)

	services := server.NewServices(db, log)
	if err := services.Roles.SeedDefaults(ctx); err != nil {
		return err
	}

	router, err := server.NewRouter(cfg, db, services, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Record(fmt.Sprintf("Server listening on :%s", cfg.Port), logger.SeverityInfo)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Record("Shutting down server", logger.SeverityInfo)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Record(fmt.Sprintf("Server failed: %v", err), logger.SeverityError)
		return err
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
