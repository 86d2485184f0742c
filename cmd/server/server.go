package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/balanceforge/balance-api/internal/config"
	apiv1 "github.com/balanceforge/balance-api/internal/handlers/api/v1"
	"github.com/balanceforge/balance-api/internal/orchestrators/balance"
	"github.com/balanceforge/balance-api/internal/pkg/clock"
	"github.com/balanceforge/balance-api/internal/pkg/idgen"
	redisclient "github.com/balanceforge/balance-api/internal/redis"
	"github.com/balanceforge/balance-api/internal/repositories/project"
)

var httpPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the balance API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP server port (overrides PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if httpPort != 0 {
		cfg.Port = httpPort
	}

	gin.SetMode(cfg.GinMode)

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err)
		}
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	projectRepo := project.NewRedisRepository(client)

	balanceService, err := balance.NewOrchestrator(&balance.Config{
		ProjectRepo: projectRepo,
		IDGenerator: idgen.NewUUID(""),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create balance orchestrator: %w", err)
	}

	handler, err := apiv1.NewHandler(&apiv1.HandlerConfig{
		BalanceService: balanceService,
	})
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	handler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed, closing server", "error", err)
			return srv.Close()
		}

		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
