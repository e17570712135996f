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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstep/metrics"
	"github.com/katalvlaran/dijkstep/server"
	"github.com/katalvlaran/dijkstep/session"
	"github.com/katalvlaran/dijkstep/session/redisstore"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP replay server",
	Long: `Serves replay sessions over a JSON API. Sessions live in memory unless
--redis is given, in which case they survive restarts and can be shared by
several server instances.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		addr, _ := flags.GetString("addr")
		redisAddr, _ := flags.GetString("redis")
		redisPassword, _ := flags.GetString("redis-password")
		redisDB, _ := flags.GetInt("redis-db")
		ttl, _ := flags.GetDuration("ttl")

		var store session.Store = session.NewMemoryStore()
		if redisAddr != "" {
			rs := redisstore.New(redisAddr, redisPassword, redisDB, redisstore.WithTTL(ttl))
			defer rs.Close()
			if err := rs.Ping(cmd.Context()); err != nil {
				return err
			}
			store = rs
			logger.Info("using redis session store", "addr", redisAddr, "ttl", ttl)
		}

		mgr := session.NewManager(store,
			session.WithLogger(logger),
			session.WithMetrics(metrics.New(prometheus.DefaultRegisterer)),
		)
		srv := &http.Server{
			Addr:              addr,
			Handler:           server.NewHandler(mgr, server.WithLogger(logger)),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
				return srv.Close()
			}
			logger.Info("server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("redis", "", "Redis address (host:port); empty keeps sessions in memory")
	serveCmd.Flags().String("redis-password", "", "Redis password")
	serveCmd.Flags().Int("redis-db", 0, "Redis database number")
	serveCmd.Flags().Duration("ttl", 0, "Session expiry in Redis (0 = never)")
}
