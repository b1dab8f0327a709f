package main

import (
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/clock"
	"auction-engine/internal/config"
	"auction-engine/internal/livestate"
	"auction-engine/internal/repository"
	"auction-engine/internal/scheduler"
	"auction-engine/internal/server"
	"auction-engine/internal/timer"
	"auction-engine/migrations"
	handler "auction-engine/services/bidding/handler"
	"auction-engine/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(os.Getenv("AUCTION_CONFIG"))
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Warn("unknown log level, keeping info", map[string]any{"log_level": cfg.LogLevel})
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg); err != nil {
		utils.Fatal("auction engine stopped with error", map[string]any{"error": err.Error()})
	}
	utils.Info("auction engine stopped", nil)
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ledger, closeLedger, err := openLedger(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLedger()

	clk := clock.NewSystem()
	live := livestate.NewMemoryStore(clk)
	timers := timer.New(clk, live, timer.WithWindow(cfg.Bidding.TimerWindow))
	retrier := livestate.NewRetrier(cfg.Live.RetryAttempts, cfg.Live.RetryBackoff)
	defer retrier.Close()

	biddingSvc := bidding.NewBiddingService(ledger, live, timers, clk,
		bidding.WithIncrement(cfg.Bidding.Increment),
		bidding.WithInitialTimer(cfg.Bidding.TimerInitial),
		bidding.WithRetrier(retrier),
	)
	closer := bidding.NewCloseCoordinator(ledger, live, timers, clk, retrier)

	restored, err := biddingSvc.RestoreTimers(ctx)
	if err != nil {
		return err
	}
	utils.Info("timers restored", map[string]any{"open_auctions": restored})

	var sweeperOpts []scheduler.Option
	sweeperOpts = append(sweeperOpts, scheduler.WithInterval(cfg.Closing.SweepInterval))
	if cfg.Closing.RearmOnNoBids {
		sweeperOpts = append(sweeperOpts, scheduler.WithRearm(cfg.Bidding.TimerInitial))
	}
	sweeper := scheduler.NewSweeper(ledger, timers, closer, clk, sweeperOpts...)

	biddingHandler := handler.NewBiddingHandler(biddingSvc, closer, live, timers,
		handler.WithRequireExpiry(cfg.Closing.RequireExpiryForClose))
	if cfg.OperatorToken == "" {
		utils.Warn("OPERATOR_TOKEN not set, operator routes are disabled", nil)
	}
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.SetupRouter(biddingHandler, cfg.OperatorToken),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		utils.Info("starting auction server", map[string]any{
			"addr":   srv.Addr,
			"ledger": cfg.Ledger.Driver,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return sweeper.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		utils.Info("shutdown signal received, stopping server", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// openLedger connects the configured ledger driver. The returned func releases it.
func openLedger(ctx context.Context, cfg config.Config) (repository.Ledger, func(), error) {
	switch cfg.Ledger.Driver {
	case config.DriverPostgres:
		startupCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		pool, err := pgxpool.New(startupCtx, cfg.Ledger.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to db: %w", err)
		}
		if err := pool.Ping(startupCtx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("db ping: %w", err)
		}
		if err := migrations.Apply(startupCtx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("apply migrations: %w", err)
		}
		return repository.NewPostgresRepo(pool), pool.Close, nil

	case config.DriverBolt:
		repo, err := repository.NewBoltRepo(cfg.Ledger.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				utils.Error("failed to close bolt ledger", map[string]any{"error": err.Error()})
			}
		}, nil

	default:
		utils.Warn("using the in-memory ledger, state is lost on restart", nil)
		return repository.NewMemoryRepo(), func() {}, nil
	}
}
