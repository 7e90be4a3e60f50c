package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"clubhub/internal/admin"
	"clubhub/internal/broadcast"
	"clubhub/internal/club"
	clubhandler "clubhub/internal/club/handler"
	clubmem "clubhub/internal/club/store/memory"
	clubpg "clubhub/internal/club/store/postgres"
	"clubhub/internal/identity"
	identityhandler "clubhub/internal/identity/handler"
	"clubhub/internal/platform/config"
	"clubhub/internal/platform/httpserver"
	"clubhub/internal/platform/logger"
	"clubhub/internal/platform/metrics"
	platformredis "clubhub/internal/platform/redis"
	"clubhub/internal/profile"
	profilemem "clubhub/internal/profile/store/memory"
	profilepg "clubhub/internal/profile/store/postgres"
	profileredis "clubhub/internal/profile/store/redis"
	"clubhub/internal/session"
	sessionhandler "clubhub/internal/session/handler"
	httptransport "clubhub/internal/transport/http"
	pkgemail "clubhub/pkg/email"
)

// main wires the stores, the broadcast channel, the session manager, and the
// HTTP surface, then runs until interrupted. Business logic lives in the
// internal feature packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(logger.ParseLevel(cfg.LogLevel))

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mtr := metrics.New()

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	profiles, clubs, cleanup, err := buildStores(ctx, cfg, redisClient, log)
	if err != nil {
		return err
	}
	defer cleanup()

	channel, kafkaChannel, err := buildChannel(cfg, redisClient, log)
	if err != nil {
		return err
	}

	provider := identity.NewLocalProvider()
	if err := seedAdmin(ctx, provider, profiles, log); err != nil {
		return err
	}

	tokens := identity.NewTokenService(cfg.JWTSigningKey, "clubhub")
	validator := identity.NewTokenServiceAdapter(tokens)

	manager := session.NewManager(provider, profiles, channel,
		session.WithLogger(log),
		session.WithMetrics(mtr),
	)
	manager.Start(ctx)
	defer manager.Close()

	clubService, err := club.NewService(clubs, club.WithLogger(log), club.WithMetrics(mtr))
	if err != nil {
		return err
	}
	adminService, err := admin.NewService(profiles, channel, admin.WithLogger(log))
	if err != nil {
		return err
	}

	router := httptransport.NewRouter(
		identityhandler.New(provider, tokens, log, mtr),
		sessionhandler.New(manager, log, mtr, validator),
		clubhandler.New(clubService, manager, log, mtr, validator),
		admin.NewHandler(adminService, manager, log, mtr, validator),
	)
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting clubhub server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if kafkaChannel != nil {
		g.Go(func() error {
			return kafkaChannel.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	if kafkaChannel != nil {
		kafkaChannel.Close()
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// buildStores selects the backing stores: postgres when configured, then
// redis for profiles, falling back to in-memory.
func buildStores(ctx context.Context, cfg config.Server, redisClient *platformredis.Client, log *slog.Logger) (profile.Store, club.Store, func(), error) {
	if cfg.PostgresURL != "" {
		db, err := profilepg.Open(cfg.PostgresURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := profilepg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}

		pool, err := clubpg.Open(ctx, cfg.PostgresURL)
		if err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}
		if err := clubpg.Migrate(ctx, pool); err != nil {
			pool.Close()
			_ = db.Close()
			return nil, nil, nil, err
		}

		log.Info("using postgres stores")
		cleanup := func() {
			pool.Close()
			_ = db.Close()
		}
		return profilepg.New(db), clubpg.New(pool), cleanup, nil
	}

	if redisClient != nil {
		log.Info("using redis profile store")
		return profileredis.New(redisClient.Client), clubmem.New(), func() {}, nil
	}

	log.Info("using in-memory stores")
	return profilemem.New(), clubmem.New(), func() {}, nil
}

// buildChannel selects the role-change transport: Kafka when brokers are
// configured, Redis pub/sub when a client is available, else the in-process
// bus. The Kafka channel is returned separately so run can drive its poll
// loop and close it.
func buildChannel(cfg config.Server, redisClient *platformredis.Client, log *slog.Logger) (broadcast.Channel, *broadcast.KafkaChannel, error) {
	if len(cfg.Kafka.Brokers) > 0 {
		ch, err := broadcast.NewKafkaChannel(cfg.Kafka, log)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using kafka role-change channel", "topic", cfg.Kafka.Topic)
		return ch, ch, nil
	}
	if redisClient != nil {
		log.Info("using redis role-change channel")
		return broadcast.NewRedisChannel(redisClient.Client, log), nil, nil
	}
	log.Info("using in-process role-change bus")
	return broadcast.NewBus(), nil, nil
}

// seedAdmin registers a bootstrap admin account when the environment
// provides one, so a fresh deployment has a way in.
func seedAdmin(ctx context.Context, provider *identity.LocalProvider, profiles profile.Store, log *slog.Logger) error {
	email := os.Getenv("CLUBHUB_ADMIN_EMAIL")
	password := os.Getenv("CLUBHUB_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	hash, err := identity.HashPassword(password)
	if err != nil {
		return err
	}
	provider.Register(identity.Account{
		ID:            "admin",
		Email:         email,
		PasswordHash:  hash,
		EmailVerified: true,
	})

	first, last := pkgemail.DeriveNameFromEmail(email)
	p := &profile.Profile{
		ID:          "admin",
		Role:        profile.RoleAdmin,
		SchoolID:    os.Getenv("CLUBHUB_ADMIN_SCHOOL_ID"),
		DisplayName: first + " " + last,
		Email:       email,
	}
	if err := profiles.SaveProfile(ctx, p); err != nil {
		return err
	}
	log.Info("seeded admin account", "email", email)
	return nil
}
