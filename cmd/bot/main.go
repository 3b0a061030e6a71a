package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/httpapi"
	memcontrib "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/contribrepo"
	memgroup "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/grouprepo"
	memmeeting "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/meetingrepo"
	memmember "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/memberrepo"
	mempayout "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/payoutrepo"
	memuser "github.com/stokvelmanager/whatsapp-bot/internal/adapters/memory/userrepo"
	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/mongodb"
	mongocontrib "github.com/stokvelmanager/whatsapp-bot/internal/adapters/mongodb/contribrepo"
	mongogroup "github.com/stokvelmanager/whatsapp-bot/internal/adapters/mongodb/grouprepo"
	mongomeeting "github.com/stokvelmanager/whatsapp-bot/internal/adapters/mongodb/meetingrepo"
	mongomember "github.com/stokvelmanager/whatsapp-bot/internal/adapters/mongodb/memberrepo"
	mongopayout "github.com/stokvelmanager/whatsapp-bot/internal/adapters/mongodb/payoutrepo"
	mongouser "github.com/stokvelmanager/whatsapp-bot/internal/adapters/mongodb/userrepo"
	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/whatsapp"
	"github.com/stokvelmanager/whatsapp-bot/internal/app/commands"
	"github.com/stokvelmanager/whatsapp-bot/internal/app/notify"
	"github.com/stokvelmanager/whatsapp-bot/internal/app/reminders"
	"github.com/stokvelmanager/whatsapp-bot/internal/events"
	platformclock "github.com/stokvelmanager/whatsapp-bot/internal/platform/clock"
	"github.com/stokvelmanager/whatsapp-bot/internal/platform/config"
	"github.com/stokvelmanager/whatsapp-bot/internal/platform/logging"
	contribrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/contribrepo"
	grouprepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/grouprepo"
	meetingrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/meetingrepo"
	memberrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/memberrepo"
	payoutrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/payoutrepo"
	userrepoport "github.com/stokvelmanager/whatsapp-bot/internal/ports/out/userrepo"
)

const shutdownTimeout = 10 * time.Second

type repositories struct {
	users    userrepoport.Repository
	groups   grouprepoport.Repository
	members  memberrepoport.Repository
	contribs contribrepoport.Repository
	meetings meetingrepoport.Repository
	payouts  payoutrepoport.Repository
}

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is a local-dev convenience; absence is fine.
	_ = godotenv.Load()
	logging.Setup()
	log := slog.Default()

	waCfg, err := config.LoadWhatsAppConfigFromEnv()
	if err != nil {
		return err
	}
	schedCfg, err := config.LoadScheduleConfigFromEnv()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStorage, err := openStorage(ctx, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	clk := platformclock.NewSystemClock()
	sender := whatsapp.NewSender(waCfg, log)

	router := commands.NewService(
		repos.users, repos.groups, repos.members,
		repos.contribs, repos.meetings, repos.payouts,
		clk, schedCfg.Location, log,
	)
	dispatcher := notify.NewDispatcher(sender, log)
	triggers := notify.NewTriggers(repos.groups, repos.members, repos.contribs,
		dispatcher, clk, schedCfg.Location, log)
	sweep := reminders.NewJob(repos.groups, repos.members, repos.contribs,
		sender, clk, schedCfg.Location, log)

	bus := events.NewBus()
	bus.OnContributionWritten(triggers.HandleContributionWritten)
	bus.OnMeetingCreated(triggers.HandleMeetingCreated)
	bus.OnReminderTick(func(ctx context.Context, _ events.ReminderTick) {
		sweep.Run(ctx)
	})

	scheduler := reminders.NewScheduler(bus, schedCfg.Location, schedCfg.ReminderHour, log)
	go scheduler.Run(ctx)

	webhook := httpapi.NewWebhookHandler(waCfg.VerifyToken, router, sender, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpapi.NewRouter(webhook, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStorage builds the repository set for the configured backend.
// STORAGE_BACKEND defaults to the in-memory adapters for local dev.
func openStorage(ctx context.Context, log *slog.Logger) (repositories, func(), error) {
	backend := os.Getenv("STORAGE_BACKEND")
	switch backend {
	case "", "memory":
		log.Info("storage backend: memory")
		return repositories{
			users:    memuser.NewRepo(),
			groups:   memgroup.NewRepo(),
			members:  memmember.NewRepo(),
			contribs: memcontrib.NewRepo(),
			meetings: memmeeting.NewRepo(),
			payouts:  mempayout.NewRepo(),
		}, func() {}, nil

	case "mongo":
		uri := os.Getenv("MONGO_URI")
		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = "stokvel"
		}
		db, err := mongodb.Connect(ctx, uri, dbName)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("open mongo storage: %w", err)
		}
		log.Info("storage backend: mongo", "db", dbName)
		closeFn := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := db.Close(closeCtx); err != nil {
				log.Warn("close mongo", "err", err)
			}
		}
		return repositories{
			users:    mongouser.NewRepo(db),
			groups:   mongogroup.NewRepo(db),
			members:  mongomember.NewRepo(db),
			contribs: mongocontrib.NewRepo(db),
			meetings: mongomeeting.NewRepo(db),
			payouts:  mongopayout.NewRepo(db),
		}, closeFn, nil

	default:
		return repositories{}, nil, fmt.Errorf("unknown STORAGE_BACKEND %q (memory|mongo)", backend)
	}
}
