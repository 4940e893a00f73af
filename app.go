package main

import (
	"database/sql"
	"fmt"

	"airjustice/config"
	"airjustice/notification"
	"airjustice/repository"
	"airjustice/routes"
	"airjustice/schema"
	"airjustice/service"
	"airjustice/utils"
	"airjustice/worker"

	"github.com/rs/zerolog/log"
)

// application holds the wired dependency graph
type application struct {
	db       *sql.DB // nil for the memory store
	notifier *service.NotificationService
	services routes.Services
	worker   *worker.StatusWorker
}

// newCoreServices builds the stateless services shared by the server and CLI commands
func newCoreServices(cfg *config.Config) (routes.Services, utils.RandomSource, error) {
	loc, err := cfg.Location()
	if err != nil {
		return routes.Services{}, nil, err
	}
	clock := utils.SystemClock(loc)
	rng := utils.NewLockedRand(cfg.RandomSeed)

	aqi := service.NewAqiService(clock, rng)
	return routes.Services{
		Aqi:           aqi,
		Forecast:      service.NewForecastService(aqi, clock, rng),
		Legal:         service.NewLegalService(nil),
		Health:        service.NewHealthService(),
		Sources:       service.NewSourceService(rng),
		Clock:         clock,
		JWTSecret:     cfg.JWTSecret,
		AdminToken:    cfg.AdminToken,
		TokenTTLHours: cfg.TokenTTLHours,
	}, rng, nil
}

func newApplication(cfg *config.Config) (*application, error) {
	services, rng, err := newCoreServices(cfg)
	if err != nil {
		return nil, err
	}
	app := &application{}

	// Complaint store
	var store repository.ComplaintStore
	switch cfg.DBDriver {
	case config.DriverMemory:
		store = repository.NewMemoryComplaintRepository()
		log.Warn().Str("component", "store").Msg("using in-memory complaint ledger; complaints are lost on restart")
	default:
		db, err := schema.Open(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s store: %w", cfg.DBDriver, err)
		}
		app.db = db
		store = repository.NewComplaintRepository(db)
		log.Info().Str("component", "store").Str("driver", cfg.DBDriver).Msg("database connection established")
	}

	// Ledger event publisher
	var publisher notification.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = notification.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		log.Info().Str("component", "notify").Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("publishing ledger events to kafka")
	} else {
		publisher = notification.NewLogPublisher(log.Logger)
	}
	app.notifier = service.NewNotificationService(publisher, services.Clock)

	services.Complaints = service.NewComplaintService(store, services.Legal, app.notifier, services.Clock, rng, cfg.PublicBaseURL)
	app.services = services

	if cfg.StatusWorkerEnabled {
		app.worker = worker.NewStatusWorker(services.Complaints, cfg.StatusWorkerSchedule)
	}
	return app, nil
}

// Close drains pending events and releases the database
func (a *application) Close() {
	if a.worker != nil {
		a.worker.Stop()
	}
	if err := a.notifier.Close(); err != nil {
		log.Error().Err(err).Str("component", "notify").Msg("failed to close publisher")
	}
	if a.db != nil {
		a.db.Close()
	}
}
