package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/logitrack/logitrack/internal/refdata"
)

// RefdataWarmupJob primes the master-data cache so the first dropdown
// request after a deploy or cache bump does not pay the build cost.
type RefdataWarmupJob struct {
	Service *refdata.Service
	Logger  *slog.Logger
}

// NewRefdataWarmupJob initialises the warmup handler.
func NewRefdataWarmupJob(service *refdata.Service, logger *slog.Logger) *RefdataWarmupJob {
	return &RefdataWarmupJob{Service: service, Logger: logger}
}

// Handle executes the warmup.
func (j *RefdataWarmupJob) Handle(ctx context.Context, _ *asynq.Task) error {
	if j == nil || j.Service == nil {
		return errors.New("refdata warmup: handler not configured")
	}
	logger := slog.Default()
	if j.Logger != nil {
		logger = j.Logger
	}
	start := time.Now()

	loaders := []struct {
		name string
		load func(context.Context) error
	}{
		{"sales-countries", func(ctx context.Context) error { _, err := j.Service.SalesCountries(ctx); return err }},
		{"container-types", func(ctx context.Context) error { _, err := j.Service.ContainerTypes(ctx); return err }},
		{"cn-offices", func(ctx context.Context) error { _, err := j.Service.CnOffices(ctx); return err }},
		{"cargo-types", func(ctx context.Context) error { _, err := j.Service.CargoTypes(ctx); return err }},
		{"products", func(ctx context.Context) error { _, err := j.Service.Products(ctx); return err }},
		{"uoms", func(ctx context.Context) error { _, err := j.Service.Uoms(ctx); return err }},
		{"categories", func(ctx context.Context) error { _, err := j.Service.Categories(ctx); return err }},
	}

	var failed int
	for _, l := range loaders {
		if err := l.load(ctx); err != nil {
			failed++
			logger.Warn("refdata warmup load failed",
				slog.String("dataset", l.name),
				slog.Any("error", err),
			)
		}
	}
	logger.Info("refdata warmup completed",
		slog.Int("datasets", len(loaders)),
		slog.Int("failed", failed),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}
