package worker

import (
	"context"
	"fmt"
	"time"
	// Zone data for the sweep timezone on images without a zoneinfo database.
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/config"
)

//go:generate mockgen -source=sweeper.go -destination=../mocks/worker/sweeper/mock.go -package=mocks
type sweepService interface {
	Sweep(ctx context.Context, batchSize int) (int, error)
}

// Sweeper periodically republishes send instructions for records that are
// due but were never picked up, e.g. after a lost broker message or a crash
// between the database write and the publish.
type Sweeper struct {
	service   sweepService
	cron      *cron.Cron
	schedule  string
	batchSize int
}

func NewSweeper(s sweepService, cfg config.Sweep) (*Sweeper, error) {
	loc := time.UTC
	if cfg.Timezone != "" {
		l, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("load sweep timezone %q: %w", cfg.Timezone, err)
		}
		loc = l
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(cfg.Cron); err != nil {
		return nil, fmt.Errorf("parse sweep schedule %q: %w", cfg.Cron, err)
	}

	return &Sweeper{
		service:   s,
		cron:      cron.New(cron.WithParser(parser), cron.WithLocation(loc)),
		schedule:  cfg.Cron,
		batchSize: cfg.BatchSize,
	}, nil
}

// Run starts the schedule and blocks until ctx is done. A running sweep is
// allowed to finish before Run returns.
func (s *Sweeper) Run(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() { s.RunOnce(ctx) })
	if err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}

	s.cron.Start()
	zlog.Logger.Info().Str("schedule", s.schedule).Msg("sweeper started")

	<-ctx.Done()
	<-s.cron.Stop().Done()

	zlog.Logger.Info().Msg("sweeper stopped")

	return nil
}

// RunOnce sweeps one batch.
func (s *Sweeper) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	n, err := s.service.Sweep(ctx, s.batchSize)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("sweep failed")
		return
	}

	if n > 0 {
		zlog.Logger.Info().Int("republished", n).Msg("sweep republished due notifications")
	}
}
