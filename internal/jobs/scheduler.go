package jobs

import (
	"context"
	"fmt"
	"visitorpass/config"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// cronLogger routes cron's own messages to the global zerolog logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

type Scheduler struct {
	cron *cron.Cron
	jobs *Jobs
	cfg  *config.Config
}

func NewScheduler(jobs *Jobs, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(cronLogger{}), cron.SkipIfStillRunning(cronLogger{})), cron.WithLogger(cronLogger{})),
		jobs: jobs,
		cfg:  cfg,
	}
}

// Start registers every job and starts the cron loop. It does nothing when jobs are disabled.
func (s *Scheduler) Start() error {
	if !s.cfg.Jobs.Enable {
		log.Info().Msg("background jobs disabled")

		return nil
	}

	schedules := []struct {
		name     string
		schedule string
		run      func()
	}{
		{name: "refund settlement", schedule: s.cfg.Jobs.RefundSettlement.Schedule, run: s.jobs.SettleRefunds},
		{name: "outbox relay", schedule: s.cfg.Jobs.OutboxRelay.Schedule, run: s.jobs.RelayOutbox},
	}

	for _, job := range schedules {
		if _, err := s.cron.AddFunc(job.schedule, job.run); err != nil {
			log.Error().Err(err).Str("job", job.name).Msg("failed to schedule job")

			return fmt.Errorf("failed to schedule %s job: %w", job.name, err)
		}

		log.Info().Str("job", job.name).Str("schedule", job.schedule).Msg("scheduled job")
	}

	s.cron.Start()

	return nil
}

// Stop halts scheduling. The returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Jobs reports how many jobs are registered.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}
