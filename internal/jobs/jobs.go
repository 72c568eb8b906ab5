package jobs

import (
	"context"
	"time"
	"visitorpass/config"
	"visitorpass/infras/otel"
	outboxService "visitorpass/internal/domains/outbox/service"
	refundService "visitorpass/internal/domains/refund/service"
	"visitorpass/shared/constant"

	"github.com/rs/zerolog/log"
)

const jobTimeout = 30 * time.Second

// Jobs holds the background work run by the scheduler.
type Jobs struct {
	refund refundService.Refund
	outbox outboxService.Outbox
	cfg    *config.Config
	otel   otel.Otel
}

func NewJobs(refund refundService.Refund, outbox outboxService.Outbox, cfg *config.Config, otel otel.Otel) *Jobs {
	return &Jobs{
		refund: refund,
		outbox: outbox,
		cfg:    cfg,
		otel:   otel,
	}
}

// SettleRefunds moves refunds that have waited out the settlement delay to SUCCESS.
func (j *Jobs) SettleRefunds() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	ctx, scope := j.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".SettleRefunds")
	defer scope.End()

	delay := time.Duration(j.cfg.Jobs.RefundSettlement.DelaySeconds) * time.Second

	settled, err := j.refund.SettleDue(ctx, delay)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("refund settlement job failed")

		return
	}

	scope.SetAttribute("refunds.settled", settled)
}

// RelayOutbox publishes one batch of pending domain events.
func (j *Jobs) RelayOutbox() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	ctx, scope := j.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".RelayOutbox")
	defer scope.End()

	published, err := j.outbox.Relay(ctx, j.cfg.Jobs.OutboxRelay.BatchSize)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("outbox relay job failed")

		return
	}

	scope.SetAttribute("events.published", published)
}
