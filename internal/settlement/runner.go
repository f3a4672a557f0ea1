package settlement

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/solopool-hq/payouts-backend/internal/clock"
)

// RunSettlementLoop runs settlement cycles on a fixed interval until the
// context is canceled.
func (p *Processor) RunSettlementLoop(ctx context.Context, interval time.Duration) {
	p.logger.Info("settlement loop started", zap.Duration("interval", interval))

	_ = clock.Every(ctx, interval, func(ctx context.Context) {
		if err := p.RunCycle(ctx); err != nil {
			p.logger.Error("settlement cycle failed", zap.Error(err))
		}
	})

	p.logger.Info("settlement loop stopped")
}

// RunPaymentLoop runs payout cycles on a fixed interval until the context
// is canceled.
func (p *Processor) RunPaymentLoop(ctx context.Context, interval time.Duration) {
	p.logger.Info("payment loop started", zap.Duration("interval", interval))

	_ = clock.Every(ctx, interval, func(ctx context.Context) {
		if err := p.RunPaymentCycle(ctx); err != nil {
			p.logger.Error("payment cycle failed", zap.Error(err))
		}
	})

	p.logger.Info("payment loop stopped")
}
