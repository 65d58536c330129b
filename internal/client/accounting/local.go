package accounting

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/services"
	"github.com/hrplatform/freelancer-api/internal/types"
)

// LocalSink logs events instead of queueing them. Used in local
// development where no queue exists.
type LocalSink struct {
	logger *zap.Logger
}

var _ services.AccountingSink = (*LocalSink)(nil)

func NewLocalSink() *LocalSink {
	return &LocalSink{logger: logger.Log}
}

// Dispatch logs the event and fabricates a message id so the entry is
// recorded as dispatched.
func (s *LocalSink) Dispatch(_ context.Context, event types.AccountingEvent) (string, error) {
	messageID := "local-" + uuid.New().String()
	s.logger.Info("Accounting event (local sink)",
		zap.String("entry_type", event.EntryType),
		zap.String("payment_id", event.PaymentID),
		zap.String("net_amount", event.NetAmount.String()),
		zap.String("message_id", messageID))
	return messageID, nil
}
