// Package accounting dispatches ledger events to the downstream
// accounting system.
package accounting

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/services"
	"github.com/hrplatform/freelancer-api/internal/types"
)

// SQSSink publishes accounting events to an SQS queue consumed by the
// ledger importer. It implements services.AccountingSink.
type SQSSink struct {
	client   *sqs.Client
	queueURL string
	logger   *zap.Logger
}

var _ services.AccountingSink = (*SQSSink)(nil)

// NewSQSSink creates a sink writing to the given queue.
func NewSQSSink(client *sqs.Client, queueURL string) *SQSSink {
	return &SQSSink{
		client:   client,
		queueURL: queueURL,
		logger:   logger.Log,
	}
}

// Dispatch sends one event and returns the SQS message id. Entry type and
// payment id travel as message attributes so consumers can filter without
// parsing the body.
func (s *SQSSink) Dispatch(ctx context.Context, event types.AccountingEvent) (string, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to marshal accounting event: %w", err)
	}

	out, err := s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"EntryType": {
				StringValue: aws.String(event.EntryType),
				DataType:    aws.String("String"),
			},
			"PaymentID": {
				StringValue: aws.String(event.PaymentID),
				DataType:    aws.String("String"),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to send accounting event: %w", err)
	}

	messageID := aws.ToString(out.MessageId)
	s.logger.Info("Dispatched accounting event",
		zap.String("entry_type", event.EntryType),
		zap.String("payment_id", event.PaymentID),
		zap.String("message_id", messageID))
	return messageID, nil
}
