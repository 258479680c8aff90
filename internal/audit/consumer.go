package audit

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/equiphub/booking-service/internal/model"
)

type persist func(ctx context.Context, event model.AuditEvent) error

// Consumer drains the audit topic into the append-only audit_log table.
type Consumer struct {
	persist persist
	log     *zap.Logger
}

func NewConsumer(persist persist, log *zap.Logger) *Consumer {
	return &Consumer{
		persist: persist,
		log:     log.Named("consumer"),
	}
}

// Setup runs at the start of every session; sarama re-enters it after each
// rebalance with the same handler, so it must stay idempotent.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event model.AuditEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("audit unmarshal", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.persist(context.Background(), event); err != nil {
				consumer.log.Error("audit persist", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
