package audit

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/equiphub/booking-service/internal/model"
)

// Publisher ships audit events to Kafka. Publishing is best-effort: a broker
// failure is logged and dropped, never surfaced to the mutation that
// triggered it.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		log:      log.Named("audit"),
	}
}

func (p *Publisher) Record(_ context.Context, event model.AuditEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("audit marshal", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: p.topic, Value: sarama.StringEncoder(data)}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		p.log.Warn("audit publish", zap.String("action", string(event.Action)), zap.Error(err))
	}
}
