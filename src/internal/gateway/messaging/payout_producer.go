package messaging

import (
	"benerin-admin-service/src/internal/model"
	kafka "benerin-admin-service/src/pkg/kafka/confluent"
	"benerin-admin-service/src/pkg/log"
)

type PayoutProducer struct {
	StatusProducer Producer[*model.PayoutStatusEvent]
}

func NewPayoutProducer(producer kafka.Producer, log log.Log) *PayoutProducer {
	return &PayoutProducer{
		StatusProducer: Producer[*model.PayoutStatusEvent]{
			Producer: producer,
			Topic:    "payout-status",
			Log:      log,
		},
	}
}

func (p *PayoutProducer) SendStatus(event *model.PayoutStatusEvent) error {
	return p.StatusProducer.Send(event)
}
