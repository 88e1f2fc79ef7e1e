package consumer

import (
	"context"
	"time"

	"github.com/harborview/hotel-backend/internal/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// BookingConsumer refreshes the sales summary cache whenever a booking event
// arrives on the broker. This keeps the cache current across instances: any
// replica's commit refreshes every replica's view, and because the refresh is
// a full recompute, duplicate deliveries are harmless.
type BookingConsumer struct {
	refresher service.SummaryRefresher
	logger    *logrus.Logger
}

func NewBookingConsumer(refresher service.SummaryRefresher, logger *logrus.Logger) *BookingConsumer {
	return &BookingConsumer{refresher: refresher, logger: logger}
}

func (bc *BookingConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			bc.handleMessage(msg)
		}
		bc.logger.Info("booking event channel closed, stopping consumer")
	}()
}

func (bc *BookingConsumer) handleMessage(msg amqp.Delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := bc.refresher.Refresh(ctx, time.Now()); err != nil {
		bc.logger.WithError(err).WithField("routing_key", msg.RoutingKey).
			Warn("failed to refresh sales summary from booking event")
		msg.Nack(false, true) // requeue
		return
	}

	msg.Ack(false)
}
