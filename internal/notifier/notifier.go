// Package notifier pushes guest-facing notifications onto the broker. The
// actual email/SMS delivery happens in a separate worker downstream; this
// service only needs fire-and-forget semantics.
package notifier

import (
	"context"

	"github.com/harborview/hotel-backend/pkg/rabbitmq"
	"github.com/sirupsen/logrus"
)

type codeMessage struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Code     string `json:"code"`
}

type BrokerNotifier struct {
	publisher *rabbitmq.Publisher
	logger    *logrus.Logger
}

func NewBrokerNotifier(publisher *rabbitmq.Publisher, logger *logrus.Logger) *BrokerNotifier {
	return &BrokerNotifier{publisher: publisher, logger: logger}
}

func (n *BrokerNotifier) SendVerificationCode(_ context.Context, email, fullName, code string) error {
	err := n.publisher.Publish("notify.verification_code", codeMessage{
		Email:    email,
		FullName: fullName,
		Code:     code,
	})
	if err != nil {
		return err
	}
	n.logger.WithField("email", email).Debug("verification code queued for delivery")
	return nil
}
