package gateway

import (
	"fmt"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/internal/pkg/nsq"
)

// MailGW publishes account mail as events for the mail consumer
type MailGW struct {
	producer *nsq.Producer
	cfg      *models.Config
}

// NewMailGW creates a new mail gateway instance
func NewMailGW(producer *nsq.Producer, cfg *models.Config) *MailGW {
	return &MailGW{
		producer: producer,
		cfg:      cfg,
	}
}

// SendPasswordResetOTP publishes the OTP mail event. The consumer owns the
// actual SMTP delivery.
func (g *MailGW) SendPasswordResetOTP(email, otp string) error {
	event := models.MailEvent{
		From:    g.cfg.NSQ.MailSender,
		To:      email,
		Subject: "Password Reset OTP",
		Body:    fmt.Sprintf("Your OTP for password reset is: %s", otp),
	}

	if err := g.producer.Publish(g.cfg.NSQ.MailTopic, event); err != nil {
		return fmt.Errorf("failed to publish password reset mail: %w", err)
	}

	return nil
}
