// Package notify delivers confirmed booking requests to the operator.
// EmailJS is the primary channel and decides the dispatch outcome; any
// extra channels (Telegram) are best-effort.
package notify

import (
	"context"

	"samayas/internal/domain"
	"samayas/internal/domain/models"
	"samayas/internal/logger"
)

// Channel is one delivery transport for a booking notification.
type Channel interface {
	Name() string
	SendBooking(ctx context.Context, req models.BookingRequest, fare *models.FareBreakdown) error
}

// Manager fans a booking out to every configured channel. Only the primary
// channel's result is reported to the caller.
type Manager struct {
	primary Channel
	extras  []Channel
	log     logger.ILogger
}

func NewManager(primary Channel, log logger.ILogger, extras ...Channel) *Manager {
	return &Manager{primary: primary, extras: extras, log: log}
}

func (m *Manager) SendBooking(ctx context.Context, req models.BookingRequest, fare *models.FareBreakdown) error {
	for _, ch := range m.extras {
		if err := ch.SendBooking(ctx, req, fare); err != nil {
			m.log.Warning("secondary notification channel failed",
				logger.String("channel", ch.Name()),
				logger.Error(err),
			)
		}
	}

	if m.primary == nil {
		return domain.DispatchError{Channel: "email"}
	}
	if err := m.primary.SendBooking(ctx, req, fare); err != nil {
		return err
	}
	m.log.Info("booking notification delivered",
		logger.String("channel", m.primary.Name()),
		logger.String("category", string(req.Category)),
	)
	return nil
}
