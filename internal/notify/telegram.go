package notify

import (
	"context"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"samayas/internal/domain"
	"samayas/internal/domain/models"
	"samayas/internal/utils"
)

// Telegram pushes a short booking alert to the operator's chat. Send-only:
// the bot never polls for updates.
type Telegram struct {
	bot  *tele.Bot
	chat tele.ChatID
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tele.NewBot(tele.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &Telegram{bot: bot, chat: tele.ChatID(chatID)}, nil
}

func (t *Telegram) Name() string { return "telegram" }

// SendBooking ignores ctx cancellation mid-call: the underlying bot API has
// its own request timeout and a booking alert is fire-and-forget anyway.
func (t *Telegram) SendBooking(ctx context.Context, req models.BookingRequest, fare *models.FareBreakdown) error {
	if err := ctx.Err(); err != nil {
		return domain.DispatchError{Channel: t.Name(), Err: err}
	}
	if _, err := t.bot.Send(t.chat, bookingAlert(req, fare)); err != nil {
		return domain.DispatchError{Channel: t.Name(), Err: err}
	}
	return nil
}

func bookingAlert(req models.BookingRequest, fare *models.FareBreakdown) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New booking: %s\n", serviceLabel(req))
	fmt.Fprintf(&b, "Customer: %s (%s)\n", req.CustomerName, utils.StripSpaces(req.CustomerPhone))
	fmt.Fprintf(&b, "Pickup: %s\n", req.PickupLocation)
	if req.DropLocation != "" {
		fmt.Fprintf(&b, "Drop: %s\n", req.DropLocation)
	}
	fmt.Fprintf(&b, "When: %s %s", utils.DisplayDate(req.Date), req.FullTime())
	if req.Category == models.TripRoundTrip && req.ReturnDate != "" {
		fmt.Fprintf(&b, " (return %s)", utils.DisplayDate(req.ReturnDate))
	}
	if fare != nil {
		fmt.Fprintf(&b, "\nEstimate: %s for %d km", utils.FormatRupees(fare.FinalAmount), fare.DistanceKm)
	}
	return b.String()
}
