package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"samayas/internal/config"
	"samayas/internal/domain"
	"samayas/internal/domain/models"
	"samayas/internal/utils"
)

// replyDomain turns a bare phone number into a synthetic reply-to address,
// so replying to a booking email threads back to the customer record.
const replyDomain = "@customer.samayas.com"

// EmailJS sends booking notifications through the EmailJS REST API
// (server-side send endpoint, authenticated with the account's public and
// private keys).
type EmailJS struct {
	baseURL    string
	serviceID  string
	templateID string
	publicKey  string
	privateKey string
	toEmail    string
	fromName   string

	httpClient *http.Client
}

func NewEmailJS(env config.Env) *EmailJS {
	return &EmailJS{
		baseURL:    env.EmailJSBaseURL,
		serviceID:  env.EmailJSServiceID,
		templateID: env.EmailJSTemplateID,
		publicKey:  env.EmailJSPublicKey,
		privateKey: env.EmailJSPrivateKey,
		toEmail:    env.NotifyEmail,
		fromName:   env.ServiceName,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether the account credentials are present. An
// unconfigured client is not wired in as a channel at all.
func (c *EmailJS) Configured() bool {
	return c.serviceID != "" && c.templateID != "" && c.publicKey != ""
}

func (c *EmailJS) Name() string { return "emailjs" }

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func (c *EmailJS) SendBooking(ctx context.Context, req models.BookingRequest, fare *models.FareBreakdown) error {
	payload := emailJSPayload{
		ServiceID:      c.serviceID,
		TemplateID:     c.templateID,
		UserID:         c.publicKey,
		AccessToken:    c.privateKey,
		TemplateParams: c.templateParams(req, fare),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.DispatchError{Channel: c.Name(), Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return domain.DispatchError{Channel: c.Name(), Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.DispatchError{Channel: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.DispatchError{
			Channel: c.Name(),
			Err:     fmt.Errorf("emailjs: status %d: %s", resp.StatusCode, snippet),
		}
	}
	return nil
}

// templateParams flattens a booking into the email template's variables.
// Keys must match the template configured in the EmailJS dashboard.
func (c *EmailJS) templateParams(req models.BookingRequest, fare *models.FareBreakdown) map[string]string {
	phone := utils.StripSpaces(req.CustomerPhone)

	params := map[string]string{
		"service_type":    serviceLabel(req),
		"customer_name":   req.CustomerName,
		"customer_phone":  phone,
		"service_date":    utils.DisplayDate(req.Date),
		"service_time":    req.FullTime(),
		"pickup_location": req.PickupLocation,
		"drop_location":   req.DropLocation,
		"to_email":        c.toEmail,
		"from_name":       req.CustomerName,
		"from_phone":      phone,
		"reply_to":        phone + replyDomain,
	}
	if req.Category == models.TripRoundTrip {
		params["return_date"] = utils.DisplayDate(req.ReturnDate)
	}
	if fare != nil {
		params["vehicle_type"] = req.VehicleClass.Display()
		params["distance_km"] = strconv.Itoa(fare.DistanceKm)
		params["rate_per_km"] = utils.FormatRupees(fare.RatePerKm)
		params["driver_bata"] = utils.FormatRupees(fare.DriverAllowance)
		params["estimated_fare"] = utils.FormatRupees(fare.FinalAmount)
	}
	return params
}

func serviceLabel(req models.BookingRequest) string {
	if req.Category == models.TripOtherService {
		return req.ServiceName
	}
	if req.VehicleClass != "" {
		return req.Category.Display() + " - " + req.VehicleClass.Display()
	}
	return req.Category.Display()
}
