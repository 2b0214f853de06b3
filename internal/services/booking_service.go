package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"samayas/internal/domain"
	"samayas/internal/domain/models"
	"samayas/internal/logger"
	"samayas/internal/utils"
)

// SessionState is the booking workflow position of one form session.
type SessionState string

const (
	// StateEditing: fields being collected; initial and terminal state.
	StateEditing SessionState = "editing"
	// StateSummary: validation passed, fare computed, awaiting confirm/cancel.
	StateSummary SessionState = "summary_presented"
	// StateDispatching: notification call in flight; session is locked out.
	StateDispatching SessionState = "dispatching"
)

// AllowedTransitions represents the booking workflow as code. Editing moves
// straight to dispatching for other-service bookings, which skip the summary.
var AllowedTransitions = map[SessionState][]SessionState{
	StateEditing:     {StateSummary, StateDispatching},
	StateSummary:     {StateDispatching, StateEditing},
	StateDispatching: {StateEditing},
}

func CanTransition(from, to SessionState) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Notifier dispatches one confirmed booking to the outside world. fare is
// nil for other-service bookings, which carry no computed fare.
type Notifier interface {
	SendBooking(ctx context.Context, req models.BookingRequest, fare *models.FareBreakdown) error
}

// Summary is the confirmation step payload: the validated request plus its
// fare breakdown.
type Summary struct {
	Request models.BookingRequest `json:"booking"`
	Fare    models.FareBreakdown  `json:"fare"`
}

// SessionView is the handler-facing snapshot of one session.
type SessionView struct {
	ID       string                `json:"id"`
	State    SessionState          `json:"state"`
	Category models.TripCategory   `json:"category"`
	Form     models.BookingRequest `json:"form"`
	Errors   domain.FieldErrors    `json:"errors,omitempty"`
	Summary  *Summary              `json:"summary,omitempty"`
}

// SubmitResult reports one submit attempt. For other-service bookings the
// dispatch happens immediately, so Dispatched/Delivered/Message are set; for
// trip bookings the session moves to the summary step instead.
type SubmitResult struct {
	View       SessionView
	Dispatched bool
	Delivered  bool
	Message    string
}

// ConfirmResult reports one confirmed dispatch. Delivered=false is the
// degraded-success path: the booking is still accepted and the form reset.
type ConfirmResult struct {
	View      SessionView
	Delivered bool
	Message   string
}

type session struct {
	id       string
	state    SessionState
	category models.TripCategory
	// Each category owns independent field storage so switching tabs never
	// leaks values across categories.
	forms   map[models.TripCategory]*models.BookingRequest
	errs    domain.FieldErrors
	summary *Summary
	touched time.Time
}

func (s *session) form() *models.BookingRequest {
	f, ok := s.forms[s.category]
	if !ok {
		f = &models.BookingRequest{Category: s.category}
		s.forms[s.category] = f
	}
	return f
}

// BookingService owns every live booking session and drives the workflow
// state machine. Sessions are in-memory only; nothing survives a restart.
type BookingService struct {
	mu       sync.Mutex
	sessions map[string]*session

	fares    *FareService
	notifier Notifier
	log      logger.ILogger

	dispatchTimeout time.Duration
	sessionTTL      time.Duration
	now             func() time.Time
}

func NewBookingService(fares *FareService, notifier Notifier, log logger.ILogger) *BookingService {
	return &BookingService{
		sessions:        map[string]*session{},
		fares:           fares,
		notifier:        notifier,
		log:             log,
		dispatchTimeout: 10 * time.Second,
		sessionTTL:      30 * time.Minute,
		now:             time.Now,
	}
}

func (s *BookingService) SetDispatchTimeout(d time.Duration) { s.dispatchTimeout = d }
func (s *BookingService) SetSessionTTL(d time.Duration)      { s.sessionTTL = d }

// Open creates a fresh session in the editing state.
func (s *BookingService) Open(category models.TripCategory) (SessionView, error) {
	if category == "" {
		category = models.TripOneWay
	}
	if !category.Valid() {
		return SessionView{}, domain.ValidationError{Field: "category", Msg: "unknown trip category"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &session{
		id:       newSessionID(),
		state:    StateEditing,
		category: category,
		forms:    map[models.TripCategory]*models.BookingRequest{},
		touched:  s.now(),
	}
	sess.form()
	s.sessions[sess.id] = sess
	return viewOf(sess), nil
}

func (s *BookingService) Get(id string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	return viewOf(sess), nil
}

// SetFields applies partial form updates. Any existing error on an edited
// field is cleared immediately, regardless of the new value; full
// re-validation happens only on the next submit attempt.
func (s *BookingService) SetFields(id string, fields map[string]string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	if sess.state != StateEditing {
		return SessionView{}, domain.ConflictError{Resource: "booking session", Msg: "fields can only be edited in the editing state"}
	}

	form := sess.form()
	for name, value := range fields {
		if err := setField(form, name, value); err != nil {
			return SessionView{}, err
		}
		delete(sess.errs, name)
	}
	sess.touched = s.now()
	return viewOf(sess), nil
}

// SwitchCategory changes the active tab. The vehicle selection of the target
// category and the current error set are cleared; all other fields keep
// their per-category values.
func (s *BookingService) SwitchCategory(id string, category models.TripCategory) (SessionView, error) {
	if !category.Valid() {
		return SessionView{}, domain.ValidationError{Field: "category", Msg: "unknown trip category"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	if sess.state != StateEditing {
		return SessionView{}, domain.ConflictError{Resource: "booking session", Msg: "category can only change in the editing state"}
	}

	sess.category = category
	sess.errs = nil
	sess.form().VehicleClass = ""
	sess.touched = s.now()
	return viewOf(sess), nil
}

// Submit validates the active form. Trip bookings move to the summary step
// with a computed fare; other-service bookings dispatch immediately.
func (s *BookingService) Submit(ctx context.Context, id string) (SubmitResult, error) {
	s.mu.Lock()
	sess, err := s.get(id)
	if err != nil {
		s.mu.Unlock()
		return SubmitResult{}, err
	}
	if sess.state != StateEditing {
		s.mu.Unlock()
		return SubmitResult{}, domain.ConflictError{Resource: "booking session", Msg: "already submitted"}
	}

	form := *sess.form()
	if errs := ValidateBooking(form, s.now()); !errs.Empty() {
		sess.errs = errs
		sess.touched = s.now()
		res := SubmitResult{View: viewOf(sess)}
		s.mu.Unlock()
		return res, errs
	}
	sess.errs = nil

	if !form.Category.BillsByDistance() {
		// No summary step for other services: dispatch straight away.
		if err := s.transition(sess, StateDispatching); err != nil {
			s.mu.Unlock()
			return SubmitResult{}, err
		}
		s.mu.Unlock()

		dispatchErr := s.dispatch(ctx, form, nil)

		s.mu.Lock()
		s.reset(sess)
		res := SubmitResult{
			View:       viewOf(sess),
			Dispatched: true,
			Delivered:  dispatchErr == nil,
			Message:    s.outcomeMessage(dispatchErr, form),
		}
		s.mu.Unlock()
		return res, nil
	}
	s.mu.Unlock()

	fare, err := s.fares.Quote(ctx, form.Category, form.VehicleClass, form.PickupLocation, form.DropLocation)
	if err != nil {
		return SubmitResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// The quote ran unlocked; the session may have moved or switched tabs
	// in the meantime, and a summary must match the active category.
	if sess.state != StateEditing || sess.category != form.Category {
		return SubmitResult{}, domain.ConflictError{Resource: "booking session", Msg: "session changed during submit"}
	}
	if err := s.transition(sess, StateSummary); err != nil {
		return SubmitResult{}, err
	}
	sess.summary = &Summary{Request: form, Fare: fare}
	sess.touched = s.now()
	return SubmitResult{View: viewOf(sess)}, nil
}

// Confirm dispatches the presented summary. At most one dispatch can be in
// flight per session; a concurrent confirm fails with a conflict instead of
// producing a second notification.
func (s *BookingService) Confirm(ctx context.Context, id string) (ConfirmResult, error) {
	s.mu.Lock()
	sess, err := s.get(id)
	if err != nil {
		s.mu.Unlock()
		return ConfirmResult{}, err
	}
	if sess.state == StateDispatching {
		s.mu.Unlock()
		return ConfirmResult{}, domain.ConflictError{Resource: "booking session", Msg: "a confirmation is already in progress"}
	}
	if sess.state != StateSummary || sess.summary == nil {
		s.mu.Unlock()
		return ConfirmResult{}, domain.ConflictError{Resource: "booking session", Msg: "nothing to confirm"}
	}

	summary := *sess.summary
	if err := s.transition(sess, StateDispatching); err != nil {
		s.mu.Unlock()
		return ConfirmResult{}, err
	}
	s.mu.Unlock()

	dispatchErr := s.dispatch(ctx, summary.Request, &summary.Fare)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(sess)
	return ConfirmResult{
		View:      viewOf(sess),
		Delivered: dispatchErr == nil,
		Message:   s.outcomeMessage(dispatchErr, summary.Request),
	}, nil
}

// Cancel dismisses a presented summary; every entered field survives so the
// customer can adjust and resubmit.
func (s *BookingService) Cancel(id string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return SessionView{}, err
	}
	if sess.state != StateSummary {
		return SessionView{}, domain.ConflictError{Resource: "booking session", Msg: "no summary to cancel"}
	}
	if err := s.transition(sess, StateEditing); err != nil {
		return SessionView{}, err
	}
	sess.summary = nil
	sess.touched = s.now()
	return viewOf(sess), nil
}

// RunJanitor evicts idle sessions until the context is cancelled.
func (s *BookingService) RunJanitor(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sweep(s.now()); n > 0 {
				s.log.Info("expired idle booking sessions", logger.Int("count", n))
			}
		}
	}
}

func (s *BookingService) sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.state == StateDispatching {
			continue
		}
		if now.Sub(sess.touched) > s.sessionTTL {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *BookingService) dispatch(ctx context.Context, req models.BookingRequest, fare *models.FareBreakdown) error {
	ctx, cancel := context.WithTimeout(ctx, s.dispatchTimeout)
	defer cancel()

	err := s.notifier.SendBooking(ctx, req, fare)
	if err != nil {
		// Fail open: the booking is accepted even when the notification
		// channel is down; the customer left a phone number either way.
		s.log.Error("booking notification dispatch failed",
			logger.String("category", string(req.Category)),
			logger.Error(err),
		)
		return domain.DispatchError{Err: err}
	}
	return nil
}

// transition moves the session along the workflow table. Callers check
// their operation-specific preconditions first; this is the table guard.
func (s *BookingService) transition(sess *session, to SessionState) error {
	if !CanTransition(sess.state, to) {
		return domain.ConflictError{
			Resource: "booking session",
			Msg:      fmt.Sprintf("cannot move from %s to %s", sess.state, to),
		}
	}
	sess.state = to
	return nil
}

// reset returns the active category's form to empty defaults. Called after
// every dispatch outcome, success or failure.
func (s *BookingService) reset(sess *session) {
	sess.forms[sess.category] = &models.BookingRequest{Category: sess.category}
	sess.errs = nil
	sess.summary = nil
	// dispatching -> editing is unconditional in the table
	_ = s.transition(sess, StateEditing)
	sess.touched = s.now()
}

func (s *BookingService) outcomeMessage(dispatchErr error, req models.BookingRequest) string {
	if dispatchErr == nil {
		return "Thank you! We'll contact you shortly with a quote."
	}
	return fmt.Sprintf("Thank you for your booking request! We have received your details and will contact you shortly at %s.", utils.StripSpaces(req.CustomerPhone))
}

func (s *BookingService) get(id string) (*session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "booking session"}
	}
	return sess, nil
}

func setField(form *models.BookingRequest, name, value string) error {
	switch name {
	case FieldPickupLocation:
		form.PickupLocation = value
	case FieldDropLocation:
		form.DropLocation = value
	case FieldDate:
		form.Date = utils.TrimOrEmpty(value)
	case FieldTime:
		form.Time = utils.TrimOrEmpty(value)
	case "period":
		form.Period = strings.ToUpper(utils.TrimOrEmpty(value))
	case FieldReturnDate:
		form.ReturnDate = utils.TrimOrEmpty(value)
	case FieldName:
		form.CustomerName = value
	case FieldPhone:
		form.CustomerPhone = value
	case FieldVehicleType:
		form.VehicleClass = models.VehicleClass(strings.ToLower(utils.TrimOrEmpty(value)))
	case FieldServiceType:
		form.ServiceName = utils.TrimOrEmpty(value)
	default:
		return domain.ValidationError{Field: name, Msg: "unknown field"}
	}
	return nil
}

func viewOf(sess *session) SessionView {
	v := SessionView{
		ID:       sess.id,
		State:    sess.state,
		Category: sess.category,
		Form:     *sess.form(),
	}
	if len(sess.errs) > 0 {
		v.Errors = domain.FieldErrors{}
		for k, msg := range sess.errs {
			v.Errors[k] = msg
		}
	}
	if sess.summary != nil {
		sum := *sess.summary
		v.Summary = &sum
	}
	return v
}

func newSessionID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
