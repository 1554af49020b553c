package bookingform

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"guesthub/internal/domain"
	"guesthub/internal/modules/catalog"
)

type State int

const (
	StateEditing State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Controller owns one booking form session: the draft, its field errors and
// at most one outstanding submission.
type Controller struct {
	mu       sync.Mutex
	catalog  catalog.Catalog
	sender   BookingSender
	notifier Notifier
	now      func() time.Time

	draft   Draft
	errors  FieldErrors
	state   State
	outcome State
}

type Option func(*Controller)

// WithClock overrides time.Now, which decides "today" for the date pickers
// and stamps bookingDate.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func NewController(cat catalog.Catalog, sender BookingSender, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		catalog:  cat,
		sender:   sender,
		notifier: notifier,
		now:      time.Now,
		draft:    NewDraft(),
		errors:   FieldErrors{},
		state:    StateEditing,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = LogNotifier{}
	}
	return c
}

func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

func (c *Controller) Errors() FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors.Clone()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastOutcome is StateSucceeded or StateFailed after a submission reached
// the API, StateEditing before that.
func (c *Controller) LastOutcome() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}

// IsSubmitting must gate the submit button.
func (c *Controller) IsSubmitting() bool {
	return c.State() == StateSubmitting
}

// SetField updates one field by its wire name and clears that field's error.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.draft.set(name, value); err != nil {
		return err
	}
	delete(c.errors, name)
	return nil
}

func (c *Controller) SetGuests(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.NumberOfGuests = n
	delete(c.errors, FieldNumberOfGuests)
}

// SelectCheckIn sets the check-in date unless it is before today. A zero
// date clears the selection. It reports whether the selection was taken.
func (c *Controller) SelectCheckIn(date time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if date.IsZero() {
		c.draft.CheckIn = time.Time{}
		return true
	}
	date = c.calendarDay(date)
	if date.Before(c.today()) {
		return false
	}
	c.draft.CheckIn = date
	return true
}

// SelectCheckOut sets the check-out date unless it is before the selected
// check-in, or before today when no check-in is selected.
func (c *Controller) SelectCheckOut(date time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if date.IsZero() {
		c.draft.CheckOut = time.Time{}
		return true
	}
	date = c.calendarDay(date)
	earliest := c.today()
	if !c.draft.CheckIn.IsZero() {
		earliest = c.draft.CheckIn
	}
	if date.Before(earliest) {
		return false
	}
	c.draft.CheckOut = date
	return true
}

func (c *Controller) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return catalog.ComputeTotal(c.draft.CheckIn, c.draft.CheckOut, c.draft.RoomTypeID, c.catalog)
}

func (c *Controller) Quote() catalog.Quote {
	c.mu.Lock()
	defer c.mu.Unlock()
	return catalog.QuoteStay(c.draft.CheckIn, c.draft.CheckOut, c.draft.RoomTypeID, c.catalog)
}

// Submit validates the draft and sends it once. Every failure is reported
// to the notifier and returned; the controller is back in StateEditing when
// Submit returns. The draft is reset only on success.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}

	draft := c.draft
	if draft.CheckIn.IsZero() || draft.CheckOut.IsZero() {
		c.mu.Unlock()
		c.notifier.Error(msgMissingDates)
		return ErrMissingDates
	}
	if !draft.CheckIn.Before(draft.CheckOut) {
		c.mu.Unlock()
		c.notifier.Error(msgInvalidOrder)
		return ErrInvalidDateOrder
	}

	c.transition(StateValidating)
	fieldErrs := Validate(draft, c.catalog)
	c.errors = fieldErrs
	if len(fieldErrs) > 0 {
		c.transition(StateEditing)
		c.mu.Unlock()
		c.notifier.Error(msgFixErrors)
		return &ValidationError{Fields: fieldErrs.Clone()}
	}

	rec := c.buildRecord(draft)
	c.transition(StateSubmitting)
	c.mu.Unlock()

	err := c.sender.CreateBooking(ctx, rec)

	c.mu.Lock()
	if err != nil {
		c.finish(StateFailed)
		c.mu.Unlock()

		submitErr := &SubmitError{Err: err}
		log.Printf("booking_submit result=failed room_type=%s status=%d error=%q", rec.RoomType, submitErr.StatusCode(), err.Error())
		c.notifier.Error(submitErr.userMessage())
		return submitErr
	}

	c.draft = NewDraft()
	c.errors = FieldErrors{}
	c.finish(StateSucceeded)
	c.mu.Unlock()

	log.Printf("booking_submit result=ok room_type=%s total_price=%d", rec.RoomType, rec.TotalPrice)
	c.notifier.Success(msgSubmitted)
	return nil
}

func (c *Controller) buildRecord(d Draft) domain.BookingRecord {
	in := normalize(d)
	return domain.BookingRecord{
		FullName:        in.FullName,
		Email:           in.Email,
		Phone:           in.Phone,
		RoomType:        in.RoomType,
		CheckInDate:     d.CheckIn.Format(domain.DateLayout),
		CheckOutDate:    d.CheckOut.Format(domain.DateLayout),
		NumberOfGuests:  in.NumberOfGuests,
		SpecialRequests: in.SpecialRequests,
		TotalPrice:      catalog.ComputeTotal(d.CheckIn, d.CheckOut, in.RoomType, c.catalog),
		BookingDate:     c.now().UTC().Format(domain.TimestampLayout),
	}
}

// transition must be called with mu held.
func (c *Controller) transition(to State) {
	if c.state != to {
		log.Printf("booking_form state=%s->%s", c.state, to)
	}
	c.state = to
}

// finish records a terminal outcome and returns the form to editing.
func (c *Controller) finish(outcome State) {
	c.transition(outcome)
	c.outcome = outcome
	c.transition(StateEditing)
}

func (c *Controller) today() time.Time {
	return c.calendarDay(c.now())
}

// calendarDay keeps the year, month and day of t at midnight in the clock's
// location, so picker dates and "today" compare as calendar days.
func (c *Controller) calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.now().Location())
}

// IsValidation reports whether err came from form validation, including the
// date checks that run before it.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrMissingDates) || errors.Is(err, ErrInvalidDateOrder)
}
