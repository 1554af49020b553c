package bookingform

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"guesthub/internal/domain"
	"guesthub/internal/modules/catalog"
	"guesthub/internal/pkg/apiclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingSender struct {
	mock.Mock
}

func (m *MockBookingSender) CreateBooking(ctx context.Context, rec domain.BookingRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Success(message string) { m.Called(message) }
func (m *MockNotifier) Error(message string)   { m.Called(message) }

var fixedNow = time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestController(sender *MockBookingSender, notifier *MockNotifier) *Controller {
	return NewController(catalog.DefaultCatalog(), sender, notifier, WithClock(func() time.Time { return fixedNow }))
}

func fillValid(t *testing.T, c *Controller) {
	t.Helper()
	require.NoError(t, c.SetField(FieldFullName, "  Jane Guest "))
	require.NoError(t, c.SetField(FieldEmail, " jane@example.com"))
	require.NoError(t, c.SetField(FieldPhone, "+1 555 123 4567 "))
	require.NoError(t, c.SetField(FieldRoomType, "deluxe"))
	require.NoError(t, c.SetField(FieldNumberOfGuests, "2"))
	require.True(t, c.SelectCheckIn(day(2025, 3, 1)))
	require.True(t, c.SelectCheckOut(day(2025, 3, 4)))
}

func TestController_InitialState(t *testing.T) {
	c := newTestController(new(MockBookingSender), new(MockNotifier))

	assert.Equal(t, NewDraft(), c.Draft())
	assert.Equal(t, 1, c.Draft().NumberOfGuests)
	assert.Empty(t, c.Errors())
	assert.Equal(t, StateEditing, c.State())
	assert.False(t, c.IsSubmitting())
	assert.Zero(t, c.Total())
}

func TestController_SelectCheckIn_RejectsPast(t *testing.T) {
	c := newTestController(new(MockBookingSender), new(MockNotifier))

	assert.False(t, c.SelectCheckIn(day(2025, 2, 19)))
	assert.True(t, c.Draft().CheckIn.IsZero())

	assert.True(t, c.SelectCheckIn(day(2025, 2, 20)), "today is selectable")
	assert.Equal(t, day(2025, 2, 20), c.Draft().CheckIn)
}

func TestController_SelectCheckOut_RejectsBeforeCheckIn(t *testing.T) {
	c := newTestController(new(MockBookingSender), new(MockNotifier))

	require.True(t, c.SelectCheckIn(day(2025, 3, 5)))
	require.True(t, c.SelectCheckOut(day(2025, 3, 8)))

	assert.False(t, c.SelectCheckOut(day(2025, 3, 4)))
	assert.Equal(t, day(2025, 3, 8), c.Draft().CheckOut, "rejected selection must not clamp")
}

func TestController_SelectCheckOut_WithoutCheckInUsesToday(t *testing.T) {
	c := newTestController(new(MockBookingSender), new(MockNotifier))

	assert.False(t, c.SelectCheckOut(day(2025, 2, 1)))
	assert.True(t, c.Draft().CheckOut.IsZero())
	assert.True(t, c.SelectCheckOut(day(2025, 2, 21)))
}

func TestController_SelectZeroClears(t *testing.T) {
	c := newTestController(new(MockBookingSender), new(MockNotifier))
	require.True(t, c.SelectCheckIn(day(2025, 3, 1)))

	assert.True(t, c.SelectCheckIn(time.Time{}))
	assert.True(t, c.Draft().CheckIn.IsZero())
}

func TestController_TotalRecomputesOnEveryChange(t *testing.T) {
	c := newTestController(new(MockBookingSender), new(MockNotifier))

	require.True(t, c.SelectCheckIn(day(2025, 3, 1)))
	require.True(t, c.SelectCheckOut(day(2025, 3, 4)))
	assert.Zero(t, c.Total(), "no room type yet")

	require.NoError(t, c.SetField(FieldRoomType, "deluxe"))
	assert.Equal(t, int64(5997), c.Total())

	require.NoError(t, c.SetField(FieldRoomType, "presidential"))
	assert.Equal(t, int64(3*5999), c.Total())

	q := c.Quote()
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, "Presidential Suite", q.RoomName)
}

func TestController_SetField(t *testing.T) {
	c := newTestController(new(MockBookingSender), new(MockNotifier))

	assert.ErrorIs(t, c.SetField("favouriteColour", "blue"), ErrUnknownField)

	require.NoError(t, c.SetField(FieldNumberOfGuests, "many"))
	assert.Equal(t, 0, c.Draft().NumberOfGuests)

	c.SetGuests(4)
	assert.Equal(t, 4, c.Draft().NumberOfGuests)
}

func TestController_Submit_ShortNameFailsWithoutNetwork(t *testing.T) {
	sender := new(MockBookingSender)
	notifier := new(MockNotifier)
	notifier.On("Error", msgFixErrors).Once()

	c := newTestController(sender, notifier)
	fillValid(t, c)
	require.NoError(t, c.SetField(FieldFullName, "A"))

	err := c.Submit(context.Background())

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Name must be at least 2 characters", verr.Fields[FieldFullName])
	assert.Equal(t, "Name must be at least 2 characters", c.Errors()[FieldFullName])
	assert.Len(t, c.Errors(), 1)
	assert.Equal(t, StateEditing, c.State())

	sender.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	notifier.AssertExpectations(t)
}

func TestController_SetFieldClearsOnlyThatError(t *testing.T) {
	sender := new(MockBookingSender)
	notifier := new(MockNotifier)
	notifier.On("Error", msgFixErrors)

	c := newTestController(sender, notifier)
	require.True(t, c.SelectCheckIn(day(2025, 3, 1)))
	require.True(t, c.SelectCheckOut(day(2025, 3, 2)))

	err := c.Submit(context.Background())
	require.Error(t, err)
	require.True(t, c.Errors().Has(FieldFullName))
	require.True(t, c.Errors().Has(FieldEmail))

	require.NoError(t, c.SetField(FieldFullName, "J"))
	assert.False(t, c.Errors().Has(FieldFullName))
	assert.True(t, c.Errors().Has(FieldEmail))
}

func TestController_Submit_SendsComputedTotal(t *testing.T) {
	sender := new(MockBookingSender)
	notifier := new(MockNotifier)

	var sent domain.BookingRecord
	sender.On("CreateBooking", mock.Anything, mock.AnythingOfType("domain.BookingRecord")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(domain.BookingRecord) }).
		Return(nil).Once()
	notifier.On("Success", msgSubmitted).Once()

	c := newTestController(sender, notifier)
	fillValid(t, c)

	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, domain.BookingRecord{
		FullName:        "Jane Guest",
		Email:           "jane@example.com",
		Phone:           "+1 555 123 4567",
		RoomType:        "deluxe",
		CheckInDate:     "2025-03-01",
		CheckOutDate:    "2025-03-04",
		NumberOfGuests:  2,
		SpecialRequests: "",
		TotalPrice:      5997,
		BookingDate:     "2025-02-20T10:00:00.000Z",
	}, sent)

	sender.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestController_Submit_SameDayRejectedBeforeValidation(t *testing.T) {
	sender := new(MockBookingSender)
	notifier := new(MockNotifier)
	notifier.On("Error", msgInvalidOrder).Once()

	c := newTestController(sender, notifier)
	require.NoError(t, c.SetField(FieldFullName, "A"))
	require.True(t, c.SelectCheckIn(day(2025, 3, 1)))
	require.True(t, c.SelectCheckOut(day(2025, 3, 1)))

	err := c.Submit(context.Background())

	assert.ErrorIs(t, err, ErrInvalidDateOrder)
	assert.True(t, IsValidation(err))
	assert.Empty(t, c.Errors(), "schema validation must not have run")
	sender.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	notifier.AssertExpectations(t)
}

func TestController_Submit_MissingDates(t *testing.T) {
	sender := new(MockBookingSender)
	notifier := new(MockNotifier)
	notifier.On("Error", msgMissingDates).Twice()

	c := newTestController(sender, notifier)
	assert.ErrorIs(t, c.Submit(context.Background()), ErrMissingDates)

	require.True(t, c.SelectCheckIn(day(2025, 3, 1)))
	assert.ErrorIs(t, c.Submit(context.Background()), ErrMissingDates)

	sender.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	notifier.AssertExpectations(t)
}

func TestController_Submit_SecondCallWhileInFlight(t *testing.T) {
	sender := new(MockBookingSender)
	notifier := new(MockNotifier)

	release := make(chan struct{})
	sender.On("CreateBooking", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(nil).Once()
	notifier.On("Success", msgSubmitted).Once()

	c := newTestController(sender, notifier)
	fillValid(t, c)

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background()) }()

	require.Eventually(t, c.IsSubmitting, time.Second, time.Millisecond)

	assert.ErrorIs(t, c.Submit(context.Background()), ErrSubmitInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, c.IsSubmitting())

	sender.AssertNumberOfCalls(t, "CreateBooking", 1)
	notifier.AssertExpectations(t)
}

func TestController_Submit_SuccessResetsDraft(t *testing.T) {
	sender := new(MockBookingSender)
	notifier := new(MockNotifier)
	sender.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)
	notifier.On("Success", msgSubmitted)

	c := newTestController(sender, notifier)
	fillValid(t, c)

	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, NewDraft(), c.Draft())
	assert.Empty(t, c.Errors())
	assert.Equal(t, StateEditing, c.State())
	assert.Equal(t, StateSucceeded, c.LastOutcome())
}

func TestController_Submit_FailurePreservesDraft(t *testing.T) {
	sender := new(MockBookingSender)
	notifier := new(MockNotifier)
	sender.On("CreateBooking", mock.Anything, mock.Anything).
		Return(&apiclient.StatusError{StatusCode: http.StatusInternalServerError}).Once()
	notifier.On("Error", msgSubmitFailed).Once()

	c := newTestController(sender, notifier)
	fillValid(t, c)
	before := c.Draft()

	err := c.Submit(context.Background())

	var serr *SubmitError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusInternalServerError, serr.StatusCode())
	assert.False(t, serr.Rejected())
	assert.False(t, IsValidation(err))

	assert.Equal(t, before, c.Draft())
	assert.Equal(t, StateEditing, c.State())
	assert.Equal(t, StateFailed, c.LastOutcome())
	notifier.AssertExpectations(t)

	// Retry is a fresh, manual submit.
	sender.On("CreateBooking", mock.Anything, mock.Anything).Return(nil).Once()
	notifier.On("Success", msgSubmitted).Once()
	require.NoError(t, c.Submit(context.Background()))
	sender.AssertNumberOfCalls(t, "CreateBooking", 2)
}

func TestController_Submit_RejectedAndTransportMessages(t *testing.T) {
	sender := new(MockBookingSender)
	notifier := new(MockNotifier)
	sender.On("CreateBooking", mock.Anything, mock.Anything).
		Return(&apiclient.StatusError{StatusCode: http.StatusUnprocessableEntity}).Once()
	sender.On("CreateBooking", mock.Anything, mock.Anything).
		Return(apiclient.ErrTransport).Once()
	notifier.On("Error", msgSubmitRejected).Once()
	notifier.On("Error", msgSubmitFailed).Once()

	c := newTestController(sender, notifier)
	fillValid(t, c)

	err := c.Submit(context.Background())
	var serr *SubmitError
	require.True(t, errors.As(err, &serr))
	assert.True(t, serr.Rejected())

	err = c.Submit(context.Background())
	require.True(t, errors.As(err, &serr))
	assert.Zero(t, serr.StatusCode())
	assert.ErrorIs(t, err, apiclient.ErrTransport)

	notifier.AssertExpectations(t)
}

func TestController_NilNotifierFallsBackToLog(t *testing.T) {
	c := NewController(catalog.DefaultCatalog(), new(MockBookingSender), nil, WithClock(func() time.Time { return fixedNow }))
	assert.ErrorIs(t, c.Submit(context.Background()), ErrMissingDates)
}
