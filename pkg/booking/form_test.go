package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookingform/pkg/booking"
	"github.com/dmitrymomot/bookingform/pkg/validator"
)

func TestForm_Change(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field booking.Field
		value string
		want  string
	}{
		{"empty email has no live error", booking.FieldEmail, "", ""},
		{"valid email", booking.FieldEmail, "a@b.co", ""},
		{"email without domain dot", booking.FieldEmail, "a@b", "Enter a valid email address"},
		{"email with space", booking.FieldEmail, "a b@c.de", "Enter a valid email address"},
		{"email with no-break space", booking.FieldEmail, "a\u00a0b@c.de", "Enter a valid email address"},
		{"email with line separator", booking.FieldEmail, "ab@c\u2028d.de", "Enter a valid email address"},
		{"email with vertical tab", booking.FieldEmail, "ab@c.d\ve", "Enter a valid email address"},
		{"email with unicode letters", booking.FieldEmail, "jos\u00e9@b\u00fccher.de", ""},
		{"valid phone", booking.FieldPhone, "6123456789", ""},
		{"phone with country code", booking.FieldPhone, "+919876543210", "Enter a valid 10-digit Indian phone number"},
		{"phone starting with 5", booking.FieldPhone, "5123456789", "Enter a valid 10-digit Indian phone number"},
		{"short alternative phone", booking.FieldAlternativePhone, "98765", "Enter a valid 10-digit Indian phone number"},
		{"empty alternative phone", booking.FieldAlternativePhone, "", ""},
		{"travel date today", booking.FieldTravelDate, today, ""},
		{"travel date in future", booking.FieldTravelDate, "2030-01-01", ""},
		{"travel date in past", booking.FieldTravelDate, "2025-06-14", "Travel date cannot be in the past"},
		{"empty travel date", booking.FieldTravelDate, "", ""},
		{"full name has no live rule", booking.FieldFullName, "x", ""},
		{"driving option has no live rule", booking.FieldDrivingOption, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newForm(new(mockDispatcher))
			msg, err := f.Change(tt.field, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)

			snap := f.Snapshot()
			assert.Equal(t, tt.value, snap.Values.Get(tt.field))
			assert.Equal(t, tt.want, snap.Errors.Get(tt.field))
			assert.Equal(t, tt.want != "", snap.Errors.Has(tt.field))
		})
	}
}

func TestForm_ChangeTouchesOnlyEditedField(t *testing.T) {
	t.Parallel()

	f := newForm(new(mockDispatcher))

	_, _ = f.Change(booking.FieldPhone, "123")
	_, _ = f.Change(booking.FieldEmail, "bad")
	_, _ = f.Change(booking.FieldPhone, "9876543210")

	snap := f.Snapshot()
	assert.False(t, snap.Errors.Has(booking.FieldPhone))
	assert.Equal(t, "Enter a valid email address", snap.Errors.Get(booking.FieldEmail))
	assert.Equal(t, 1, snap.Errors.Len())
}

func TestForm_ChangeUnknownField(t *testing.T) {
	t.Parallel()

	f := newForm(new(mockDispatcher))
	before := f.Snapshot()

	_, err := f.Change("password", "secret")
	assert.ErrorIs(t, err, booking.ErrUnknownField)
	assert.Equal(t, before, f.Snapshot())
}

func TestForm_SubmitEmptyForm(t *testing.T) {
	t.Parallel()

	d := new(mockDispatcher)
	f := newForm(d)

	outcome, err := f.Submit(context.Background())
	assert.Equal(t, booking.OutcomeRejected, outcome)
	require.ErrorIs(t, err, booking.ErrValidationFailed)
	assert.NotNil(t, validator.ExtractValidationErrors(err))

	snap := f.Snapshot()
	assert.Equal(t, []booking.Field{
		booking.FieldFullName,
		booking.FieldEmail,
		booking.FieldPhone,
		booking.FieldSource,
		booking.FieldDestination,
		booking.FieldTravelDate,
		booking.FieldDrivingOption,
	}, snap.Errors.Fields())
	assert.False(t, snap.Errors.Has(booking.FieldAlternativePhone))
	assert.Equal(t, "Please enter your full name", snap.Errors.Get(booking.FieldFullName))
	assert.Equal(t, "Please enter a valid email address", snap.Errors.Get(booking.FieldEmail))
	assert.Equal(t, "Please enter a valid 10-digit phone number", snap.Errors.Get(booking.FieldPhone))
	assert.Equal(t, "Please enter a starting point", snap.Errors.Get(booking.FieldSource))
	assert.Equal(t, "Please enter a destination", snap.Errors.Get(booking.FieldDestination))
	assert.Equal(t, "Travel date must be today or in the future", snap.Errors.Get(booking.FieldTravelDate))
	assert.Equal(t, "Please select a driving option", snap.Errors.Get(booking.FieldDrivingOption))
	assert.Equal(t, booking.StatusIdle, snap.Status)

	d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestForm_SubmitReplacesErrorsWholesale(t *testing.T) {
	t.Parallel()

	d := new(mockDispatcher)
	f := newForm(d)
	values := validValues()
	values[booking.FieldAlternativePhone] = "12"
	fill(t, f, values)
	assert.Equal(t, "Enter a valid 10-digit Indian phone number", f.Snapshot().Errors.Get(booking.FieldAlternativePhone))

	outcome, err := f.Submit(context.Background())
	assert.Equal(t, booking.OutcomeRejected, outcome)
	require.ErrorIs(t, err, booking.ErrValidationFailed)

	snap := f.Snapshot()
	assert.Equal(t, []booking.Field{booking.FieldAlternativePhone}, snap.Errors.Fields())
	assert.Equal(t, "Please enter a valid 10-digit phone number", snap.Errors.Get(booking.FieldAlternativePhone))
	d.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestForm_SubmitPastTravelDate(t *testing.T) {
	t.Parallel()

	f := newForm(new(mockDispatcher))
	values := validValues()
	values[booking.FieldTravelDate] = "2025-06-14"
	fill(t, f, values)

	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, booking.ErrValidationFailed)
	assert.Equal(t, "Travel date must be today or in the future", f.Snapshot().Errors.Get(booking.FieldTravelDate))
}

func TestForm_SubmitRejectsPlaceholderDrivingOption(t *testing.T) {
	t.Parallel()

	for _, option := range []string{"", "bus"} {
		f := newForm(new(mockDispatcher))
		values := validValues()
		values[booking.FieldDrivingOption] = option
		fill(t, f, values)

		_, err := f.Submit(context.Background())
		require.ErrorIs(t, err, booking.ErrValidationFailed)
		assert.Equal(t, []booking.Field{booking.FieldDrivingOption}, f.Snapshot().Errors.Fields())
	}
}

func TestForm_SubmitSuccess(t *testing.T) {
	t.Parallel()

	values := validValues()
	d := new(mockDispatcher)
	d.On("Dispatch", mock.Anything, expectedPayload(values)).Return(nil).Once()

	f := newForm(d)
	fill(t, f, values)

	outcome, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, booking.OutcomeSent, outcome)

	snap := f.Snapshot()
	assert.True(t, snap.Values.IsEmpty())
	assert.Zero(t, snap.Errors.Len())
	assert.Equal(t, booking.StatusIdle, snap.Status)

	d.AssertExpectations(t)
	d.AssertNumberOfCalls(t, "Dispatch", 1)
}

func TestForm_SubmitSendsAlternativePhone(t *testing.T) {
	t.Parallel()

	values := validValues()
	values[booking.FieldAlternativePhone] = "7000000000"
	d := new(mockDispatcher)
	d.On("Dispatch", mock.Anything, expectedPayload(values)).Return(nil).Once()

	f := newForm(d)
	fill(t, f, values)

	_, err := f.Submit(context.Background())
	require.NoError(t, err)
	d.AssertExpectations(t)
}

func TestForm_SubmitFailurePreservesInput(t *testing.T) {
	t.Parallel()

	values := validValues()
	sendErr := errors.New("emailjs error: 400 - The Public Key is invalid")
	d := new(mockDispatcher)
	d.On("Dispatch", mock.Anything, expectedPayload(values)).Return(sendErr)

	f := newForm(d)
	fill(t, f, values)

	outcome, err := f.Submit(context.Background())
	assert.Equal(t, booking.OutcomeFailed, outcome)
	require.ErrorIs(t, err, booking.ErrDispatchFailed)
	assert.ErrorIs(t, err, sendErr)

	snap := f.Snapshot()
	for field, value := range values {
		assert.Equal(t, value, snap.Values.Get(field), field)
	}
	assert.Zero(t, snap.Errors.Len())
	assert.Equal(t, booking.StatusIdle, snap.Status)

	// retry is immediately possible
	outcome, err = f.Submit(context.Background())
	assert.Equal(t, booking.OutcomeFailed, outcome)
	assert.ErrorIs(t, err, booking.ErrDispatchFailed)
	d.AssertNumberOfCalls(t, "Dispatch", 2)
}

func TestForm_SubmitWhileSubmitting(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex
	d := booking.DispatcherFunc(func(context.Context, map[string]string) error {
		mu.Lock()
		calls++
		mu.Unlock()
		close(started)
		<-release
		return nil
	})

	f := newForm(d)
	fill(t, f, validValues())

	done := make(chan booking.Outcome)
	go func() {
		outcome, _ := f.Submit(context.Background())
		done <- outcome
	}()
	<-started

	assert.Equal(t, booking.StatusSubmitting, f.Status())
	assert.True(t, f.Snapshot().Submitting())

	outcome, err := f.Submit(context.Background())
	assert.Equal(t, booking.OutcomeRejected, outcome)
	assert.ErrorIs(t, err, booking.ErrSubmissionInProgress)

	// edits stay possible while the dispatch is in flight
	msg, err := f.Change(booking.FieldPhone, "1")
	require.NoError(t, err)
	assert.NotEmpty(t, msg)

	close(release)
	assert.Equal(t, booking.OutcomeSent, <-done)
	assert.Equal(t, booking.StatusIdle, f.Status())

	mu.Lock()
	assert.Equal(t, 1, calls)
	mu.Unlock()
}

func TestForm_ConcurrentSubmitDispatchesOnce(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	d := new(mockDispatcher)
	d.On("Dispatch", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(nil)

	f := newForm(d)
	fill(t, f, validValues())

	var wg sync.WaitGroup
	var inProgress sync.Map
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.Submit(context.Background())
			inProgress.Store(i, errors.Is(err, booking.ErrSubmissionInProgress))
		}()
	}

	require.Eventually(t, func() bool {
		n := 0
		inProgress.Range(func(_, _ any) bool { n++; return true })
		return n == 19
	}, time.Second, 5*time.Millisecond)
	close(release)
	wg.Wait()

	d.AssertNumberOfCalls(t, "Dispatch", 1)
}

func TestForm_DispatchIgnoresCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var dispatchCtxErr error
	d := booking.DispatcherFunc(func(dctx context.Context, _ map[string]string) error {
		cancel()
		dispatchCtxErr = dctx.Err()
		return nil
	})

	f := newForm(d)
	fill(t, f, validValues())

	outcome, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, booking.OutcomeSent, outcome)
	assert.NoError(t, dispatchCtxErr)
	assert.Equal(t, booking.StatusIdle, f.Status())
}

func TestForm_SubmitDispatchesValuesAtSubmitTime(t *testing.T) {
	t.Parallel()

	values := validValues()
	started := make(chan struct{})
	release := make(chan struct{})
	var got map[string]string
	d := booking.DispatcherFunc(func(_ context.Context, payload map[string]string) error {
		got = payload
		close(started)
		<-release
		return errors.New("down")
	})

	f := newForm(d)
	fill(t, f, values)

	done := make(chan struct{})
	go func() {
		_, _ = f.Submit(context.Background())
		close(done)
	}()
	<-started
	_, _ = f.Change(booking.FieldSource, "Mumbai")
	close(release)
	<-done

	assert.Equal(t, "Pune", got["source"])
	assert.Equal(t, "Mumbai", f.Snapshot().Values.Get(booking.FieldSource))
}

func TestForm_SubmitValues(t *testing.T) {
	t.Parallel()

	t.Run("stores values before validating", func(t *testing.T) {
		t.Parallel()

		values := validValues()
		d := new(mockDispatcher)
		d.On("Dispatch", mock.Anything, expectedPayload(values)).Return(nil)

		f := newForm(d)
		outcome, err := f.SubmitValues(context.Background(), values)
		require.NoError(t, err)
		assert.Equal(t, booking.OutcomeSent, outcome)
		d.AssertExpectations(t)
	})

	t.Run("unknown field changes nothing", func(t *testing.T) {
		t.Parallel()

		f := newForm(new(mockDispatcher))
		outcome, err := f.SubmitValues(context.Background(), map[booking.Field]string{
			booking.FieldFullName: "Asha Rao",
			booking.Field("age"):  "30",
		})
		assert.Equal(t, booking.OutcomeRejected, outcome)
		assert.ErrorIs(t, err, booking.ErrUnknownField)
		assert.Empty(t, f.Snapshot().Values.Get(booking.FieldFullName))
	})

	t.Run("in progress discards values", func(t *testing.T) {
		t.Parallel()

		values := validValues()
		started := make(chan struct{})
		release := make(chan struct{})
		d := booking.DispatcherFunc(func(context.Context, map[string]string) error {
			close(started)
			<-release
			return errors.New("down")
		})

		f := newForm(d)
		done := make(chan booking.Outcome)
		go func() {
			outcome, _ := f.SubmitValues(context.Background(), values)
			done <- outcome
		}()
		<-started

		outcome, err := f.SubmitValues(context.Background(), map[booking.Field]string{
			booking.FieldFullName: "Mallory",
			booking.FieldPhone:    "123",
		})
		assert.Equal(t, booking.OutcomeRejected, outcome)
		assert.ErrorIs(t, err, booking.ErrSubmissionInProgress)

		close(release)
		assert.Equal(t, booking.OutcomeFailed, <-done)

		snap := f.Snapshot()
		for field, value := range values {
			assert.Equal(t, value, snap.Values.Get(field), field)
		}
		assert.Zero(t, snap.Errors.Len())
	})
}

func TestForm_DispatchPanicIsFailure(t *testing.T) {
	t.Parallel()

	values := validValues()
	f := newForm(booking.DispatcherFunc(func(context.Context, map[string]string) error {
		panic("nil sender")
	}))

	outcome, err := f.SubmitValues(context.Background(), values)
	assert.Equal(t, booking.OutcomeFailed, outcome)
	assert.ErrorIs(t, err, booking.ErrDispatchFailed)
	assert.Contains(t, err.Error(), "nil sender")

	snap := f.Snapshot()
	assert.Equal(t, booking.StatusIdle, snap.Status)
	assert.Equal(t, values[booking.FieldFullName], snap.Values.Get(booking.FieldFullName))
}
