package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookingform/pkg/booking"
)

const today = "2025-06-15"

func fixedClock() booking.Clock {
	return booking.Clock{
		Now:      func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) },
		Location: time.UTC,
	}
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(ctx context.Context, payload map[string]string) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newForm(d booking.Dispatcher) *booking.Form {
	return booking.NewForm(d, booking.WithClock(fixedClock()))
}

func validValues() map[booking.Field]string {
	return map[booking.Field]string{
		booking.FieldFullName:      "Asha Rao",
		booking.FieldEmail:         "asha@example.com",
		booking.FieldPhone:         "9876543210",
		booking.FieldSource:        "Pune",
		booking.FieldDestination:   "Goa",
		booking.FieldTravelDate:    "2025-06-20",
		booking.FieldDrivingOption: booking.DrivingDriver,
	}
}

func fill(t *testing.T, f *booking.Form, values map[booking.Field]string) {
	t.Helper()
	for field, value := range values {
		_, err := f.Change(field, value)
		require.NoError(t, err)
	}
}

func expectedPayload(values map[booking.Field]string) map[string]string {
	out := make(map[string]string)
	for _, f := range booking.Fields() {
		out[string(f)] = values[f]
	}
	return out
}
