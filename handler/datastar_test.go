package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bookingform/handler"
)

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		query    string
		expected bool
	}{
		{
			name:     "Datastar request header",
			headers:  map[string]string{"Datastar-Request": "true"},
			expected: true,
		},
		{
			name:     "SSE Accept header",
			headers:  map[string]string{"Accept": "text/event-stream"},
			expected: true,
		},
		{
			name:     "SSE Accept header with other values",
			headers:  map[string]string{"Accept": "text/html, text/event-stream, */*"},
			expected: true,
		},
		{
			name:     "DataStar query parameter",
			query:    "?datastar={\"count\":1}",
			expected: true,
		},
		{
			name:     "DataStar content type",
			headers:  map[string]string{"Content-Type": "application/x-datastar"},
			expected: true,
		},
		{
			name:     "Plain form post",
			headers:  map[string]string{"Content-Type": "application/x-www-form-urlencoded", "Accept": "text/html"},
			expected: false,
		},
		{
			name:     "Datastar header not true",
			headers:  map[string]string{"Datastar-Request": "false"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/test"+tt.query, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, handler.IsDataStar(req))
		})
	}
}
