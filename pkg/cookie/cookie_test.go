package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookingform/pkg/cookie"
)

const (
	secret    = "this-is-a-very-long-secret-key-32-chars-long"
	oldSecret = "this-is-old-very-long-secret-key-32-chars-ok"
)

// roundTrip copies the cookies written to w into a new request.
func roundTrip(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{"no secrets", nil, cookie.ErrNoSecret},
		{"empty secrets", []string{"", ""}, cookie.ErrNoSecret},
		{"secret too short", []string{"short"}, cookie.ErrSecretTooShort},
		{"valid secret", []string{secret}, nil},
		{"rotation", []string{secret, oldSecret}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cookie.New(tt.secrets)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestManager_Signed(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{secret})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		mgr.SetSigned(w, "visitor", "3f1c6c9e-7d2b-4c55-9d0e-1a2b3c4d5e6f")

		got, err := mgr.GetSigned(roundTrip(w), "visitor")
		require.NoError(t, err)
		assert.Equal(t, "3f1c6c9e-7d2b-4c55-9d0e-1a2b3c4d5e6f", got)

		c := w.Result().Cookies()[0]
		assert.True(t, c.HttpOnly)
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		_, err := mgr.GetSigned(httptest.NewRequest(http.MethodGet, "/", nil), "visitor")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("tampered", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		mgr.SetSigned(w, "visitor", "alice")
		value := w.Result().Cookies()[0].Value
		_, sig, _ := strings.Cut(value, "|")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "visitor", Value: "Ym9i|" + sig}) // "bob"
		_, err := mgr.GetSigned(r, "visitor")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		for _, v := range []string{"no-separator", "!!!|abc", "YWxpY2U|***"} {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(&http.Cookie{Name: "visitor", Value: v})
			_, err := mgr.GetSigned(r, "visitor")
			assert.ErrorIs(t, err, cookie.ErrInvalidFormat, v)
		}
	})
}

func TestManager_Rotation(t *testing.T) {
	t.Parallel()

	old, err := cookie.New([]string{oldSecret})
	require.NoError(t, err)
	rotated, err := cookie.New([]string{secret, oldSecret})
	require.NoError(t, err)
	fresh, err := cookie.New([]string{secret})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	old.SetSigned(w, "visitor", "v-1")

	got, err := rotated.GetSigned(roundTrip(w), "visitor")
	require.NoError(t, err)
	assert.Equal(t, "v-1", got)

	_, err = fresh.GetSigned(roundTrip(w), "visitor")
	assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
}

func TestManager_DeleteAndOptions(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.NewFromConfig(cookie.Config{
		Secrets: " " + secret + " , ",
		Path:    "/booking",
		MaxAge:  60,
		Secure:  true,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	mgr.Set(w, "plain", "v", cookie.WithMaxAge(10))
	mgr.Delete(w, "plain")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, "/booking", cookies[0].Path)
	assert.Equal(t, 10, cookies[0].MaxAge)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, -1, cookies[1].MaxAge)

	got, err := mgr.Get(roundTrip(httptest.NewRecorder()), "plain")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	assert.Empty(t, got)
}
