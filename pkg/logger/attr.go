package logger

import (
	"log/slog"
	"time"
)

// Error returns an empty Attr for a nil error so callers can skip the check.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func VisitorID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("visitor_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func Outcome(name string) slog.Attr {
	return slog.String("outcome", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Fields lists field names, e.g. the ones that failed validation.
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}
