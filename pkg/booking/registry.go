package booking

import (
	"log/slog"

	"github.com/dmitrymomot/bookingform/pkg/cache"
)

// Registry keeps one Form per visitor. It is bounded: when full, the least
// recently used form is dropped and its visitor starts over with a blank one.
type Registry struct {
	forms   *cache.LRUCache[string, *Form]
	newForm func() *Form
}

// NewRegistry creates a registry holding at most capacity forms, each built
// with d and opts.
func NewRegistry(capacity int, d Dispatcher, log *slog.Logger, opts ...Option) *Registry {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	forms := cache.NewLRUCache[string, *Form](capacity)
	forms.SetEvictCallback(func(id string, _ *Form) {
		log.Debug("booking form dropped", slog.String("visitor_id", id))
	})
	return &Registry{
		forms:   forms,
		newForm: func() *Form { return NewForm(d, opts...) },
	}
}

// Form returns the visitor's form, creating it on first use.
func (r *Registry) Form(visitorID string) *Form {
	f, _ := r.forms.GetOrCreate(visitorID, r.newForm)
	return f
}

// Forget drops the visitor's form.
func (r *Registry) Forget(visitorID string) {
	r.forms.Remove(visitorID)
}

// Len returns the number of forms held.
func (r *Registry) Len() int { return r.forms.Len() }
