// Package intake drives a destination submission from user input to a refreshed listing.
//
// A Form is idle until Submit is called. Required fields are checked before any
// network call; a valid submission moves the form to submitting for the whole
// request, then back to idle whatever the outcome. Success triggers the refresh
// callback, failure is reported through the notifier.
package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/njprem/Travel_Diary_BackEnd/internal/domain"
)

var (
	ErrMissingField       = errors.New("required field missing")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	default:
		return "idle"
	}
}

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

type Notification struct {
	Kind    NotificationKind
	Message string
}

// Submitter sends a destination to the backend.
type Submitter interface {
	Create(ctx context.Context, input domain.DestinationInput) (*domain.Destination, error)
}

type Form struct {
	submitter Submitter
	refresh   func(ctx context.Context) error
	notify    func(Notification)

	mu    sync.Mutex
	state State
}

// NewForm builds a form. refresh and notify may be nil.
func NewForm(submitter Submitter, refresh func(ctx context.Context) error, notify func(Notification)) *Form {
	if notify == nil {
		notify = func(Notification) {}
	}
	return &Form{submitter: submitter, refresh: refresh, notify: notify}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Busy reports whether the submit control is disabled.
func (f *Form) Busy() bool {
	return f.State() == StateSubmitting
}

// Validate checks that name, country, lat and lng are present.
func Validate(input domain.DestinationInput) error {
	required := []struct {
		field string
		value string
	}{
		{"name", input.Name},
		{"country", input.Country},
		{"lat", input.Lat},
		{"lng", input.Lng},
	}
	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

func (f *Form) Submit(ctx context.Context, input domain.DestinationInput) (*domain.Destination, error) {
	input = trimInput(input)
	if err := Validate(input); err != nil {
		f.notify(Notification{Kind: NotifyError, Message: "Por favor completa todos los campos obligatorios"})
		return nil, err
	}
	input.ImageQuery = domain.ImageQueryFor(input.Name, input.Country)

	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.state = StateIdle
		f.mu.Unlock()
	}()

	dest, err := f.submitter.Create(ctx, input)
	if err != nil {
		f.notify(Notification{Kind: NotifyError, Message: "Error al agregar el destino: " + err.Error()})
		return nil, err
	}

	if f.refresh != nil {
		if err := f.refresh(ctx); err != nil {
			f.notify(Notification{Kind: NotifyError, Message: "Destino guardado, pero no se pudo actualizar la lista"})
			return dest, fmt.Errorf("refresh destinations: %w", err)
		}
	}
	f.notify(Notification{Kind: NotifySuccess, Message: "¡Destino agregado correctamente! Aparecerá arriba de todo."})
	return dest, nil
}

func trimInput(in domain.DestinationInput) domain.DestinationInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Country = strings.TrimSpace(in.Country)
	in.BestMonths = strings.TrimSpace(in.BestMonths)
	in.Festivals = strings.TrimSpace(in.Festivals)
	in.Lat = strings.TrimSpace(in.Lat)
	in.Lng = strings.TrimSpace(in.Lng)
	return in
}
