package recommend

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/Veraticus/oud-emporium/internal/service"
	"github.com/google/uuid"
)

var (
	// ErrEmptyScentSelection rejects a submission with no scent families.
	ErrEmptyScentSelection = errors.New("at least one scent family is required")
	// ErrSessionBusy rejects a submission while a request is in flight.
	ErrSessionBusy = errors.New("a recommendation is already loading")
)

// emptySelectionMessage is shown when no translation for errorScentSelection exists.
const emptySelectionMessage = "Please select at least one scent family."

// State is the lifecycle phase of a Session.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateLoading
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateLoading:
		return "loading"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Recommender resolves preferences to a result without failing.
type Recommender interface {
	Recommend(ctx context.Context, prefs model.Preferences) Result
}

// Ticket identifies one accepted submission.
type Ticket struct {
	ID          string
	Preferences model.Preferences
}

// Snapshot is a copy of the session for rendering.
type Snapshot struct {
	State  State
	Draft  Draft
	Result *Result
	Err    error
}

// Draft is the form being edited. Occasion and Mood hold option keys or
// free text; Scents holds the selected families in the order chosen.
type Draft struct {
	Occasion string
	Mood     string
	Scents   []string
}

// Session owns the preference draft and the lifecycle of one request.
// It is safe to call from the UI loop and the goroutine running the request.
type Session struct {
	recommender Recommender
	translator  service.Translator

	mu      sync.Mutex
	state   State
	draft   Draft
	result  *Result
	err     error
	current string
}

// NewSession creates an idle session with the first occasion and mood selected.
func NewSession(r Recommender, t service.Translator) *Session {
	return &Session{
		recommender: r,
		translator:  t,
		draft: Draft{
			Occasion: Occasions[0],
			Mood:     Moods[0],
		},
	}
}

// SetOccasion selects the occasion.
func (s *Session) SetOccasion(occasion string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Occasion = occasion
}

// SetMood selects the mood.
func (s *Session) SetMood(mood string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Mood = mood
}

// ToggleScent adds or removes a scent family and reports whether it is now selected.
func (s *Session) ToggleScent(scent string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.draft.Scents {
		if strings.EqualFold(existing, scent) {
			s.draft.Scents = append(s.draft.Scents[:i:i], s.draft.Scents[i+1:]...)
			return false
		}
	}
	s.draft.Scents = append(s.draft.Scents, scent)
	return true
}

// IsSelected reports whether scent is in the draft.
func (s *Session) IsSelected(scent string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.draft.Scents {
		if strings.EqualFold(existing, scent) {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State: s.state,
		Draft: Draft{
			Occasion: s.draft.Occasion,
			Mood:     s.draft.Mood,
			Scents:   append([]string(nil), s.draft.Scents...),
		},
		Err: s.err,
	}
	if s.result != nil {
		r := *s.result
		snap.Result = &r
	}
	return snap
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin validates the draft and moves to Loading. An empty scent selection
// moves to Failed with a user-facing error. A submission while Loading
// returns ErrSessionBusy and changes nothing.
func (s *Session) Begin() (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateLoading {
		return Ticket{}, ErrSessionBusy
	}

	s.state = StateValidating
	s.result = nil
	s.err = nil

	prefs := model.Preferences{
		Occasion: s.label(OccasionKey(s.draft.Occasion), s.draft.Occasion),
		Mood:     s.label(MoodKey(s.draft.Mood), s.draft.Mood),
		Scents:   append([]string(nil), s.draft.Scents...),
	}.Normalize()

	if len(prefs.Scents) == 0 {
		s.state = StateFailed
		s.err = common.NewUserError(s.label("errorScentSelection", emptySelectionMessage), ErrEmptyScentSelection)
		return Ticket{}, s.err
	}

	ticket := Ticket{ID: uuid.NewString(), Preferences: prefs}
	s.current = ticket.ID
	s.state = StateLoading
	return ticket, nil
}

// Resolve runs the request for ticket and records its result. A ticket
// superseded by Reset is resolved but not recorded.
func (s *Session) Resolve(ctx context.Context, ticket Ticket) Result {
	result := s.recommender.Recommend(ctx, ticket.Preferences)
	s.Complete(ticket, result)
	return result
}

// Complete records result for ticket and moves to Succeeded.
func (s *Session) Complete(ticket Ticket, result Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoading || ticket.ID != s.current {
		return
	}
	s.state = StateSucceeded
	s.result = &result
	s.err = nil
}

// Submit validates the draft and runs the request to completion.
func (s *Session) Submit(ctx context.Context) (Result, error) {
	ticket, err := s.Begin()
	if err != nil {
		return Result{}, err
	}
	return s.Resolve(ctx, ticket), nil
}

// Reset returns to Idle, dropping any result, error or in-flight ticket.
// The draft is kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.result = nil
	s.err = nil
	s.current = ""
}

// label translates key, returning fallback when no translation exists.
func (s *Session) label(key, fallback string) string {
	if s.translator == nil {
		return fallback
	}
	if text := s.translator.Translate(key); text != key {
		return text
	}
	return fallback
}
