package entity

import "github.com/pkg/errors"

// ErrTogglePending is returned when a toggle is started while another is unsettled.
var ErrTogglePending = errors.New("favorite toggle already pending")

// TogglePhase is the state of an in-flight favorite toggle.
type TogglePhase int

const (
	ToggleSettled TogglePhase = iota
	TogglePendingAdd
	TogglePendingRemove
)

func (p TogglePhase) String() string {
	switch p {
	case ToggleSettled:
		return "settled"
	case TogglePendingAdd:
		return "pending-add"
	case TogglePendingRemove:
		return "pending-remove"
	default:
		return "unknown"
	}
}

// FavoriteToggle tracks the favorite flag of one (user, recipe) pair while a
// write is in flight. Begin flips the flag immediately, Commit keeps it and
// Rollback restores the value observed before Begin.
type FavoriteToggle struct {
	favorited bool
	phase     TogglePhase
}

// NewFavoriteToggle returns a settled toggle with the given flag.
func NewFavoriteToggle(favorited bool) *FavoriteToggle {
	return &FavoriteToggle{favorited: favorited, phase: ToggleSettled}
}

// Favorited reports the flag as currently displayed.
func (t *FavoriteToggle) Favorited() bool {
	return t.favorited
}

// Phase reports the current phase.
func (t *FavoriteToggle) Phase() TogglePhase {
	return t.phase
}

// Begin applies the flip locally and returns the pending phase, which tells
// the caller whether to add or remove.
func (t *FavoriteToggle) Begin() (TogglePhase, error) {
	if t.phase != ToggleSettled {
		return t.phase, ErrTogglePending
	}

	if t.favorited {
		t.phase = TogglePendingRemove
	} else {
		t.phase = TogglePendingAdd
	}
	t.favorited = !t.favorited

	return t.phase, nil
}

// Commit settles the pending flip.
func (t *FavoriteToggle) Commit() {
	t.phase = ToggleSettled
}

// Rollback reverts the pending flip. It is a no-op on a settled toggle.
func (t *FavoriteToggle) Rollback() {
	if t.phase == ToggleSettled {
		return
	}

	t.favorited = !t.favorited
	t.phase = ToggleSettled
}
