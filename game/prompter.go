package game

import (
	"errors"
	"fmt"

	"github.com/DanMoss/Card-Game/domain/card"
	"github.com/DanMoss/Card-Game/domain/meld"
)

// ErrNoChoices is returned when a player is asked to pick from nothing.
var ErrNoChoices = errors.New("nothing to choose from")

// Prompter collects the decisions of one player.
type Prompter interface {
	// Choose shows message and options and returns the index picked.
	Choose(message string, options []string) (int, error)
	// Tell informs the player without expecting an answer.
	Tell(message string)
}

// Viewer is implemented by prompters that want to see the table before the
// player decides what to do next.
type Viewer interface {
	View(t Table)
}

// Table is what a player can see during their turn.
type Table struct {
	Round      int
	Excluded   card.Rank
	Player     string
	Hand       []card.Card
	TopDiscard card.Card
	HasDiscard bool
	DeckSize   int
	Melds      []meld.Meld
}

// Choose asks p to pick one of options, each rendered with describe.
func Choose[T any](p Prompter, message string, options []T, describe func(T) string) (T, error) {
	var zero T
	if len(options) == 0 {
		return zero, fmt.Errorf("%s: %w", message, ErrNoChoices)
	}
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = describe(o)
	}
	i, err := p.Choose(message, labels)
	if err != nil {
		return zero, err
	}
	if i < 0 || i >= len(options) {
		return zero, fmt.Errorf("%s: choice %d out of range", message, i)
	}
	return options[i], nil
}
