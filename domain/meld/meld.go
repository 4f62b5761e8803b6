package meld

import (
	"errors"

	"github.com/DanMoss/Card-Game/domain/card"
)

// MinimumMeldSize is the number of cards needed to lay a new meld. A meld
// with fewer cards does not accept single cards either.
const MinimumMeldSize = 3

var (
	// ErrForeignOption is returned when an option is executed on a meld (or
	// table) that did not produce it.
	ErrForeignOption = errors.New("play option belongs to another meld")
	// ErrStaleOption is returned when the meld changed since the option was
	// produced and the play is no longer legal.
	ErrStaleOption = errors.New("play option is no longer legal")
	// ErrStaleReceipt is returned by Undo for anything but the most recent
	// play on a meld.
	ErrStaleReceipt = errors.New("receipt is not the latest play on this meld")
)

// Kind tells the two meld variants apart.
type Kind int

const (
	RankKind Kind = iota + 1
	RunKind
)

func (k Kind) String() string {
	switch k {
	case RankKind:
		return "set"
	case RunKind:
		return "run"
	default:
		return "unknown"
	}
}

// Meld is a group of cards on the table. Only *RankMeld and *RunMeld
// implement it.
type Meld interface {
	// FindPlayOptions appends to dst every legal way to play cards to the
	// meld and returns the extended slice. One card is tried as an addition,
	// MinimumMeldSize or more as a new formation, anything else yields
	// nothing.
	FindPlayOptions(dst []PlayOption, cards ...card.Card) []PlayOption
	// Play moves the option's cards from src into the meld. Jokers displaced
	// by the play are added to src.
	Play(src card.Collection, opt PlayOption) (Receipt, error)
	// Undo reverts the latest play on the meld.
	Undo(src card.Collection, r Receipt) error
	Len() int
	Cards() []card.Card
	Kind() Kind
	Reset()
	String() string

	sealed()
}

// Receipt records an executed play.
type Receipt struct {
	Option  PlayOption
	Evicted []card.Card

	id      uint64
	restore func()
}

// planner is the per-variant half of FindPlayOptions.
type planner interface {
	cardPlays(dst []PlayOption, c card.Card) []PlayOption
	meldPlays(dst []PlayOption, cards []card.Card) []PlayOption
}

func findPlayOptions(p planner, dst []PlayOption, cards []card.Card) []PlayOption {
	switch {
	case len(cards) == 1:
		return p.cardPlays(dst, cards[0])
	case len(cards) >= MinimumMeldSize:
		return p.meldPlays(dst, cards)
	}
	return dst
}

// stillLegal reports whether p would produce opt again right now.
func stillLegal(p planner, opt PlayOption) bool {
	for _, o := range findPlayOptions(p, nil, opt.cards) {
		if o.equivalent(opt) {
			return true
		}
	}
	return false
}

// journal hands out receipt ids and remembers the order of plays on a meld
// so that only the latest one can be undone.
type journal struct {
	next    uint64
	history []uint64
}

func (j *journal) record() uint64 {
	j.next++
	j.history = append(j.history, j.next)
	return j.next
}

func (j *journal) latest(id uint64) bool {
	return len(j.history) > 0 && j.history[len(j.history)-1] == id
}

func (j *journal) pop() {
	j.history = j.history[:len(j.history)-1]
}

func (j *journal) clear() {
	j.history = nil
}

// undo is shared by both variants: the evicted jokers leave src, the meld
// goes back to its earlier state, the played cards return to src.
func undo(m Meld, j *journal, src card.Collection, r Receipt) error {
	if r.Option.meld != m {
		return ErrForeignOption
	}
	if !j.latest(r.id) {
		return ErrStaleReceipt
	}
	if err := src.TransferTo(card.ReceiverFunc(func(card.Card) {}), r.Evicted...); err != nil {
		return err
	}
	r.restore()
	for _, c := range r.Option.cards {
		src.Add(c)
	}
	j.pop()
	return nil
}

func countWild(cards []card.Card) int {
	n := 0
	for _, c := range cards {
		if c.IsWild() {
			n++
		}
	}
	return n
}
