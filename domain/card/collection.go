package card

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrCardNotFound is returned when a transfer names a card the source does
// not hold.
var ErrCardNotFound = errors.New("card not found")

// Receiver is anything cards can be added to.
type Receiver interface {
	Add(c Card)
}

// ReceiverFunc adapts a function to a Receiver.
type ReceiverFunc func(c Card)

// Add calls f(c).
func (f ReceiverFunc) Add(c Card) {
	f(c)
}

// Collection is a container of cards owned by exactly one place at a time:
// a hand, the bank, the discard pile.
type Collection interface {
	Receiver
	Len() int
	// Remove removes one instance of c and reports whether it was present.
	Remove(c Card) bool
	Reset()
	// TransferTo moves cards to dst. Either every card moves or none do.
	TransferTo(dst Receiver, cards ...Card) error
}

// Pile is an ordered Collection. The last card is the top of the pile.
type Pile struct {
	name  string
	cards []Card
}

// NewPile creates a pile holding the given cards, bottom first.
func NewPile(name string, cards ...Card) *Pile {
	return &Pile{name: name, cards: slices.Clone(cards)}
}

func (p *Pile) Name() string {
	return p.name
}

func (p *Pile) Len() int {
	return len(p.cards)
}

func (p *Pile) Add(c Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) Remove(c Card) bool {
	i := slices.Index(p.cards, c)
	if i < 0 {
		return false
	}
	p.cards = slices.Delete(p.cards, i, i+1)
	return true
}

func (p *Pile) Reset() {
	p.cards = p.cards[:0]
}

// Contains reports whether c is in the pile.
func (p *Pile) Contains(c Card) bool {
	return slices.Contains(p.cards, c)
}

// Cards returns a copy of the pile, bottom first.
func (p *Pile) Cards() []Card {
	return slices.Clone(p.cards)
}

// Top returns the top card without removing it.
func (p *Pile) Top() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// Draw removes and returns the top card.
func (p *Pile) Draw() (Card, bool) {
	c, ok := p.Top()
	if ok {
		p.cards = p.cards[:len(p.cards)-1]
	}
	return c, ok
}

// Sort orders the pile by suit then rank, with jokers last.
func (p *Pile) Sort() {
	slices.SortStableFunc(p.cards, Compare)
}

// TransferTo moves cards from p to dst. The cards are treated as a multiset:
// if any of them is missing nothing is moved and ErrCardNotFound is returned.
func (p *Pile) TransferTo(dst Receiver, cards ...Card) error {
	if err := p.checkHolds(cards); err != nil {
		return err
	}
	for _, c := range cards {
		p.Remove(c)
		dst.Add(c)
	}
	return nil
}

func (p *Pile) checkHolds(cards []Card) error {
	need := make(map[Card]int, len(cards))
	for _, c := range cards {
		need[c]++
	}
	for _, c := range p.cards {
		if need[c] > 0 {
			need[c]--
		}
	}
	for _, c := range cards {
		if need[c] > 0 {
			return fmt.Errorf("%w: %s not in %s", ErrCardNotFound, c, p.name)
		}
	}
	return nil
}

func (p *Pile) String() string {
	parts := make([]string, len(p.cards))
	for i, c := range p.cards {
		parts[i] = c.Short()
	}
	return strings.Join(parts, " ")
}

// Compare orders cards by suit then rank; jokers sort after every natural
// card. It returns a negative number when a < b, zero when equal.
func Compare(a, b Card) int {
	if a.IsWild() != b.IsWild() {
		if a.IsWild() {
			return 1
		}
		return -1
	}
	if a.suit != b.suit {
		return int(a.suit) - int(b.suit)
	}
	return int(a.rank) - int(b.rank)
}
