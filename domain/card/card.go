package card

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
)

// Rank is the face of a card. Natural ranks run from Ace (1) to King (13);
// Joker is a sentinel marking the wildcards.
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Joker
)

// Suit of a card. Jokers carry a suit only to tell the four physical
// wildcards apart.
type Suit uint8

const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

// ErrInvalidCard is returned when a rank or suit is out of range.
var ErrInvalidCard = errors.New("invalid card")

var rankNames = [...]string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King", "Joker"}

var rankPlurals = [...]string{"", "aces", "twos", "threes", "fours", "fives", "sixes", "sevens",
	"eights", "nines", "tens", "jacks", "queens", "kings", "jokers"}

var rankShort = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "Jk"}

var suitNames = [...]string{"", "Clubs", "Diamonds", "Hearts", "Spades"}

var suitSymbols = [...]string{"", "♣", "♦", "♥", "♠"}

// Ranks returns the natural ranks from Ace to King.
func Ranks() []Rank {
	rs := make([]Rank, 0, King)
	for r := Ace; r <= King; r++ {
		rs = append(rs, r)
	}
	return rs
}

// Suits returns the four suits in order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Valid reports whether r is a natural rank or the Joker.
func (r Rank) Valid() bool {
	return r >= Ace && r <= Joker
}

// Value is the numeric value of a natural rank (Ace = 1 ... King = 13).
// The Joker has no value of its own and returns 0.
func (r Rank) Value() int {
	if r < Ace || r > King {
		return 0
	}
	return int(r)
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// Plural is the lower case plural used in meld descriptions ("sevens").
func (r Rank) Plural() string {
	if !r.Valid() {
		return r.String()
	}
	return rankPlurals[r]
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// Symbol returns ♣, ♦, ♥ or ♠.
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Card is an immutable playing card. Two cards are equal when both rank and
// suit match, so Card can be compared with == and used as a map key.
type Card struct {
	rank Rank
	suit Suit
}

// New creates a card with validation.
func New(rank Rank, suit Suit) (Card, error) {
	if !suit.Valid() || !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustNew is like New but panics on invalid input. Meant for tables and tests.
func MustNew(rank Rank, suit Suit) Card {
	c, err := New(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// NewJoker returns the wildcard belonging to suit s.
func NewJoker(s Suit) Card {
	return MustNew(Joker, s)
}

// Rank returns the rank of the card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return c.suit
}

// IsWild reports whether the card is a Joker.
func (c Card) IsWild() bool {
	return c.rank == Joker
}

// Points is the value of the card when it is left in a hand at the end of a
// round: the rank value for naturals, jokerPoints for wildcards.
func (c Card) Points(jokerPoints int) int {
	if c.IsWild() {
		return jokerPoints
	}
	return c.rank.Value()
}

// String returns "Seven of Hearts" or "Joker".
func (c Card) String() string {
	if c.IsWild() {
		return "Joker"
	}
	return c.rank.String() + " of " + c.suit.String()
}

// Short returns a compact, coloured form of the card for the console
// (e.g. 7♥ with the heart in light red).
func (c Card) Short() string {
	if c.IsWild() {
		return pterm.LightMagenta(rankShort[Joker])
	}
	if !c.rank.Valid() || !c.suit.Valid() {
		return "?"
	}
	symbol := pterm.Black(c.suit.Symbol())
	if c.suit.IsRed() {
		symbol = pterm.LightRed(c.suit.Symbol())
	}
	return rankShort[c.rank] + symbol
}
