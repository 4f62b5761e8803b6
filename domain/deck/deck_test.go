package deck

import (
	"errors"
	"testing"

	"github.com/DanMoss/Card-Game/domain/card"
)

func TestNewDeckHoldsDefiningCards(t *testing.T) {
	d := New()
	if d.Len() != 56 {
		t.Fatalf("expected 56 cards, got %d", d.Len())
	}
	jokers := 0
	for _, c := range d.Cards() {
		if c.IsWild() {
			jokers++
		}
	}
	if jokers != 4 {
		t.Fatalf("expected 4 jokers, got %d", jokers)
	}
}

func TestForRoundExcludesRank(t *testing.T) {
	d := New()
	if err := d.ForRound(card.Seven); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Len() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Len())
	}
	for _, c := range d.Cards() {
		if c.Rank() == card.Seven {
			t.Fatalf("found excluded card %v", c)
		}
	}
	if err := d.ForRound(card.Joker); !errors.Is(err, card.ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}
}

func TestDrawAndDeal(t *testing.T) {
	d := New()
	hand := card.NewPile("hand")
	if err := d.Deal(hand, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hand.Len() != 7 || d.Len() != 49 {
		t.Fatalf("expected 7 in hand and 49 in deck, got %d and %d", hand.Len(), d.Len())
	}
	if err := d.Deal(hand, 50); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	for d.Len() > 0 {
		if _, err := d.Draw(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := d.Draw(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	d := New()
	before := d.Cards()
	d.Shuffle()
	after := d.Cards()
	if len(before) != len(after) {
		t.Fatalf("shuffle changed the size: %d -> %d", len(before), len(after))
	}
	seen := make(map[card.Card]int)
	for _, c := range before {
		seen[c]++
	}
	for _, c := range after {
		seen[c]--
	}
	for c, n := range seen {
		if n != 0 {
			t.Fatalf("card %v count changed by %d", c, n)
		}
	}
}

func TestPermutation(t *testing.T) {
	perm := permutation(52, suite.RandomStream())
	seen := make([]bool, 52)
	for _, p := range perm {
		if p < 0 || p >= 52 || seen[p] {
			t.Fatalf("invalid permutation %v", perm)
		}
		seen[p] = true
	}
}

func TestRefillKeepsTopDiscard(t *testing.T) {
	d := New()
	discard := card.NewPile("discard")
	if err := d.Deal(discard, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, _ := discard.Top()
	n, err := d.Refill(discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 || discard.Len() != 1 || d.Len() != 55 {
		t.Fatalf("unexpected refill: moved %d, discard %d, deck %d", n, discard.Len(), d.Len())
	}
	if got, _ := discard.Top(); got != top {
		t.Fatalf("top discard changed from %v to %v", top, got)
	}
}

func TestRoundSizeMatchesForRound(t *testing.T) {
	for _, r := range card.Ranks() {
		d := New()
		if err := d.ForRound(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Len() != RoundSize() {
			t.Fatalf("round without %s: expected %d cards, got %d", r.Plural(), RoundSize(), d.Len())
		}
	}
}
