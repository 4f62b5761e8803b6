package card

import (
	"errors"
	"testing"

	"github.com/pterm/pterm"
)

func TestNewCardValidation(t *testing.T) {
	tests := []struct {
		name    string
		rank    Rank
		suit    Suit
		wantErr bool
	}{
		{"ace of spades", Ace, Spades, false},
		{"king of clubs", King, Clubs, false},
		{"joker", Joker, Hearts, false},
		{"rank zero", 0, Hearts, true},
		{"rank past joker", Joker + 1, Hearts, true},
		{"suit zero", Seven, 0, true},
		{"suit past spades", Seven, Spades + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.rank, tt.suit)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCard) {
					t.Fatalf("expected ErrInvalidCard, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Rank() != tt.rank || c.Suit() != tt.suit {
				t.Fatalf("expected %v of %v, got %v", tt.rank, tt.suit, c)
			}
		})
	}
}

func TestCardEquality(t *testing.T) {
	if MustNew(Seven, Hearts) != MustNew(Seven, Hearts) {
		t.Fatal("same rank and suit must be equal")
	}
	if MustNew(Seven, Hearts) == MustNew(Seven, Spades) {
		t.Fatal("different suits must not be equal")
	}
	if NewJoker(Clubs) == NewJoker(Hearts) {
		t.Fatal("jokers of different suits are different physical cards")
	}
}

func TestWildPredicate(t *testing.T) {
	if !NewJoker(Spades).IsWild() {
		t.Fatal("joker must be wild")
	}
	for _, r := range Ranks() {
		if MustNew(r, Spades).IsWild() {
			t.Fatalf("%v must not be wild", r)
		}
	}
}

func TestRankValuesAndNames(t *testing.T) {
	if len(Ranks()) != 13 {
		t.Fatalf("expected 13 natural ranks, got %d", len(Ranks()))
	}
	if Ace.Value() != 1 || King.Value() != 13 || Joker.Value() != 0 {
		t.Fatalf("unexpected values: ace %d, king %d, joker %d", Ace.Value(), King.Value(), Joker.Value())
	}
	if Seven.Plural() != "sevens" || Six.Plural() != "sixes" {
		t.Fatalf("unexpected plurals %q %q", Seven.Plural(), Six.Plural())
	}
	if MustNew(Seven, Hearts).String() != "Seven of Hearts" {
		t.Fatalf("unexpected name %q", MustNew(Seven, Hearts).String())
	}
	if NewJoker(Hearts).String() != "Joker" {
		t.Fatalf("unexpected joker name %q", NewJoker(Hearts).String())
	}
}

func TestCardShort(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{MustNew(Ace, Hearts), "A♥"},
		{MustNew(Jack, Clubs), "J♣"},
		{MustNew(Ten, Diamonds), "10♦"},
		{NewJoker(Spades), "Jk"},
	}
	for _, tt := range tests {
		got := pterm.RemoveColorFromString(tt.card.Short())
		if got != tt.want {
			t.Fatalf("expected %s, got %s", tt.want, got)
		}
	}
}

func TestCardPoints(t *testing.T) {
	if MustNew(Queen, Hearts).Points(15) != 12 {
		t.Fatal("queen should score 12")
	}
	if NewJoker(Hearts).Points(15) != 15 {
		t.Fatal("joker should score the configured value")
	}
}

func TestNaturalsFollowPokerDeck(t *testing.T) {
	naturals := Naturals()
	if len(naturals) != 52 {
		t.Fatalf("expected 52 natural cards, got %d", len(naturals))
	}
	i := 0
	for _, s := range Suits() {
		for _, r := range Ranks() {
			if naturals[i] != MustNew(r, s) {
				t.Fatalf("card %d: expected %v, got %v", i, MustNew(r, s), naturals[i])
			}
			i++
		}
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{MustNew(Seven, Hearts), "H7"},
		{MustNew(Ten, Spades), "ST"},
		{MustNew(Ace, Clubs), "CA"},
		{MustNew(King, Diamonds), "DK"},
		{NewJoker(Diamonds), "*D"},
		{Card{}, "?"},
	}
	for _, tt := range tests {
		if got := tt.card.Code(); got != tt.want {
			t.Fatalf("%v: expected code %s, got %s", tt.card, tt.want, got)
		}
	}
}

func TestParseReadsEveryCode(t *testing.T) {
	all := Naturals()
	for _, s := range Suits() {
		all = append(all, NewJoker(s))
	}
	for _, c := range all {
		got, err := Parse(c.Code())
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", c, err)
		}
		if got != c {
			t.Fatalf("expected %v, got %v", c, got)
		}
	}
	if got, err := Parse(" h7 "); err != nil || got != MustNew(Seven, Hearts) {
		t.Fatalf("expected Seven of Hearts, got %v (%v)", got, err)
	}
	for _, bad := range []string{"", "H1", "X7", "*X", "Joker"} {
		if _, err := Parse(bad); !errors.Is(err, ErrInvalidCard) {
			t.Fatalf("%q: expected ErrInvalidCard, got %v", bad, err)
		}
	}
}
