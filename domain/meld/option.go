package meld

import (
	"slices"
	"strings"

	"github.com/DanMoss/Card-Game/domain/card"
)

// PlayOption is one legal way to play a group of cards to a meld. It carries
// everything needed to execute the play, so producing more options never
// changes an option already handed out.
type PlayOption struct {
	meld       Meld
	cards      []card.Card
	jokerRanks []card.Rank
	aceValue   int
	first      card.Rank
}

// Meld returns the destination meld.
func (o PlayOption) Meld() Meld {
	return o.meld
}

// Cards returns the cards to play, in the order given by the player.
func (o PlayOption) Cards() []card.Card {
	return slices.Clone(o.cards)
}

// JokerRanks returns the rank each joker will stand for, in card order.
// Empty for rank melds.
func (o PlayOption) JokerRanks() []card.Rank {
	return slices.Clone(o.jokerRanks)
}

// AceValue is the Ace value the play assumes (AceLow or AceHigh), or 0 when
// the Ace plays no part.
func (o PlayOption) AceValue() int {
	return o.aceValue
}

// FirstRank is the rank of the first card in a run play. Zero for rank
// melds.
func (o PlayOption) FirstRank() card.Rank {
	return o.first
}

// String is the message shown to the player, e.g.
// "Play to a run of Hearts starting with a Seven".
func (o PlayOption) String() string {
	var b strings.Builder
	b.WriteString("Play to ")
	if o.meld != nil {
		b.WriteString(o.meld.String())
	}
	if o.first == 0 {
		return b.String()
	}
	if len(o.cards) > 1 {
		b.WriteString(" starting with ")
		b.WriteString(article(o.first))
		b.WriteString(" ")
		b.WriteString(o.first.String())
		return b.String()
	}
	b.WriteString(" as the ")
	if o.first == card.Ace {
		switch o.aceValue {
		case AceLow:
			b.WriteString("low ")
		case AceHigh:
			b.WriteString("high ")
		}
	}
	b.WriteString(o.first.String())
	return b.String()
}

func article(r card.Rank) string {
	if r == card.Ace || r == card.Eight {
		return "an"
	}
	return "a"
}

func (o PlayOption) equivalent(p PlayOption) bool {
	return o.meld == p.meld &&
		o.aceValue == p.aceValue &&
		o.first == p.first &&
		slices.Equal(o.cards, p.cards) &&
		slices.Equal(o.jokerRanks, p.jokerRanks)
}
