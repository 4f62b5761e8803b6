package meld

import (
	"fmt"
	"slices"

	"github.com/DanMoss/Card-Game/domain/card"
)

// RankMeld is a set of cards sharing one rank. It holds at most one natural
// card per suit and four cards in all; jokers fill the missing suits and are
// handed back to the player as natural cards of the rank arrive.
type RankMeld struct {
	rank   card.Rank
	cards  []card.Card
	jokers []card.Card
	journal
}

// NewRankMeld returns an empty set of the given rank.
func NewRankMeld(r card.Rank) *RankMeld {
	return &RankMeld{rank: r}
}

func (m *RankMeld) sealed() {}

// Rank returns the target rank.
func (m *RankMeld) Rank() card.Rank {
	return m.rank
}

// Capacity is the largest size the set can reach.
func (m *RankMeld) Capacity() int {
	return len(card.Suits())
}

func (m *RankMeld) Kind() Kind {
	return RankKind
}

func (m *RankMeld) Len() int {
	return len(m.cards)
}

func (m *RankMeld) Cards() []card.Card {
	return slices.Clone(m.cards)
}

// Jokers returns the wildcards currently in the set, oldest first.
func (m *RankMeld) Jokers() []card.Card {
	return slices.Clone(m.jokers)
}

func (m *RankMeld) Reset() {
	m.cards = nil
	m.jokers = nil
	m.journal.clear()
}

func (m *RankMeld) String() string {
	return "a set of " + m.rank.Plural()
}

func (m *RankMeld) FindPlayOptions(dst []PlayOption, cards ...card.Card) []PlayOption {
	return findPlayOptions(m, dst, cards)
}

func (m *RankMeld) cardPlays(dst []PlayOption, c card.Card) []PlayOption {
	if len(m.cards) < MinimumMeldSize {
		return dst
	}
	return m.meldPlays(dst, []card.Card{c})
}

func (m *RankMeld) meldPlays(dst []PlayOption, cards []card.Card) []PlayOption {
	suits := m.naturalSuits()
	for _, c := range cards {
		if c.IsWild() {
			continue
		}
		if c.Rank() != m.rank || suits[c.Suit()] {
			return dst
		}
		suits[c.Suit()] = true
	}
	if len(m.cards)+len(cards)-m.jokersToEvict(cards) > m.Capacity() {
		return dst
	}
	return append(dst, PlayOption{meld: m, cards: slices.Clone(cards)})
}

// naturalSuits marks the suits already held by natural cards.
func (m *RankMeld) naturalSuits() map[card.Suit]bool {
	suits := make(map[card.Suit]bool, len(card.Suits()))
	for _, c := range m.cards {
		if !c.IsWild() {
			suits[c.Suit()] = true
		}
	}
	return suits
}

// jokersToEvict is the number of jokers the set gives back when cards are
// played: one per natural card, as long as there are jokers left.
func (m *RankMeld) jokersToEvict(cards []card.Card) int {
	return min(len(cards)-countWild(cards), len(m.jokers))
}

func (m *RankMeld) add(c card.Card) {
	m.cards = append(m.cards, c)
	if c.IsWild() {
		m.jokers = append(m.jokers, c)
	}
}

func (m *RankMeld) Play(src card.Collection, opt PlayOption) (Receipt, error) {
	if opt.meld != Meld(m) {
		return Receipt{}, fmt.Errorf("play to %s: %w", m, ErrForeignOption)
	}
	if !stillLegal(m, opt) {
		return Receipt{}, fmt.Errorf("play to %s: %w", m, ErrStaleOption)
	}

	before := m.snapshot()
	evict := m.jokersToEvict(opt.cards)
	if err := src.TransferTo(card.ReceiverFunc(m.add), opt.cards...); err != nil {
		return Receipt{}, fmt.Errorf("play to %s: %w", m, err)
	}

	// The oldest jokers go back; the ones just played are at the end.
	evicted := slices.Clone(m.jokers[:evict])
	m.jokers = m.jokers[evict:]
	for _, j := range evicted {
		i := slices.Index(m.cards, j)
		m.cards = slices.Delete(m.cards, i, i+1)
		src.Add(j)
	}

	return Receipt{
		Option:  opt,
		Evicted: evicted,
		id:      m.journal.record(),
		restore: func() { m.cards, m.jokers = before.cards, before.jokers },
	}, nil
}

func (m *RankMeld) Undo(src card.Collection, r Receipt) error {
	if err := undo(m, &m.journal, src, r); err != nil {
		return fmt.Errorf("undo play to %s: %w", m, err)
	}
	return nil
}

type rankState struct {
	cards  []card.Card
	jokers []card.Card
}

func (m *RankMeld) snapshot() rankState {
	return rankState{cards: slices.Clone(m.cards), jokers: slices.Clone(m.jokers)}
}
