package meld

import (
	"fmt"

	"github.com/DanMoss/Card-Game/domain/card"
)

// Manager is the table: one rank meld per rank and one run meld per suit.
type Manager struct {
	rankMelds []*RankMeld
	runMelds  []*RunMeld
}

// NewManager returns a table with every meld empty.
func NewManager() *Manager {
	m := &Manager{}
	for _, r := range card.Ranks() {
		m.rankMelds = append(m.rankMelds, NewRankMeld(r))
	}
	for _, s := range card.Suits() {
		m.runMelds = append(m.runMelds, NewRunMeld(s))
	}
	return m
}

// FindPlayOptions collects the options of every meld on the table, rank
// melds first. An empty result means the cards cannot be played anywhere
// yet.
func (m *Manager) FindPlayOptions(cards ...card.Card) []PlayOption {
	var opts []PlayOption
	for _, meld := range m.all() {
		opts = meld.FindPlayOptions(opts, cards...)
	}
	return opts
}

// Play executes an option produced by this table.
func (m *Manager) Play(src card.Collection, opt PlayOption) (Receipt, error) {
	if !m.owns(opt.meld) {
		return Receipt{}, fmt.Errorf("%q: %w", opt.String(), ErrForeignOption)
	}
	return opt.meld.Play(src, opt)
}

// Undo takes back the play described by r. It must be the latest play on
// its meld.
func (m *Manager) Undo(src card.Collection, r Receipt) error {
	if !m.owns(r.Option.meld) {
		return fmt.Errorf("undo %q: %w", r.Option.String(), ErrForeignOption)
	}
	return r.Option.meld.Undo(src, r)
}

// Reset empties every meld.
func (m *Manager) Reset() {
	for _, meld := range m.all() {
		meld.Reset()
	}
}

// Melds returns the melds that hold at least one card.
func (m *Manager) Melds() []Meld {
	var out []Meld
	for _, meld := range m.all() {
		if meld.Len() > 0 {
			out = append(out, meld)
		}
	}
	return out
}

// RankMeld returns the set of rank r, or nil for the Joker.
func (m *Manager) RankMeld(r card.Rank) *RankMeld {
	if r < card.Ace || r > card.King {
		return nil
	}
	return m.rankMelds[r-card.Ace]
}

// RunMeld returns the run of suit s.
func (m *Manager) RunMeld(s card.Suit) *RunMeld {
	if !s.Valid() {
		return nil
	}
	return m.runMelds[s-card.Clubs]
}

func (m *Manager) all() []Meld {
	melds := make([]Meld, 0, len(m.rankMelds)+len(m.runMelds))
	for _, rm := range m.rankMelds {
		melds = append(melds, rm)
	}
	for _, rm := range m.runMelds {
		melds = append(melds, rm)
	}
	return melds
}

func (m *Manager) owns(meld Meld) bool {
	if meld == nil {
		return false
	}
	for _, mine := range m.all() {
		if mine == meld {
			return true
		}
	}
	return false
}
