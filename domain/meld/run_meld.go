package meld

import (
	"fmt"
	"slices"

	"github.com/DanMoss/Card-Game/domain/card"
)

// Numeric values of the Ace in a run: just below the Two or just above the
// King.
const (
	AceLow  = 1
	AceHigh = 14
)

// member is a card in a run together with the rank slot it fills. For a
// natural card the slot is its own rank; a joker fills the slot it mimics.
type member struct {
	card card.Card
	rank card.Rank
}

// RunMeld holds consecutive ranks of one suit. Membership is tracked by rank
// slot, so a suit may hold several separate runs as long as no slot is
// filled twice.
type RunMeld struct {
	suit     card.Suit
	members  []member
	aceFixed bool
	aceValue int
	journal
}

// NewRunMeld returns an empty run of the given suit.
func NewRunMeld(s card.Suit) *RunMeld {
	return &RunMeld{suit: s}
}

func (m *RunMeld) sealed() {}

// Suit returns the target suit.
func (m *RunMeld) Suit() card.Suit {
	return m.suit
}

// Ace returns the Ace value once it is fixed.
func (m *RunMeld) Ace() (value int, fixed bool) {
	return m.aceValue, m.aceFixed
}

func (m *RunMeld) Kind() Kind {
	return RunKind
}

func (m *RunMeld) Len() int {
	return len(m.members)
}

// Cards returns the members in run order.
func (m *RunMeld) Cards() []card.Card {
	cards := make([]card.Card, len(m.members))
	for i, mb := range m.members {
		cards[i] = mb.card
	}
	return cards
}

// Ranks returns the rank slot of each member, in the order of Cards.
func (m *RunMeld) Ranks() []card.Rank {
	ranks := make([]card.Rank, len(m.members))
	for i, mb := range m.members {
		ranks[i] = mb.rank
	}
	return ranks
}

// Has reports whether the rank slot is filled.
func (m *RunMeld) Has(r card.Rank) bool {
	return m.slot(r) >= 0
}

func (m *RunMeld) Reset() {
	m.members = nil
	m.aceFixed = false
	m.aceValue = 0
	m.journal.clear()
}

func (m *RunMeld) String() string {
	return "a run of " + m.suit.String()
}

func (m *RunMeld) slot(r card.Rank) int {
	return slices.IndexFunc(m.members, func(mb member) bool { return mb.rank == r })
}

// value of rank r when the Ace counts as ace.
func value(r card.Rank, ace int) int {
	if r == card.Ace {
		return ace
	}
	return r.Value()
}

// rankAt maps a position in the run back to a rank: both ends are the Ace.
func rankAt(v int) card.Rank {
	if v == AceLow || v == AceHigh {
		return card.Ace
	}
	return card.Rank(v)
}

// aceCandidates lists the Ace values a play landing on rank r may assume.
// A fixed Ace leaves no choice; an unresolved one only matters when r is the
// Ace itself.
func (m *RunMeld) aceCandidates(r card.Rank) []int {
	switch {
	case m.aceFixed:
		return []int{m.aceValue}
	case r == card.Ace:
		return []int{AceLow, AceHigh}
	default:
		return []int{0}
	}
}

// attaches reports whether slot r sits right next to a filled slot when the
// Ace is worth ace.
func (m *RunMeld) attaches(r card.Rank, ace int) bool {
	v := value(r, ace)
	for _, mb := range m.members {
		if mb.rank == r {
			continue
		}
		d := value(mb.rank, ace) - v
		if d == 1 || d == -1 {
			return true
		}
	}
	return false
}

func (m *RunMeld) FindPlayOptions(dst []PlayOption, cards ...card.Card) []PlayOption {
	return findPlayOptions(m, dst, cards)
}

func (m *RunMeld) cardPlays(dst []PlayOption, c card.Card) []PlayOption {
	if c.IsWild() {
		for _, r := range card.Ranks() {
			if m.Has(r) {
				continue
			}
			for _, ace := range m.aceCandidates(r) {
				if m.attaches(r, ace) {
					dst = append(dst, m.option([]card.Card{c}, []card.Rank{r}, ace, r))
				}
			}
		}
		return dst
	}

	if c.Suit() != m.suit {
		return dst
	}
	// A natural card may take the slot of a joker, never of another natural.
	if i := m.slot(c.Rank()); i >= 0 && !m.members[i].card.IsWild() {
		return dst
	}
	for _, ace := range m.aceCandidates(c.Rank()) {
		if m.attaches(c.Rank(), ace) {
			dst = append(dst, m.option([]card.Card{c}, nil, ace, c.Rank()))
		}
	}
	return dst
}

func (m *RunMeld) meldPlays(dst []PlayOption, cards []card.Card) []PlayOption {
	for _, c := range cards {
		if !c.IsWild() && c.Suit() != m.suit {
			return dst
		}
	}

	first := slices.IndexFunc(cards, func(c card.Card) bool { return !c.IsWild() })
	var starts []int
	if first < 0 {
		for s := AceLow; s+len(cards)-1 <= AceHigh; s++ {
			starts = append(starts, s)
		}
	} else {
		r := cards[first].Rank()
		for _, ace := range m.aceCandidates(r) {
			starts = append(starts, value(r, ace)-first)
		}
	}

	for _, s := range starts {
		if opt, ok := m.formation(cards, s); ok {
			dst = append(dst, opt)
		}
	}
	return dst
}

// formation checks cards laid out from position start upwards and builds the
// option when every card fits.
func (m *RunMeld) formation(cards []card.Card, start int) (PlayOption, bool) {
	end := start + len(cards) - 1
	if start < AceLow || end > AceHigh || (start == AceLow && end == AceHigh) {
		return PlayOption{}, false
	}

	ace := 0
	if m.aceFixed {
		ace = m.aceValue
	}
	switch {
	case start == AceLow:
		if m.aceFixed && ace != AceLow {
			return PlayOption{}, false
		}
		ace = AceLow
	case end == AceHigh:
		if m.aceFixed && ace != AceHigh {
			return PlayOption{}, false
		}
		ace = AceHigh
	}

	var jokerRanks []card.Rank
	for i, c := range cards {
		r := rankAt(start + i)
		at := m.slot(r)
		if c.IsWild() {
			if at >= 0 {
				return PlayOption{}, false
			}
			jokerRanks = append(jokerRanks, r)
			continue
		}
		if c.Rank() != r {
			return PlayOption{}, false
		}
		if at >= 0 && !m.members[at].card.IsWild() {
			return PlayOption{}, false
		}
	}
	return m.option(cards, jokerRanks, ace, rankAt(start)), true
}

func (m *RunMeld) option(cards []card.Card, jokerRanks []card.Rank, ace int, first card.Rank) PlayOption {
	return PlayOption{
		meld:       m,
		cards:      slices.Clone(cards),
		jokerRanks: jokerRanks,
		aceValue:   ace,
		first:      first,
	}
}

func (m *RunMeld) Play(src card.Collection, opt PlayOption) (Receipt, error) {
	if opt.meld != Meld(m) {
		return Receipt{}, fmt.Errorf("play to %s: %w", m, ErrForeignOption)
	}
	if !stillLegal(m, opt) {
		return Receipt{}, fmt.Errorf("play to %s: %w", m, ErrStaleOption)
	}

	before := m.snapshot()
	var displaced []card.Card
	next := 0
	add := func(c card.Card) {
		r := c.Rank()
		if c.IsWild() {
			r = opt.jokerRanks[next]
			next++
		}
		if i := m.slot(r); i >= 0 {
			displaced = append(displaced, m.members[i].card)
			m.members = slices.Delete(m.members, i, i+1)
		}
		m.members = append(m.members, member{card: c, rank: r})
		if r == card.Ace && !m.aceFixed {
			m.aceFixed = true
			m.aceValue = opt.aceValue
		}
	}
	if err := src.TransferTo(card.ReceiverFunc(add), opt.cards...); err != nil {
		return Receipt{}, fmt.Errorf("play to %s: %w", m, err)
	}
	for _, j := range displaced {
		src.Add(j)
	}
	m.order()

	return Receipt{
		Option:  opt,
		Evicted: displaced,
		id:      m.journal.record(),
		restore: func() { m.restoreState(before) },
	}, nil
}

func (m *RunMeld) Undo(src card.Collection, r Receipt) error {
	if err := undo(m, &m.journal, src, r); err != nil {
		return fmt.Errorf("undo play to %s: %w", m, err)
	}
	return nil
}

// order sorts members by their position in the run.
func (m *RunMeld) order() {
	ace := m.aceValue
	slices.SortFunc(m.members, func(a, b member) int {
		return value(a.rank, ace) - value(b.rank, ace)
	})
}

type runState struct {
	members  []member
	aceFixed bool
	aceValue int
}

func (m *RunMeld) snapshot() runState {
	return runState{members: slices.Clone(m.members), aceFixed: m.aceFixed, aceValue: m.aceValue}
}

func (m *RunMeld) restoreState(s runState) {
	m.members = s.members
	m.aceFixed = s.aceFixed
	m.aceValue = s.aceValue
}
