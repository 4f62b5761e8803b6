package game

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/DanMoss/Card-Game/domain/card"
	"github.com/DanMoss/Card-Game/domain/meld"
	"github.com/DanMoss/Card-Game/ledger"
)

// TurnAction is something a player can do after drawing.
type TurnAction string

const (
	ActionAddCard  TurnAction = "Add a card to a meld"
	ActionPlayMeld TurnAction = "Play a set of cards"
	ActionUndo     TurnAction = "Undo last play"
	ActionEndTurn  TurnAction = "End turn"
)

// minimumHandSize is the number of cards a player must hold for the action
// to make sense: every play has to leave a card to discard.
func (a TurnAction) minimumHandSize() int {
	switch a {
	case ActionAddCard:
		return 2
	case ActionPlayMeld:
		return meld.MinimumMeldSize + 1
	case ActionEndTurn:
		return 1
	default:
		return 0
	}
}

// Messages told to players.
const (
	MsgCannotPlay  = "These cards cannot be played anywhere yet."
	MsgKeepDiscard = "You must keep a card you are allowed to discard."
	MsgEmptyPiles  = "There is nothing left to draw."

	optionBack = "Back"
)

type turn struct {
	game   *Game
	player *Player
	round  int

	// locked is the card taken from the discard pile this turn. It cannot
	// be discarded again before the turn ends.
	locked    card.Card
	hasLocked bool
	receipts  []meld.Receipt
}

func (g *Game) takeTurn(p *Player, round int) error {
	t := &turn{game: g, player: p, round: round}
	if err := t.draw(); err != nil {
		return err
	}
	for {
		done, err := t.act()
		if err != nil || done {
			return err
		}
	}
}

func (t *turn) prompter() Prompter {
	return t.player.Prompter
}

func (t *turn) record(action ledger.Action, detail string, cards ...card.Card) error {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}
	return t.game.ledger.Append(ledger.Entry{
		Round:  t.round,
		Player: t.player.Name,
		Action: action,
		Cards:  codes,
		Detail: detail,
	})
}

func (t *turn) draw() error {
	board := t.game.board
	const fromDeck = "Draw from the deck"
	var options []string
	if board.CanDrawFromDeck() {
		options = append(options, fromDeck)
	}
	top, hasTop := board.TopDiscard()
	if hasTop {
		options = append(options, fmt.Sprintf("Take the %s from the discard pile", top))
	}
	if len(options) == 0 {
		t.prompter().Tell(MsgEmptyPiles)
		return nil
	}

	t.view()
	choice, err := Choose(t.prompter(), t.player.Name+", draw a card", options, func(s string) string { return s })
	if err != nil {
		return err
	}

	if choice == fromDeck {
		c, err := board.DrawFromDeck(t.player.Hand)
		if err != nil {
			return err
		}
		t.prompter().Tell("You drew the " + c.String())
		t.game.log.Debug("drew from deck", "player", t.player.Name, "card", c.String())
		return t.record(ledger.ActionDraw, "deck", c)
	}

	c, err := board.DrawFromDiscard(t.player.Hand)
	if err != nil {
		return err
	}
	t.locked, t.hasLocked = c, true
	t.game.log.Debug("drew from discard pile", "player", t.player.Name, "card", c.String())
	return t.record(ledger.ActionDraw, "discard pile", c)
}

func (t *turn) view() {
	v, ok := t.player.Prompter.(Viewer)
	if !ok {
		return
	}
	top, hasTop := t.game.board.TopDiscard()
	v.View(Table{
		Round:      t.round,
		Excluded:   t.game.board.deck.Excluded(),
		Player:     t.player.Name,
		Hand:       t.player.Hand.Cards(),
		TopDiscard: top,
		HasDiscard: hasTop,
		DeckSize:   t.game.board.DeckSize(),
		Melds:      t.game.board.Melds().Melds(),
	})
}

func (t *turn) actions() []TurnAction {
	size := t.player.Hand.Len()
	var actions []TurnAction
	for _, a := range []TurnAction{ActionAddCard, ActionPlayMeld, ActionUndo, ActionEndTurn} {
		if size < a.minimumHandSize() {
			continue
		}
		if a == ActionUndo && len(t.receipts) == 0 {
			continue
		}
		actions = append(actions, a)
	}
	return actions
}

// act runs one menu choice and reports whether the turn is over.
func (t *turn) act() (bool, error) {
	t.view()
	action, err := Choose(t.prompter(), t.player.Name+", what next?", t.actions(), func(a TurnAction) string { return string(a) })
	if err != nil {
		return false, err
	}
	switch action {
	case ActionAddCard:
		return false, t.addCard()
	case ActionPlayMeld:
		return false, t.playMeld()
	case ActionUndo:
		return false, t.undo()
	case ActionEndTurn:
		return true, t.endTurn()
	}
	return false, fmt.Errorf("unknown action %q", action)
}

// chooseCard offers cards plus a way back. ok is false when the player
// went back.
func (t *turn) chooseCard(message string, cards []card.Card) (c card.Card, ok bool, err error) {
	labels := make([]string, 0, len(cards)+1)
	for _, c := range cards {
		labels = append(labels, c.String())
	}
	labels = append(labels, optionBack)
	i, err := t.prompter().Choose(message, labels)
	if err != nil {
		return card.Card{}, false, err
	}
	if i < 0 || i > len(cards) {
		return card.Card{}, false, fmt.Errorf("%s: choice %d out of range", message, i)
	}
	if i == len(cards) {
		return card.Card{}, false, nil
	}
	return cards[i], true, nil
}

func (t *turn) addCard() error {
	c, ok, err := t.chooseCard("Choose a card to add", t.player.Hand.Cards())
	if err != nil || !ok {
		return err
	}
	return t.offer(c)
}

func (t *turn) playMeld() error {
	hand := t.player.Hand.Cards()
	var sizes []string
	for n := meld.MinimumMeldSize; n < len(hand); n++ {
		sizes = append(sizes, strconv.Itoa(n))
	}
	sizes = append(sizes, optionBack)
	i, err := t.prompter().Choose("How many cards do you want to play?", sizes)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(sizes) {
		return fmt.Errorf("meld size: choice %d out of range", i)
	}
	if i == len(sizes)-1 {
		return nil
	}
	n := meld.MinimumMeldSize + i

	picked := make([]card.Card, 0, n)
	for len(picked) < n {
		c, ok, err := t.chooseCard(fmt.Sprintf("Choose card %d of %d", len(picked)+1, n), hand)
		if err != nil || !ok {
			return err
		}
		picked = append(picked, c)
		hand = slices.DeleteFunc(hand, func(h card.Card) bool { return h == c })
	}
	return t.offer(picked...)
}

// offer shows every legal play of cards and executes the one chosen.
func (t *turn) offer(cards ...card.Card) error {
	opts := t.game.board.Melds().FindPlayOptions(cards...)
	t.game.log.Debug("play options", "player", t.player.Name, "cards", len(cards), "options", len(opts))
	if len(opts) == 0 {
		t.prompter().Tell(MsgCannotPlay)
		return nil
	}

	labels := make([]string, 0, len(opts)+1)
	for _, o := range opts {
		labels = append(labels, o.String())
	}
	labels = append(labels, optionBack)
	i, err := t.prompter().Choose("Where do you want to play?", labels)
	if err != nil {
		return err
	}
	if i < 0 || i > len(opts) {
		return fmt.Errorf("play option: choice %d out of range", i)
	}
	if i == len(opts) {
		return nil
	}
	return t.execute(opts[i])
}

func (t *turn) execute(opt meld.PlayOption) error {
	melds := t.game.board.Melds()
	r, err := melds.Play(t.player.Hand, opt)
	if err != nil {
		return err
	}
	if t.strandsLockedCard() {
		if err := melds.Undo(t.player.Hand, r); err != nil {
			return err
		}
		t.prompter().Tell(MsgKeepDiscard)
		return nil
	}

	t.receipts = append(t.receipts, r)
	for _, j := range r.Evicted {
		t.prompter().Tell(fmt.Sprintf("The %s went back to your hand", j))
	}
	t.game.log.Info("play", "player", t.player.Name, "option", opt.String(), "evicted", len(r.Evicted))
	return t.record(ledger.ActionPlay, opt.String(), opt.Cards()...)
}

// strandsLockedCard reports whether the only card left is the one taken
// from the discard pile, which cannot be discarded this turn.
func (t *turn) strandsLockedCard() bool {
	if !t.hasLocked || t.player.Hand.Len() != 1 {
		return false
	}
	return t.player.Hand.Contains(t.locked)
}

func (t *turn) undo() error {
	last := t.receipts[len(t.receipts)-1]
	if err := t.game.board.Melds().Undo(t.player.Hand, last); err != nil {
		return err
	}
	t.receipts = t.receipts[:len(t.receipts)-1]
	t.game.log.Info("undo", "player", t.player.Name, "option", last.Option.String())
	return t.record(ledger.ActionUndo, last.Option.String(), last.Option.Cards()...)
}

func (t *turn) endTurn() error {
	hand := t.player.Hand.Cards()
	if t.hasLocked {
		if i := slices.Index(hand, t.locked); i >= 0 {
			hand = slices.Delete(hand, i, i+1)
		}
	}
	c, err := Choose(t.prompter(), "Choose a card to discard", hand, card.Card.String)
	if err != nil {
		return err
	}
	if err := t.game.board.Discard(t.player.Hand, c); err != nil {
		return err
	}
	t.game.log.Debug("discard", "player", t.player.Name, "card", c.String(), "left", t.player.Hand.Len())
	return t.record(ledger.ActionDiscard, "", c)
}
