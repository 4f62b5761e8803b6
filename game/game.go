package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanMoss/Card-Game/domain/card"
	"github.com/DanMoss/Card-Game/domain/deck"
	"github.com/DanMoss/Card-Game/ledger"
	"github.com/google/uuid"
)

// ErrNoPlayers is returned when a game is started with nobody at the table.
var ErrNoPlayers = errors.New("no players")

// Settings are the house rules of a game.
type Settings struct {
	HandSize    int
	JokerPoints int
	Rounds      int
}

// DefaultSettings are the standard rules: seven cards, jokers worth fifteen,
// one round per rank from Ace to King.
func DefaultSettings() Settings {
	return Settings{HandSize: 7, JokerPoints: 15, Rounds: len(card.Ranks())}
}

// Game runs rounds of Aces to Kings for a fixed group of players.
type Game struct {
	settings Settings
	players  []*Player
	board    *Board
	ledger   *ledger.Ledger
	log      *slog.Logger
	names    namer
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used by the game and its board.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

// WithDeck replaces the deck, e.g. with one using a fixed random stream.
func WithDeck(d *deck.Deck) Option {
	return func(g *Game) {
		g.board = NewBoard(d, g.log)
	}
}

// WithLedger records the game into l instead of a fresh ledger.
func WithLedger(l *ledger.Ledger) Option {
	return func(g *Game) {
		g.ledger = l
	}
}

// New creates a game with no players yet.
func New(s Settings, opts ...Option) *Game {
	g := &Game{settings: s, log: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = NewBoard(deck.New(), g.log)
	}
	g.board.log = g.log
	if g.ledger == nil {
		g.ledger = ledger.New(uuid.New())
	}
	return g
}

// AddPlayer seats a player. An empty name is replaced by "Player N", where
// N is the seat number.
func (g *Game) AddPlayer(name string, p Prompter) *Player {
	player := &Player{
		Name:     g.names.name(name),
		Hand:     card.NewPile("hand"),
		Prompter: p,
	}
	g.players = append(g.players, player)
	return player
}

// Players returns the players in seating order.
func (g *Game) Players() []*Player {
	return g.players
}

// Board returns the table.
func (g *Game) Board() *Board {
	return g.board
}

// Ledger returns the journal of the game.
func (g *Game) Ledger() *ledger.Ledger {
	return g.ledger
}

// Play runs every round and returns the final standings.
func (g *Game) Play() ([]Standing, error) {
	if len(g.players) == 0 {
		return nil, ErrNoPlayers
	}
	for round := 1; round <= g.settings.Rounds; round++ {
		if err := g.PlayRound(round); err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}
	}
	return g.Leaderboard(), nil
}

// RoundRank is the rank left out of the deck in the given round: Aces in
// the first round up to Kings in the thirteenth.
func RoundRank(round int) card.Rank {
	ranks := card.Ranks()
	return ranks[(round-1)%len(ranks)]
}

// PlayRound deals and plays one round, then scores the hands left over.
func (g *Game) PlayRound(round int) error {
	if len(g.players) == 0 {
		return ErrNoPlayers
	}
	rank := RoundRank(round)
	if err := g.board.SetUpRound(rank); err != nil {
		return err
	}
	for _, p := range g.players {
		p.Hand.Reset()
		if err := g.board.Deal(p.Hand, g.settings.HandSize); err != nil {
			return fmt.Errorf("deal to %s: %w", p.Name, err)
		}
	}
	if err := g.board.TurnFirstCard(); err != nil {
		return err
	}
	g.log.Info("round started", "round", round, "without", rank.Plural())
	if err := g.ledger.Append(ledger.Entry{Round: round, Action: ledger.ActionRoundStart, Detail: "without " + rank.Plural()}); err != nil {
		return err
	}
	return g.playTurns(round)
}

// playTurns passes the turn around the table until someone empties their
// hand, then scores the round.
func (g *Game) playTurns(round int) error {
	n := len(g.players)
	for i := (round - 1) % n; ; i = (i + 1) % n {
		p := g.players[i]
		if err := g.takeTurn(p, round); err != nil {
			return fmt.Errorf("%s's turn: %w", p.Name, err)
		}
		if p.Hand.Len() == 0 {
			g.log.Info("round won", "round", round, "player", p.Name)
			return g.score(round, p)
		}
	}
}

func (g *Game) score(round int, winner *Player) error {
	for _, p := range g.players {
		points := p.handValue(g.settings.JokerPoints)
		p.Points += points
		if p != winner {
			p.Prompter.Tell(fmt.Sprintf("%s went out. You score %d this round.", winner.Name, points))
		}
		g.log.Debug("round score", "round", round, "player", p.Name, "points", points, "total", p.Points)
	}
	return g.ledger.Append(ledger.Entry{Round: round, Player: winner.Name, Action: ledger.ActionRoundEnd})
}
