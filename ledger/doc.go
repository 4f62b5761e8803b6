// Package ledger keeps a tamper evident journal of a game of Aces to Kings.
//
// # Core Components
//
// Ledger: an append-only log of game actions with SHA-256 hash chaining.
//
// Block: a single recorded action together with the hash of the block
// before it.
//
// # Usage
//
// Create a ledger for a game id, append an Entry for every draw, play, undo
// and discard, and call Verify at any time to check that nothing recorded
// has been altered:
//
//	l := ledger.New(gameID)
//	err := l.Append(ledger.Entry{Round: 1, Player: "Ann", Action: ledger.ActionDraw})
package ledger
