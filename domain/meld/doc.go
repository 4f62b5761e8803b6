// Package meld implements the table melds of Aces to Kings and the
// enumeration of every legal way to play cards onto them.
//
// # Core Types
//
// RankMeld: a set of cards of one rank (at most one per suit), jokers
// included.
//
// RunMeld: consecutive ranks of one suit. An Ace sits either below the Two
// or above the King; which one is decided the first time the Ace slot is
// filled and never changes afterwards.
//
// PlayOption: a self-contained description of one legal play, produced by
// FindPlayOptions and consumed by Play.
//
// Manager: the thirteen rank melds and four run melds of a table.
//
// # Playing
//
// Callers first ask for options, let the player pick one, then execute it:
//
//	opts := table.FindPlayOptions(cards...)
//	receipt, err := table.Play(hand, opts[i])
//
// Jokers displaced from a meld by the natural cards they were standing in for
// go back to the hand the cards came from and are listed in the receipt.
// The last play on a meld can be taken back with Undo.
//
// # Errors
//
// An illegal play is never an error: it simply produces no option. Errors
// are reserved for broken contracts such as executing an option produced by
// another meld or naming cards the source does not hold.
package meld
