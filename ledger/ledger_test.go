package ledger

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewLedgerGenesis(t *testing.T) {
	id := uuid.New()
	l := New(id)
	if l.Len() != 1 {
		t.Fatalf("expected only the genesis block, got %d", l.Len())
	}
	g := l.Latest()
	if g.Index != 0 || g.PrevHash != "0" || g.Entry.Action != ActionGenesis {
		t.Fatalf("unexpected genesis block %+v", g)
	}
	if g.GameID != id.String() || l.GameID() != id {
		t.Fatalf("expected game id %s, got %s", id, g.GameID)
	}
	if err := l.Verify(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewLedgerAssignsID(t *testing.T) {
	if New(uuid.Nil).GameID() == uuid.Nil {
		t.Fatal("expected a generated game id")
	}
}

func TestAppendChainsBlocks(t *testing.T) {
	l := New(uuid.New())
	entries := []Entry{
		{Round: 1, Action: ActionRoundStart, Detail: "aces"},
		{Round: 1, Player: "Ann", Action: ActionDraw, Cards: []string{"H7"}},
		{Round: 1, Player: "Ann", Action: ActionDiscard, Cards: []string{"C2"}},
	}
	for _, e := range entries {
		if err := l.Append(e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if l.Len() != 4 {
		t.Fatalf("expected 4 blocks, got %d", l.Len())
	}
	for i := 1; i < l.Len(); i++ {
		b, err := l.ByIndex(i)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		prev, _ := l.ByIndex(i - 1)
		if b.PrevHash != prev.Hash {
			t.Fatalf("block %d not linked to block %d", i, i-1)
		}
	}
	got := l.Entries()
	if len(got) != 3 || got[1].Player != "Ann" || got[2].Action != ActionDiscard {
		t.Fatalf("unexpected entries %+v", got)
	}
	if err := l.Verify(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestByIndexOutOfRange(t *testing.T) {
	l := New(uuid.New())
	if _, err := l.ByIndex(1); err == nil {
		t.Fatal("expected an error for a missing block")
	}
	if _, err := l.ByIndex(-1); err == nil {
		t.Fatal("expected an error for a negative index")
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(l *Ledger)
	}{
		{"changed entry", func(l *Ledger) { l.blocks[1].Entry.Player = "Mallory" }},
		{"changed cards", func(l *Ledger) { l.blocks[2].Entry.Cards = []string{"*S"} }},
		{"broken link", func(l *Ledger) { l.blocks[2].PrevHash = "deadbeef" }},
		{"wrong index", func(l *Ledger) { l.blocks[2].Index = 7 }},
		{"bad genesis", func(l *Ledger) { l.blocks[0].PrevHash = "1" }},
		{"foreign block", func(l *Ledger) {
			l.blocks[2].GameID = uuid.NewString()
			l.blocks[2].Hash = calculateHash(l.blocks[2])
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(uuid.New())
			_ = l.Append(Entry{Round: 1, Player: "Ann", Action: ActionPlay, Cards: []string{"H7"}})
			_ = l.Append(Entry{Round: 1, Player: "Bob", Action: ActionPlay, Cards: []string{"H8"}})
			tt.tamper(l)
			if err := l.Verify(); err == nil {
				t.Fatal("expected tampering to be detected")
			}
		})
	}
}
