package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Ledger struct {
	mu     sync.RWMutex
	gameID uuid.UUID
	blocks []Block
	now    func() time.Time
}

// New creates a ledger for the given game with an initialized genesis block.
// The genesis block has index 0 and previous hash "0". A nil id is replaced by
// a fresh random one.
func New(gameID uuid.UUID) *Ledger {
	if gameID == uuid.Nil {
		gameID = uuid.New()
	}
	l := &Ledger{
		gameID: gameID,
		blocks: make([]Block, 0),
		now:    time.Now,
	}

	genesis := Block{
		Index:     0,
		Timestamp: l.now().Unix(),
		PrevHash:  "0",
		GameID:    gameID.String(),
		Entry:     Entry{Action: ActionGenesis},
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)

	return l
}

// GameID returns the id of the game the ledger belongs to.
func (l *Ledger) GameID() uuid.UUID {
	return l.gameID
}

// Append links a new block holding e to the end of the chain. Returns an
// error if the resulting block does not validate against its predecessor.
func (l *Ledger) Append(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.blocks[len(l.blocks)-1]
	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: l.now().Unix(),
		PrevHash:  latest.Hash,
		GameID:    l.gameID.String(),
		Entry:     e,
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	l.blocks = append(l.blocks, newBlock)
	return nil
}

// Latest returns the most recently added block.
func (l *Ledger) Latest() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.blocks[len(l.blocks)-1]
}

// ByIndex retrieves a block by its index in the chain.
func (l *Ledger) ByIndex(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return l.blocks[index], nil
}

// Len is the number of blocks, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.blocks)
}

// Entries returns the recorded entries in order, genesis excluded.
func (l *Ledger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, 0, len(l.blocks)-1)
	for _, b := range l.blocks[1:] {
		out = append(out, b.Entry)
	}
	return out
}

// Verify validates the whole chain: the genesis block, then index
// continuity, previous hash linkage and hash of every later block.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("empty ledger")
	}
	if l.blocks[0].PrevHash != "0" || l.blocks[0].Hash != calculateHash(l.blocks[0]) {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if current.GameID != previous.GameID {
		return fmt.Errorf("block belongs to game %s, not %s", current.GameID, previous.GameID)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 of a block from its index, timestamp,
// previous hash, game id and JSON encoded entry.
func calculateHash(block Block) string {
	entryBytes, _ := json.Marshal(block.Entry)

	data := fmt.Sprintf("%d%d%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		block.GameID,
		string(entryBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
