package ledger

// Action is the kind of game event recorded in an entry.
type Action string

const (
	ActionGenesis    Action = "genesis"
	ActionRoundStart Action = "round_start"
	ActionDraw       Action = "draw"
	ActionPlay       Action = "play"
	ActionUndo       Action = "undo"
	ActionDiscard    Action = "discard"
	ActionRoundEnd   Action = "round_end"
)

// Entry is one game event.
type Entry struct {
	Round  int      `json:"round"`
	Player string   `json:"player,omitempty"`
	Action Action   `json:"action"`
	Cards  []string `json:"cards,omitempty"` // card codes, e.g. "H7" or "*S"
	Detail string   `json:"detail,omitempty"`
}

// Block wraps an entry with its position in the chain.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	GameID    string `json:"game_id"`
	Entry     Entry  `json:"entry"`
}
