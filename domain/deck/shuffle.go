package deck

import (
	"crypto/cipher"
	"math/big"

	"github.com/DanMoss/Card-Game/domain/card"
	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle permutes the deck in place using the suite's random stream.
func (d *Deck) Shuffle() {
	cards := d.Pile.Cards()
	perm := permutation(len(cards), d.stream)
	d.Pile.Reset()
	for _, i := range perm {
		d.Pile.Add(cards[i])
	}
}

// WithStream replaces the randomness source. Used to make shuffles
// reproducible.
func (d *Deck) WithStream(s cipher.Stream) *Deck {
	d.stream = s
	return d
}

// Helper function to generate a random permutation of size permSize
// (Fisher-Yates over the given stream).
func permutation(permSize int, stream cipher.Stream) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	for i := permSize - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// Refill moves every card of the discard pile except the top one back into
// the deck and shuffles. It returns the number of cards moved.
func (d *Deck) Refill(discard *card.Pile) (int, error) {
	cards := discard.Cards()
	if len(cards) <= 1 {
		return 0, nil
	}
	if err := discard.TransferTo(d.Pile, cards[:len(cards)-1]...); err != nil {
		return 0, err
	}
	d.Shuffle()
	return len(cards) - 1, nil
}
