//go:build (amd64 || arm64) && !purego

package poker

import "math/bits"

// PlatformBatch names the batch path compiled into this build.
const PlatformBatch = "lanes4"

func newPlatformBatch(t *RankTables) BatchEvaluator {
	return newLaneBatch(t)
}

// laneWidth is the number of hands evaluated together per step.
const laneWidth = 4

// Packed suit words hold one 16-bit rank mask per suit:
// bits [16*s, 16*s+13) are the ranks present in suit s.
const (
	swarM1       = 0x5555555555555555
	swarM2       = 0x3333333333333333
	swarM4       = 0x0F0F0F0F0F0F0F0F
	swarM8       = 0x00FF00FF00FF00FF
	swarFiveBias = 0x000B000B000B000B // 16 - 5 in every lane
	swarBit4     = 0x0010001000100010
)

// laneBatch evaluates four hands at a time. Each step accumulates every
// lane's packed suit word, counts suit bits for all four suits at once with
// SWAR popcounts, forms per-lane prime products and gathers from the tables.
type laneBatch struct {
	t *RankTables
}

func newLaneBatch(t *RankTables) *laneBatch {
	return &laneBatch{t: t}
}

// EvaluateBatch implements BatchEvaluator.
func (lb *laneBatch) EvaluateBatch(hands []Hand, out []HandRank) []HandRank {
	out = sizeOut(out, len(hands))
	i := 0
	for ; i+laneWidth <= len(hands); i += laneWidth {
		lb.step((*[laneWidth]Hand)(hands[i:i+laneWidth]), laneWidth, (*[laneWidth]HandRank)(out[i:i+laneWidth]))
	}
	if rest := len(hands) - i; rest > 0 {
		var block [laneWidth]Hand
		var res [laneWidth]HandRank
		copy(block[:], hands[i:])
		lb.step(&block, rest, &res)
		copy(out[i:], res[:rest])
	}
	return out
}

// step evaluates the first n lanes of block into res.
func (lb *laneBatch) step(block *[laneWidth]Hand, n int, res *[laneWidth]HandRank) {
	var (
		suitBits [laneWidth][7]uint64
		primes   [laneWidth][7]uint32
		combos   [laneWidth]int
		flushy   [laneWidth]bool
		best     [laneWidth]HandRank
	)

	for l := 0; l < n; l++ {
		h := &block[l]
		var packed uint64
		for c := uint8(0); c < h.n; c++ {
			card := h.cards[c]
			suitBits[l][c] = 1 << (uint(card.Suit())*16 + uint(card.Rank()))
			primes[l][c] = card.Prime()
			packed |= suitBits[l][c]
		}
		combos[l] = 1
		if h.n == 7 {
			combos[l] = len(combos7)
		}
		// Without five cards of a suit among all cards no subset is a flush.
		flushy[l] = suitHasFive(packed) != 0
		best[l] = NumHandRanks + 1
	}

	for k := range combos7 {
		ix := &combos7[k]
		for l := 0; l < n; l++ {
			if k >= combos[l] {
				continue
			}
			sb, pr := &suitBits[l], &primes[l]

			var r HandRank
			if flushy[l] {
				packed := sb[ix[0]] | sb[ix[1]] | sb[ix[2]] | sb[ix[3]] | sb[ix[4]]
				if five := suitHasFive(packed); five != 0 {
					suit := uint(bits.TrailingZeros64(five)) / 16
					r = lb.t.flushLookup(uint16(packed >> (suit * 16)))
				}
			}
			if r == 0 {
				r = lb.t.nonFlushLookup(pr[ix[0]] * pr[ix[1]] * pr[ix[2]] * pr[ix[3]] * pr[ix[4]])
			}
			if r < best[l] {
				best[l] = r
			}
		}
	}

	for l := 0; l < n; l++ {
		res[l] = best[l]
	}
}

// suitHasFive returns a word with bit 4 of a 16-bit lane set for every suit
// holding at least five cards. At most seven cards are packed, so per-lane
// counts never carry into the neighbouring lane.
func suitHasFive(packed uint64) uint64 {
	x := packed - (packed>>1)&swarM1
	x = x&swarM2 + (x>>2)&swarM2
	x = (x + x>>4) & swarM4
	x = (x + x>>8) & swarM8
	return (x + swarFiveBias) & swarBit4
}
