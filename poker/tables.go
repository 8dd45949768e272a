package poker

import (
	"fmt"
	"math/bits"
	"sync"

	chd "github.com/opencoff/go-chd"
)

const (
	rankMaskAll   = 0x1FFF // all thirteen rank bits
	wheelMask     = 0x100F // A-2-3-4-5
	broadwayMask  = 0x1F00 // T-J-Q-K-A
	flushTableLen = 1 << NumRanks

	// Reachable keys per table.
	flushEntries    = straightFlushCount + flushCount
	nonFlushEntries = fourOfAKindCount + fullHouseCount + straightCount +
		threeOfAKindCount + twoPairCount + onePairCount + highCardCount

	// chdLoad is the CHD load factor; lower trades table size for build speed.
	chdLoad = 0.85
)

// RankTables holds the two precomputed lookup tables. A RankTables is
// immutable once built and safe for concurrent use.
type RankTables struct {
	// flush is indexed by the 13-bit rank mask of a five card flush.
	flush [flushTableLen]HandRank

	// nonFlush maps a prime product to a slot; slotKeys verifies that the
	// slot belongs to the product and slotRanks holds its rank.
	nonFlush  *chd.Chd
	slotKeys  []uint32
	slotRanks []HandRank
}

// TableStats describes the size of built tables.
type TableStats struct {
	FlushEntries    int
	NonFlushEntries int
	HashSlots       int
	Bytes           int
}

var defaultTables = sync.OnceValues(BuildTables)

// DefaultTables returns the process-wide tables, building them on first use.
// It panics if construction fails, which indicates a programming error.
func DefaultTables() *RankTables {
	t, err := defaultTables()
	if err != nil {
		panic(err)
	}
	return t
}

// Init builds the process-wide tables eagerly and reports construction errors.
func Init() error {
	_, err := defaultTables()
	return err
}

// BuildTables enumerates every hand shape in strength order, assigns ranks
// from 1 upward, and returns freshly built tables.
func BuildTables() (*RankTables, error) {
	t := &RankTables{}
	b := tableBuilder{t: t, next: BestRank}

	straights := straightMasks()
	fiveRankMasks := distinctFiveRankMasks()

	for _, m := range straights {
		if err := b.addFlush(m); err != nil {
			return nil, err
		}
	}

	for quad := Ace; quad <= Ace; quad-- {
		for kicker := Ace; kicker <= Ace; kicker-- {
			if kicker == quad {
				continue
			}
			if err := b.addRanks(quad, quad, quad, quad, kicker); err != nil {
				return nil, err
			}
		}
	}

	for trip := Ace; trip <= Ace; trip-- {
		for pair := Ace; pair <= Ace; pair-- {
			if pair == trip {
				continue
			}
			if err := b.addRanks(trip, trip, trip, pair, pair); err != nil {
				return nil, err
			}
		}
	}

	for _, m := range fiveRankMasks {
		if err := b.addFlush(m); err != nil {
			return nil, err
		}
	}

	for _, m := range straights {
		if err := b.addRanks(ranksOfMask(m)...); err != nil {
			return nil, err
		}
	}

	for trip := Ace; trip <= Ace; trip-- {
		for _, k := range kickerCombos(2, 1<<trip) {
			if err := b.addRanks(trip, trip, trip, k[0], k[1]); err != nil {
				return nil, err
			}
		}
	}

	for high := Ace; high <= Ace; high-- {
		for low := high - 1; low < high; low-- {
			for _, k := range kickerCombos(1, 1<<high|1<<low) {
				if err := b.addRanks(high, high, low, low, k[0]); err != nil {
					return nil, err
				}
			}
		}
	}

	for pair := Ace; pair <= Ace; pair-- {
		for _, k := range kickerCombos(3, 1<<pair) {
			if err := b.addRanks(pair, pair, k[0], k[1], k[2]); err != nil {
				return nil, err
			}
		}
	}

	for _, m := range fiveRankMasks {
		if err := b.addRanks(ranksOfMask(m)...); err != nil {
			return nil, err
		}
	}

	if err := b.finish(); err != nil {
		return nil, err
	}
	return t, nil
}

// FlushRank returns the rank of a flush with the given rank mask.
func (t *RankTables) FlushRank(mask uint16) (HandRank, bool) {
	if mask >= flushTableLen {
		return 0, false
	}
	r := t.flush[mask]
	return r, r != 0
}

// NonFlushRank returns the rank of a non-flush hand with the given prime product.
func (t *RankTables) NonFlushRank(product uint32) (HandRank, bool) {
	slot := t.nonFlush.Find(uint64(product))
	if slot >= uint64(len(t.slotKeys)) || t.slotKeys[slot] != product {
		return 0, false
	}
	return t.slotRanks[slot], true
}

// Stats returns entry counts and the memory held by the tables.
func (t *RankTables) Stats() TableStats {
	s := TableStats{HashSlots: len(t.slotKeys)}
	for _, r := range t.flush {
		if r != 0 {
			s.FlushEntries++
		}
	}
	for _, k := range t.slotKeys {
		if k != 0 {
			s.NonFlushEntries++
		}
	}
	s.Bytes = len(t.flush)*2 + len(t.slotKeys)*4 + len(t.slotRanks)*2
	return s
}

// flushLookup is the hot-path flush lookup; a miss is fatal.
func (t *RankTables) flushLookup(mask uint16) HandRank {
	r := t.flush[mask&rankMaskAll]
	if r == 0 {
		panic(fmt.Errorf("%w: no flush entry for mask %013b", ErrTableCorrupt, mask))
	}
	return r
}

// nonFlushLookup is the hot-path prime product lookup; a miss is fatal.
func (t *RankTables) nonFlushLookup(product uint32) HandRank {
	slot := t.nonFlush.Find(uint64(product))
	if slot >= uint64(len(t.slotKeys)) || t.slotKeys[slot] != product {
		panic(fmt.Errorf("%w: no entry for prime product %d", ErrTableCorrupt, product))
	}
	return t.slotRanks[slot]
}

type tableBuilder struct {
	t    *RankTables
	next HandRank

	flushCount int
	products   []uint32
	ranks      []HandRank
}

func (b *tableBuilder) take() HandRank {
	r := b.next
	b.next++
	return r
}

func (b *tableBuilder) addFlush(mask uint16) error {
	if b.t.flush[mask] != 0 {
		return fmt.Errorf("%w: duplicate flush mask %013b", ErrTableCorrupt, mask)
	}
	b.t.flush[mask] = b.take()
	b.flushCount++
	return nil
}

func (b *tableBuilder) addRanks(ranks ...Rank) error {
	if len(ranks) != 5 {
		return fmt.Errorf("%w: shape with %d ranks", ErrTableCorrupt, len(ranks))
	}
	product := uint32(1)
	for _, r := range ranks {
		product *= rankPrimes[r]
	}
	b.products = append(b.products, product)
	b.ranks = append(b.ranks, b.take())
	return nil
}

// finish compacts the collected prime products behind a CHD minimal perfect
// hash and checks the tables cover exactly the reachable hands.
func (b *tableBuilder) finish() error {
	if got := int(b.next - 1); got != NumHandRanks {
		return fmt.Errorf("%w: assigned %d ranks, want %d", ErrTableCorrupt, got, NumHandRanks)
	}
	if b.flushCount != flushEntries {
		return fmt.Errorf("%w: %d flush entries, want %d", ErrTableCorrupt, b.flushCount, flushEntries)
	}
	if len(b.products) != nonFlushEntries {
		return fmt.Errorf("%w: %d non-flush entries, want %d", ErrTableCorrupt, len(b.products), nonFlushEntries)
	}

	hb, err := chd.New()
	if err != nil {
		return fmt.Errorf("creating perfect hash builder: %w", err)
	}
	for _, p := range b.products {
		if err := hb.Add(uint64(p)); err != nil {
			return fmt.Errorf("adding prime product %d: %w", p, err)
		}
	}
	h, err := hb.Freeze(chdLoad)
	if err != nil {
		return fmt.Errorf("freezing perfect hash: %w", err)
	}

	slots := make([]uint64, len(b.products))
	var maxSlot uint64
	for i, p := range b.products {
		slots[i] = h.Find(uint64(p))
		maxSlot = max(maxSlot, slots[i])
	}

	b.t.nonFlush = h
	b.t.slotKeys = make([]uint32, maxSlot+1)
	b.t.slotRanks = make([]HandRank, maxSlot+1)
	for i, p := range b.products {
		s := slots[i]
		if b.t.slotKeys[s] != 0 {
			return fmt.Errorf("%w: products %d and %d share slot %d", ErrTableCorrupt, b.t.slotKeys[s], p, s)
		}
		b.t.slotKeys[s] = p
		b.t.slotRanks[s] = b.ranks[i]
	}
	return nil
}

// straightMasks returns the ten straight rank masks from ace-high down to the wheel.
func straightMasks() []uint16 {
	masks := make([]uint16, 0, straightCount)
	for m := uint16(broadwayMask); m >= 0x1F; m >>= 1 {
		masks = append(masks, m)
	}
	return append(masks, wheelMask)
}

func isStraightMask(m uint16) bool {
	if m == wheelMask {
		return true
	}
	return m == 0x1F<<bits.TrailingZeros16(m)
}

// distinctFiveRankMasks returns every non-straight mask with five ranks set,
// strongest first. Numeric order of masks matches high-card order.
func distinctFiveRankMasks() []uint16 {
	masks := make([]uint16, 0, highCardCount)
	for m := uint16(rankMaskAll); m > 0; m-- {
		if bits.OnesCount16(m) == 5 && !isStraightMask(m) {
			masks = append(masks, m)
		}
	}
	return masks
}

func ranksOfMask(m uint16) []Rank {
	ranks := make([]Rank, 0, 5)
	for rest := m; rest != 0; rest &= rest - 1 {
		ranks = append(ranks, Rank(bits.TrailingZeros16(rest)))
	}
	return ranks
}

// kickerCombos returns every descending combination of n ranks outside
// exclude, strongest combination first.
func kickerCombos(n int, exclude uint16) [][]Rank {
	var out [][]Rank
	combo := make([]Rank, 0, n)
	var walk func(below Rank)
	walk = func(below Rank) {
		if len(combo) == n {
			out = append(out, append([]Rank(nil), combo...))
			return
		}
		for r := below - 1; r < below; r-- {
			if exclude&(1<<r) != 0 {
				continue
			}
			combo = append(combo, r)
			walk(r)
			combo = combo[:len(combo)-1]
		}
	}
	walk(NumRanks)
	return out
}
