package bench

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/oracle/internal/config"
	"github.com/lox/oracle/internal/randutil"
	"github.com/lox/oracle/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clockedEvaluator advances a mock clock by a fixed cost per hand so round
// timings are deterministic.
type clockedEvaluator struct {
	*poker.Evaluator
	clock   *quartz.Mock
	perHand time.Duration
}

func (c clockedEvaluator) Evaluate7(cards [7]poker.Card) poker.HandRank {
	c.clock.Advance(c.perHand)
	return c.Evaluator.Evaluate7(cards)
}

func (c clockedEvaluator) EvaluateBatch(hands []poker.Hand, out []poker.HandRank) []poker.HandRank {
	c.clock.Advance(c.perHand * time.Duration(len(hands)))
	return c.Evaluator.EvaluateBatch(hands, out)
}

func TestGenerateHandsMatchesLCGStream(t *testing.T) {
	t.Parallel()
	hands, err := GenerateHands(randutil.DefaultLCGSeed, 1000)
	require.NoError(t, err)
	require.Len(t, hands, 1000)

	assert.Equal(t, "5h8sAc8dQh4sJc", hands[0].String())
	assert.Equal(t, "Jd4hQs7c3d3h6s", hands[1].String())
	assert.Equal(t, "7cKd8h6s3c7dAh", hands[2].String())
	for _, h := range hands {
		require.Equal(t, 7, h.Len())
	}

	again, err := GenerateHands(randutil.DefaultLCGSeed, 3)
	require.NoError(t, err)
	assert.Equal(t, hands[:3], again)
}

func TestRunModesAgree(t *testing.T) {
	t.Parallel()
	for _, mode := range config.Modes {
		t.Run(mode, func(t *testing.T) {
			t.Parallel()
			res, err := Run(context.Background(), Config{
				Hands:  1000,
				Rounds: 2,
				Seed:   randutil.DefaultLCGSeed,
				Mode:   mode,
			})
			require.NoError(t, err)
			assert.Equal(t, mode, res.Mode)
			assert.Len(t, res.Rounds, 2)
			assert.Equal(t, uint64(4028341), res.Checksum)

			var want [poker.NumCategories]int
			want[poker.HighCard] = 170
			want[poker.OnePair] = 408
			want[poker.TwoPair] = 260
			want[poker.ThreeOfAKind] = 64
			want[poker.Straight] = 57
			want[poker.FullHouse] = 34
			want[poker.FourOfAKind] = 7
			assert.Equal(t, want, res.Categories)
		})
	}
}

func TestRunTimingWithMockClock(t *testing.T) {
	t.Parallel()
	for _, mode := range config.Modes {
		t.Run(mode, func(t *testing.T) {
			t.Parallel()
			mClock := quartz.NewMock(t)
			started := mClock.Now()

			res, err := Run(context.Background(), Config{
				Hands:     1000,
				Rounds:    3,
				Seed:      1,
				Mode:      mode,
				Workers:   2,
				Evaluator: clockedEvaluator{Evaluator: poker.NewEvaluator(nil), clock: mClock, perHand: time.Microsecond},
				Clock:     mClock,
			})
			require.NoError(t, err)
			assert.Equal(t, started, res.Started)

			require.Len(t, res.Rounds, 3)
			for i, r := range res.Rounds {
				assert.Equal(t, i+1, r.Index)
				assert.Equal(t, time.Millisecond, r.Elapsed)
				assert.InDelta(t, 1e6, r.HandsPerSecond, 1e-3)
			}
			assert.Equal(t, 3, res.Summary.Rounds)
			assert.InDelta(t, 1e6, res.Summary.Mean, 1e-3)
			assert.InDelta(t, 0, res.Summary.StdDev, 1e-6)
		})
	}
}

func TestRunZeroElapsedReportsZeroRate(t *testing.T) {
	t.Parallel()
	res, err := Run(context.Background(), Config{Hands: 10, Clock: quartz.NewMock(t)})
	require.NoError(t, err)
	require.Len(t, res.Rounds, 1)
	assert.Zero(t, res.Rounds[0].Elapsed)
	assert.Zero(t, res.Rounds[0].HandsPerSecond)
	assert.Equal(t, config.ModeScalar, res.Mode)
}

func TestNewRejectsBadConfig(t *testing.T) {
	t.Parallel()
	_, err := New(Config{Hands: 0})
	assert.ErrorContains(t, err, "hands must be positive")

	_, err = New(Config{Hands: 10, Mode: "simd"})
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Config{Hands: 10, Rounds: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	s := Summarize([]float64{30, 10, 20})
	assert.Equal(t, 3, s.Rounds)
	assert.InDelta(t, 20, s.Mean, 1e-9)
	assert.InDelta(t, 10, s.StdDev, 1e-9)
	assert.InDelta(t, 20, s.Median, 1e-9)
	assert.Equal(t, 10.0, s.Min)
	assert.Equal(t, 30.0, s.Max)
	assert.InDelta(t, 0.5, s.CoefficientOfVariation(), 1e-9)

	one := Summarize([]float64{5})
	assert.Equal(t, 5.0, one.Mean)
	assert.Zero(t, one.StdDev)

	assert.Equal(t, Summary{}, Summarize(nil))
	assert.Zero(t, Summary{}.CoefficientOfVariation())
}

func BenchmarkGenerateHands(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = GenerateHands(randutil.DefaultLCGSeed, 1000)
	}
}
