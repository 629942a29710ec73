package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/vegas/internal/randutil"
)

func TestNewPool(t *testing.T) {
	p := NewPool()
	assert.Equal(t, 54, p.Len())

	total := 0
	for {
		v, ok := p.Draw()
		if !ok {
			break
		}
		total += v
	}
	assert.Equal(t, 2_500_000, total)
	assert.Zero(t, p.Len())
}

func TestShuffledPoolKeepsCards(t *testing.T) {
	counts := map[int]int{}
	p := NewShuffledPool(randutil.New(11))
	for p.Len() > 0 {
		v, _ := p.Draw()
		counts[v]++
	}
	for _, d := range Denominations {
		assert.Equal(t, d.Copies, counts[d.Value], "denomination %d", d.Value)
	}
}

func TestStackFill(t *testing.T) {
	tests := []struct {
		name      string
		pool      []int
		wantCards []int
		wantLeft  int
	}{
		{
			name:      "single large card",
			pool:      []int{10000, 90000},
			wantCards: []int{90000},
			wantLeft:  1,
		},
		{
			name:      "exact threshold",
			pool:      []int{60000, 20000, 30000},
			wantCards: []int{30000, 20000},
			wantLeft:  1,
		},
		{
			name:      "overshoots",
			pool:      []int{40000, 20000, 40000},
			wantCards: []int{40000, 20000},
			wantLeft:  1,
		},
		{
			name:      "pool runs dry",
			pool:      []int{10000, 20000},
			wantCards: []int{20000, 10000},
			wantLeft:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := PoolOf(tt.pool...)
			var s Stack
			drawn := s.Fill(pool)
			assert.Equal(t, tt.wantCards, s.Cards())
			assert.Equal(t, len(tt.wantCards), drawn)
			assert.Equal(t, tt.wantLeft, pool.Len())
		})
	}
}

func TestStackPop(t *testing.T) {
	s := StackOf(30000, 20000)

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 30000, v)

	v, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, 20000, v)

	_, ok = s.Pop()
	assert.False(t, ok)
	assert.Equal(t, 50000, s.Paid())
	assert.Zero(t, s.Total())

	s.Reset()
	assert.Zero(t, s.Paid())
	assert.Zero(t, s.Len())
}

func TestSixCasinosAlwaysStocked(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		pool := NewShuffledPool(randutil.New(seed))
		for casino := 1; casino <= 6; casino++ {
			var s Stack
			s.Fill(pool)
			require.GreaterOrEqual(t, s.Total(), Threshold, "seed %d casino %d", seed, casino)
		}
	}
}
