package deck

import (
	"fmt"
	"testing"

	"luvo/app/models/card"
	"luvo/app/models/spread"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceRNG 按预设序列返回值，序列用完后循环
type sequenceRNG struct {
	ints   []int
	floats []float64
	i, f   int
}

func (s *sequenceRNG) IntN(n int) int {
	v := s.ints[s.i%len(s.ints)] % n
	s.i++
	return v
}

func (s *sequenceRNG) Float64() float64 {
	v := s.floats[s.f%len(s.floats)]
	s.f++
	return v
}

func TestDrawMatchesSpreadPositions(t *testing.T) {
	drawer := NewDrawer(NewSeededRNG(1, 2))

	for _, id := range spread.IDs() {
		t.Run(id, func(t *testing.T) {
			cards, err := drawer.Draw(id)
			require.NoError(t, err)

			positions := spread.Positions(id)
			require.Len(t, cards, len(positions))
			for i, c := range cards {
				assert.Equal(t, positions[i], c.PositionLabel())
			}
		})
	}
}

func TestDrawThreeAndCeltic(t *testing.T) {
	drawer := NewDrawer(nil)

	three, err := drawer.Draw("three")
	require.NoError(t, err)
	labels := make([]string, len(three))
	for i, c := range three {
		labels[i] = c.PositionLabel()
	}
	assert.Equal(t, []string{"Прошлое", "Настоящее", "Будущее"}, labels)

	celtic, err := drawer.Draw("celtic")
	require.NoError(t, err)
	assert.Len(t, celtic, 10)
	assert.Equal(t, "Текущая ситуация", celtic[0].PositionLabel())
	assert.Equal(t, "Финальный результат", celtic[9].PositionLabel())
}

func TestDrawWithoutReplacement(t *testing.T) {
	drawer := NewDrawer(NewSeededRNG(42, 7))

	for round := 0; round < 500; round++ {
		cards, err := drawer.Draw("celtic")
		require.NoError(t, err)

		seen := map[int]bool{}
		for _, c := range cards {
			assert.False(t, seen[c.ID], "round %d: duplicate card %d", round, c.ID)
			seen[c.ID] = true

			catalogCard, ok := card.Find(c.ID)
			require.True(t, ok)
			assert.Equal(t, catalogCard.Name, c.Name)
		}
	}
}

func TestDrawUnknownSpread(t *testing.T) {
	cards, err := NewDrawer(nil).Draw("pentagram")
	assert.ErrorIs(t, err, ErrUnknownSpread)
	assert.Nil(t, cards)
}

func TestDrawUsesInjectedRNG(t *testing.T) {
	// 全 0 序列：每一步都与位置 0 交换，最终排列为 1,2,...,77,0
	rng := &sequenceRNG{ints: []int{0}, floats: []float64{0.1, 0.5, 0.29}}

	cards, err := NewDrawer(rng).Draw("three")
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, []int{cards[0].ID, cards[1].ID, cards[2].ID})
	assert.Equal(t, []bool{true, false, true}, []bool{cards[0].Reversed, cards[1].Reversed, cards[2].Reversed})
}

func TestReversedRate(t *testing.T) {
	drawer := NewDrawer(NewSeededRNG(2024, 10))

	const rounds = 10000
	var reversed, total, bothFirstTwo int
	for i := 0; i < rounds; i++ {
		cards, err := drawer.Draw("celtic")
		require.NoError(t, err)
		for _, c := range cards {
			total++
			if c.Reversed {
				reversed++
			}
		}
		if cards[0].Reversed && cards[1].Reversed {
			bothFirstTwo++
		}
	}

	rate := float64(reversed) / float64(total)
	assert.InDelta(t, ReversedProbability, rate, 0.015, fmt.Sprintf("reversed rate %.4f", rate))

	// 同一次抽牌中的逆位相互独立：P(两张都逆位) ≈ 0.09
	joint := float64(bothFirstTwo) / rounds
	assert.InDelta(t, ReversedProbability*ReversedProbability, joint, 0.02)
}

func TestSingleDrawIsUniform(t *testing.T) {
	drawer := NewDrawer(NewSeededRNG(3, 4))

	const rounds = 78 * 1000
	counts := make([]int, card.Total)
	for i := 0; i < rounds; i++ {
		cards, err := drawer.Draw("single")
		require.NoError(t, err)
		counts[cards[0].ID]++
	}

	for id, n := range counts {
		assert.InDelta(t, 1000, n, 200, "card %d drawn %d times", id, n)
	}
}
