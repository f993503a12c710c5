package deck

import (
	"strings"
	"testing"

	"luvo/app/models/card"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyIsStablePerDate(t *testing.T) {
	first := Daily("2025-03-14")
	second := Daily("2025-03-14")

	assert.Equal(t, first, second)
	assert.Equal(t, "2025-03-14", first.Date)
	assert.Nil(t, first.Card.Position)

	_, ok := card.Find(first.Card.ID)
	assert.True(t, ok)
}

func TestDailyVariesAcrossDates(t *testing.T) {
	ids := map[int]bool{}
	for _, date := range []string{
		"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04", "2025-01-05",
		"2025-01-06", "2025-01-07", "2025-01-08", "2025-01-09", "2025-01-10",
	} {
		ids[Daily(date).Card.ID] = true
	}
	assert.Greater(t, len(ids), 1)
}

func TestDailyMessage(t *testing.T) {
	for _, date := range []string{"2024-02-29", "2024-12-31", "2025-06-01", "2025-07-15"} {
		d := Daily(date)
		require.True(t, strings.HasPrefix(d.Message, "Карта дня: "+d.Card.NameRu))
		assert.Contains(t, d.Message, d.Card.Meaning)
		assert.Equal(t, d.Card.Reversed, strings.Contains(d.Message, "(перевернутая)"))
		assert.Equal(t, d.Card.Reversed, strings.Contains(d.Message, reversedAdvice))
	}
}

func TestDailyDoesNotTouchSharedRNG(t *testing.T) {
	a := NewDrawer(NewSeededRNG(9, 9))
	b := NewDrawer(NewSeededRNG(9, 9))

	first, err := a.Draw("horseshoe")
	require.NoError(t, err)

	Daily("2025-05-05")
	second, err := b.Draw("horseshoe")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
