package spread

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositions(t *testing.T) {
	assert.Equal(t, []string{"Прошлое", "Настоящее", "Будущее"}, Positions(Three))
	assert.Equal(t, []string{
		"Текущая ситуация", "Вызов/Крест", "Далекое прошлое",
		"Недавнее прошлое", "Возможное будущее", "Ближайшее будущее",
		"Ваш подход", "Внешние влияния", "Надежды и страхи",
		"Финальный результат",
	}, Positions(Celtic))
	assert.Empty(t, Positions("pentagram"))
}

func TestPositionsReturnsCopy(t *testing.T) {
	p := Positions(Single)
	p[0] = "changed"
	assert.Equal(t, "Ситуация", Positions(Single)[0])
}

func TestAllMatchesRegistry(t *testing.T) {
	all := All()
	assert.Len(t, all, 5)

	want := map[string]int{Single: 1, Three: 3, Celtic: 10, Relationship: 6, Horseshoe: 7}
	for i, s := range all {
		assert.Equal(t, order[i], s.ID)
		assert.Equal(t, want[s.ID], s.Cards, s.ID)
		assert.Equal(t, len(Positions(s.ID)), s.Cards, s.ID)
		assert.NotEmpty(t, s.Name)
		assert.True(t, Exists(s.ID))
	}
	assert.False(t, Exists(""))
}
