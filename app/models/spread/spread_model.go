// Package spread 牌阵注册表
package spread

// Spread 牌阵元数据，Cards 等于位置数量
type Spread struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cards       int    `json:"cards"`
}

// 牌阵标识
const (
	Single       = "single"
	Three        = "three"
	Celtic       = "celtic"
	Relationship = "relationship"
	Horseshoe    = "horseshoe"
)

type layout struct {
	name        string
	description string
	positions   []string
}

// order 列表接口的展示顺序
var order = []string{Single, Three, Celtic, Relationship, Horseshoe}

var layouts = map[string]layout{
	Single: {
		name:        "Одна карта",
		description: "Быстрый ответ на вопрос",
		positions:   []string{"Ситуация"},
	},
	Three: {
		name:        "Три карты",
		description: "Прошлое, настоящее, будущее",
		positions:   []string{"Прошлое", "Настоящее", "Будущее"},
	},
	Celtic: {
		name:        "Кельтский крест",
		description: "Глубокий анализ ситуации",
		positions: []string{
			"Текущая ситуация", "Вызов/Крест", "Далекое прошлое",
			"Недавнее прошлое", "Возможное будущее", "Ближайшее будущее",
			"Ваш подход", "Внешние влияния", "Надежды и страхи",
			"Финальный результат",
		},
	},
	Relationship: {
		name:        "Отношения",
		description: "Анализ партнерства",
		positions:   []string{"Вы", "Партнер", "Связь", "Сильные стороны", "Слабые стороны", "Совет"},
	},
	Horseshoe: {
		name:        "Подкова",
		description: "Развитие ситуации",
		positions:   []string{"Прошлое", "Настоящее", "Будущее", "Путь", "Влияния других", "Препятствия", "Результат"},
	},
}
