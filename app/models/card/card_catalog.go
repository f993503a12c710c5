package card

import (
	"fmt"
	"strings"
)

const (
	// MajorCount 大阿卡纳数量
	MajorCount = 22
	// Total 整副牌的数量
	Total = 78
)

// majorArcana 大阿卡纳 0-21
var majorArcana = []Card{
	{ID: 0, Name: "The Fool", NameRu: "Шут", Meaning: "новые начинания, спонтанность, невинность",
		Keywords: []string{"начало", "потенциал", "риск"}, Image: "m00.jpg"},
	{ID: 1, Name: "The Magician", NameRu: "Маг", Meaning: "проявление, находчивость, сила воли",
		Keywords: []string{"воля", "мастерство", "действие"}, Image: "m01.jpg"},
	{ID: 2, Name: "The High Priestess", NameRu: "Верховная Жрица", Meaning: "интуиция, тайны, подсознание",
		Keywords: []string{"интуиция", "мудрость", "тайна"}, Image: "m02.jpg"},
	{ID: 3, Name: "The Empress", NameRu: "Императрица", Meaning: "плодородие, женственность, изобилие",
		Keywords: []string{"творчество", "природа", "изобилие"}, Image: "m03.jpg"},
	{ID: 4, Name: "The Emperor", NameRu: "Император", Meaning: "власть, структура, контроль",
		Keywords: []string{"власть", "стабильность", "защита"}, Image: "m04.jpg"},
	{ID: 5, Name: "The Hierophant", NameRu: "Иерофант", Meaning: "традиция, соответствие, мораль",
		Keywords: []string{"традиция", "обучение", "вера"}, Image: "m05.jpg"},
	{ID: 6, Name: "The Lovers", NameRu: "Влюбленные", Meaning: "партнерство, выбор, гармония",
		Keywords: []string{"любовь", "выбор", "союз"}, Image: "m06.jpg"},
	{ID: 7, Name: "The Chariot", NameRu: "Колесница", Meaning: "воля, решительность, победа",
		Keywords: []string{"победа", "контроль", "движение"}, Image: "m07.jpg"},
	{ID: 8, Name: "Strength", NameRu: "Сила", Meaning: "внутренняя сила, смелость, терпение",
		Keywords: []string{"храбрость", "терпение", "контроль"}, Image: "m08.jpg"},
	{ID: 9, Name: "The Hermit", NameRu: "Отшельник", Meaning: "самоанализ, поиск, руководство",
		Keywords: []string{"поиск", "мудрость", "одиночество"}, Image: "m09.jpg"},
	{ID: 10, Name: "Wheel of Fortune", NameRu: "Колесо Фортуны", Meaning: "удача, карма, жизненные циклы",
		Keywords: []string{"судьба", "цикл", "удача"}, Image: "m10.jpg"},
	{ID: 11, Name: "Justice", NameRu: "Справедливость", Meaning: "справедливость, правда, закон",
		Keywords: []string{"баланс", "карма", "правда"}, Image: "m11.jpg"},
	{ID: 12, Name: "The Hanged Man", NameRu: "Повешенный", Meaning: "жертва, отпускание, новая перспектива",
		Keywords: []string{"пауза", "жертва", "просветление"}, Image: "m12.jpg"},
	{ID: 13, Name: "Death", NameRu: "Смерть", Meaning: "окончание, трансформация, переход",
		Keywords: []string{"конец", "трансформация", "обновление"}, Image: "m13.jpg"},
	{ID: 14, Name: "Temperance", NameRu: "Умеренность", Meaning: "баланс, умеренность, терпение",
		Keywords: []string{"баланс", "исцеление", "гармония"}, Image: "m14.jpg"},
	{ID: 15, Name: "The Devil", NameRu: "Дьявол", Meaning: "зависимость, материализм, игривость",
		Keywords: []string{"искушение", "привязанность", "материализм"}, Image: "m15.jpg"},
	{ID: 16, Name: "The Tower", NameRu: "Башня", Meaning: "внезапные изменения, освобождение, откровение",
		Keywords: []string{"крах", "освобождение", "прозрение"}, Image: "m16.jpg"},
	{ID: 17, Name: "The Star", NameRu: "Звезда", Meaning: "надежда, вера, обновление",
		Keywords: []string{"надежда", "вдохновение", "духовность"}, Image: "m17.jpg"},
	{ID: 18, Name: "The Moon", NameRu: "Луна", Meaning: "иллюзии, страх, беспокойство",
		Keywords: []string{"иллюзия", "интуиция", "подсознание"}, Image: "m18.jpg"},
	{ID: 19, Name: "The Sun", NameRu: "Солнце", Meaning: "радость, успех, праздник",
		Keywords: []string{"успех", "радость", "ясность"}, Image: "m19.jpg"},
	{ID: 20, Name: "Judgement", NameRu: "Суд", Meaning: "размышление, расплата, внутренний призыв",
		Keywords: []string{"возрождение", "решение", "призвание"}, Image: "m20.jpg"},
	{ID: 21, Name: "The World", NameRu: "Мир", Meaning: "завершение, достижение, путешествие",
		Keywords: []string{"завершение", "успех", "целостность"}, Image: "m21.jpg"},
}

// suit 小阿卡纳花色
type suit struct {
	Name    string
	NameRu  string
	Element string
	Prefix  string
}

// rank 小阿卡纳点数，11-14 为宫廷牌
type rank struct {
	Number  int
	Name    string
	NameRu  string
	Meaning string
}

// 花色顺序决定小阿卡纳的编号，不能调整
var suits = []suit{
	{Name: "Cups", NameRu: "Кубки", Element: "Вода", Prefix: "c"},
	{Name: "Pentacles", NameRu: "Пентакли", Element: "Земля", Prefix: "p"},
	{Name: "Swords", NameRu: "Мечи", Element: "Воздух", Prefix: "s"},
	{Name: "Wands", NameRu: "Жезлы", Element: "Огонь", Prefix: "w"},
}

var ranks = []rank{
	{1, "Ace", "Туз", "новое начало, потенциал"},
	{2, "Two", "Двойка", "баланс, партнерство"},
	{3, "Three", "Тройка", "рост, творчество"},
	{4, "Four", "Четверка", "стабильность, основа"},
	{5, "Five", "Пятерка", "конфликт, вызов"},
	{6, "Six", "Шестерка", "гармония, успех"},
	{7, "Seven", "Семерка", "размышление, оценка"},
	{8, "Eight", "Восьмерка", "движение, прогресс"},
	{9, "Nine", "Девятка", "достижение, завершение"},
	{10, "Ten", "Десятка", "кульминация, полнота"},
	{11, "Page", "Паж", "начинающий, посланник"},
	{12, "Knight", "Рыцарь", "действие, движение"},
	{13, "Queen", "Королева", "зрелость, забота"},
	{14, "King", "Король", "мастерство, власть"},
}

// catalog 完整牌库，按 ID 排列
var catalog = buildCatalog()

func buildCatalog() []Card {
	cards := make([]Card, 0, Total)
	cards = append(cards, majorArcana...)

	id := MajorCount
	for _, s := range suits {
		for _, r := range ranks {
			cards = append(cards, Card{
				ID:       id,
				Name:     fmt.Sprintf("%s of %s", r.Name, s.Name),
				NameRu:   fmt.Sprintf("%s %s", r.NameRu, s.NameRu),
				Meaning:  minorMeaning(s, r),
				Keywords: []string{},
				Suit:     s.Name,
				SuitRu:   s.NameRu,
				Rank:     r.Name,
				RankRu:   r.NameRu,
				Element:  s.Element,
				Image:    fmt.Sprintf("%s%02d.jpg", s.Prefix, r.Number),
			})
			id++
		}
	}
	return cards
}

// minorMeaning 按点数类别（Ace / 2-10 / 宫廷牌）套模板生成牌义
func minorMeaning(s suit, r rank) string {
	element := strings.ToLower(s.Element)
	switch {
	case r.Number == 1:
		return fmt.Sprintf("новое начало в сфере %s, чистый потенциал %s", strings.ToLower(s.NameRu), element)
	case r.Number >= 11:
		return fmt.Sprintf("%s в контексте %s", r.Meaning, element)
	default:
		return fmt.Sprintf("%s, энергия %s", r.Meaning, element)
	}
}

// All 返回整副牌的副本，按 ID 0..77 排列
func All() []Card {
	cards := make([]Card, len(catalog))
	copy(cards, catalog)
	return cards
}

// Find 按 ID 查找牌
func Find(id int) (Card, bool) {
	if id < 0 || id >= len(catalog) {
		return Card{}, false
	}
	return catalog[id], true
}

// Count 牌库数量
func Count() int {
	return len(catalog)
}
