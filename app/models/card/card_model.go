// Package card 塔罗牌牌库，78 张牌在程序启动时生成，之后只读
package card

// Card 牌库中的一张牌
type Card struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	NameRu   string   `json:"name_ru"`
	Meaning  string   `json:"meaning"`
	Keywords []string `json:"keywords"`

	// 以下属性只有小阿卡纳才有
	Suit    string `json:"suit,omitempty"`
	SuitRu  string `json:"suit_ru,omitempty"`
	Rank    string `json:"rank,omitempty"`
	RankRu  string `json:"rank_ru,omitempty"`
	Element string `json:"element,omitempty"`

	Image string `json:"image"`
}

// DrawnCard 抽到某个牌阵位置上的牌，每次抽牌新建，不在解读之间共享
type DrawnCard struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	NameRu   string   `json:"name_ru"`
	Meaning  string   `json:"meaning"`
	Keywords []string `json:"keywords"`

	Suit    string `json:"suit,omitempty"`
	SuitRu  string `json:"suit_ru,omitempty"`
	Rank    string `json:"rank,omitempty"`
	RankRu  string `json:"rank_ru,omitempty"`
	Element string `json:"element,omitempty"`

	// Position 为 nil 表示不属于任何牌阵（每日一牌）
	Position *string `json:"position"`
	Reversed bool    `json:"reversed"`
	Image    string  `json:"image,omitempty"`
}

// IsMajor 是否大阿卡纳
func (c Card) IsMajor() bool {
	return c.ID < MajorCount
}

// Deal 把牌放到指定位置上，position 为空串表示没有位置
func (c Card) Deal(position string, reversed bool) DrawnCard {
	keywords := make([]string, len(c.Keywords))
	copy(keywords, c.Keywords)

	drawn := DrawnCard{
		ID:       c.ID,
		Name:     c.Name,
		NameRu:   c.NameRu,
		Meaning:  c.Meaning,
		Keywords: keywords,
		Suit:     c.Suit,
		SuitRu:   c.SuitRu,
		Rank:     c.Rank,
		RankRu:   c.RankRu,
		Element:  c.Element,
		Reversed: reversed,
		Image:    c.Image,
	}
	if position != "" {
		drawn.Position = &position
	}
	return drawn
}

// PositionLabel 返回位置名称，没有位置时返回空串
func (d DrawnCard) PositionLabel() string {
	if d.Position == nil {
		return ""
	}
	return *d.Position
}
