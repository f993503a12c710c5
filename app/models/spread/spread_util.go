package spread

// Positions 返回牌阵的位置列表（副本），未知牌阵返回空列表
func Positions(id string) []string {
	l, ok := layouts[id]
	if !ok {
		return []string{}
	}
	positions := make([]string, len(l.positions))
	copy(positions, l.positions)
	return positions
}

// Exists 牌阵是否已注册
func Exists(id string) bool {
	_, ok := layouts[id]
	return ok
}

// IDs 已注册的牌阵标识，按展示顺序
func IDs() []string {
	ids := make([]string, len(order))
	copy(ids, order)
	return ids
}

// All 所有牌阵的元数据
func All() []Spread {
	spreads := make([]Spread, 0, len(order))
	for _, id := range order {
		l := layouts[id]
		spreads = append(spreads, Spread{
			ID:          id,
			Name:        l.name,
			Description: l.description,
			Cards:       len(l.positions),
		})
	}
	return spreads
}
