// Package deck 洗牌与抽牌
package deck

import (
	"errors"

	"luvo/app/models/card"
	"luvo/app/models/spread"
)

// ReversedProbability 每张牌独立判定为逆位的概率
const ReversedProbability = 0.3

// ErrUnknownSpread 牌阵未注册
var ErrUnknownSpread = errors.New("unknown spread type")

// Drawer 抽牌器
type Drawer struct {
	rng RNG
}

// NewDrawer 创建抽牌器，rng 为 nil 时使用随机播种的随机源
func NewDrawer(rng RNG) *Drawer {
	if rng == nil {
		rng = NewRNG()
	}
	return &Drawer{rng: rng}
}

// Draw 按牌阵抽牌
//
// 先对整副 78 张牌做 Fisher-Yates 洗牌，再取前 n 张依次放到牌阵位置上，
// 所以同一次抽牌不会出现重复的牌。逆位按 ReversedProbability 逐张独立判定。
func (d *Drawer) Draw(spreadID string) ([]card.DrawnCard, error) {
	if !spread.Exists(spreadID) {
		return nil, ErrUnknownSpread
	}
	positions := spread.Positions(spreadID)

	order := d.shuffle(card.Count())

	drawn := make([]card.DrawnCard, len(positions))
	for i, position := range positions {
		c, _ := card.Find(order[i])
		drawn[i] = c.Deal(position, d.rng.Float64() < ReversedProbability)
	}
	return drawn, nil
}

// shuffle 返回 0..n-1 的一个均匀随机排列
func (d *Drawer) shuffle(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}
