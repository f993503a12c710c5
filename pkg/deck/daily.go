package deck

import (
	"crypto/md5"
	"encoding/binary"
	"math/rand/v2"

	"luvo/app/models/card"
)

// DailyCard 每日一牌
type DailyCard struct {
	Date    string         `json:"date"`
	Card    card.DrawnCard `json:"card"`
	Message string         `json:"message"`
}

const reversedAdvice = "Перевернутое положение предлагает взглянуть на ситуацию с другой стороны или обратить внимание на внутренние препятствия."

// Daily 根据日期（YYYY-MM-DD）选出当天的牌，同一天结果相同。
// 每次调用使用独立播种的随机源，不会影响抽牌器共用的随机源。
func Daily(date string) DailyCard {
	sum := md5.Sum([]byte(date))
	seed := uint64(binary.BigEndian.Uint32(sum[:4]))
	r := rand.New(rand.NewPCG(seed, seed))

	c, _ := card.Find(r.IntN(card.Count()))
	reversed := r.Float64() < ReversedProbability

	message := "Карта дня: " + c.NameRu
	if reversed {
		message += " (перевернутая)"
	}
	message += "\n\n" + c.Meaning
	if reversed {
		message += "\n\n" + reversedAdvice
	}

	return DailyCard{
		Date:    date,
		Card:    c.Deal("", reversed),
		Message: message,
	}
}
