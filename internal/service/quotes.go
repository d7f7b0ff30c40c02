package service

import "math/rand"

// 顯示用語錄池，與資料狀態無關
var quotes = []string{
	"Breathe. You’re doing better than you think.",
	"Feelings are just visitors. Let them come and go.",
	"Your mental health is a priority. Not a luxury.",
	"It’s okay to not be okay — just don’t unpack and live there.",
	"Little progress is still progress. Keep going.",
}

var randIntn = rand.Intn

// RandomQuote 從語錄池中均勻隨機挑選一則
func RandomQuote() string {
	return quotes[randIntn(len(quotes))]
}
