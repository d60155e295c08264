package util

import (
	"math/rand"
	"time"
)

// ResolveSeed keeps an explicit seed and derives one from the clock for 0,
// so every battle can be replayed from the seed it reports.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	if s := time.Now().UnixNano(); s != 0 {
		return s
	}
	return 1
}

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}
