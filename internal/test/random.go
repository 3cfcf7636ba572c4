package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const credentialAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomEmail returns a unique-looking rider address on example.com.
func RandomEmail() string {
	return "rider-" + randomString(10) + "@example.com"
}

// RandomPassword returns a lowercase alphanumeric password of length n (at least 1).
func RandomPassword(n int) string {
	if n < 1 {
		n = 1
	}
	return randomString(n)
}

// RandomRidePoints returns a valid ride award in [1, maxPoints].
func RandomRidePoints(maxPoints int64) int64 {
	if maxPoints < 1 {
		return 1
	}
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Int63n(maxPoints) + 1
}

func randomString(n int) string {
	rngMu.Lock()
	defer rngMu.Unlock()
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(credentialAlphabet[rng.Intn(len(credentialAlphabet))])
	}
	return b.String()
}
