package utils

import (
	"math/rand"
)

const idLetterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	letterIdxBits = 6                    // bits needed to index idLetterBytes
	letterIdxMask = 1<<letterIdxBits - 1 // low letterIdxBits bits set
	letterIdxMax  = 63 / letterIdxBits   // indices usable per Int63
)

// RandStringBytesMaskImpr returns a random alphanumeric string of length n.
// Questions, answers and comments carry one as their short public id.
func RandStringBytesMaskImpr(n int) string {
	b := make([]byte, n)
	for i, cache, remain := n-1, rand.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = rand.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(idLetterBytes) {
			b[i] = idLetterBytes[idx]
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	return string(b)
}
