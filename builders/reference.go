package builders

import (
	"crypto/rand"
	"math/big"
	"time"
)

// excludes 0, O, 1, I and L
const referenceAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const referenceRandomLen = 6

// NewReferenceCode returns BK + YYMMDD + six random characters
func NewReferenceCode(now time.Time) (string, error) {
	buf := make([]byte, 0, 2+6+referenceRandomLen)
	buf = append(buf, "BK"...)
	buf = now.AppendFormat(buf, "060102")

	max := big.NewInt(int64(len(referenceAlphabet)))
	for i := 0; i < referenceRandomLen; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf = append(buf, referenceAlphabet[n.Int64()])
	}
	return string(buf), nil
}
