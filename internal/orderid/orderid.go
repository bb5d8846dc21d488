// Package orderid produces the human-facing order numbers shown to customers.
package orderid

import (
	"math/rand/v2"
	"strings"
	"time"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Generate returns ORD-YYYYMMDD-XXXX for the current local date.
// Rapid calls may collide; nothing here prevents it.
func Generate() string {
	return GenerateAt(time.Now())
}

func GenerateAt(t time.Time) string {
	var b strings.Builder
	b.Grow(17)
	b.WriteString("ORD-")
	b.WriteString(t.Format("20060102"))
	b.WriteByte('-')
	for i := 0; i < 4; i++ {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return strings.ToUpper(b.String())
}
