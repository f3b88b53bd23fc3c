package idgen

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Alphabet is the character set every generated identifier draws from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	UserIDPrefix        = "EL"
	TransactionIDPrefix = "TRX"
	ReceiptIDPrefix     = "RCPT"

	userIDLength = 8
	suffixLength = 4
)

// Generate returns prefix followed by length characters picked uniformly,
// with replacement, from alphabet.
func Generate(alphabet, prefix string, length int) string {
	if alphabet == "" || length <= 0 {
		return prefix
	}
	chars := []rune(alphabet)

	var b strings.Builder
	b.Grow(len(prefix) + length)
	b.WriteString(prefix)
	for i := 0; i < length; i++ {
		b.WriteRune(chars[rand.IntN(len(chars))])
	}
	return b.String()
}

// Timestamped returns prefix + base-36 millisecond timestamp + a random suffix.
func Timestamped(prefix string, t time.Time, suffixLen int) string {
	stamp := strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
	return Generate(Alphabet, prefix+stamp, suffixLen)
}

type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

func (g *Generator) UserID() string {
	return Generate(Alphabet, UserIDPrefix, userIDLength)
}

func (g *Generator) TransactionID() string {
	return Timestamped(TransactionIDPrefix, g.now(), suffixLength)
}

func (g *Generator) ReceiptID() string {
	return Timestamped(ReceiptIDPrefix, g.now(), suffixLength)
}
