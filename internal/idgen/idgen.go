package idgen

import "math/rand/v2"

// Generator produces candidate product codes. Implementations do not have to
// guarantee uniqueness; the catalog retries on collision.
type Generator interface {
	NewCode() string
}

const (
	codePrefix  = "PROD-"
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength  = 4
)

// ProductCode generates codes in the PROD-XXXX format used on receipts and
// shelf labels.
type ProductCode struct{}

func NewProductCode() ProductCode {
	return ProductCode{}
}

func (ProductCode) NewCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeCharset[rand.IntN(len(codeCharset))]
	}
	return codePrefix + string(b)
}

// Fixed always returns the same sequence of codes. Test helper for
// collision-retry behavior.
type Fixed struct {
	Codes []string
	next  int
}

func (f *Fixed) NewCode() string {
	if f.next >= len(f.Codes) {
		return f.Codes[len(f.Codes)-1]
	}
	c := f.Codes[f.next]
	f.next++
	return c
}
