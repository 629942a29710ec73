// Package matchid generates sortable identifiers for matches. An ID is a
// UUIDv7 rendered as 26 characters of Crockford base32, so IDs created later
// sort after IDs created earlier.
package matchid

import (
	crand "crypto/rand"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/coder/quartz"
)

// Crockford's base32 alphabet, lower case.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an ID.
const Length = 26

// Generator produces match IDs from a clock and an optional random source.
// A nil rng means crypto/rand.
type Generator struct {
	clock quartz.Clock
	rng   *rand.Rand
}

// NewGenerator returns a Generator. A nil clock uses the real clock.
func NewGenerator(clock quartz.Clock, rng *rand.Rand) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rng: rng}
}

// New returns an ID using the real clock and crypto/rand.
func New() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate returns a fresh ID.
func (g *Generator) Generate() string {
	return encode(g.uuid())
}

func (g *Generator) uuid() [16]byte {
	var id [16]byte

	ms := g.clock.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if g.rng != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.rng.UintN(256))
		}
	} else if _, err := crand.Read(id[6:]); err != nil {
		panic("matchid: crypto/rand failed: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // RFC 4122 variant

	return id
}

// encode renders 128 bits as 26 base32 digits. The value is left-padded with
// two zero bits so the first digit is always 0..7.
func encode(id [16]byte) string {
	hi := uint64(0)
	lo := uint64(0)
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(id[i])
		lo = lo<<8 | uint64(id[i+8])
	}

	var sb strings.Builder
	sb.Grow(Length)
	for i := Length - 1; i >= 0; i-- {
		shift := uint(i * 5)
		var v uint64
		switch {
		case shift >= 64:
			v = hi >> (shift - 64)
		case shift > 59:
			v = lo>>shift | hi<<(64-shift)
		default:
			v = lo >> shift
		}
		sb.WriteByte(alphabet[v&0x1f])
	}
	return sb.String()
}

// Validate reports whether id is a well-formed match ID.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("match ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("match ID first character must be 0-7, got %c", id[0])
	}
	for i, r := range id {
		if !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("invalid character %c at position %d", r, i)
		}
	}
	return nil
}
