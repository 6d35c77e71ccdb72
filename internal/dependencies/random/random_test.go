package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedRandom returns the same string every time
type fixedRandom string

func (f fixedRandom) Intn(n int) int                            { return 0 }
func (f fixedRandom) String(length int, alphabet string) string { return string(f) }

func TestCryptoRandomString(t *testing.T) {
	r := New()

	id := r.String(IDLength, IDAlphabet)

	assert.Len(t, id, IDLength)
	for _, c := range id {
		assert.True(t, strings.ContainsRune(IDAlphabet, c), "unexpected rune %q", c)
	}
}

func TestCryptoRandomEdgeCases(t *testing.T) {
	r := New()

	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, "", r.String(0, IDAlphabet))
	assert.Equal(t, "", r.String(5, ""))
}

func TestNewIDUnused(t *testing.T) {
	id := NewID(fixedRandom("abc123xyz"), func(string) bool { return false })

	assert.Equal(t, "abc123xyz", id)
}

func TestNewIDSuffixesCollisions(t *testing.T) {
	taken := map[string]bool{"abc": true, "abc-2": true}

	id := NewID(fixedRandom("abc"), func(s string) bool { return taken[s] })

	assert.Equal(t, "abc-3", id)
}

func TestNewIDEmptyDraw(t *testing.T) {
	id := NewID(fixedRandom(""), func(string) bool { return false })

	assert.Equal(t, "id", id)
}
