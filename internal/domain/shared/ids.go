package shared

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces aggregate identities.
type IDGenerator interface {
	NewID() string
}

// CodeGenerator produces short human-facing codes (invitation codes).
type CodeGenerator interface {
	NewCode(length int) (string, error)
}

type uuidGenerator struct{}

// NewUUIDGenerator returns an IDGenerator backed by random (v4) UUIDs.
func NewUUIDGenerator() IDGenerator { return uuidGenerator{} }

func (uuidGenerator) NewID() string { return uuid.NewString() }

// IDsOrUUID returns g, or the UUID generator when g is nil.
func IDsOrUUID(g IDGenerator) IDGenerator {
	if g == nil {
		return NewUUIDGenerator()
	}
	return g
}

// SequenceIDGenerator returns prefix-1, prefix-2, ... Safe for concurrent use.
type SequenceIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequenceIDGenerator(prefix string) *SequenceIDGenerator {
	return &SequenceIDGenerator{prefix: prefix}
}

func (g *SequenceIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type base36Generator struct{}

// NewBase36CodeGenerator returns a CodeGenerator producing uppercase base-36 strings
// from crypto/rand.
func NewBase36CodeGenerator() CodeGenerator { return base36Generator{} }

func (base36Generator) NewCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid code length %d", length)
	}
	var sb strings.Builder
	sb.Grow(length)
	max := big.NewInt(int64(len(base36Alphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(base36Alphabet[n.Int64()])
	}
	return sb.String(), nil
}

// CodesOrBase36 returns g, or the crypto/rand base-36 generator when g is nil.
func CodesOrBase36(g CodeGenerator) CodeGenerator {
	if g == nil {
		return NewBase36CodeGenerator()
	}
	return g
}

// FixedCodeGenerator always returns Code (useful for tests).
type FixedCodeGenerator struct {
	Code string
}

func (g FixedCodeGenerator) NewCode(int) (string, error) { return g.Code, nil }
