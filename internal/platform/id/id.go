// Package id mints short opaque ids used to correlate the log lines and spans
// of one reconstruction run.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const runIDBytes = 8

// Generator creates opaque ids.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct {
	size int
}

// NewRandomGenerator returns a generator of hex ids built from size random
// bytes. A non-positive size uses the run id length.
func NewRandomGenerator(size int) *RandomGenerator {
	if size < 1 {
		size = runIDBytes
	}
	return &RandomGenerator{size: size}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// NewRunID returns a fresh run id, falling back to "unknown" when the system
// random source fails.
func NewRunID() string {
	runID, err := NewRandomGenerator(runIDBytes).NewID()
	if err != nil {
		return "unknown"
	}
	return runID
}
