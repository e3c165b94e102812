// Package idgen provides short, human-readable chain numbers backed by nanoid.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultPrefix is prepended to every chain number.
const DefaultPrefix = "CH"

// Alphabet avoids characters that are easy to confuse when read aloud.
const Alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// Length is the number of random characters generated (excluding the prefix).
const Length = 8

// Generator produces chain numbers of the form PREFIX-XXXXXXXX.
type Generator struct {
	prefix string
}

// NewGenerator returns a Generator using prefix, or DefaultPrefix when empty.
func NewGenerator(prefix string) *Generator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Generator{prefix: prefix}
}

// ChainNumber returns a new chain number.
func (g *Generator) ChainNumber() (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return g.prefix + "-" + id, nil
}
