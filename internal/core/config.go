// Package core implements the memory core, process scheduler, and
// opcode execution engine: the three pieces that take an already
// assembled redcode.Warrior and actually fight it.
package core

import (
	"log"

	"github.com/cjr29/corewar/internal/parser"
)

// Config holds the recognized CoreConfig options from spec §6. Logger
// is nil-safe: a nil Logger discards step-level tracing rather than
// requiring every caller to wire one up.
type Config struct {
	CoreSize         int
	MaxCycles        int
	MaxProcesses     int
	MaxWarriorLength int
	MinDistance      int
	PSpace           int
	Logger           *log.Logger
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		CoreSize:         8000,
		MaxCycles:        80000,
		MaxProcesses:     8000,
		MaxWarriorLength: 100,
		MinDistance:      100,
		PSpace:           500,
	}
}

// Limits projects the Config fields the parser/assembler need to bind
// builtin identifiers, keeping internal/parser free of any dependency
// on the simulation engine.
func (c Config) Limits() parser.Limits {
	return parser.Limits{
		CoreSize:     c.CoreSize,
		MaxCycles:    c.MaxCycles,
		MaxProcesses: c.MaxProcesses,
		MaxLength:    c.MaxWarriorLength,
		MinDistance:  c.MinDistance,
	}
}
