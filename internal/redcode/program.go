package redcode

// Program is a fully resolved sequence of instructions plus an origin
// offset into that sequence, produced by the assembler.
type Program struct {
	Instructions []Instruction
	Origin       int
}

// Len returns the number of instructions in the program.
func (p Program) Len() int { return len(p.Instructions) }

// Metadata holds the free-form ";name"/";author"/";strategy" comment
// fields recognized by the parser. All are optional.
type Metadata struct {
	Name     string
	Author   string
	Strategy string
}

// Warrior is an assembled Redcode program plus its descriptive
// metadata.
type Warrior struct {
	Program  Program
	Metadata Metadata
}

// Len returns the length of the warrior's instruction sequence.
func (w Warrior) Len() int { return w.Program.Len() }

// DisplayName returns the warrior's name if set, else falls back to a
// caller-supplied identifier (typically its load-file path or index).
func (w Warrior) DisplayName(fallback string) string {
	if w.Metadata.Name != "" {
		return w.Metadata.Name
	}
	return fallback
}
