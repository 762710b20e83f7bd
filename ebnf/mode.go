package ebnf

import "fmt"

// Mode selects the alternation semantics a grammar is compiled with.
type Mode int

const (
	// Greedy compiles alternatives, options and repetitions with deterministic
	// alternation: the first successful branch wins and repetitions are longest-match.
	Greedy Mode = iota
	// Exhaustive compiles them with exhaustive alternation, so every parse of an
	// ambiguous grammar is produced.
	Exhaustive
)

func (m Mode) String() string {
	switch m {
	case Greedy:
		return "greedy"
	case Exhaustive:
		return "exhaustive"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps "greedy" and "exhaustive" to their Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "greedy":
		return Greedy, nil
	case "exhaustive":
		return Exhaustive, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
