package parser

import (
	"strings"
)

// Prefix marks the start of a named argument.
type Prefix string

const (
	PrefixName       Prefix = "--n"
	PrefixPhone      Prefix = "--p"
	PrefixPatient    Prefix = "--p"
	PrefixDob        Prefix = "--d"
	PrefixBloodType  Prefix = "--b"
	PrefixAllergy    Prefix = "--a"
	PrefixVaccine    Prefix = "--v"
	PrefixStart      Prefix = "--s"
	PrefixEnd        Prefix = "--e"
	PrefixCompleted  Prefix = "--c"
	PrefixGroup      Prefix = "--g"
	PrefixMinAge     Prefix = "--min"
	PrefixMaxAge     Prefix = "--max"
	PrefixIngredient Prefix = "--i"
	PrefixMainWord   Prefix = "--m"
	PrefixKeyword    Prefix = "--k"
)

// ArgMultimap holds the tokenized arguments of one command.
type ArgMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Tokenize splits args on whitespace. Words up to the first known prefix form
// the preamble; the words after a prefix, joined by single spaces, form one
// value for it. A prefix may repeat.
func Tokenize(args string, prefixes ...Prefix) ArgMultimap {
	known := make(map[Prefix]bool, len(prefixes))
	for _, p := range prefixes {
		known[p] = true
	}

	m := ArgMultimap{values: make(map[Prefix][]string)}
	var (
		current   Prefix
		inPrefix  bool
		collected []string
	)
	flush := func() {
		joined := strings.Join(collected, " ")
		if inPrefix {
			m.values[current] = append(m.values[current], joined)
		} else {
			m.preamble = joined
		}
		collected = collected[:0]
	}
	for _, word := range strings.Fields(args) {
		if known[Prefix(word)] {
			flush()
			current, inPrefix = Prefix(word), true
			continue
		}
		collected = append(collected, word)
	}
	flush()
	return m
}

func (m ArgMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for p.
func (m ArgMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// All returns every value given for p, in input order.
func (m ArgMultimap) All(p Prefix) []string {
	return m.values[p]
}

func (m ArgMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

// HasAll reports whether every prefix was given.
func (m ArgMultimap) HasAll(ps ...Prefix) bool {
	for _, p := range ps {
		if !m.Has(p) {
			return false
		}
	}
	return true
}

// VerifyNoDuplicates fails when any of the single-valued prefixes repeats.
func (m ArgMultimap) VerifyNoDuplicates(ps ...Prefix) error {
	var dup []string
	for _, p := range ps {
		if len(m.values[p]) > 1 {
			dup = append(dup, string(p))
		}
	}
	if len(dup) > 0 {
		return newParseError(MessageDuplicateFields + strings.Join(dup, " "))
	}
	return nil
}
