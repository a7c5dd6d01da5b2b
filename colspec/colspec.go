// SPDX-License-Identifier: MIT
// Package: edmindex/colspec
//
// colspec.go — column and target specifier parsing.

package colspec

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/edmindex/ranges"
)

// Kind tags which form a specifier resolved to.
type Kind int

const (
	// ByNone means the specifier was empty.
	ByNone Kind = iota
	// ByIndex means integer column positions.
	ByIndex
	// ByName means column names.
	ByName
)

// String returns a short label for k.
func (k Kind) String() string {
	switch k {
	case ByIndex:
		return "index"
	case ByName:
		return "name"
	default:
		return "none"
	}
}

// Columns is the resolved column specifier. Exactly one of Indices and
// Names is non-empty unless the specifier was empty.
type Columns struct {
	Indices []int
	Names   []string
}

// Kind reports which form c holds.
func (c Columns) Kind() Kind {
	switch {
	case len(c.Indices) > 0:
		return ByIndex
	case len(c.Names) > 0:
		return ByName
	default:
		return ByNone
	}
}

// Len returns the number of columns regardless of form.
func (c Columns) Len() int {
	if len(c.Indices) > 0 {
		return len(c.Indices)
	}

	return len(c.Names)
}

// Empty reports whether no columns were given.
func (c Columns) Empty() bool { return c.Len() == 0 }

// String renders the columns space separated.
func (c Columns) String() string {
	if len(c.Indices) > 0 {
		parts := make([]string, len(c.Indices))
		for i, v := range c.Indices {
			parts[i] = strconv.Itoa(v)
		}
		return strings.Join(parts, " ")
	}

	return strings.Join(c.Names, " ")
}

// ParseColumns resolves s. Insertion order is preserved in either form.
// Complexity: O(len(s)).
func ParseColumns(s string) Columns {
	tokens := ranges.Split(s)
	if len(tokens) == 0 {
		return Columns{}
	}

	for _, tok := range tokens {
		if !onlyDigits(tok) {
			names := make([]string, len(tokens))
			copy(names, tokens)
			return Columns{Names: names}
		}
	}

	idx := make([]int, len(tokens))
	for i, tok := range tokens {
		// onlyDigits guarantees a parse; overflow is the only failure left.
		v, err := strconv.Atoi(tok)
		if err != nil {
			return Columns{Names: append([]string(nil), tokens...)}
		}
		idx[i] = v
	}

	return Columns{Indices: idx}
}

// Target is the resolved target specifier: a column position or a name.
type Target struct {
	Index int
	Name  string
	kind  Kind
}

// Kind reports which form t holds.
func (t Target) Kind() Kind { return t.kind }

// Set reports whether a target was given.
func (t Target) Set() bool { return t.kind != ByNone }

// String renders the target as given.
func (t Target) String() string {
	switch t.kind {
	case ByIndex:
		return strconv.Itoa(t.Index)
	case ByName:
		return t.Name
	default:
		return ""
	}
}

// ParseTarget resolves a single-token target specifier. Surrounding
// whitespace is ignored; an empty specifier yields an unset Target.
func ParseTarget(s string) Target {
	s = strings.TrimSpace(s)
	if s == "" {
		return Target{}
	}
	if onlyDigits(s) {
		if v, err := strconv.Atoi(s); err == nil {
			return Target{Index: v, kind: ByIndex}
		}
	}

	return Target{Name: s, kind: ByName}
}

// IndexTarget builds a Target addressing column position i.
func IndexTarget(i int) Target { return Target{Index: i, kind: ByIndex} }

// NameTarget builds a Target addressing column name.
func NameTarget(name string) Target { return Target{Name: name, kind: ByName} }

func onlyDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
