package ast

import "strings"

// Extra is a non-semantic artifact attached to a node: a comment or a run
// of blank lines.
type Extra interface {
	extra()
}

// Comment is a line or block comment, Text including its delimiters.
// StartsLine means it begins on a fresh line; EndsLine means a line break
// follows it.
type Comment struct {
	Text       string
	StartsLine bool
	EndsLine   bool
}

// BlankLines is a run of Count empty lines.
type BlankLines struct {
	Count int
}

func (*Comment) extra()    {}
func (*BlankLines) extra() {}

// IsLineComment reports whether the comment runs to the end of its line.
func (c *Comment) IsLineComment() bool { return strings.HasPrefix(c.Text, "//") }

// ExtrasMap looks up the extras of a node by position. Implementations
// must return extras in source order and must not be mutated by readers.
type ExtrasMap interface {
	ExtrasBefore(n Node) []Extra
	ExtrasWithin(n Node) []Extra
	ExtrasAfter(n Node) []Extra
}

// Extras is the ExtrasMap built by the parser. A nil *Extras is empty.
type Extras struct {
	before map[Node][]Extra
	within map[Node][]Extra
	after  map[Node][]Extra
}

func NewExtras() *Extras {
	return &Extras{
		before: make(map[Node][]Extra),
		within: make(map[Node][]Extra),
		after:  make(map[Node][]Extra),
	}
}

func (e *Extras) ExtrasBefore(n Node) []Extra {
	if e == nil {
		return nil
	}
	return e.before[n]
}

func (e *Extras) ExtrasWithin(n Node) []Extra {
	if e == nil {
		return nil
	}
	return e.within[n]
}

func (e *Extras) ExtrasAfter(n Node) []Extra {
	if e == nil {
		return nil
	}
	return e.after[n]
}

func (e *Extras) AddBefore(n Node, xs ...Extra) { add(e.before, n, xs) }
func (e *Extras) AddWithin(n Node, xs ...Extra) { add(e.within, n, xs) }
func (e *Extras) AddAfter(n Node, xs ...Extra)  { add(e.after, n, xs) }

func add(m map[Node][]Extra, n Node, xs []Extra) {
	if n == nil || len(xs) == 0 {
		return
	}
	m[n] = append(m[n], xs...)
}

// Len returns the total number of extras held.
func (e *Extras) Len() int {
	if e == nil {
		return 0
	}
	n := 0
	for _, m := range []map[Node][]Extra{e.before, e.within, e.after} {
		for _, xs := range m {
			n += len(xs)
		}
	}
	return n
}

// Migrate moves every extra of from onto to, keeping position and order.
// Extras already on to stay in front.
func (e *Extras) Migrate(from, to Node) {
	if e == nil || from == nil || to == nil || from == to {
		return
	}
	for _, m := range []map[Node][]Extra{e.before, e.within, e.after} {
		if xs, ok := m[from]; ok {
			delete(m, from)
			m[to] = append(m[to], xs...)
		}
	}
}

// Clone returns an independent copy of the map. Extra values are shared.
func (e *Extras) Clone() *Extras {
	out := NewExtras()
	if e == nil {
		return out
	}
	for _, pair := range [][2]map[Node][]Extra{{e.before, out.before}, {e.within, out.within}, {e.after, out.after}} {
		for n, xs := range pair[0] {
			pair[1][n] = append([]Extra(nil), xs...)
		}
	}
	return out
}
