package diag

import (
	"cmp"
	"slices"
)

const defaultBagLimit = 256

// Bag collects diagnostics for one file up to a limit. Diagnostics past
// the limit are counted, not kept.
type Bag struct {
	items   []Diagnostic
	max     int
	dropped int
}

func NewBag(max int) *Bag {
	if max <= 0 {
		max = defaultBagLimit
	}
	return &Bag{items: make([]Diagnostic, 0, min(max, 16)), max: max}
}

// Add возвращает false, если лимит уже достигнут.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int {
	return b.max
}

// Dropped - сколько диагностик не поместилось в лимит.
func (b *Bag) Dropped() int {
	return b.dropped
}

func (b *Bag) HasErrors() bool {
	return b.worst() >= SevError
}

func (b *Bag) HasWarnings() bool {
	return b.worst() >= SevWarning
}

func (b *Bag) worst() Severity {
	var w Severity
	for i := range b.items {
		w = max(w, b.items[i].Severity)
	}
	return w
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items is read-only.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders by file and position; on the same span errors come before
// warnings, then by code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup drops repeats of the same code on the same span, keeping the first.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span [3]uint32
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, [3]uint32{uint32(d.Primary.File), d.Primary.Start, d.Primary.End}}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
