package mapping

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Entry is one class mapping.
type Entry struct {
	Obf   string `msgpack:"o"`
	Deobf string `msgpack:"d"`
}

// Set is a class mapping table. It is built once and then only read, so a
// loaded Set may be shared between goroutines.
type Set struct {
	classes map[string]string
}

func NewSet() *Set {
	return &Set{classes: make(map[string]string)}
}

// Add records obf -> deobf. Both names are NFC-normalised; a later Add for
// the same obfuscated name wins.
func (s *Set) Add(obf, deobf string) {
	s.classes[norm.NFC.String(obf)] = norm.NFC.String(deobf)
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.classes)
}

// Lookup returns the exact mapping of obf.
func (s *Set) Lookup(obf string) (string, bool) {
	if s == nil {
		return "", false
	}
	d, ok := s.classes[norm.NFC.String(obf)]
	return d, ok
}

// Class returns the deobfuscated name of obf. An inner class without its
// own mapping keeps its simple name under the mapped outer class:
// with a/B -> c/D, a/B$E resolves to c/D$E.
func (s *Set) Class(obf string) (string, bool) {
	if d, ok := s.Lookup(obf); ok {
		return d, true
	}
	i := strings.LastIndexByte(obf, '$')
	if i <= 0 {
		return "", false
	}
	outer, ok := s.Class(obf[:i])
	if !ok {
		return "", false
	}
	return outer + obf[i:], true
}

// Entries returns all mappings sorted by obfuscated name.
func (s *Set) Entries() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, 0, len(s.classes))
	for o, d := range s.classes {
		out = append(out, Entry{Obf: o, Deobf: d})
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Obf, b.Obf) })
	return out
}

// Reverse returns the inverse set, mapping deobfuscated names back.
func (s *Set) Reverse() *Set {
	out := NewSet()
	for _, e := range s.Entries() {
		out.classes[e.Deobf] = e.Obf
	}
	return out
}

// SplitClass splits an internal class name into path segments,
// treating both '/' and '$' as separators.
func SplitClass(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '$' })
}
