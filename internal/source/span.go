package source

import "strconv"

// Span is a half-open byte range [Start, End) in one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool { return s.Start == s.End }
func (s Span) Len() uint32 { return s.End - s.Start }

// String is "file:start-end" in raw ids and offsets, for debugging.
func (s Span) String() string {
	return strconv.FormatUint(uint64(s.File), 10) + ":" +
		strconv.FormatUint(uint64(s.Start), 10) + "-" +
		strconv.FormatUint(uint64(s.End), 10)
}

// Cover widens s to include other. Spans of another file leave s as is.
func (s Span) Cover(other Span) Span {
	if s.File == other.File {
		s.Start = min(s.Start, other.Start)
		s.End = max(s.End, other.End)
	}
	return s
}

// Contains reports whether off lies in [Start, End).
func (s Span) Contains(off uint32) bool {
	return s.Start <= off && off < s.End
}
