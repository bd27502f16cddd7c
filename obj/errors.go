package obj

import "fmt"

// MalformedRecordError reports an input line matching none of the v/l/f
// record shapes. It carries the offending raw line.
type MalformedRecordError struct {
	Line string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("obj: malformed record %q", e.Line)
}

// IndexOutOfRangeError reports a line or face record referencing a vertex
// index outside the range of vertices declared so far in the stream.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("obj: vertex index %d out of range (have %d vertices)", e.Index, e.Count)
}
