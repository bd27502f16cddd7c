package obj

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/easel2d/easel"
)

// Writer accumulates lines and faces, deduplicating vertices by exact
// equality, and serializes them as v/l/f records: the vertex table first,
// then one record per line, then one per face.
type Writer struct {
	vertices []easel.Vec2
	index    map[easel.Vec2]int
	lines    [][]int
	faces    [][]int
}

// NewWriter returns an empty writer.
func NewWriter() *Writer {
	return &Writer{index: make(map[easel.Vec2]int)}
}

// vertexIndex returns the 1-based table index for v, appending it to the
// vertex table on first occurrence.
func (w *Writer) vertexIndex(v easel.Vec2) int {
	if i, ok := w.index[v]; ok {
		return i
	}
	w.vertices = append(w.vertices, v)
	i := len(w.vertices)
	w.index[v] = i
	return i
}

func (w *Writer) indices(vertices []easel.Vec2) []int {
	out := make([]int, len(vertices))
	for i, v := range vertices {
		out[i] = w.vertexIndex(v)
	}
	return out
}

// AddLine records a line through the given vertices, in order.
func (w *Writer) AddLine(vertices []easel.Vec2) {
	w.lines = append(w.lines, w.indices(vertices))
}

// AddFace records a face with the given vertex loop, in order.
func (w *Writer) AddFace(vertices []easel.Vec2) {
	w.faces = append(w.faces, w.indices(vertices))
}

// Write emits all vertex records, then line records, then face records.
func (w *Writer) Write(out io.Writer) error {
	bw := bufio.NewWriter(out)
	for _, v := range w.vertices {
		bw.WriteString("v ")
		bw.WriteString(formatCoord(v.X))
		bw.WriteByte(' ')
		bw.WriteString(formatCoord(v.Y))
		bw.WriteString(" 0\n")
	}
	for _, indices := range w.lines {
		writeRecord(bw, 'l', indices)
	}
	for _, indices := range w.faces {
		writeRecord(bw, 'f', indices)
	}
	return bw.Flush()
}

// formatCoord renders a coordinate with enough digits to parse back to the
// identical float64.
func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func writeRecord(bw *bufio.Writer, kind byte, indices []int) {
	bw.WriteByte(kind)
	for _, i := range indices {
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(i))
	}
	bw.WriteByte('\n')
}

// WriteFile writes the records to path, truncating any existing file. A
// write that fails midway leaves a partial file behind; there is no
// recovery beyond the returned error.
func (w *Writer) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := w.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
