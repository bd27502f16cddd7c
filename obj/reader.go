package obj

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/easel2d/easel"
)

// Reader parses v/l/f records, resolving line and face indices against the
// vertices declared earlier in the stream.
type Reader struct {
	vertices []easel.Vec2
	lines    [][]easel.Vec2
	faces    [][]easel.Vec2
}

// NewReader returns an empty reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read consumes the whole stream. Any line that is not a well-formed v/l/f
// record aborts with *MalformedRecordError; an index referencing a vertex
// not yet declared (forward reference or out of range) aborts with
// *IndexOutOfRangeError.
func (r *Reader) Read(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		raw := sc.Text()
		fields := strings.Fields(raw)
		switch {
		case len(fields) == 4 && fields[0] == "v":
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			// z is accepted as any numeric token and ignored (2D-only).
			_, errZ := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				return &MalformedRecordError{Line: raw}
			}
			r.vertices = append(r.vertices, easel.V2(x, y))
		case len(fields) >= 1 && fields[0] == "l":
			vertices, err := r.resolve(raw, fields[1:])
			if err != nil {
				return err
			}
			r.lines = append(r.lines, vertices)
		case len(fields) >= 1 && fields[0] == "f":
			vertices, err := r.resolve(raw, fields[1:])
			if err != nil {
				return err
			}
			r.faces = append(r.faces, vertices)
		default:
			return &MalformedRecordError{Line: raw}
		}
	}
	return sc.Err()
}

// resolve maps 1-based index tokens to vertices seen so far.
func (r *Reader) resolve(raw string, tokens []string) ([]easel.Vec2, error) {
	vertices := make([]easel.Vec2, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &MalformedRecordError{Line: raw}
		}
		if n < 1 || n > len(r.vertices) {
			return nil, &IndexOutOfRangeError{Index: n, Count: len(r.vertices)}
		}
		vertices[i] = r.vertices[n-1]
	}
	return vertices, nil
}

// Lines returns the parsed line vertex sequences in record order.
func (r *Reader) Lines() [][]easel.Vec2 {
	return r.lines
}

// Faces returns the parsed face vertex loops in record order.
func (r *Reader) Faces() [][]easel.Vec2 {
	return r.faces
}

// ReadFile reads and parses the file at path.
func (r *Reader) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Read(f)
}
