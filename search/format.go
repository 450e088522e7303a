package search

import (
	"io"
	"strconv"
)

// String renders q as "a b sum c d".
func (q Quadruple) String() string {
	return string(q.appendTo(make([]byte, 0, 48)))
}

// appendTo appends the five space-separated fields of q to buf.
func (q Quadruple) appendTo(buf []byte) []byte {
	buf = strconv.AppendUint(buf, q.A, 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, q.B, 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, q.Sum, 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, q.C, 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, q.D, 10)

	return buf
}

// Write writes q to w as one newline-terminated line.
func Write(w io.Writer, q Quadruple) error {
	buf := q.appendTo(make([]byte, 0, 48))
	buf = append(buf, '\n')
	_, err := w.Write(buf)

	return err
}
