package triangle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError identifies a line that does not hold integers.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("triangle: line %d: %v", e.Line, e.Err)
}

// Unwrap exposes both ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// Parse reads one row per line, values separated by whitespace. Blank lines
// are ignored. The result is validated.
func Parse(r io.Reader) (Triangle, error) {
	var t Triangle
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			row[i] = v
		}
		t = append(t, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Write prints t one row per line.
func Write(w io.Writer, t Triangle) error {
	bw := bufio.NewWriter(w)
	for _, row := range t {
		for i, v := range row {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
