package jugglefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/jugglefest/juggle"
)

var (
	// ErrRead indicates the input could not be opened or read.
	ErrRead = errors.New("jugglefile: read failure")

	// ErrParse indicates a malformed input line.
	ErrParse = errors.New("jugglefile: parse failure")

	errFieldCount = errors.New("wrong number of fields")
	errRecordType = errors.New("unknown record type")
	errPrefix     = errors.New("unexpected field prefix")
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Field counts per record type, including the record tag.
const (
	circuitFields = 5
	jugglerFields = 6
)

// ReadError wraps a failure to open or read the input.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("jugglefile: read input: %v", e.Err)
	}
	return fmt.Sprintf("jugglefile: read %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrRead and the underlying cause.
func (e *ReadError) Unwrap() []error { return []error{ErrRead, e.Err} }

// ParseError identifies the offending input line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jugglefile: line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap exposes both ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// Load reads path and sets circuit capacities.
func Load(path string) (*juggle.Festival, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if _, err := f.SetCapacities(); err != nil {
		return nil, err
	}
	return f, nil
}

// ReadFile parses the file at path. Capacities are not set.
func ReadFile(path string) (*juggle.Festival, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer fh.Close()

	f, err := Parse(fh)
	var re *ReadError
	if errors.As(err, &re) {
		re.Path = path
	}
	return f, err
}

// Parse reads declarations from r. Capacities are not set.
func Parse(r io.Reader) (*juggle.Festival, error) {
	f := juggle.NewFestival()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := parseRecord(f, strings.Fields(text)); err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{Line: line + 1, Err: err}
		}
		return nil, &ReadError{Err: err}
	}
	return f, nil
}

func parseRecord(f *juggle.Festival, fields []string) error {
	switch fields[0] {
	case "C":
		if len(fields) != circuitFields {
			return fmt.Errorf("%w: circuit wants %d, got %d", errFieldCount, circuitFields, len(fields))
		}
		id, err := prefixedInt(fields[1], "C")
		if err != nil {
			return err
		}
		r, err := parseRating(fields[2:5])
		if err != nil {
			return err
		}
		_, err = f.AddCircuit(id, r)
		return err

	case "J":
		if len(fields) != jugglerFields {
			return fmt.Errorf("%w: juggler wants %d, got %d", errFieldCount, jugglerFields, len(fields))
		}
		id, err := prefixedInt(fields[1], "J")
		if err != nil {
			return err
		}
		r, err := parseRating(fields[2:5])
		if err != nil {
			return err
		}
		prefs, err := parsePreferences(fields[5])
		if err != nil {
			return err
		}
		_, err = f.AddJuggler(id, r, prefs)
		return err

	default:
		return fmt.Errorf("%w %q", errRecordType, fields[0])
	}
}

func parseRating(fields []string) (juggle.Rating, error) {
	var v [3]int
	for i, p := range []string{"H", "E", "P"} {
		n, err := prefixedInt(fields[i], p)
		if err != nil {
			return juggle.Rating{}, err
		}
		v[i] = n
	}
	return juggle.Rating{H: v[0], E: v[1], P: v[2]}, nil
}

// parsePreferences splits "C2,C0,C1" into declaration indices.
func parsePreferences(field string) ([]int, error) {
	parts := strings.Split(field, ",")
	prefs := make([]int, 0, len(parts))
	for _, p := range parts {
		idx, err := prefixedInt(p, "C")
		if err != nil {
			return nil, err
		}
		prefs = append(prefs, idx)
	}
	return prefs, nil
}

// prefixedInt parses "<prefix>[:]<int>".
func prefixedInt(field, prefix string) (int, error) {
	rest, ok := strings.CutPrefix(field, prefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q does not start with %q", errPrefix, field, prefix)
	}
	rest = strings.TrimPrefix(rest, ":")
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", field, err)
	}
	return n, nil
}
