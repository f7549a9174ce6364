package jugglefile

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jugglefest/juggle"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrFormat is returned for an unknown output format.
var ErrFormat = errors.New("jugglefile: unknown output format")

// ParseFormat validates s as a Format. The empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

// Report is the structured form of an assignment.
type Report struct {
	Circuits []CircuitReport `json:"circuits" yaml:"circuits"`
	Unplaced []int           `json:"unplaced,omitempty" yaml:"unplaced,omitempty"`
}

// CircuitReport lists one circuit's occupants in storage order.
type CircuitReport struct {
	ID       int          `json:"id" yaml:"id"`
	Capacity int          `json:"capacity" yaml:"capacity"`
	Jugglers []SeatReport `json:"jugglers" yaml:"jugglers"`
}

// SeatReport is one occupant with its score.
type SeatReport struct {
	ID    int `json:"id" yaml:"id"`
	Score int `json:"score" yaml:"score"`
}

// NewReport captures the current assignment of f, circuits in declaration
// order.
func NewReport(f *juggle.Festival) Report {
	var r Report
	for _, a := range f.Assignments() {
		cr := CircuitReport{ID: a.Circuit, Capacity: a.Capacity, Jugglers: make([]SeatReport, 0, len(a.Occupants))}
		for _, s := range a.Occupants {
			cr.Jugglers = append(cr.Jugglers, SeatReport{ID: s.Juggler, Score: s.Score})
		}
		r.Circuits = append(r.Circuits, cr)
	}
	for _, j := range f.Jugglers() {
		if j.Circuit() == nil {
			r.Unplaced = append(r.Unplaced, j.ID)
		}
	}
	return r
}

// Write renders the assignment of f to w.
func Write(w io.Writer, f *juggle.Festival, format Format) error {
	switch format {
	case FormatText, "":
		return writeText(w, f)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewReport(f))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewReport(f)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// writeText emits one line per circuit, highest circuit id first:
//
//	C2 J6 C2:128 C1:31 C0:188, J3 C2:120 C0:171 C1:31
func writeText(w io.Writer, f *juggle.Festival) error {
	circuits := f.Circuits()
	sort.SliceStable(circuits, func(a, b int) bool { return circuits[a].ID > circuits[b].ID })

	bw := bufio.NewWriter(w)
	for _, c := range circuits {
		bw.WriteString(c.String())
		for i, o := range c.Occupants() {
			if i > 0 {
				bw.WriteByte(',')
			}
			bw.WriteByte(' ')
			bw.WriteString(o.Juggler.String())
			for _, p := range o.Juggler.Preferences() {
				fmt.Fprintf(bw, " %s:%d", p, juggle.Score(o.Juggler, p))
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
