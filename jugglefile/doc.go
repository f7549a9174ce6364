// Package jugglefile reads circuit and juggler declarations and writes the
// resulting assignment.
//
// Input format (one record per line, whitespace separated, blank lines and
// lines starting with '#' ignored):
//
//	C C0 H:7 E:7 P:10
//	C C1 H:2 E:1 P:1
//	J J0 H:3 E:9 P:2 C1,C0
//	J J1 H:4 E:0 P:10 C0,C1
//
// Rating fields accept "H:7" and "H7". Preferences reference circuits by
// declaration index, most preferred first. All circuits must precede all
// jugglers.
//
// Errors
//
//   - ErrRead  (*ReadError)   the file is missing or unreadable.
//   - ErrParse (*ParseError)  a line is malformed or references a missing
//     circuit; the error carries the 1-based line number.
//
// Load additionally computes circuit capacities and surfaces
// juggle.ErrNoCircuits, juggle.ErrNoJugglers and juggle.ErrUnevenDistribution.
//
// Output formats: FormatText (one line per circuit, highest id first, each
// juggler followed by its scores on its preferred circuits), FormatJSON and
// FormatYAML.
package jugglefile
