package triangle

import "fmt"

// MaxPath returns the maximum top-to-bottom path sum of t.
//
// Algorithm:
//  1. acc = copy of the base row.
//  2. For rows i = R-2 down to 0, for k = 0..i:
//     acc[i][k] = t[i][k] + max(acc[i+1][k], acc[i+1][k+1])
//  3. Total = acc[0][0].
//  4. With ReturnPath, walk from the apex taking the child with the larger
//     accumulated value; ties go left.
//
// A nil opts uses DefaultOptions.
//
// Errors: ErrEmptyTriangle, *RowError (ErrMalformedRow), ErrPathNeedsMatrix,
// ErrBadInput for an unknown MemoryMode.
func MaxPath(t Triangle, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	switch o.MemoryMode {
	case FullMatrix:
		return fullMatrix(t, o.ReturnPath), nil
	case SingleRow:
		if o.ReturnPath {
			return nil, ErrPathNeedsMatrix
		}
		return &Result{Total: singleRow(t)}, nil
	default:
		return nil, fmt.Errorf("%w: MemoryMode %d", ErrBadInput, o.MemoryMode)
	}
}

// better reports whether a right child with accumulated value r beats a left
// child with value l. Ties go left.
func better(r, l int) bool { return r > l }

func larger(a, b int) int {
	if better(b, a) {
		return b
	}
	return a
}

func fullMatrix(t Triangle, wantPath bool) *Result {
	n := len(t)
	acc := make([][]int, n)
	acc[n-1] = append([]int(nil), t[n-1]...)
	for i := n - 2; i >= 0; i-- {
		acc[i] = make([]int, i+1)
		for k := 0; k <= i; k++ {
			acc[i][k] = t[i][k] + larger(acc[i+1][k], acc[i+1][k+1])
		}
	}

	res := &Result{Total: acc[0][0]}
	if !wantPath {
		return res
	}
	res.Path = make([]int, n)
	res.Values = make([]int, n)
	col := 0
	for i := 0; i < n; i++ {
		res.Path[i] = col
		res.Values[i] = t[i][col]
		if i+1 < n && better(acc[i+1][col+1], acc[i+1][col]) {
			col++
		}
	}
	return res
}

func singleRow(t Triangle) int {
	n := len(t)
	row := append([]int(nil), t[n-1]...)
	for i := n - 2; i >= 0; i-- {
		for k := 0; k <= i; k++ {
			row[k] = t[i][k] + larger(row[k], row[k+1])
		}
	}
	return row[0]
}
