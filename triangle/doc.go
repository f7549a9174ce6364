// Package triangle finds the maximum-weight top-to-bottom path through a
// triangular array of integers.
//
// 🚀 What is the problem?
//
//	Starting at the apex, step to one of the two adjacent nodes on the row
//	below until the base is reached. Find the path whose node values sum to
//	the maximum. Greedily following the larger child fails:
//
//	     1
//	    1 2
//	   3 1 2
//	  3 1 1 2
//
//	greedy gives 1→2→2→2 = 7, the answer is 1→1→3→3 = 8. Trying every
//	path costs 2^(rows-1).
//
// ✨ How it works:
//
//	Each node is replaced, from the second-to-last row upward, by its value
//	plus the larger accumulated value of its two children. Every node then
//	encodes the best sum from itself to the base, so a single walk from the
//	apex that always takes the larger accumulated child (ties go left)
//	recovers an optimal path. The original values are kept for reporting.
//
// ⚙️ Usage:
//
//	t, err := triangle.Parse(r)
//	res, err := triangle.MaxPath(t, nil) // FullMatrix, path included
//	fmt.Println(res.Total, res.Values)
//
//	opts := triangle.DefaultOptions()
//	opts.MemoryMode = triangle.SingleRow
//	opts.ReturnPath = false
//	res, err = triangle.MaxPath(t, &opts) // total only, O(rows) memory
//
// Performance (N = number of nodes, R = rows):
//
//   - Time:   O(N)
//   - Memory: O(N) (FullMatrix) or O(R) (SingleRow)
//
// Generate builds deterministic random triangles for testing; Write prints
// a triangle in the format Parse reads.
package triangle
