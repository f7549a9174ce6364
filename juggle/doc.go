// Package juggle assigns rated jugglers to rated circuits of equal capacity
// using a preference-ordered, capacity-bounded displacement rule.
//
// What
//
//   - Rating is the (H, E, P) vector carried by jugglers and circuits:
//     hand-to-eye coordination, endurance and pizzazz.
//   - Score is the dot product of two ratings; bigger is a better fit.
//   - Festival owns the ordered circuit and juggler rosters, computes the
//     per-circuit capacity and runs the allocator.
//   - Allocate places candidates circuit-by-circuit from their own preference
//     lists. A candidate that meets a full circuit displaces the first occupant
//     it strictly outscores; displaced jugglers are reprocessed in the next wave.
//   - CheckStability verifies a finished assignment.
//
// Switching criteria
//
//	A juggler moves to another circuit only if it prefers that circuit more
//	AND it is a strictly better fit than some juggler already there. If every
//	occupant of a preferred circuit is at least as good a fit, the juggler stays
//	put: the move would hurt the quality of the performance.
//
// Determinism
//
//	Candidates are processed in worklist order and occupants are scanned in
//	storage order (assignment history, not sorted order). Equal scores never
//	displace. The same input therefore always yields the same assignment,
//	including the winner of every tie.
//
// Complexity (J = jugglers, C = circuits, K = capacity)
//
//   - One candidate visit: O(C·K) worst case.
//   - Termination: each displacement strictly raises the displacing circuit's
//     score sum, and the total sum is bounded.
//
// Usage
//
//	f := juggle.NewFestival()
//	c0, _ := f.AddCircuit(0, juggle.Rating{H: 7, E: 7, P: 10})
//	c1, _ := f.AddCircuit(1, juggle.Rating{H: 2, E: 1, P: 1})
//	_, _ = f.AddJuggler(0, juggle.Rating{H: 3, E: 9, P: 2}, []int{1, 0})
//	_, _ = f.AddJuggler(1, juggle.Rating{H: 4, E: 0, P: 10}, []int{0, 1})
//	if _, err := f.SetCapacities(); err != nil {
//	    // ErrNoCircuits or *DistributionError
//	}
//	res, err := f.Allocate(juggle.WithLogger(log))
//	if err != nil {
//	    // ErrCapacityUnset or *UnplacedError
//	}
//	_ = c0.Occupants() // insertion-ordered (juggler, score) pairs
//
// Errors
//
//   - ErrNoCircuits          capacity requested with no circuits declared.
//   - ErrUnevenDistribution  jugglers do not divide evenly into circuits.
//   - ErrCapacityUnset       a preferred circuit has no capacity yet.
//   - ErrUnplaced            some juggler exhausted its preferences.
//   - ErrUnstable            CheckStability found a blocking juggler.
//
// Nothing in this package is safe for concurrent use; the allocator is
// sequential by contract.
package juggle
