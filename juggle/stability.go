package juggle

import (
	"errors"
	"fmt"
)

// ErrCapacityMismatch indicates a circuit whose occupancy differs from its
// capacity after allocation.
var ErrCapacityMismatch = errors.New("juggle: circuit occupancy differs from capacity")

// InstabilityError names a juggler that would switch: it ranks Circuit above
// its own and strictly outscores Occupant there. Occupant is nil when the
// circuit has a free seat. Rank is the 0-based position of Circuit in the
// juggler's preferences.
type InstabilityError struct {
	Juggler  *Juggler
	Circuit  *Circuit
	Occupant *Juggler
	Score    int
	Rank     int
}

func (e *InstabilityError) Error() string {
	if e.Occupant == nil {
		return fmt.Sprintf("juggle: %s prefers %s (choice %d, score %d) which has a free seat", e.Juggler, e.Circuit, e.Rank+1, e.Score)
	}
	return fmt.Sprintf("juggle: %s prefers %s (choice %d, score %d) and outscores occupant %s", e.Juggler, e.Circuit, e.Rank+1, e.Score, e.Occupant)
}

// Unwrap returns ErrUnstable.
func (e *InstabilityError) Unwrap() error { return ErrUnstable }

// CapacityError reports a circuit that is not filled to capacity.
type CapacityError struct {
	Circuit  *Circuit
	Capacity int
	Seated   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("juggle: %s holds %d of %d", e.Circuit, e.Seated, e.Capacity)
}

// Unwrap returns ErrCapacityMismatch.
func (e *CapacityError) Unwrap() error { return ErrCapacityMismatch }

// CheckStability verifies a finished assignment, in this order:
//  1. every juggler is seated, else *UnplacedError;
//  2. every circuit is exactly at capacity, else *CapacityError;
//  3. no juggler ranks a circuit above its own while strictly outscoring one
//     of that circuit's occupants, else *InstabilityError.
//
// The third check is stricter than requiring a juggler to beat every
// occupant; Allocate satisfies it.
func CheckStability(circuits []*Circuit, jugglers []*Juggler) error {
	var unplaced []*Juggler
	for _, j := range jugglers {
		if j.circuit == nil {
			unplaced = append(unplaced, j)
		}
	}
	if len(unplaced) > 0 {
		return &UnplacedError{Jugglers: unplaced}
	}

	for _, c := range circuits {
		if len(c.occupants) != c.capacity {
			return &CapacityError{Circuit: c, Capacity: c.capacity, Seated: len(c.occupants)}
		}
	}

	for _, j := range jugglers {
		for _, c := range j.prefs {
			if c == j.circuit {
				break
			}
			score := Score(j, c)
			if !c.Full() {
				return &InstabilityError{Juggler: j, Circuit: c, Score: score, Rank: j.Rank(c)}
			}
			if idx := c.weakerThan(score); idx >= 0 {
				return &InstabilityError{Juggler: j, Circuit: c, Occupant: c.occupants[idx].Juggler, Score: score, Rank: j.Rank(c)}
			}
		}
	}
	return nil
}
