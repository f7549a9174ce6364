package juggle

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Result summarizes one Allocate run.
type Result struct {
	// Waves is the number of worklist passes, including the initial one.
	Waves int

	// Placements counts seats taken without displacing anyone.
	Placements int

	// Displacements counts seats taken from a weaker occupant.
	Displacements int

	// Unplaced lists jugglers that exhausted their preferences, in the
	// order they ran out.
	Unplaced []*Juggler
}

// allocator encapsulates the mutable state of one Allocate run.
type allocator struct {
	opts Options
	log  logrus.FieldLogger
	res  *Result
}

// Allocate seats every candidate on a circuit from its own preference list.
//
// Candidates are processed in order. Each scans its preferences, most
// preferred first: a circuit with a free seat takes it; a full circuit gives
// it the seat of the first occupant (storage order) whose score is strictly
// lower, and that occupant is queued for the next wave. Waves repeat until
// nobody is displaced.
//
// A candidate that is already seated scans only the circuits it ranks above
// its own, so running Allocate again on a stable assignment changes nothing.
//
// Returns ErrCapacityUnset, before any mutation, if a preferred circuit has no
// capacity. Returns *UnplacedError if some juggler exhausted its preferences;
// the partial assignment and Result remain valid in that case.
func Allocate(candidates []*Juggler, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkCapacities(candidates); err != nil {
		return nil, err
	}

	a := &allocator{opts: o, log: o.Logger, res: &Result{}}
	a.run(candidates)
	if len(a.res.Unplaced) > 0 {
		return a.res, &UnplacedError{Jugglers: a.res.Unplaced}
	}
	return a.res, nil
}

func checkCapacities(candidates []*Juggler) error {
	for _, j := range candidates {
		for _, c := range j.prefs {
			if c.capacity <= 0 {
				return fmt.Errorf("%w: %s preferred by %s", ErrCapacityUnset, c, j)
			}
		}
	}
	return nil
}

// run processes waves until the worklist is empty.
func (a *allocator) run(worklist []*Juggler) {
	for len(worklist) > 0 {
		a.res.Waves++
		a.opts.OnWave(a.res.Waves, len(worklist))
		a.log.WithFields(logrus.Fields{
			"wave":       a.res.Waves,
			"candidates": len(worklist),
		}).Debug("starting wave")

		var displaced []*Juggler
		for _, j := range worklist {
			if out := a.place(j); out != nil {
				displaced = append(displaced, out)
			}
		}
		if len(displaced) > 0 {
			a.log.WithField("displaced", len(displaced)).Debug("reassigning displaced jugglers")
		}
		worklist = displaced
	}
}

// place seats j and returns the juggler it displaced, if any.
func (a *allocator) place(j *Juggler) *Juggler {
	current := j.circuit
	for _, c := range j.prefs {
		if c == current {
			// Nothing j ranks higher would take it.
			return nil
		}
		score := Score(j, c)
		if !c.Full() {
			a.vacate(j)
			c.seat(j, score)
			a.res.Placements++
			a.opts.OnPlace(j, c, score)
			a.log.WithFields(logrus.Fields{
				"juggler": j.ID,
				"circuit": c.ID,
				"score":   score,
			}).Debug("assigned juggler")
			return nil
		}
		if idx := c.weakerThan(score); idx >= 0 {
			a.vacate(j)
			out := c.replace(idx, j, score)
			a.res.Displacements++
			a.opts.OnDisplace(j, out, c, score)
			a.log.WithFields(logrus.Fields{
				"juggler":   j.ID,
				"circuit":   c.ID,
				"score":     score,
				"displaced": out.ID,
			}).Debug("assigned juggler, displacing occupant")
			return out
		}
	}
	if current == nil {
		a.res.Unplaced = append(a.res.Unplaced, j)
		a.opts.OnUnplaced(j)
		a.log.WithField("juggler", j.ID).Warn("juggler exhausted its preferences")
	}
	return nil
}

// vacate frees the seat j currently holds, if any.
func (a *allocator) vacate(j *Juggler) {
	if j.circuit != nil {
		j.circuit.remove(j)
	}
}
