package juggle

import (
	"errors"
	"fmt"
)

// Sentinel errors for roster construction and allocation.
var (
	// ErrNoCircuits is returned when capacity is computed with no circuits.
	ErrNoCircuits = errors.New("juggle: no circuits declared")

	// ErrNoJugglers is returned when capacity is computed with no jugglers.
	ErrNoJugglers = errors.New("juggle: no jugglers declared")

	// ErrUnevenDistribution is returned when jugglers do not divide evenly
	// into circuits.
	ErrUnevenDistribution = errors.New("juggle: jugglers do not divide evenly into circuits")

	// ErrCapacityUnset is returned by Allocate when a preferred circuit has
	// no positive capacity.
	ErrCapacityUnset = errors.New("juggle: circuit capacity not set")

	// ErrEmptyPreferences is returned for a juggler without preferences.
	ErrEmptyPreferences = errors.New("juggle: preference list is empty")

	// ErrBadPreference is returned for a nil, unknown or repeated circuit in a
	// preference list.
	ErrBadPreference = errors.New("juggle: invalid preference")

	// ErrDuplicateID is returned when an id is declared twice.
	ErrDuplicateID = errors.New("juggle: duplicate id")

	// ErrCircuitAfterJuggler is returned when a circuit is declared after the
	// first juggler.
	ErrCircuitAfterJuggler = errors.New("juggle: circuits must be declared before jugglers")

	// ErrNegativeRating is returned for a rating with a negative component.
	ErrNegativeRating = errors.New("juggle: rating components must be nonnegative")

	// ErrRatingRange is returned for a rating component above MaxRating.
	ErrRatingRange = errors.New("juggle: rating component out of range")

	// ErrUnplaced indicates that at least one juggler exhausted its
	// preferences without a seat.
	ErrUnplaced = errors.New("juggle: juggler left unplaced")

	// ErrUnstable indicates a blocking juggler found by CheckStability.
	ErrUnstable = errors.New("juggle: assignment is not stable")
)

// Rating is the (H, E, P) skill vector shared by jugglers and circuits.
type Rating struct {
	H int // hand to eye coordination
	E int // endurance
	P int // pizzazz
}

// MaxRating bounds each rating component so that Dot of two valid ratings
// fits in an int32.
const MaxRating = 1 << 14

// Validate reports ErrNegativeRating if any component is below zero and
// ErrRatingRange if any exceeds MaxRating.
func (r Rating) Validate() error {
	if r.H < 0 || r.E < 0 || r.P < 0 {
		return fmt.Errorf("%w: H:%d E:%d P:%d", ErrNegativeRating, r.H, r.E, r.P)
	}
	if r.H > MaxRating || r.E > MaxRating || r.P > MaxRating {
		return fmt.Errorf("%w: H:%d E:%d P:%d, max %d", ErrRatingRange, r.H, r.E, r.P, MaxRating)
	}
	return nil
}

// Dot returns the dot product of r and o. It does not check for overflow;
// ratings that pass Validate cannot overflow.
func (r Rating) Dot(o Rating) int {
	return r.H*o.H + r.E*o.E + r.P*o.P
}

// Rated is anything that exposes a Rating.
type Rated interface {
	Rating() Rating
}

// Score returns the compatibility of a and b: the dot product of their
// ratings. It is symmetric and has no side effects.
func Score(a, b Rated) int {
	return a.Rating().Dot(b.Rating())
}

// Occupant is a juggler seated on a circuit together with the score it
// earned there.
type Occupant struct {
	Juggler *Juggler
	Score   int
}

// Circuit is a capacity-bounded assignment target.
type Circuit struct {
	ID     int
	rating Rating

	capacity  int
	occupants []Occupant
}

// NewCircuit returns a circuit with no capacity. Capacity is set later, once
// the population size is known.
func NewCircuit(id int, r Rating) *Circuit {
	return &Circuit{ID: id, rating: r}
}

// Rating implements Rated.
func (c *Circuit) Rating() Rating { return c.rating }

// Capacity returns the maximum number of occupants.
func (c *Circuit) Capacity() int { return c.capacity }

// SetCapacity fixes the maximum number of occupants.
func (c *Circuit) SetCapacity(n int) { c.capacity = n }

// Len returns the current number of occupants.
func (c *Circuit) Len() int { return len(c.occupants) }

// Full reports whether no seat is free.
func (c *Circuit) Full() bool { return len(c.occupants) >= c.capacity }

// Occupants returns a copy of the occupant list in storage order.
func (c *Circuit) Occupants() []Occupant {
	out := make([]Occupant, len(c.occupants))
	copy(out, c.occupants)
	return out
}

// MinScore returns the lowest occupant score and false when empty.
func (c *Circuit) MinScore() (int, bool) {
	if len(c.occupants) == 0 {
		return 0, false
	}
	m := c.occupants[0].Score
	for _, o := range c.occupants[1:] {
		if o.Score < m {
			m = o.Score
		}
	}
	return m, true
}

func (c *Circuit) String() string {
	return fmt.Sprintf("C%d", c.ID)
}

// seat appends j with score; the caller guarantees a free seat.
func (c *Circuit) seat(j *Juggler, score int) {
	c.occupants = append(c.occupants, Occupant{Juggler: j, Score: score})
	j.circuit = c
}

// replace puts j into position idx and returns the previous occupant,
// which is left without a circuit.
func (c *Circuit) replace(idx int, j *Juggler, score int) *Juggler {
	out := c.occupants[idx].Juggler
	c.occupants[idx] = Occupant{Juggler: j, Score: score}
	out.circuit = nil
	j.circuit = c
	return out
}

// weakerThan returns the index of the first occupant whose score is strictly
// less than score, or -1.
func (c *Circuit) weakerThan(score int) int {
	for i, o := range c.occupants {
		if o.Score < score {
			return i
		}
	}
	return -1
}

// remove drops j from the occupant list, keeping the order of the rest.
func (c *Circuit) remove(j *Juggler) {
	for i, o := range c.occupants {
		if o.Juggler == j {
			c.occupants = append(c.occupants[:i], c.occupants[i+1:]...)
			j.circuit = nil
			return
		}
	}
}

// Juggler is an agent with a rating and a ranked list of circuits.
type Juggler struct {
	ID     int
	rating Rating
	prefs  []*Circuit

	circuit *Circuit
}

// NewJuggler builds a juggler. prefs must be non-empty and hold distinct,
// non-nil circuits, most preferred first.
func NewJuggler(id int, r Rating, prefs []*Circuit) (*Juggler, error) {
	if len(prefs) == 0 {
		return nil, fmt.Errorf("%w: J%d", ErrEmptyPreferences, id)
	}
	seen := make(map[*Circuit]struct{}, len(prefs))
	for i, c := range prefs {
		if c == nil {
			return nil, fmt.Errorf("%w: J%d preference %d is nil", ErrBadPreference, id, i)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: J%d lists %s twice", ErrBadPreference, id, c)
		}
		seen[c] = struct{}{}
	}
	p := make([]*Circuit, len(prefs))
	copy(p, prefs)

	return &Juggler{ID: id, rating: r, prefs: p}, nil
}

// Rating implements Rated.
func (j *Juggler) Rating() Rating { return j.rating }

// Preferences returns a copy of the preference list, most preferred first.
func (j *Juggler) Preferences() []*Circuit {
	out := make([]*Circuit, len(j.prefs))
	copy(out, j.prefs)
	return out
}

// Circuit returns the circuit j currently occupies, or nil.
func (j *Juggler) Circuit() *Circuit { return j.circuit }

// Rank returns the position of c in j's preferences, or -1.
func (j *Juggler) Rank(c *Circuit) int {
	for i, p := range j.prefs {
		if p == c {
			return i
		}
	}
	return -1
}

func (j *Juggler) String() string {
	return fmt.Sprintf("J%d", j.ID)
}

// DistributionError reports a juggler count that does not divide evenly
// into the circuit count.
type DistributionError struct {
	Jugglers int
	Circuits int
}

func (e *DistributionError) Error() string {
	return fmt.Sprintf("juggle: %d jugglers do not divide evenly into %d circuits", e.Jugglers, e.Circuits)
}

// Unwrap returns ErrUnevenDistribution.
func (e *DistributionError) Unwrap() error { return ErrUnevenDistribution }

// UnplacedError lists jugglers that exhausted their preferences.
type UnplacedError struct {
	Jugglers []*Juggler
}

func (e *UnplacedError) Error() string {
	return fmt.Sprintf("juggle: %d juggler(s) left unplaced: %v", len(e.Jugglers), e.Jugglers)
}

// Unwrap returns ErrUnplaced.
func (e *UnplacedError) Unwrap() error { return ErrUnplaced }
