package juggle

import "fmt"

// Festival is the roster of circuits and jugglers, both kept in declaration
// order. Circuits must all be declared before the first juggler.
type Festival struct {
	circuits []*Circuit
	jugglers []*Juggler

	circuitIDs map[int]struct{}
	jugglerIDs map[int]struct{}
}

// CircuitAssignment is the final occupant list of one circuit.
type CircuitAssignment struct {
	Circuit   int
	Capacity  int
	Occupants []Seat
}

// Seat is a juggler id with the score it holds on a circuit.
type Seat struct {
	Juggler int
	Score   int
}

// NewFestival returns an empty roster.
func NewFestival() *Festival {
	return &Festival{
		circuitIDs: make(map[int]struct{}),
		jugglerIDs: make(map[int]struct{}),
	}
}

// AddCircuit declares a circuit. It fails once any juggler exists.
func (f *Festival) AddCircuit(id int, r Rating) (*Circuit, error) {
	if len(f.jugglers) > 0 {
		return nil, fmt.Errorf("%w: C%d", ErrCircuitAfterJuggler, id)
	}
	if _, dup := f.circuitIDs[id]; dup {
		return nil, fmt.Errorf("%w: C%d", ErrDuplicateID, id)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	c := NewCircuit(id, r)
	f.circuits = append(f.circuits, c)
	f.circuitIDs[id] = struct{}{}

	return c, nil
}

// AddJuggler declares a juggler whose preferences are circuit declaration
// indices, most preferred first.
func (f *Festival) AddJuggler(id int, r Rating, prefs []int) (*Juggler, error) {
	if _, dup := f.jugglerIDs[id]; dup {
		return nil, fmt.Errorf("%w: J%d", ErrDuplicateID, id)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	cs := make([]*Circuit, len(prefs))
	for i, idx := range prefs {
		if idx < 0 || idx >= len(f.circuits) {
			return nil, fmt.Errorf("%w: J%d references circuit index %d of %d", ErrBadPreference, id, idx, len(f.circuits))
		}
		cs[i] = f.circuits[idx]
	}
	j, err := NewJuggler(id, r, cs)
	if err != nil {
		return nil, err
	}
	f.jugglers = append(f.jugglers, j)
	f.jugglerIDs[id] = struct{}{}

	return j, nil
}

// Circuits returns the circuits in declaration order.
func (f *Festival) Circuits() []*Circuit {
	out := make([]*Circuit, len(f.circuits))
	copy(out, f.circuits)
	return out
}

// Jugglers returns the jugglers in declaration order.
func (f *Festival) Jugglers() []*Juggler {
	out := make([]*Juggler, len(f.jugglers))
	copy(out, f.jugglers)
	return out
}

// SetCapacities sets every circuit's capacity to jugglers ÷ circuits and
// returns it. The division must be exact.
func (f *Festival) SetCapacities() (int, error) {
	nc, nj := len(f.circuits), len(f.jugglers)
	if nc == 0 {
		return 0, ErrNoCircuits
	}
	if nj == 0 {
		return 0, ErrNoJugglers
	}
	if nj%nc != 0 {
		return 0, &DistributionError{Jugglers: nj, Circuits: nc}
	}
	capacity := nj / nc
	for _, c := range f.circuits {
		c.SetCapacity(capacity)
	}
	return capacity, nil
}

// Allocate runs the allocator over all jugglers in declaration order.
func (f *Festival) Allocate(opts ...Option) (*Result, error) {
	return Allocate(f.jugglers, opts...)
}

// Stable verifies the current assignment with CheckStability.
func (f *Festival) Stable() error {
	return CheckStability(f.circuits, f.jugglers)
}

// Assignments returns each circuit's occupants, circuits in declaration
// order and occupants in storage order.
func (f *Festival) Assignments() []CircuitAssignment {
	out := make([]CircuitAssignment, 0, len(f.circuits))
	for _, c := range f.circuits {
		ca := CircuitAssignment{
			Circuit:   c.ID,
			Capacity:  c.capacity,
			Occupants: make([]Seat, 0, len(c.occupants)),
		}
		for _, o := range c.occupants {
			ca.Occupants = append(ca.Occupants, Seat{Juggler: o.Juggler.ID, Score: o.Score})
		}
		out = append(out, ca)
	}
	return out
}
