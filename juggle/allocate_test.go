package juggle_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jugglefest/juggle"
)

// entry declares one juggler for newFestival.
type entry struct {
	id     int
	rating juggle.Rating
	prefs  []int
}

// newFestival declares circuits with ids 0..n-1 and the given jugglers, then
// sets capacities.
func newFestival(t testing.TB, circuits []juggle.Rating, jugglers []entry) *juggle.Festival {
	t.Helper()
	f := juggle.NewFestival()
	for id, r := range circuits {
		_, err := f.AddCircuit(id, r)
		require.NoError(t, err)
	}
	for _, e := range jugglers {
		_, err := f.AddJuggler(e.id, e.rating, e.prefs)
		require.NoError(t, err)
	}
	_, err := f.SetCapacities()
	require.NoError(t, err)

	return f
}

// TestAllocate_NoConflict places two jugglers on their first choices.
func TestAllocate_NoConflict(t *testing.T) {
	f := newFestival(t,
		[]juggle.Rating{{H: 1}, {E: 1}},
		[]entry{
			{0, juggle.Rating{E: 5}, []int{1, 0}},
			{1, juggle.Rating{H: 5}, []int{0, 1}},
		})

	res, err := f.Allocate()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Waves)
	assert.Equal(t, 2, res.Placements)
	assert.Equal(t, 0, res.Displacements, "no displacement expected")

	cs, js := f.Circuits(), f.Jugglers()
	assert.Equal(t, cs[1], js[0].Circuit(), "J0 -> C1")
	assert.Equal(t, cs[0], js[1].Circuit(), "J1 -> C0")
	assert.NoError(t, f.Stable())
}

// TestAllocate_CapacityOverflow leaves the weakest of three single-choice
// jugglers unplaced on a circuit of capacity two.
func TestAllocate_CapacityOverflow(t *testing.T) {
	c := juggle.NewCircuit(0, juggle.Rating{H: 1})
	c.SetCapacity(2)
	j10, _ := juggle.NewJuggler(0, juggle.Rating{H: 10}, []*juggle.Circuit{c})
	j20, _ := juggle.NewJuggler(1, juggle.Rating{H: 20}, []*juggle.Circuit{c})
	j5, _ := juggle.NewJuggler(2, juggle.Rating{H: 5}, []*juggle.Circuit{c})

	var reported []*juggle.Juggler
	res, err := juggle.Allocate([]*juggle.Juggler{j10, j20, j5},
		juggle.WithOnUnplaced(func(j *juggle.Juggler) { reported = append(reported, j) }))
	require.Error(t, err)
	assert.ErrorIs(t, err, juggle.ErrUnplaced)

	var ue *juggle.UnplacedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, []*juggle.Juggler{j5}, ue.Jugglers)
	assert.Equal(t, []*juggle.Juggler{j5}, reported, "hook sees the unplaced juggler")
	require.NotNil(t, res, "result is returned alongside the error")
	assert.Equal(t, []*juggle.Juggler{j5}, res.Unplaced)

	assert.Equal(t, []juggle.Occupant{{Juggler: j10, Score: 10}, {Juggler: j20, Score: 20}}, c.Occupants())
	assert.Nil(t, j5.Circuit())
}

// TestAllocate_DisplacementChain resolves a chain of depth three in one call:
// A displaces B from S1, B displaces C from S2, C lands in S3.
func TestAllocate_DisplacementChain(t *testing.T) {
	const b, c, a = 0, 1, 2
	f := newFestival(t,
		[]juggle.Rating{{H: 1}, {E: 1}, {P: 1}},
		[]entry{
			{b, juggle.Rating{H: 2, E: 5, P: 1}, []int{0, 1, 2}},
			{c, juggle.Rating{E: 3, P: 1}, []int{1, 2, 0}},
			{a, juggle.Rating{H: 9}, []int{0, 1, 2}},
		})

	var displaced [][2]int
	res, err := f.Allocate(juggle.WithOnDisplace(func(in, out *juggle.Juggler, _ *juggle.Circuit, _ int) {
		displaced = append(displaced, [2]int{in.ID, out.ID})
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Waves)
	assert.Equal(t, 2, res.Displacements)
	assert.Equal(t, 3, res.Placements)
	assert.Equal(t, [][2]int{{a, b}, {b, c}}, displaced)

	want := []juggle.CircuitAssignment{
		{Circuit: 0, Capacity: 1, Occupants: []juggle.Seat{{Juggler: a, Score: 9}}},
		{Circuit: 1, Capacity: 1, Occupants: []juggle.Seat{{Juggler: b, Score: 5}}},
		{Circuit: 2, Capacity: 1, Occupants: []juggle.Seat{{Juggler: c, Score: 1}}},
	}
	if diff := cmp.Diff(want, f.Assignments()); diff != "" {
		t.Errorf("Assignments() mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, f.Stable())
}

// TestAllocate_EqualScoresNeverDisplace keeps the first arrival on a tie.
func TestAllocate_EqualScoresNeverDisplace(t *testing.T) {
	f := newFestival(t,
		[]juggle.Rating{{H: 1}, {H: 1}},
		[]entry{
			{0, juggle.Rating{H: 5}, []int{0, 1}},
			{1, juggle.Rating{H: 5}, []int{0, 1}},
		})

	res, err := f.Allocate()
	require.NoError(t, err)
	assert.Equal(t, 0, res.Displacements)
	cs, js := f.Circuits(), f.Jugglers()
	assert.Equal(t, cs[0], js[0].Circuit(), "first arrival keeps the seat")
	assert.Equal(t, cs[1], js[1].Circuit())
}

// TestAllocate_FirstWeakerInStorageOrder displaces the first strictly weaker
// occupant, not the weakest one, and the newcomer takes its position.
func TestAllocate_FirstWeakerInStorageOrder(t *testing.T) {
	c0 := juggle.NewCircuit(0, juggle.Rating{H: 1})
	c1 := juggle.NewCircuit(1, juggle.Rating{E: 1})
	c0.SetCapacity(2)
	c1.SetCapacity(2)
	j3, _ := juggle.NewJuggler(0, juggle.Rating{H: 3}, []*juggle.Circuit{c0})
	j1, _ := juggle.NewJuggler(1, juggle.Rating{H: 1}, []*juggle.Circuit{c0, c1})
	j4, _ := juggle.NewJuggler(2, juggle.Rating{H: 4}, []*juggle.Circuit{c0})

	res, err := juggle.Allocate([]*juggle.Juggler{j3, j1, j4})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Displacements)
	assert.Equal(t, 3, res.Waves)

	// J4 took J3's slot (index 0); J3 then took J1's slot (index 1).
	assert.Equal(t, []juggle.Occupant{{Juggler: j4, Score: 4}, {Juggler: j3, Score: 3}}, c0.Occupants())
	assert.Equal(t, []juggle.Occupant{{Juggler: j1, Score: 0}}, c1.Occupants())
}

// TestAllocate_CapacityUnset refuses to run before capacities are known.
func TestAllocate_CapacityUnset(t *testing.T) {
	c := juggle.NewCircuit(0, juggle.Rating{H: 1})
	j, _ := juggle.NewJuggler(0, juggle.Rating{H: 1}, []*juggle.Circuit{c})

	res, err := juggle.Allocate([]*juggle.Juggler{j})
	assert.ErrorIs(t, err, juggle.ErrCapacityUnset)
	assert.Nil(t, res)
	assert.Equal(t, 0, c.Len(), "nothing mutated")
}

// TestAllocate_Idempotent re-runs allocation on a stable state.
func TestAllocate_Idempotent(t *testing.T) {
	f := newFestival(t,
		[]juggle.Rating{{H: 1}, {E: 1}, {P: 1}},
		[]entry{
			{0, juggle.Rating{H: 2, E: 5, P: 1}, []int{0, 1, 2}},
			{1, juggle.Rating{E: 3, P: 1}, []int{1, 2, 0}},
			{2, juggle.Rating{H: 9}, []int{0, 1, 2}},
		})
	_, err := f.Allocate()
	require.NoError(t, err)
	before := f.Assignments()

	res, err := f.Allocate()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Waves)
	assert.Equal(t, 0, res.Placements)
	assert.Equal(t, 0, res.Displacements)
	if diff := cmp.Diff(before, f.Assignments()); diff != "" {
		t.Errorf("second run changed the assignment (-before +after):\n%s", diff)
	}
}

// TestAllocate_SeatedJugglerMovesUp vacates the old seat when a seated
// candidate claims a circuit it ranks higher.
func TestAllocate_SeatedJugglerMovesUp(t *testing.T) {
	c0 := juggle.NewCircuit(0, juggle.Rating{H: 1})
	c1 := juggle.NewCircuit(1, juggle.Rating{H: 1})
	c0.SetCapacity(1)
	c1.SetCapacity(1)
	strong, _ := juggle.NewJuggler(0, juggle.Rating{H: 9}, []*juggle.Circuit{c0})
	weak, _ := juggle.NewJuggler(1, juggle.Rating{H: 1}, []*juggle.Circuit{c0, c1})
	_, err := juggle.Allocate([]*juggle.Juggler{strong, weak})
	require.NoError(t, err)
	require.Equal(t, c1, weak.Circuit())

	c0.SetCapacity(2)
	res, err := juggle.Allocate([]*juggle.Juggler{weak})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Placements)
	assert.Equal(t, c0, weak.Circuit())
	assert.Equal(t, 0, c1.Len(), "old seat is vacated")
	assert.Equal(t, []juggle.Occupant{{Juggler: strong, Score: 9}, {Juggler: weak, Score: 1}}, c0.Occupants())
}

// TestAllocate_Hooks counts hook invocations across waves.
func TestAllocate_Hooks(t *testing.T) {
	f := newFestival(t,
		[]juggle.Rating{{H: 1}, {E: 1}, {P: 1}},
		[]entry{
			{0, juggle.Rating{H: 2, E: 5, P: 1}, []int{0, 1, 2}},
			{1, juggle.Rating{E: 3, P: 1}, []int{1, 2, 0}},
			{2, juggle.Rating{H: 9}, []int{0, 1, 2}},
		})

	var waves [][2]int
	placed := 0
	_, err := f.Allocate(
		juggle.WithOnWave(func(w, n int) { waves = append(waves, [2]int{w, n}) }),
		juggle.WithOnPlace(func(*juggle.Juggler, *juggle.Circuit, int) { placed++ }),
		juggle.WithOnPlace(nil), // nil keeps the previous hook
	)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 3}, {2, 1}, {3, 1}}, waves)
	assert.Equal(t, 3, placed)
}

// TestAllocate_Logger writes structured debug entries to the injected logger.
func TestAllocate_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.JSONFormatter{})

	f := newFestival(t,
		[]juggle.Rating{{H: 1}},
		[]entry{{7, juggle.Rating{H: 3}, []int{0}}})
	_, err := f.Allocate(juggle.WithLogger(l))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"assigned juggler"`)
	assert.Contains(t, out, `"juggler":7`)
	assert.Contains(t, out, `"score":3`)
	assert.Contains(t, out, `"wave":1`)
}

// TestCheckStability_Violations builds broken assignments by hand.
func TestCheckStability_Violations(t *testing.T) {
	t.Run("Unplaced", func(t *testing.T) {
		c := juggle.NewCircuit(0, juggle.Rating{H: 1})
		c.SetCapacity(1)
		j, _ := juggle.NewJuggler(0, juggle.Rating{H: 1}, []*juggle.Circuit{c})
		err := juggle.CheckStability([]*juggle.Circuit{c}, []*juggle.Juggler{j})
		assert.ErrorIs(t, err, juggle.ErrUnplaced)
	})

	t.Run("UnderCapacity", func(t *testing.T) {
		c := juggle.NewCircuit(0, juggle.Rating{H: 1})
		c.SetCapacity(2)
		j, _ := juggle.NewJuggler(0, juggle.Rating{H: 1}, []*juggle.Circuit{c})
		_, err := juggle.Allocate([]*juggle.Juggler{j})
		require.NoError(t, err)

		err = juggle.CheckStability([]*juggle.Circuit{c}, []*juggle.Juggler{j})
		assert.ErrorIs(t, err, juggle.ErrCapacityMismatch)
		var ce *juggle.CapacityError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 1, ce.Seated)
	})

	t.Run("BlockingJuggler", func(t *testing.T) {
		c0 := juggle.NewCircuit(0, juggle.Rating{H: 1})
		c1 := juggle.NewCircuit(1, juggle.Rating{H: 1})
		c0.SetCapacity(1)
		c1.SetCapacity(1)
		star, _ := juggle.NewJuggler(0, juggle.Rating{H: 9}, []*juggle.Circuit{c0})
		strong, _ := juggle.NewJuggler(1, juggle.Rating{H: 5}, []*juggle.Circuit{c0, c1})
		_, err := juggle.Allocate([]*juggle.Juggler{star, strong})
		require.NoError(t, err)
		require.Equal(t, c1, strong.Circuit())

		// Growing c0 lets a weak juggler in behind strong's back.
		c0.SetCapacity(2)
		weak, _ := juggle.NewJuggler(2, juggle.Rating{H: 1}, []*juggle.Circuit{c0})
		_, err = juggle.Allocate([]*juggle.Juggler{weak})
		require.NoError(t, err)

		err = juggle.CheckStability([]*juggle.Circuit{c0, c1}, []*juggle.Juggler{star, strong, weak})
		assert.ErrorIs(t, err, juggle.ErrUnstable)
		var ie *juggle.InstabilityError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, strong, ie.Juggler)
		assert.Equal(t, c0, ie.Circuit)
		assert.Equal(t, weak, ie.Occupant)
		assert.Equal(t, 5, ie.Score)
		assert.Equal(t, 0, ie.Rank, "C0 is strong's first choice")
		assert.Contains(t, ie.Error(), "J1 prefers C0 (choice 1, score 5)")
	})
}
