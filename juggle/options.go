package juggle

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures Allocate via functional arguments.
type Option func(*Options)

// Options holds the logger and observer hooks used during allocation.
// Hooks never influence placement; they only observe it.
type Options struct {
	// Logger receives a debug entry per placement, displacement and wave.
	Logger logrus.FieldLogger

	// OnPlace is called when j takes a free seat on c.
	OnPlace func(j *Juggler, c *Circuit, score int)

	// OnDisplace is called when in takes the seat of out on c.
	OnDisplace func(in, out *Juggler, c *Circuit, score int)

	// OnWave is called before each wave with its 1-based number and size.
	OnWave func(wave, candidates int)

	// OnUnplaced is called when j exhausts its preferences.
	OnUnplaced func(j *Juggler)
}

// DefaultOptions returns Options with a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:     discardLogger(),
		OnPlace:    func(*Juggler, *Circuit, int) {},
		OnDisplace: func(_, _ *Juggler, _ *Circuit, _ int) {},
		OnWave:     func(int, int) {},
		OnUnplaced: func(*Juggler) {},
	}
}

// WithLogger sets the structured logger for allocation traces.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPlace registers a callback for placements into free seats.
func WithOnPlace(fn func(j *Juggler, c *Circuit, score int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPlace = fn
		}
	}
}

// WithOnDisplace registers a callback for displacements.
func WithOnDisplace(fn func(in, out *Juggler, c *Circuit, score int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDisplace = fn
		}
	}
}

// WithOnWave registers a callback run at the start of every wave.
func WithOnWave(fn func(wave, candidates int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWave = fn
		}
	}
}

// WithOnUnplaced registers a callback for jugglers that find no seat.
func WithOnUnplaced(fn func(j *Juggler)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnUnplaced = fn
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
