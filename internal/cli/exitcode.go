// Package cli maps command errors to process exit codes.
package cli

import (
	"errors"
	"io/fs"

	"github.com/katalvlaran/jugglefest/internal/config"
	"github.com/katalvlaran/jugglefest/juggle"
	"github.com/katalvlaran/jugglefest/jugglefile"
	"github.com/katalvlaran/jugglefest/triangle"
)

// Exit codes returned by the commands.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitRead     = 2
	ExitParse    = 3
	ExitConfig   = 4
	ExitUnplaced = 5
	ExitUnstable = 6
)

// ExitCode returns the exit code for err. Classes are checked from input
// towards output, so a parse error that wraps a duplicate id still exits 3.
// An unopenable file (*fs.PathError), including the --config file, exits 2.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var pe *fs.PathError
	switch {
	case errors.Is(err, jugglefile.ErrRead):
		return ExitRead
	case errors.Is(err, jugglefile.ErrParse),
		errors.Is(err, triangle.ErrParse),
		errors.Is(err, triangle.ErrMalformedRow),
		errors.Is(err, triangle.ErrEmptyTriangle):
		return ExitParse
	case errors.Is(err, config.ErrInvalid),
		errors.Is(err, jugglefile.ErrFormat),
		errors.Is(err, juggle.ErrNoCircuits),
		errors.Is(err, juggle.ErrNoJugglers),
		errors.Is(err, juggle.ErrUnevenDistribution),
		errors.Is(err, juggle.ErrCapacityUnset),
		errors.Is(err, triangle.ErrBadInput):
		return ExitConfig
	case errors.As(err, &pe):
		return ExitRead
	case errors.Is(err, juggle.ErrUnplaced):
		return ExitUnplaced
	case errors.Is(err, juggle.ErrUnstable),
		errors.Is(err, juggle.ErrCapacityMismatch):
		return ExitUnstable
	}
	return ExitFailure
}
