// Package jugglefest assigns jugglers to circuits and solves number-triangle
// maximum paths.
//
// The work lives in subpackages:
//
//	juggle/     Circuit, Juggler and Festival types, the wave allocator, stability checks
//	jugglefile/ reading declaration files and writing text, JSON or YAML reports
//	triangle/   maximum top-to-bottom path with FullMatrix or SingleRow memory
//
// Commands:
//
//	cmd/jugglefest  jugglefest [OPTIONS] INPUT [OUTPUT]
//	cmd/triangle    triangle solve INPUT | triangle generate ROWS OUTPUT
//
// Quick start:
//
//	f, err := jugglefile.Load("jugglefest.txt")
//	if err != nil {
//		return err
//	}
//	if _, err := f.Allocate(juggle.WithLogger(log)); err != nil {
//		return err // *juggle.UnplacedError when a juggler ran out of choices
//	}
//	return jugglefile.Write(os.Stdout, f, jugglefile.FormatText)
package jugglefest
