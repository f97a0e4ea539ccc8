// Package bench is test-only tooling: a thin pprof wrapper _test.go
// benchmarks call to optionally capture a CPU profile, matching the
// ad-hoc `-cpuprofile`-style env-var helpers common in Go benchmarks
// rather than wiring a CLI flag into the core, which exposes none.
package bench

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/google/pprof/profile"
)

// StartCPUProfile starts profiling to the path named by the
// CIRCUIT_CPUPROFILE environment variable, if set, and returns a stop
// function that is always safe to defer. When the variable is unset it
// returns a no-op stop function. The stop function re-parses the
// written profile with google/pprof/profile and logs its sample count,
// catching a truncated/corrupt profile immediately rather than leaving a
// benchmark with a silently unusable profile file.
func StartCPUProfile() (stop func(), err error) {
	path := os.Getenv("CIRCUIT_CPUPROFILE")
	if path == "" {
		return func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()

		r, err := os.Open(path)
		if err != nil {
			return
		}
		defer r.Close()
		prof, err := profile.Parse(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bench: profile at %s failed to parse: %v\n", path, err)
			return
		}
		fmt.Fprintf(os.Stderr, "bench: wrote %s (%d samples)\n", path, len(prof.Sample))
	}, nil
}
