// Command hdastar is the CLI front end for the HDA* engine (spec.md §6):
//
//	hdastar run FILENAME STARTING_SEED [N_SEEDS] [N_REPS]
//
// Exit codes: 0 success, 1 usage, 2 bad numeric argument, 3 no path found.
package main

import (
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// Match GOMAXPROCS to the container/cgroup CPU quota before any worker
	// pool is started (the worker count itself comes from --workers,
	// default 16), grounded on the automaxprocs dependency carried
	// through joeycumines/go-utilpkg.
	if _, err := maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {})); err != nil {
		// Non-fatal: fall back to whatever GOMAXPROCS already is.
	}

	os.Exit(run(os.Args[1:]))
}
