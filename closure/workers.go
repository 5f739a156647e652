package closure

import "runtime"

// workerLimit bounds the errgroup's concurrent goroutines to the host's
// CPU count, mirroring the work-stealing pool sizing in spec §5.
func workerLimit() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}

	return 1
}
