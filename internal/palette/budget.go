package palette

import (
	"fmt"
	"math"

	"github.com/jmylchreest/distinct/internal/colour"
)

// matrixCellBytes is the storage cost of one distance matrix cell.
const matrixCellBytes = 8

// maxCandidates caps the candidate count when no explicit ceiling is
// given, bounding the default matrix at 8 MiB.
const maxCandidates = 1024

// planBudget decides how many candidates a full pairwise distance
// matrix can afford under the ceiling (in bytes; 0 means the default
// cap) and subsamples the set if it is over. Subsampling is a uniform
// stride over the original order, so the same input always reduces to
// the same candidates.
func planBudget(set CandidateSet, ceiling uint64) (CandidateSet, error) {
	limit := maxCandidates
	if ceiling > 0 {
		// Largest k with k*k*8 <= ceiling.
		limit = int(math.Sqrt(float64(ceiling / matrixCellBytes)))
		if limit < 1 {
			return CandidateSet{}, fmt.Errorf("%w: ceiling %d bytes cannot hold a single candidate", ErrMemoryBudgetExceeded, ceiling)
		}
	}

	k := len(set.Colours)
	if k <= limit {
		return set, nil
	}

	kept := make([]colour.RGB, 0, limit)
	for i := 0; i < limit; i++ {
		// Index i*k/limit walks the original order at a uniform
		// stride without ever repeating.
		kept = append(kept, set.Colours[i*k/limit])
	}

	return CandidateSet{Colours: kept, Origin: set.Origin}, nil
}
