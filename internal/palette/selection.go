package palette

import (
	"fmt"
	"math"
)

// greedySelect picks n candidate indices by farthest-point
// construction: each step adds the candidate whose minimum distance to
// everything already chosen is largest, with ties broken by the lowest
// candidate index.
//
// virtual carries each candidate's minimum distance to the "always
// present" neighbours (the background and any fixed palette members);
// it is nil when there are none. With virtual neighbours the first pick
// is simply the candidate farthest from them; without, the seed is the
// mutually farthest pair.
//
// The loop is inherently sequential (each pick depends on the previous
// ones) and keeps a running per-candidate minimum rather than
// rescanning the matrix each step.
func greedySelect(m *Matrix, n int, virtual []float64) ([]int, error) {
	k := m.Len()
	if n > k {
		return nil, fmt.Errorf("%w: want %d colours from %d candidates", ErrInsufficientCandidates, n, k)
	}

	minDist := make([]float64, k)
	for i := range minDist {
		if virtual != nil {
			minDist[i] = virtual[i]
		} else {
			minDist[i] = math.Inf(1)
		}
	}

	chosen := make([]int, 0, n)
	pick := func(i int) {
		chosen = append(chosen, i)
		minDist[i] = math.Inf(-1)
		for j := 0; j < k; j++ {
			if d := m.At(i, j); d < minDist[j] {
				minDist[j] = d
			}
		}
	}

	if virtual == nil {
		// Seed with the two mutually farthest candidates.
		bi, bj, best := 0, 0, math.Inf(-1)
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if d := m.At(i, j); d > best {
					bi, bj, best = i, j, d
				}
			}
		}
		pick(bi)
		if n > 1 {
			pick(bj)
		}
	}

	for len(chosen) < n {
		next, best := -1, math.Inf(-1)
		for i := 0; i < k; i++ {
			if minDist[i] > best {
				next, best = i, minDist[i]
			}
		}
		pick(next)
	}

	return chosen[:n], nil
}
