package palette

import (
	"runtime"
	"sync"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Matrix is a symmetric pairwise distance matrix over candidate
// indices: zero diagonal, d(i,j) = d(j,i). When CVD simulation is
// configured the distances are between the simulated colours, so the
// matrix always reflects perceived rather than physical difference.
type Matrix struct {
	n     int
	cells []float64
}

// At returns the distance between candidates i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.cells[i*m.n+j]
}

// Len returns the candidate count.
func (m *Matrix) Len() int {
	return m.n
}

// buildMatrix computes all pairwise distances. Every cell is
// independent of every other, so rows are spread across a worker per
// CPU; only the final assembly is shared, and each worker writes a
// disjoint range.
func buildMatrix(colours []colour.RGB, metric colour.Metric) *Matrix {
	n := len(colours)
	m := &Matrix{n: n, cells: make([]float64, n*n)}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				for j := 0; j < n; j++ {
					if j == i {
						continue
					}
					m.cells[i*n+j] = metric.Distance(colours[i], colours[j])
				}
			}
		}()
	}
	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()

	return m
}

// distancesTo computes each candidate's distance to a single reference
// colour, used for the background and for fixed palette members.
func distancesTo(colours []colour.RGB, ref colour.RGB, metric colour.Metric) []float64 {
	out := make([]float64, len(colours))
	for i, c := range colours {
		out[i] = metric.Distance(c, ref)
	}
	return out
}
