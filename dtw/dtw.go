// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"
)

// Coord pairs frame I of the first sequence with frame J of the second.
type Coord struct {
	I int
	J int
}

// DTW computes the Dynamic Time Warping distance between two scalar series
// with local cost |a[i]-b[j]|.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate an (n+1)x(m+1) row-major matrix D.
//  2. Initialize D[0][0] = 0 and every other cell to +∞.
//  3. For i = 1..n, j = 1..m inside the band, over the steps (di,dj) of the
//     slope pattern:
//     D[i][j] = min D[i-di][j-dj] + max(di,dj)·cost(i,j) + penalty(di≠dj)
//     Ties keep the earlier step, the diagonal first.
//  4. distance = D[n][m].
//  5. If ReturnPath, follow the stored steps back from (n,m).
//
// With the Unconstrained pattern this is the textbook recurrence
// D[i][j] = cost + min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p).
//
// Errors:
//   - ErrEmptyInput if either input is empty.
//   - ErrBadInput for invalid options.
//   - ErrPathNeedsMatrix if ReturnPath is set in Rolling mode.
//   - ErrNoPath if ReturnPath is set and D[n][m] is +∞. Without ReturnPath an
//     unreachable end is reported as a +∞ distance.
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrEmptyInput
	}

	return run(len(a), len(b), func(i, j int) float64 { return math.Abs(a[i] - b[j]) }, opts)
}

// Vectors is DTW over feature vectors with Euclidean local cost. All vectors
// must share one non-zero dimension.
func Vectors(a, b [][]float64, opts *Options) (float64, []Coord, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrEmptyInput
	}
	dim := len(a[0])
	if dim == 0 {
		return 0, nil, fmt.Errorf("Vectors: zero dimension: %w", ErrBadInput)
	}
	for _, seq := range [][][]float64{a, b} {
		for k, v := range seq {
			if len(v) != dim {
				return 0, nil, fmt.Errorf("Vectors: vector %d has dimension %d, want %d: %w", k, len(v), dim, ErrBadInput)
			}
		}
	}

	return run(len(a), len(b), func(i, j int) float64 { return euclidean(a[i], b[j]) }, opts)
}

func run(n, m int, cost func(i, j int) float64, opts *Options) (float64, []Coord, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Constraint == 0 {
		o.Constraint = Unconstrained
	}
	if err := o.validate(); err != nil {
		return 0, nil, err
	}

	steps := o.Constraint.steps()
	depth := 0
	for _, s := range steps {
		depth = max(depth, s.di)
	}
	rows := n + 1
	if o.MemoryMode == Rolling {
		rows = depth + 1
	}
	cols := m + 1
	inf := math.Inf(1)
	dp := make([]float64, rows*cols)
	for k := range dp {
		dp[k] = inf
	}
	dp[0] = 0
	var mv []uint8
	if o.ReturnPath {
		mv = make([]uint8, (n+1)*cols)
	}
	row := func(i int) int { return (i % rows) * cols }
	ratio := float64(n) / float64(m)

	for i := 1; i <= n; i++ {
		cur := row(i)
		if o.MemoryMode == Rolling {
			for j := 0; j < cols; j++ {
				dp[cur+j] = inf
			}
		}
		for j := 1; j <= m; j++ {
			if o.Window >= 0 && math.Abs(float64(i)-float64(j)*ratio) > float64(o.Window) {
				continue
			}
			best, move := inf, uint8(0)
			for k, s := range steps {
				pi, pj := i-s.di, j-s.dj
				if pi < 0 || pj < 0 {
					continue
				}
				prev := dp[row(pi)+pj]
				if math.IsInf(prev, 1) {
					continue
				}
				c := prev + float64(max(s.di, s.dj))*cost(i-1, j-1)
				if s.di != s.dj {
					c += o.SlopePenalty
				}
				if c < best {
					best, move = c, uint8(k)
				}
			}
			dp[cur+j] = best
			if mv != nil {
				mv[i*cols+j] = move
			}
		}
	}

	distance := dp[row(n)+m]
	if !o.ReturnPath {
		return distance, nil, nil
	}
	if math.IsInf(distance, 1) {
		return distance, nil, ErrNoPath
	}

	var path []Coord
	i, j := n, m
	for i > 0 || j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		s := steps[mv[i*cols+j]]
		i -= s.di
		j -= s.dj
	}
	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return distance, path, nil
}

func euclidean(x, y []float64) float64 {
	sum := 0.0
	for k := range x {
		d := x[k] - y[k]
		sum += d * d
	}

	return math.Sqrt(sum)
}
