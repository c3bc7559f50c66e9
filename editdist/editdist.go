// SPDX-License-Identifier: MIT

package editdist

// Coord is one lattice point of an alignment path: I target tokens and J
// source tokens consumed so far.
type Coord struct {
	I int
	J int
}

// Result is the outcome of Align.
type Result struct {
	// Distance is the total weight of the cheapest alignment.
	Distance float64

	// Path runs from {0,0} to {len(target), len(source)} inclusive; every
	// step advances I, J or both by one.
	Path []Coord
}

// moves recorded per cell for the backtrack
const (
	moveDiag uint8 = iota
	moveIns
	moveDel
)

// Align computes the minimum-cost edit alignment of source onto target.
//
// Algorithm Outline:
//  1. Let n = len(target), m = len(source). Allocate an (n+1)x(m+1)
//     row-major cost table D and a move table of the same shape.
//  2. D[0][0] = 0; D[i][0] = D[i-1][0] + ins(t_i); D[0][j] = D[0][j-1] + del(s_j).
//  3. D[i][j] = min(D[i-1][j-1] + sub(t_i, s_j), D[i-1][j] + ins(t_i),
//     D[i][j-1] + del(s_j)); ties prefer the diagonal, then insertion.
//  4. Backtrack the stored moves from (n,m) to (0,0) and reverse.
//
// A nil costs means DefaultCosts. Empty sequences are valid; two empty
// sequences give the single-point path [{0 0}].
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
func Align(target, source []string, costs *Costs) Result {
	if costs == nil {
		costs = DefaultCosts()
	}
	n, m := len(target), len(source)
	cols := m + 1
	dp := make([]float64, (n+1)*cols)
	mv := make([]uint8, (n+1)*cols)

	for i := 1; i <= n; i++ {
		dp[i*cols] = dp[(i-1)*cols] + costs.InsertionOf(target[i-1])
		mv[i*cols] = moveIns
	}
	for j := 1; j <= m; j++ {
		dp[j] = dp[j-1] + costs.DeletionOf(source[j-1])
		mv[j] = moveDel
	}

	for i := 1; i <= n; i++ {
		t := target[i-1]
		row, prev := i*cols, (i-1)*cols
		for j := 1; j <= m; j++ {
			s := source[j-1]
			best, move := dp[prev+j-1]+costs.SubstitutionOf(t, s), moveDiag
			if c := dp[prev+j] + costs.InsertionOf(t); c < best {
				best, move = c, moveIns
			}
			if c := dp[row+j-1] + costs.DeletionOf(s); c < best {
				best, move = c, moveDel
			}
			dp[row+j] = best
			mv[row+j] = move
		}
	}

	path := make([]Coord, 0, n+m+1)
	i, j := n, m
	for {
		path = append(path, Coord{I: i, J: j})
		if i == 0 && j == 0 {
			break
		}
		switch mv[i*cols+j] {
		case moveDiag:
			i--
			j--
		case moveIns:
			i--
		default:
			j--
		}
	}
	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return Result{Distance: dp[n*cols+m], Path: path}
}
