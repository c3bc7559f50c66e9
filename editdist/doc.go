// SPDX-License-Identifier: MIT

// Package editdist computes minimum-cost edit alignments between two token
// sequences.
//
// 🚀 What is an edit alignment?
//
//	A monotone lattice walk from (0,0) to (len(target), len(source)) where
//	every step consumes a target token (insertion), a source token
//	(deletion) or one of each (match or substitution):
//
//	  target:  a  -  b
//	  source:  a  c  d
//	  step:    =  d  s
//
// ✨ Key features:
//   - unit costs by default; per-operation weights, per-token insertion and
//     deletion weights and per-pair substitution weights via CostOption
//   - deterministic backtrack: ties prefer the diagonal, then insertion,
//     then deletion
//   - path always starts at {0,0} and ends at {n,m}
//
// ⚙️ Usage:
//
//	costs := editdist.NewCosts(editdist.WithSubstitution(2))
//	res := editdist.Align([]string{"a", "b"}, []string{"a", "c"}, costs)
//	fmt.Println(res.Distance, res.Path)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (cost table plus one move per cell)
package editdist
