// Package align computes optimal global alignments of two DNA sequences
// under a linear gap penalty and a substitution table.
//
// Two engines share one recurrence:
//
//   - Basic fills the full (m+1)×(n+1) cost table and backtracks through it,
//     preferring diagonal, then vertical, then horizontal moves on ties.
//   - Efficient (Hirschberg) keeps only two rows at a time, splits X at its
//     midpoint, picks the first column of Y minimising forward+reverse cost,
//     and recurses. It returns the same optimal cost in O(m+n) memory.
//
// The package never imports the driver, CLI, or output packages; keep it
// domain-only.
package align
