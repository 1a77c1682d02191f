// Package duplicate finds the repeated value in an array of length N+1 whose
// values all lie in [1, N].
//
// By pigeonhole such an array always holds at least one repeated value. The
// contract assumes exactly one value repeats (possibly more than twice) and
// returns it.
//
// Algorithms provided:
//
//   - Cycle (default, MethodCycle)
//     Reads the array as an implicit functional graph where index i points to
//     index values[i]-1. No value points at the last index, so walking from it
//     must fall into a cycle, and the cycle's entry is reached from two
//     different indices: the entry's index+1 is the duplicate.
//     The walk runs in three phases: advance N+1 steps to land inside the cycle,
//     measure the cycle length L, then move two pointers (one L steps ahead of
//     the head) in lockstep until they meet at the entry.
//     Time: O(N). Extra space: O(1).
//
//   - Bisect (MethodBisect)
//     Binary search over the value range. A sub-range [lo, mid] holding more
//     than mid-lo+1 entries must contain the duplicate.
//     Time: O(N log N). Extra space: O(1).
//
// The graph is never materialised; both strategies only read the input.
//
// Error handling (sentinel errors):
//
//   - ErrTooShort:      fewer than two values (N must be at least 1).
//   - ErrOutOfRange:    a value falls outside [1, N].
//   - ErrUnknownMethod: WithMethod named an algorithm this package does not provide.
//
// Find validates by default; WithoutValidation() skips the O(N) pre-scan and
// makes out-of-range values undefined behaviour (the strategies index the
// input directly and may panic).
package duplicate
