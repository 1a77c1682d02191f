// Package interview collects classic interview-style algorithm problems, each
// solved more than one way so the solutions can be checked against each other.
//
// Every subpackage is a self-contained, pure-function library over in-memory
// integer data:
//
//	gates/     - minimum gates for a sorted timetable of arrivals and departures
//	             (sweep line, min-heap, naive scan)
//	duplicate/ - the repeated value in an N+1 array over [1, N]
//	             (cycle detection on the implicit functional graph, binary search)
//
// Each package follows the same shape: a capability interface (gates.Counter,
// duplicate.Finder) with one implementation per algorithm, a validating entry
// point (gates.MinGates, duplicate.Find) selected with functional options, and
// package-prefixed sentinel errors for precondition violations.
//
// Quick example:
//
//	n, err := gates.MinGates(gates.FromPairs([][2]int{{0, 10}, {10, 20}}))
//	// n == 2: a plane departing at 10 still holds its gate when the next lands at 10.
//
//	d, err := duplicate.Find([]int{1, 3, 3, 2})
//	// d == 3
//
//	go get github.com/katalvlaran/interview
package interview
