// Package gates computes the minimum number of gates (reusable resources) needed
// to serve a day of interval schedules without any two schedules sharing a gate
// at the same time.
//
// Overview:
//
//   - Each schedule is an Interval{Start, End}: a plane arriving at Start and
//     departing at End. Intervals are supplied sorted by Start.
//   - A gate is busy from Start through End inclusive. If one plane departs in
//     the same minute another arrives, the arriving plane takes priority and the
//     departing plane still holds its gate, so the pair needs two gates.
//   - A gate becomes reusable only once its busy-until time is strictly before
//     the next arrival.
//
// Algorithms provided:
//
//   - SweepLine (default, MethodSweepLine)
//     Decompose each interval into an arrival and a departure event, sort all 2N
//     events by time with arrivals ahead of departures on ties, and track the
//     running maximum of +1/-1 counts.
//     Time: O(N log N). Space: O(N).
//
//   - MinHeap (MethodHeap)
//     Keep the busy-until times of allocated gates in a min-heap. For each
//     arrival, reuse the earliest-freed gate when it is free, otherwise open a
//     new one. The answer is the final heap size.
//     Time: O(N log N). Space: O(N).
//
//   - Naive (MethodNaive)
//     Same allocation rule as MinHeap, but finds a free gate by a linear scan,
//     taking the first free gate in allocation order.
//     Time: O(N²). Space: O(N). Intended for small inputs and cross-checking.
//
// All three return the same count for any valid input. They may disagree on
// which gate a given plane is parked at; only the count is part of the contract.
//
// API reference:
//
//	func MinGates[T constraints.Integer](intervals []Interval[T], opts ...Option) (int, error)
//	func Validate[T constraints.Integer](intervals []Interval[T]) error
//	func NewCounter[T constraints.Integer](method string) (Counter[T], error)
//	func FromPairs[T constraints.Integer](pairs [][2]T) []Interval[T]
//	func FromTimetable[T constraints.Integer](arrivals, departures []T) ([]Interval[T], error)
//
// Error handling (sentinel errors):
//
//   - ErrUnsorted:         intervals are not sorted by Start.
//   - ErrInvertedInterval: an interval ends before it starts.
//   - ErrLengthMismatch:   FromTimetable got arrival/departure slices of different lengths.
//   - ErrUnknownMethod:    WithMethod named an algorithm this package does not provide.
//
// Validation is on by default in MinGates. WithoutValidation() skips the O(N)
// pre-scan; on unsorted or inverted input the result is then unspecified.
// The Counter strategies themselves never validate.
//
// Example:
//
//	n, err := gates.MinGates(gates.FromPairs([][2]int{{900, 910}, {940, 1200}, {950, 1120}}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(n) // 2
//
// Thread safety: every function is pure and reentrant; inputs are never mutated.
package gates
