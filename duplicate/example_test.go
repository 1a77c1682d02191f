package duplicate_test

import (
	"fmt"

	"github.com/katalvlaran/interview/duplicate"
)

// ExampleFind locates the repeated value with the default cycle walk.
func ExampleFind() {
	d, err := duplicate.Find([]int{3, 4, 2, 3, 1, 5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("duplicate:", d)
	// Output: duplicate: 3
}

// ExampleFind_bisect uses binary search over the value range instead.
func ExampleFind_bisect() {
	d, _ := duplicate.Find([]uint16{2, 3, 1, 1}, duplicate.WithMethod(duplicate.MethodBisect))
	fmt.Println("duplicate:", d)
	// Output: duplicate: 1
}

// ExampleValidate reports an out-of-range value.
func ExampleValidate() {
	fmt.Println(duplicate.Validate([]int{1, 0, 2}))
	// Output: duplicate: value out of range: values[1] = 0, want 1..2
}
