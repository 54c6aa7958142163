package numtheory_test

import (
	"fmt"

	"github.com/matzehuels/citypaths/pkg/numtheory"
)

func ExampleCatalan() {
	for n := 0; n <= 5; n++ {
		fmt.Print(numtheory.Catalan(n), " ")
	}
	fmt.Println()
	// Output: 1 1 2 5 14 42
}

func ExampleFactorialDigitSum() {
	fmt.Println(numtheory.FactorialDigitSum(100))
	// Output: 648
}
