package numtheory

import (
	"math/big"
	"strings"
	"testing"
)

// closedForm computes (2n)! / ((n+1)!·n!).
func closedForm(n int) *big.Int {
	num := Factorial(2 * n)
	den := new(big.Int).Mul(Factorial(n+1), Factorial(n))
	return num.Quo(num, den)
}

func TestCatalan(t *testing.T) {
	tests := []struct {
		n    int
		want int64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 5},
		{4, 14},
		{5, 42},
		{10, 16796},
	}

	for _, tt := range tests {
		if got := Catalan(tt.n); got.Int64() != tt.want {
			t.Errorf("Catalan(%d) = %s, want %d", tt.n, got, tt.want)
		}
	}
}

func TestCatalanMatchesClosedForm(t *testing.T) {
	for n := 0; n <= 12; n++ {
		want := closedForm(n)
		if got := Catalan(n); got.Cmp(want) != 0 {
			t.Errorf("Catalan(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestCatalanMemo(t *testing.T) {
	for n := 0; n <= 12; n++ {
		if got, want := CatalanMemo(n), Catalan(n); got.Cmp(want) != 0 {
			t.Errorf("CatalanMemo(%d) = %s, want %s", n, got, want)
		}
	}

	// Beyond int64 range.
	for _, n := range []int{35, 40, 100} {
		if got, want := CatalanMemo(n), closedForm(n); got.Cmp(want) != 0 {
			t.Errorf("CatalanMemo(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestCatalanNegative(t *testing.T) {
	if got := Catalan(-3); got.Sign() != 0 {
		t.Errorf("Catalan(-3) = %s, want 0", got)
	}
	if got := CatalanMemo(-3); got.Sign() != 0 {
		t.Errorf("CatalanMemo(-3) = %s, want 0", got)
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{-1, "1"},
		{0, "1"},
		{1, "1"},
		{5, "120"},
		{20, "2432902008176640000"},
		{25, "15511210043330985984000000"},
	}

	for _, tt := range tests {
		if got := Factorial(tt.n).String(); got != tt.want {
			t.Errorf("Factorial(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestFactorial100(t *testing.T) {
	s := Factorial(100).String()
	if len(s) != 158 {
		t.Errorf("len(100!) = %d, want 158", len(s))
	}
	if !strings.HasPrefix(s, "93326215443944") {
		t.Errorf("100! = %s..., unexpected prefix", s[:14])
	}
	if !strings.HasSuffix(s, strings.Repeat("0", 24)) {
		t.Error("100! should end with 24 zeros")
	}
}

func TestDigitSum(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"7", 7},
		{"120", 3},
		{"999", 27},
		{"3628800", 27},
	}

	for _, tt := range tests {
		if got := DigitSum(tt.in); got != tt.want {
			t.Errorf("DigitSum(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFactorialDigitSum(t *testing.T) {
	if got := FactorialDigitSum(100); got != 648 {
		t.Errorf("FactorialDigitSum(100) = %d, want 648", got)
	}
	if got := FactorialDigitSum(10); got != 27 {
		t.Errorf("FactorialDigitSum(10) = %d, want 27", got)
	}
}
