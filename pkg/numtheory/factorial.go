package numtheory

import "math/big"

// Factorial returns n! as the product 2·3·…·n. It returns 1 for n < 2.
func Factorial(n int) *big.Int {
	result := big.NewInt(1)
	for i := 2; i <= n; i++ {
		result.Mul(result, big.NewInt(int64(i)))
	}
	return result
}

// DigitSum returns the sum of the decimal digits in s.
// s must be the decimal form of a non-negative integer; other runes are
// not interpreted.
func DigitSum(s string) int {
	sum := 0
	for i := 0; i < len(s); i++ {
		sum += int(s[i] - '0')
	}
	return sum
}

// FactorialDigitSum returns the digit sum of n!.
func FactorialDigitSum(n int) int {
	return DigitSum(Factorial(n).String())
}
