package numtheory

import "math/big"

// Catalan returns the nth Catalan number using the sum recurrence
//
//	C(0) = 1
//	C(n) = Σ_{i=0}^{n-1} C(i)·C(n-1-i)
//
// without memoization. Running time grows combinatorially with n, so callers
// must bound n. Negative n yields 0.
func Catalan(n int) *big.Int {
	if n == 0 {
		return big.NewInt(1)
	}
	result := new(big.Int)
	term := new(big.Int)
	for i := 0; i < n; i++ {
		term.Mul(Catalan(i), Catalan(n-1-i))
		result.Add(result, term)
	}
	return result
}

// CatalanMemo returns the same value as [Catalan] in O(n²) multiplications
// by filling the recurrence table bottom-up. Negative n yields 0.
func CatalanMemo(n int) *big.Int {
	if n < 0 {
		return new(big.Int)
	}
	table := make([]*big.Int, n+1)
	table[0] = big.NewInt(1)
	term := new(big.Int)
	for k := 1; k <= n; k++ {
		sum := new(big.Int)
		for i := 0; i < k; i++ {
			sum.Add(sum, term.Mul(table[i], table[k-1-i]))
		}
		table[k] = sum
	}
	return table[n]
}
