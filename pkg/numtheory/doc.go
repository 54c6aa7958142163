// Package numtheory provides the stateless numeric routines of citypaths:
// Catalan numbers, factorials, and decimal digit sums.
//
// All results use [math/big] so callers never observe overflow. The plain
// [Catalan] keeps the direct sum recurrence and is exponential in n; use
// [CatalanMemo] when n is not small.
//
//	numtheory.Catalan(5)               // 42
//	numtheory.FactorialDigitSum(100)   // 648
package numtheory
