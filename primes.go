// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import "math/big"

// Prime number helpers used to size unique tables and the operation cache.
// Picking a prime bucket count keeps the triple/pair hash functions in
// unique.go spread evenly even when the hashed values are themselves
// multiples of small numbers (variable indices, son counts).

func hasFactor(src int, n int) bool {
	return (src != n) && (src%n == 0)
}

func hasEasyFactors(src int) bool {
	return hasFactor(src, 3) || hasFactor(src, 5) || hasFactor(src, 7) || hasFactor(src, 11) || hasFactor(src, 13)
}

func primeGte(src int) int {
	if src%2 == 0 {
		src++
	}
	for {
		if hasEasyFactors(src) {
			src += 2
			continue
		}
		// ProbablyPrime is 100% accurate for inputs less than 2^64.
		if big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src += 2
	}
}

func primeLte(src int) int {
	if src == 0 {
		return 1
	}
	if src%2 == 0 {
		src--
	}
	for {
		if hasEasyFactors(src) {
			src -= 2
			continue
		}
		if big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
		src -= 2
	}
}

// nextTableSize returns the next bucket count to use when growing a hash
// table (unique table or operation cache) currently sized cur: roughly
// double, rounded up to the next prime. Starting from firstTableSize this
// produces the ladder 307, 617, 1237, ...
func nextTableSize(cur int) int {
	if cur <= 0 {
		return primeGte(firstTableSize)
	}
	return primeGte(2*cur + 3)
}
