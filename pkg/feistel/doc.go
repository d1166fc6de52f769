// Package feistel implements the keyed 64-bit permutation behind binomial
// name generation, together with the salt hash that produces its key.
//
// Permute splits the input into two 32-bit halves and runs four rounds of
// (L, R) = (R, L xor Round(R, key*(i+1))). Like any Feistel network it is a
// bijection for every key whatever the round function does, and Invert runs
// the rounds backwards.
//
// The construction spreads neighbouring inputs across the output space. It is
// not a cipher and offers no resistance to analysis.
package feistel
