package feistel

const (
	// Rounds is the number of Feistel rounds applied by Permute.
	Rounds = 4

	// SaltSeed is the key used for an empty salt and the accumulator seed
	// for non-empty ones.
	SaltSeed uint64 = 0x123456789abcdef0

	mixMul1  uint64 = 0x517cc1b727220a95
	mixMul2  uint64 = 0x2545f4914f6cdd1d
	halfMask uint64 = 0xFFFFFFFF
)

// HashSalt folds a salt string into a 64-bit key with acc = acc*31 + b.
func HashSalt(salt string) uint64 {
	acc := SaltSeed
	for i := 0; i < len(salt); i++ {
		acc = acc*31 + uint64(salt[i])
	}
	return acc
}

// Round is the Feistel round function. Only the low 32 bits of the result
// are set.
func Round(half, key uint64) uint64 {
	h := half + key
	h *= mixMul1
	h ^= h >> 33
	h *= mixMul2
	h ^= h >> 29
	return h & halfMask
}

// Permute applies the keyed permutation to x. For a fixed key it is a
// bijection on uint64.
func Permute(x, key uint64) uint64 {
	left := (x >> 32) & halfMask
	right := x & halfMask

	for i := range uint64(Rounds) {
		left, right = right, left^Round(right, key*(i+1))
	}

	return left<<32 | right
}

// Invert undoes Permute: Invert(Permute(x, k), k) == x.
func Invert(y, key uint64) uint64 {
	left := (y >> 32) & halfMask
	right := y & halfMask

	for i := uint64(Rounds); i > 0; i-- {
		left, right = right^Round(left, key*i), left
	}

	return left<<32 | right
}
