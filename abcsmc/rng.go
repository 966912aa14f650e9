// SPDX-License-Identifier: MIT

package abcsmc

import "math/rand/v2"

// defaultSeed replaces a zero Config.Seed.
const defaultSeed uint64 = 1

// deriveSeed mixes a parent seed and a stream identifier with the
// SplitMix64 finalizer, so neighbouring streams are decorrelated.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// particleRNG returns the stream owned by one particle of one round.
// A *rand.Rand is not safe for concurrent use; each worker gets its own.
func particleRNG(seed uint64, round, particle int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	hi := deriveSeed(seed, uint64(round))
	lo := deriveSeed(hi, uint64(particle))

	return rand.New(rand.NewPCG(hi, lo))
}
