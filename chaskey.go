// Copyright © 2025 by the go-chaskey authors.
// All rights reserved. See LICENSE for details.

package chaskey

import "math/bits"

// https://eprint.iacr.org/2014/386, Figure 2

const (
	KeySize   = 128 / 8 // bytes
	BlockSize = 128 / 8 // bytes
	TagSize   = 128 / 8 // bytes
)

type state [4]uint32

// permute applies the 8-round Chaskey permutation π in place.
func (v *state) permute() {
	v0, v1, v2, v3 := v[0], v[1], v[2], v[3]

	for i := 0; i < 8; i++ {
		v0 += v1
		v1 = bits.RotateLeft32(v1, 5)
		v1 ^= v0
		v0 = bits.RotateLeft32(v0, 16)

		v2 += v3
		v3 = bits.RotateLeft32(v3, 8)
		v3 ^= v2

		v0 += v3
		v3 = bits.RotateLeft32(v3, 13)
		v3 ^= v0

		v2 += v1
		v1 = bits.RotateLeft32(v1, 7)
		v1 ^= v2
		v2 = bits.RotateLeft32(v2, 16)
	}

	v[0] = v0
	v[1] = v1
	v[2] = v2
	v[3] = v3
}
