// Copyright © 2025 by the go-chaskey authors.
// All rights reserved. See LICENSE for details.

package chaskey

// timesTwo multiplies a 128-bit value by x in GF(2^128) with the
// irreducible polynomial x^128 + x^7 + x^2 + x + 1. Word 0 is the least
// significant word; the bit shifted out of word 3 selects the reduction.
func timesTwo(k [4]uint32) [4]uint32 {
	cc := [2]uint32{0x00, 0x87}
	return [4]uint32{
		k[0]<<1 ^ cc[k[3]>>31],
		k[1]<<1 | k[0]>>31,
		k[2]<<1 | k[1]>>31,
		k[3]<<1 | k[2]>>31,
	}
}

// DeriveSubkeys computes the two finalization subkeys for a key:
// K1 = 2·K is used when the last message block is a complete 16-byte
// block, K2 = 4·K whenever the last block needed padding.
// Panics if key is not 16 bytes.
func DeriveSubkeys(key []byte) (k1, k2 []byte) {
	if len(key) != KeySize {
		panic("chaskey: wrong key size")
	}
	a := timesTwo(le128dec(key))
	b := timesTwo(a)
	return le128append(nil, a), le128append(nil, b)
}
