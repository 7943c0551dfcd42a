// Copyright © 2025 by the go-chaskey authors.
// All rights reserved. See LICENSE for details.

// byte manipulation
//
// The reference implementation reads message blocks by casting the byte
// pointer to a word pointer, which only works on little-endian machines
// that tolerate unaligned loads. Decoding is done explicitly here instead.

package chaskey

func le32dec(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func le32append(b []byte, x uint32) []byte {
	return append(b, byte(x), byte(x>>8), byte(x>>16), byte(x>>24))
}

// le128dec decodes a 16-byte buffer as four little-endian words.
func le128dec(b []byte) [4]uint32 {
	return [4]uint32{
		le32dec(b[0:]),
		le32dec(b[4:]),
		le32dec(b[8:]),
		le32dec(b[12:]),
	}
}

func le128append(b []byte, w [4]uint32) []byte {
	b = le32append(b, w[0])
	b = le32append(b, w[1])
	b = le32append(b, w[2])
	b = le32append(b, w[3])
	return b
}
