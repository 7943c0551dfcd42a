// Copyright © 2025 by the go-chaskey authors.
// All rights reserved. See LICENSE for details.

package chaskey

import "crypto/subtle"

// Chaskey is specified in "Chaskey: An Efficient MAC Algorithm for
// 32-bit Microcontrollers" by Nicky Mouha, Bart Mennink, Anthony Van
// Herrewege, Dai Watanabe, Bart Preneel and Ingrid Verbauwhede.

// MAC computes Chaskey tags under a fixed key.
// The finalization subkeys are derived once at construction and never
// mutated afterwards, so a MAC is safe for concurrent use.
type MAC struct {
	k, k1, k2 [4]uint32
	tagLen    int
}

// New returns a MAC producing full 16-byte tags.
// Panics if key is not 16 bytes.
func New(key []byte) (*MAC, error) {
	return NewTruncated(key, TagSize)
}

// NewTruncated returns a MAC producing tags truncated to tagLen bytes,
// 1 ≤ tagLen ≤ 16. Returns ErrInvalidTagLength otherwise.
func NewTruncated(key []byte, tagLen int) (*MAC, error) {
	if tagLen < 1 || tagLen > TagSize {
		return nil, ErrInvalidTagLength
	}
	if len(key) != KeySize {
		panic("chaskey: wrong key size")
	}
	m := new(MAC)
	m.k = le128dec(key)
	m.k1 = timesTwo(m.k)
	m.k2 = timesTwo(m.k1)
	m.tagLen = tagLen
	return m, nil
}

// The length of the tags produced by Sum, in bytes.
func (m *MAC) Size() int { return m.tagLen }

func (m *MAC) BlockSize() int { return BlockSize }

// Sum computes the tag of msg and appends it to b, returning the new slice.
// Does not modify msg.
func (m *MAC) Sum(b, msg []byte) []byte {
	v := m.compute(msg)
	if m.tagLen == TagSize {
		return le128append(b, [4]uint32(v))
	}
	var tag [TagSize]byte
	le128append(tag[:0], [4]uint32(v))
	return append(b, tag[:m.tagLen]...)
}

// Verify reports whether tag is the correct tag for msg.
// The comparison is done in constant time.
func (m *MAC) Verify(msg, tag []byte) bool {
	if len(tag) != m.tagLen {
		return false
	}
	var buf [TagSize]byte
	want := m.Sum(buf[:0], msg)
	return subtle.ConstantTimeCompare(want, tag) == 1
}

func (m *MAC) compute(msg []byte) state {
	v := state(m.k)

	// Absorb every block except the last full-or-partial one.
	for len(msg) > BlockSize {
		b := le128dec(msg)
		v[0] ^= b[0]
		v[1] ^= b[1]
		v[2] ^= b[2]
		v[3] ^= b[3]
		v.permute()
		msg = msg[BlockSize:]
	}

	// A complete final block is absorbed as-is under k1; anything
	// shorter, including the empty message, is padded with a 1 bit
	// followed by zeroes and absorbed under k2.
	var last, l [4]uint32
	if len(msg) == BlockSize {
		last = le128dec(msg)
		l = m.k1
	} else {
		var buf [BlockSize]byte
		n := copy(buf[:], msg)
		buf[n] = 0x01
		last = le128dec(buf[:])
		l = m.k2
	}

	v[0] ^= last[0] ^ l[0]
	v[1] ^= last[1] ^ l[1]
	v[2] ^= last[2] ^ l[2]
	v[3] ^= last[3] ^ l[3]

	v.permute()

	v[0] ^= l[0]
	v[1] ^= l[1]
	v[2] ^= l[2]
	v[3] ^= l[3]

	return v
}

// ComputeMAC computes the tag of message using subkeys previously
// derived with DeriveSubkeys, without re-running the key schedule.
// Returns ErrInvalidTagLength if tagLen is outside [1,16]; panics if
// key, k1 or k2 is not 16 bytes.
func ComputeMAC(key, k1, k2, message []byte, tagLen int) ([]byte, error) {
	if tagLen < 1 || tagLen > TagSize {
		return nil, ErrInvalidTagLength
	}
	if len(key) != KeySize || len(k1) != KeySize || len(k2) != KeySize {
		panic("chaskey: wrong key size")
	}
	m := &MAC{
		k:      le128dec(key),
		k1:     le128dec(k1),
		k2:     le128dec(k2),
		tagLen: tagLen,
	}
	return m.Sum(nil, message), nil
}
