// The chaskey package implements the Chaskey message authentication code,
// a permutation-based MAC designed for 32-bit microcontrollers.
//
// Chaskey authenticates a message of any length under a 128-bit key and
// produces a tag of 1 to 16 bytes. This package implements the 8-round
// variant from the original paper.
//
// https://eprint.iacr.org/2014/386
package chaskey
