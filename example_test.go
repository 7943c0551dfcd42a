package chaskey_test

import (
	"fmt"

	"github.com/emlab/go-chaskey"
)

func ExampleNew() {
	key := []byte("0123456789abcdef")
	m, err := chaskey.New(key)
	if err != nil {
		panic(err)
	}
	tag := m.Sum(nil, []byte("a lightweight message"))
	fmt.Printf("%x\n", tag)
	// Output:
	// 311990f599162cf43841e85c49c8e7c7
}

func ExampleNewTruncated() {
	key := []byte("0123456789abcdef")
	m, err := chaskey.NewTruncated(key, 8)
	if err != nil {
		panic(err)
	}
	msg := []byte("a lightweight message")
	tag := m.Sum(nil, msg)
	fmt.Printf("%x\n", tag)
	fmt.Println(m.Verify(msg, tag))
	// Output:
	// 311990f599162cf4
	// true
}

func ExampleDeriveSubkeys() {
	k1, k2 := chaskey.DeriveSubkeys([]byte("0123456789abcdef"))
	fmt.Printf("%x\n%x\n", k1, k2)
	// Output:
	// 60626466686a6c6e7072c2c4c6c8cacc
	// 47c4c8ccd0d4d8dce0e484898d919599
}
