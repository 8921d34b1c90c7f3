package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
)

const (
	// MaxBump is the largest derivation bump.
	MaxBump = 255

	// addressMarker closes every derivation preimage so derived addresses
	// never share a preimage with verification scripts.
	addressMarker = "ULPIN-PDA"

	// ErrForgedAccount is thrown when an address does not match the one
	// derived from its seed.
	ErrForgedAccount = "forged account: derived address mismatch"
	// ErrInvalidBump is thrown for bumps out of [0, MaxBump] range.
	ErrInvalidBump = "invalid derivation bump"
)

// DeriveAddress computes the address owned by program for the domain tag,
// key material and bump:
//
//	ripemd160(sha256(sha256(tag) | sha256(key1) | ... | program | bump | marker))
//
// where bump is written in decimal. Off-chain counterpart lives in pda
// package and must produce identical results.
func DeriveAddress(program interop.Hash160, tag string, keys [][]byte, bump int) interop.Hash160 {
	if bump < 0 || bump > MaxBump {
		panic(ErrInvalidBump)
	}

	preimage := []byte(crypto.Sha256([]byte(tag)))
	for i := range keys {
		preimage = append(preimage, []byte(crypto.Sha256(keys[i]))...)
	}

	preimage = append(preimage, program...)
	preimage = append(preimage, []byte(std.Itoa(bump, 10))...)
	preimage = append(preimage, []byte(addressMarker)...)

	return interop.Hash160(crypto.Ripemd160([]byte(crypto.Sha256(preimage))))
}

// CheckDerivedAddress re-derives the address and panics with
// ErrForgedAccount if it differs from the expected one.
func CheckDerivedAddress(expected interop.Hash160, program interop.Hash160, tag string, keys [][]byte, bump int) {
	actual := DeriveAddress(program, tag, keys, bump)
	if !BytesEqual(actual, expected) {
		panic(ErrForgedAccount)
	}
}

// SeedKey returns storage key suffix identifying the seed regardless of the
// bump, so no two records can share the same domain tag and key material.
func SeedKey(tag string, keys [][]byte) []byte {
	seed := []byte(tag)
	for i := range keys {
		seed = append(seed, []byte(crypto.Sha256(keys[i]))...)
	}

	return []byte(crypto.Ripemd160(seed))
}
