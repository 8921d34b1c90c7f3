// Package landparcel describes the parcel record owned by Treasury contract
// and read by Freeze contract.
package landparcel

import "github.com/nspcc-dev/neo-go/pkg/interop"

// Record is a registered land parcel. Fixed-width fields are zero-padded.
//
// Verified and Minted only ever switch from false to true, Minted implies
// Verified. Frozen, FreezeStart and FreezeDuration are written together:
// when Frozen is false both values are zero.
type Record struct {
	// Parcel identifier padded to 64 bytes.
	ID []byte
	// Area in square meters.
	Area int
	// Location labels padded to 32 bytes.
	District []byte
	Taluka   []byte
	Village  []byte
	// Current owner and holder of the parcel token.
	Owner interop.Hash160

	Verified bool
	Minted   bool

	// Registration and verification time in seconds.
	RegisteredAt int
	VerifiedAt   int

	Frozen bool
	// Freeze start in seconds.
	FreezeStart int
	// Freeze duration in seconds.
	FreezeDuration int

	// Derived address of the record and its bump.
	Address interop.Hash160
	Bump    int
}
