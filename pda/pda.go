/*
Package pda derives deterministic addresses owned by contracts.

Address is computed from the owning contract script hash, a domain tag, key
material and a bump:

	digest  = sha256(sha256(tag) | sha256(key1) | ... | program | bump | "ULPIN-PDA")
	address = ripemd160(digest)

where bump is written in decimal. Contracts re-derive the same address with
common.DeriveAddress from the stored bump. Bump is valid if 0x02|digest is not
a compressed secp256r1 public key, so derived address can't be a single
signature account of any key. Find returns the canonical bump which is the
largest valid one.
*/
package pda

import (
	"crypto/elliptic"
	"errors"
	"fmt"
	"strconv"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// MaxBump is the first bump tried by Find.
const MaxBump = 255

const marker = "ULPIN-PDA"

var (
	// ErrOnCurve is returned by Create for bumps deriving on-curve digest.
	ErrOnCurve = errors.New("derived digest is a valid public key")
	// ErrNoViableBump is returned by Find if every bump derives on-curve
	// digest.
	ErrNoViableBump = errors.New("no viable bump")
)

// Address is a derived address.
type Address util.Uint160

// Uint160 returns address as a script hash.
func (a Address) Uint160() util.Uint160 {
	return util.Uint160(a)
}

// String returns base58 encoding of the address bytes in big-endian order.
func (a Address) String() string {
	return base58.Encode(a.Uint160().BytesBE())
}

// NeoAddress returns Neo N3 address of the derived script hash.
func (a Address) NeoAddress() string {
	return address.Uint160ToString(a.Uint160())
}

// ParseAddress decodes base58 string produced by Address.String.
func ParseAddress(s string) (Address, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("decode base58: %w", err)
	}

	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return Address{}, fmt.Errorf("decode script hash: %w", err)
	}

	return Address(u), nil
}

// Find searches bumps from MaxBump down to zero and returns the address
// derived with the first valid one along with the bump.
func Find(program util.Uint160, tag string, keyMaterial ...[]byte) (Address, uint8, error) {
	prefix := seed(tag, keyMaterial)
	for bump := MaxBump; bump >= 0; bump-- {
		d := digest(prefix, program, uint8(bump))
		if !onCurve(d) {
			return fromDigest(d), uint8(bump), nil
		}
	}

	return Address{}, 0, ErrNoViableBump
}

// Create derives address with the given bump. It returns ErrOnCurve if the bump
// is not valid.
func Create(program util.Uint160, tag string, bump uint8, keyMaterial ...[]byte) (Address, error) {
	d := digest(seed(tag, keyMaterial), program, bump)
	if onCurve(d) {
		return Address{}, ErrOnCurve
	}

	return fromDigest(d), nil
}

// Derive derives address with the given bump without validity check. It
// mirrors on-chain derivation.
func Derive(program util.Uint160, tag string, bump uint8, keyMaterial ...[]byte) Address {
	return fromDigest(digest(seed(tag, keyMaterial), program, bump))
}

func seed(tag string, keyMaterial [][]byte) []byte {
	h := hash.Sha256([]byte(tag))
	res := h.BytesBE()

	for i := range keyMaterial {
		h = hash.Sha256(keyMaterial[i])
		res = append(res, h.BytesBE()...)
	}

	return res
}

func digest(seed []byte, program util.Uint160, bump uint8) []byte {
	preimage := make([]byte, 0, len(seed)+util.Uint160Size+3+len(marker))
	preimage = append(preimage, seed...)
	preimage = append(preimage, program.BytesBE()...)
	preimage = strconv.AppendUint(preimage, uint64(bump), 10)
	preimage = append(preimage, marker...)

	h := hash.Sha256(preimage)
	return h.BytesBE()
}

func fromDigest(d []byte) Address {
	return Address(hash.RipeMD160(d))
}

func onCurve(d []byte) bool {
	_, err := keys.NewPublicKeyFromBytes(append([]byte{0x02}, d...), elliptic.P256())
	return err == nil
}
