package pda

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/ulpin-registry/ulpin-contract/contracts/bridge/bridgeconst"
	"github.com/ulpin-registry/ulpin-contract/contracts/freeze/freezeconst"
	"github.com/ulpin-registry/ulpin-contract/contracts/treasury/treasuryconst"
)

// ErrInvalidParcelID is returned for empty or too long parcel identifiers.
var ErrInvalidParcelID = errors.New("invalid parcel ID length")

// Treasury returns canonical Treasury singleton address.
func Treasury(treasury util.Uint160) (Address, uint8, error) {
	return Find(treasury, treasuryconst.TreasuryTag)
}

// FreezeAuthority returns canonical Freeze authority singleton address.
func FreezeAuthority(freeze util.Uint160) (Address, uint8, error) {
	return Find(freeze, freezeconst.FreezeAuthorityTag)
}

// Bridge returns canonical Bridge singleton address.
func Bridge(bridge util.Uint160) (Address, uint8, error) {
	return Find(bridge, bridgeconst.BridgeTag)
}

// LandParcel returns canonical address of the parcel record.
func LandParcel(treasury util.Uint160, id []byte) (Address, uint8, error) {
	padded, err := PadParcelID(id)
	if err != nil {
		return Address{}, 0, err
	}

	return Find(treasury, treasuryconst.LandParcelTag, padded)
}

// Transfer returns canonical address of the sender's transfer with the given
// sequence number. The address is the transfer ID.
func Transfer(bridge util.Uint160, sender util.Uint160, seq uint64) (Address, uint8, error) {
	return Find(bridge, bridgeconst.TransferTag, sender.BytesBE(), []byte(strconv.FormatUint(seq, 10)))
}

// PadParcelID returns parcel ID zero-padded to its fixed capacity.
func PadParcelID(id []byte) ([]byte, error) {
	if len(id) == 0 || len(id) > treasuryconst.MaxIDLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidParcelID, len(id))
	}

	res := make([]byte, treasuryconst.MaxIDLength)
	copy(res, id)

	return res, nil
}

// TrimParcelID cuts zero padding of the fixed-width parcel ID.
func TrimParcelID(id []byte) []byte {
	return bytes.TrimRight(id, "\x00")
}
