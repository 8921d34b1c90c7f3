// Package treasury contains RPC wrappers for ULPIN Treasury contract.
package treasury

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep11"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// LandParcelRecord is a contract-specific landparcel.Record type used by its methods.
type LandParcelRecord struct {
	ID []byte
	Area *big.Int
	District []byte
	Taluka []byte
	Village []byte
	Owner util.Uint160
	Verified bool
	Minted bool
	RegisteredAt *big.Int
	VerifiedAt *big.Int
	Frozen bool
	FreezeStart *big.Int
	FreezeDuration *big.Int
	Address util.Uint160
	Bump *big.Int
}

// TreasuryState is a contract-specific treasury.State type used by its methods.
type TreasuryState struct {
	Authority util.Uint160
	Address util.Uint160
	Bump *big.Int
	LandParcelCount *big.Int
	TotalFeesCollected *big.Int
	BaseFee *big.Int
	PerUnitFee *big.Int
	Active bool
}

// TreasuryFreezeDelegate is a contract-specific treasury.FreezeDelegate type used by its methods.
type TreasuryFreezeDelegate struct {
	Contract util.Uint160
	Address util.Uint160
	Bump *big.Int
}

// LandParcelRegisteredEvent represents "LandParcelRegistered" event emitted by the contract.
type LandParcelRegisteredEvent struct {
	UlpinID string
	Owner util.Uint160
	AreaSqm *big.Int
	RegistrationTimestamp *big.Int
}

// LandParcelVerifiedEvent represents "LandParcelVerified" event emitted by the contract.
type LandParcelVerifiedEvent struct {
	UlpinID string
	Verifier util.Uint160
	VerificationTimestamp *big.Int
}

// NFTMintedEvent represents "NFTMinted" event emitted by the contract.
type NFTMintedEvent struct {
	UlpinID string
	Owner util.Uint160
	TokenId []byte
	MetadataURI string
	FeePaid *big.Int
}

// OwnershipTransferredEvent represents "OwnershipTransferred" event emitted by the contract.
type OwnershipTransferredEvent struct {
	UlpinID string
	PreviousOwner util.Uint160
	NewOwner util.Uint160
	TransferTimestamp *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep11.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep11.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep11.NonDivisibleReader
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep11.BaseWriter
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep11.NewNonDivisibleReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep11ndt = nep11.NewNonDivisible(actor, hash)
	return &Contract{ContractReader{nep11ndt.NonDivisibleReader, actor, hash}, nep11ndt.BaseWriter, actor, hash}
}

// FeeFor invokes `feeFor` method of contract.
func (c *ContractReader) FeeFor(area *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "feeFor", area))
}

// GetFreezeAuthority invokes `getFreezeAuthority` method of contract.
func (c *ContractReader) GetFreezeAuthority() (*TreasuryFreezeDelegate, error) {
	return itemToTreasuryFreezeDelegate(unwrap.Item(c.invoker.Call(c.hash, "getFreezeAuthority")))
}

// GetParcel invokes `getParcel` method of contract.
func (c *ContractReader) GetParcel(id []byte) (*LandParcelRecord, error) {
	return itemToLandParcelRecord(unwrap.Item(c.invoker.Call(c.hash, "getParcel", id)))
}

// GetTreasury invokes `getTreasury` method of contract.
func (c *ContractReader) GetTreasury() (*TreasuryState, error) {
	return itemToTreasuryState(unwrap.Item(c.invoker.Call(c.hash, "getTreasury")))
}

// ParcelCount invokes `parcelCount` method of contract.
func (c *ContractReader) ParcelCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "parcelCount"))
}

// TotalFeesCollected invokes `totalFeesCollected` method of contract.
func (c *ContractReader) TotalFeesCollected() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalFeesCollected"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Initialize creates a transaction invoking `initialize` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Initialize(authority util.Uint160, bump *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initialize", authority, bump)
}

// InitializeTransaction creates a transaction invoking `initialize` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitializeTransaction(authority util.Uint160, bump *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initialize", authority, bump)
}

// InitializeUnsigned creates a transaction invoking `initialize` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitializeUnsigned(authority util.Uint160, bump *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initialize", nil, authority, bump)
}

// MintLandNFT creates a transaction invoking `mintLandNFT` method of the contract.
// Payer's signer scope must allow GAS contract, see PayForMint otherwise.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MintLandNFT(id []byte, metadataURI string, payer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mintLandNFT", id, metadataURI, payer)
}

// MintLandNFTTransaction creates a transaction invoking `mintLandNFT` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintLandNFTTransaction(id []byte, metadataURI string, payer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mintLandNFT", id, metadataURI, payer)
}

// MintLandNFTUnsigned creates a transaction invoking `mintLandNFT` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintLandNFTUnsigned(id []byte, metadataURI string, payer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mintLandNFT", nil, id, metadataURI, payer)
}

// RegisterLandParcel creates a transaction invoking `registerLandParcel` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterLandParcel(id []byte, area *big.Int, district []byte, taluka []byte, village []byte, owner util.Uint160, bump *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerLandParcel", id, area, district, taluka, village, owner, bump)
}

// RegisterLandParcelTransaction creates a transaction invoking `registerLandParcel` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterLandParcelTransaction(id []byte, area *big.Int, district []byte, taluka []byte, village []byte, owner util.Uint160, bump *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerLandParcel", id, area, district, taluka, village, owner, bump)
}

// RegisterLandParcelUnsigned creates a transaction invoking `registerLandParcel` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterLandParcelUnsigned(id []byte, area *big.Int, district []byte, taluka []byte, village []byte, owner util.Uint160, bump *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerLandParcel", nil, id, area, district, taluka, village, owner, bump)
}

// SetActive creates a transaction invoking `setActive` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetActive(active bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setActive", active)
}

// SetActiveTransaction creates a transaction invoking `setActive` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetActiveTransaction(active bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setActive", active)
}

// SetActiveUnsigned creates a transaction invoking `setActive` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetActiveUnsigned(active bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setActive", nil, active)
}

// SetFreezeAuthority creates a transaction invoking `setFreezeAuthority` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetFreezeAuthority(freezeContract util.Uint160, address util.Uint160, bump *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setFreezeAuthority", freezeContract, address, bump)
}

// SetFreezeAuthorityTransaction creates a transaction invoking `setFreezeAuthority` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetFreezeAuthorityTransaction(freezeContract util.Uint160, address util.Uint160, bump *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setFreezeAuthority", freezeContract, address, bump)
}

// SetFreezeAuthorityUnsigned creates a transaction invoking `setFreezeAuthority` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetFreezeAuthorityUnsigned(freezeContract util.Uint160, address util.Uint160, bump *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setFreezeAuthority", nil, freezeContract, address, bump)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// UpdateLandOwnership creates a transaction invoking `updateLandOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateLandOwnership(id []byte, newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateLandOwnership", id, newOwner)
}

// UpdateLandOwnershipTransaction creates a transaction invoking `updateLandOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateLandOwnershipTransaction(id []byte, newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateLandOwnership", id, newOwner)
}

// UpdateLandOwnershipUnsigned creates a transaction invoking `updateLandOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateLandOwnershipUnsigned(id []byte, newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateLandOwnership", nil, id, newOwner)
}

// VerifyLandParcel creates a transaction invoking `verifyLandParcel` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) VerifyLandParcel(id []byte, verifier util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "verifyLandParcel", id, verifier)
}

// VerifyLandParcelTransaction creates a transaction invoking `verifyLandParcel` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) VerifyLandParcelTransaction(id []byte, verifier util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "verifyLandParcel", id, verifier)
}

// VerifyLandParcelUnsigned creates a transaction invoking `verifyLandParcel` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) VerifyLandParcelUnsigned(id []byte, verifier util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "verifyLandParcel", nil, id, verifier)
}

// itemToLandParcelRecord converts stack item into *LandParcelRecord.
func itemToLandParcelRecord(item stackitem.Item, err error) (*LandParcelRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(LandParcelRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of LandParcelRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *LandParcelRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 15 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Area, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Area: %w", err)
	}

	index++
	res.District, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field District: %w", err)
	}

	index++
	res.Taluka, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Taluka: %w", err)
	}

	index++
	res.Village, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Village: %w", err)
	}

	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Verified, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Verified: %w", err)
	}

	index++
	res.Minted, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Minted: %w", err)
	}

	index++
	res.RegisteredAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RegisteredAt: %w", err)
	}

	index++
	res.VerifiedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VerifiedAt: %w", err)
	}

	index++
	res.Frozen, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Frozen: %w", err)
	}

	index++
	res.FreezeStart, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FreezeStart: %w", err)
	}

	index++
	res.FreezeDuration, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FreezeDuration: %w", err)
	}

	index++
	res.Address, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Address: %w", err)
	}

	index++
	res.Bump, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Bump: %w", err)
	}

	return nil
}

// itemToTreasuryState converts stack item into *TreasuryState.
func itemToTreasuryState(item stackitem.Item, err error) (*TreasuryState, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TreasuryState)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TreasuryState from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TreasuryState) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Authority, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	res.Address, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Address: %w", err)
	}

	index++
	res.Bump, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Bump: %w", err)
	}

	index++
	res.LandParcelCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LandParcelCount: %w", err)
	}

	index++
	res.TotalFeesCollected, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalFeesCollected: %w", err)
	}

	index++
	res.BaseFee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BaseFee: %w", err)
	}

	index++
	res.PerUnitFee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PerUnitFee: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	return nil
}

// itemToTreasuryFreezeDelegate converts stack item into *TreasuryFreezeDelegate.
func itemToTreasuryFreezeDelegate(item stackitem.Item, err error) (*TreasuryFreezeDelegate, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TreasuryFreezeDelegate)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TreasuryFreezeDelegate from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TreasuryFreezeDelegate) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Contract, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Contract: %w", err)
	}

	index++
	res.Address, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Address: %w", err)
	}

	index++
	res.Bump, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Bump: %w", err)
	}

	return nil
}

// LandParcelRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "LandParcelRegistered" name from the provided [result.ApplicationLog].
func LandParcelRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*LandParcelRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*LandParcelRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "LandParcelRegistered" {
				continue
			}
			event := new(LandParcelRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize LandParcelRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to LandParcelRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *LandParcelRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.UlpinID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field UlpinID: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.AreaSqm, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field AreaSqm: %w", err)
	}

	index++
	e.RegistrationTimestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RegistrationTimestamp: %w", err)
	}

	return nil
}

// LandParcelVerifiedEventsFromApplicationLog retrieves a set of all emitted events
// with "LandParcelVerified" name from the provided [result.ApplicationLog].
func LandParcelVerifiedEventsFromApplicationLog(log *result.ApplicationLog) ([]*LandParcelVerifiedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*LandParcelVerifiedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "LandParcelVerified" {
				continue
			}
			event := new(LandParcelVerifiedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize LandParcelVerifiedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to LandParcelVerifiedEvent or
// returns an error if it's not possible to do to so.
func (e *LandParcelVerifiedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.UlpinID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field UlpinID: %w", err)
	}

	index++
	e.Verifier, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Verifier: %w", err)
	}

	index++
	e.VerificationTimestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VerificationTimestamp: %w", err)
	}

	return nil
}

// NFTMintedEventsFromApplicationLog retrieves a set of all emitted events
// with "NFTMinted" name from the provided [result.ApplicationLog].
func NFTMintedEventsFromApplicationLog(log *result.ApplicationLog) ([]*NFTMintedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NFTMintedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NFTMinted" {
				continue
			}
			event := new(NFTMintedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NFTMintedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NFTMintedEvent or
// returns an error if it's not possible to do to so.
func (e *NFTMintedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.UlpinID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field UlpinID: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.TokenId, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TokenId: %w", err)
	}

	index++
	e.MetadataURI, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field MetadataURI: %w", err)
	}

	index++
	e.FeePaid, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FeePaid: %w", err)
	}

	return nil
}

// OwnershipTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipTransferred" name from the provided [result.ApplicationLog].
func OwnershipTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipTransferredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OwnershipTransferredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OwnershipTransferred" {
				continue
			}
			event := new(OwnershipTransferredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OwnershipTransferredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OwnershipTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipTransferredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.UlpinID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field UlpinID: %w", err)
	}

	index++
	e.PreviousOwner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PreviousOwner: %w", err)
	}

	index++
	e.NewOwner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewOwner: %w", err)
	}

	index++
	e.TransferTimestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TransferTimestamp: %w", err)
	}

	return nil
}
