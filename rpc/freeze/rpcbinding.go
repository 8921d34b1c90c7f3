// Package freeze contains RPC wrappers for ULPIN Freeze contract.
package freeze

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// FreezeState is a contract-specific freeze.State type used by its methods.
type FreezeState struct {
	Authority util.Uint160
	Treasury util.Uint160
	Address util.Uint160
	Bump *big.Int
}

// NFTFrozenEvent represents "NFTFrozen" event emitted by the contract.
type NFTFrozenEvent struct {
	UlpinID string
	TokenId []byte
	FreezeDuration *big.Int
}

// NFTThawedEvent represents "NFTThawed" event emitted by the contract.
type NFTThawedEvent struct {
	UlpinID string
	TokenId []byte
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetFreezeAuthority invokes `getFreezeAuthority` method of contract.
func (c *ContractReader) GetFreezeAuthority() (*FreezeState, error) {
	return itemToFreezeState(unwrap.Item(c.invoker.Call(c.hash, "getFreezeAuthority")))
}

// IsFrozen invokes `isFrozen` method of contract.
func (c *ContractReader) IsFrozen(id []byte) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isFrozen", id))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// FreezeLandNFT creates a transaction invoking `freezeLandNFT` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FreezeLandNFT(id []byte, duration *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "freezeLandNFT", id, duration)
}

// FreezeLandNFTTransaction creates a transaction invoking `freezeLandNFT` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FreezeLandNFTTransaction(id []byte, duration *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "freezeLandNFT", id, duration)
}

// FreezeLandNFTUnsigned creates a transaction invoking `freezeLandNFT` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FreezeLandNFTUnsigned(id []byte, duration *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "freezeLandNFT", nil, id, duration)
}

// InitializeFreezeAuthority creates a transaction invoking `initializeFreezeAuthority` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) InitializeFreezeAuthority(authority util.Uint160, bump *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initializeFreezeAuthority", authority, bump)
}

// InitializeFreezeAuthorityTransaction creates a transaction invoking `initializeFreezeAuthority` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitializeFreezeAuthorityTransaction(authority util.Uint160, bump *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initializeFreezeAuthority", authority, bump)
}

// InitializeFreezeAuthorityUnsigned creates a transaction invoking `initializeFreezeAuthority` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitializeFreezeAuthorityUnsigned(authority util.Uint160, bump *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initializeFreezeAuthority", nil, authority, bump)
}

// ThawLandNFT creates a transaction invoking `thawLandNFT` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ThawLandNFT(id []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "thawLandNFT", id)
}

// ThawLandNFTTransaction creates a transaction invoking `thawLandNFT` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ThawLandNFTTransaction(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "thawLandNFT", id)
}

// ThawLandNFTUnsigned creates a transaction invoking `thawLandNFT` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ThawLandNFTUnsigned(id []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "thawLandNFT", nil, id)
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

// itemToFreezeState converts stack item into *FreezeState.
func itemToFreezeState(item stackitem.Item, err error) (*FreezeState, error) {
	if err != nil {
		return nil, err
	}
	var res = new(FreezeState)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of FreezeState from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *FreezeState) FromStackItem(item stackitem.Item) error {
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
	res.Treasury, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Treasury: %w", err)
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

// NFTFrozenEventsFromApplicationLog retrieves a set of all emitted events
// with "NFTFrozen" name from the provided [result.ApplicationLog].
func NFTFrozenEventsFromApplicationLog(log *result.ApplicationLog) ([]*NFTFrozenEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NFTFrozenEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NFTFrozen" {
				continue
			}
			event := new(NFTFrozenEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NFTFrozenEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NFTFrozenEvent or
// returns an error if it's not possible to do to so.
func (e *NFTFrozenEvent) FromStackItem(item *stackitem.Array) error {
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
	e.TokenId, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TokenId: %w", err)
	}

	index++
	e.FreezeDuration, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FreezeDuration: %w", err)
	}

	return nil
}

// NFTThawedEventsFromApplicationLog retrieves a set of all emitted events
// with "NFTThawed" name from the provided [result.ApplicationLog].
func NFTThawedEventsFromApplicationLog(log *result.ApplicationLog) ([]*NFTThawedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NFTThawedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NFTThawed" {
				continue
			}
			event := new(NFTThawedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NFTThawedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NFTThawedEvent or
// returns an error if it's not possible to do to so.
func (e *NFTThawedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
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
	e.TokenId, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field TokenId: %w", err)
	}

	return nil
}
