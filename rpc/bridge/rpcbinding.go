// Package bridge contains RPC wrappers for ULPIN Bridge contract.
package bridge

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// BridgeState is a contract-specific bridge.State type used by its methods.
type BridgeState struct {
	Authority util.Uint160
	Address util.Uint160
	Bump *big.Int
	TotalTransfers *big.Int
	Active bool
}

// BridgeTransfer is a contract-specific bridge.Transfer type used by its methods.
type BridgeTransfer struct {
	Amount *big.Int
	Sender util.Uint160
	Sequence *big.Int
	InitiatedAt *big.Int
	Status *big.Int
	ConfirmedAt *big.Int
	Address util.Uint160
	Bump *big.Int
}

// CrossChainTransferInitiatedEvent represents "CrossChainTransferInitiated" event emitted by the contract.
type CrossChainTransferInitiatedEvent struct {
	Amount *big.Int
	Sender util.Uint160
	TransferID util.Uint160
}

// CrossChainTransferCompletedEvent represents "CrossChainTransferCompleted" event emitted by the contract.
type CrossChainTransferCompletedEvent struct {
	TransferID util.Uint160
	CompletionTimestamp *big.Int
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

// GetBridge invokes `getBridge` method of contract.
func (c *ContractReader) GetBridge() (*BridgeState, error) {
	return itemToBridgeState(unwrap.Item(c.invoker.Call(c.hash, "getBridge")))
}

// GetTransfer invokes `getTransfer` method of contract.
func (c *ContractReader) GetTransfer(transferID util.Uint160) (*BridgeTransfer, error) {
	return itemToBridgeTransfer(unwrap.Item(c.invoker.Call(c.hash, "getTransfer", transferID)))
}

// NextSequence invokes `nextSequence` method of contract.
func (c *ContractReader) NextSequence(sender util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "nextSequence", sender))
}

// TotalTransfers invokes `totalTransfers` method of contract.
func (c *ContractReader) TotalTransfers() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalTransfers"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// ConfirmTransfer creates a transaction invoking `confirmTransfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ConfirmTransfer(transferID util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "confirmTransfer", transferID)
}

// ConfirmTransferTransaction creates a transaction invoking `confirmTransfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ConfirmTransferTransaction(transferID util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "confirmTransfer", transferID)
}

// ConfirmTransferUnsigned creates a transaction invoking `confirmTransfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ConfirmTransferUnsigned(transferID util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "confirmTransfer", nil, transferID)
}

// CrossChainTransfer creates a transaction invoking `crossChainTransfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CrossChainTransfer(sender util.Uint160, amount *big.Int, bump *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "crossChainTransfer", sender, amount, bump)
}

// CrossChainTransferTransaction creates a transaction invoking `crossChainTransfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CrossChainTransferTransaction(sender util.Uint160, amount *big.Int, bump *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "crossChainTransfer", sender, amount, bump)
}

// CrossChainTransferUnsigned creates a transaction invoking `crossChainTransfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CrossChainTransferUnsigned(sender util.Uint160, amount *big.Int, bump *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "crossChainTransfer", nil, sender, amount, bump)
}

// InitializeBridge creates a transaction invoking `initializeBridge` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) InitializeBridge(authority util.Uint160, bump *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initializeBridge", authority, bump)
}

// InitializeBridgeTransaction creates a transaction invoking `initializeBridge` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitializeBridgeTransaction(authority util.Uint160, bump *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initializeBridge", authority, bump)
}

// InitializeBridgeUnsigned creates a transaction invoking `initializeBridge` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitializeBridgeUnsigned(authority util.Uint160, bump *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initializeBridge", nil, authority, bump)
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

// itemToBridgeState converts stack item into *BridgeState.
func itemToBridgeState(item stackitem.Item, err error) (*BridgeState, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BridgeState)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BridgeState from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BridgeState) FromStackItem(item stackitem.Item) error {
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
	res.TotalTransfers, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalTransfers: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	return nil
}

// itemToBridgeTransfer converts stack item into *BridgeTransfer.
func itemToBridgeTransfer(item stackitem.Item, err error) (*BridgeTransfer, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BridgeTransfer)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BridgeTransfer from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BridgeTransfer) FromStackItem(item stackitem.Item) error {
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
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	res.Sender, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Sender: %w", err)
	}

	index++
	res.Sequence, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Sequence: %w", err)
	}

	index++
	res.InitiatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field InitiatedAt: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.ConfirmedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ConfirmedAt: %w", err)
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

// CrossChainTransferInitiatedEventsFromApplicationLog retrieves a set of all emitted events
// with "CrossChainTransferInitiated" name from the provided [result.ApplicationLog].
func CrossChainTransferInitiatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CrossChainTransferInitiatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CrossChainTransferInitiatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CrossChainTransferInitiated" {
				continue
			}
			event := new(CrossChainTransferInitiatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CrossChainTransferInitiatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CrossChainTransferInitiatedEvent or
// returns an error if it's not possible to do to so.
func (e *CrossChainTransferInitiatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Sender, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Sender: %w", err)
	}

	index++
	e.TransferID, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field TransferID: %w", err)
	}

	return nil
}

// CrossChainTransferCompletedEventsFromApplicationLog retrieves a set of all emitted events
// with "CrossChainTransferCompleted" name from the provided [result.ApplicationLog].
func CrossChainTransferCompletedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CrossChainTransferCompletedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CrossChainTransferCompletedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CrossChainTransferCompleted" {
				continue
			}
			event := new(CrossChainTransferCompletedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CrossChainTransferCompletedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CrossChainTransferCompletedEvent or
// returns an error if it's not possible to do to so.
func (e *CrossChainTransferCompletedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.TransferID, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field TransferID: %w", err)
	}

	index++
	e.CompletionTimestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CompletionTimestamp: %w", err)
	}

	return nil
}
