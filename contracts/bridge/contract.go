package bridge

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/ulpin-registry/ulpin-contract/common"
	"github.com/ulpin-registry/ulpin-contract/contracts/bridge/bridgeconst"
)

type (
	// State is the Bridge singleton.
	State struct {
		Authority interop.Hash160
		// Derived ("bridge") address and its bump.
		Address interop.Hash160
		Bump    int

		TotalTransfers int
		Active         bool
	}

	// Transfer is a record of the cross-chain transfer initiated by the
	// sender. ConfirmedAt is set if and only if Status is Completed.
	Transfer struct {
		Amount   int
		Sender   interop.Hash160
		Sequence int

		InitiatedAt int
		Status      int
		ConfirmedAt int

		// Derived ("transfer", sender, sequence) address and its bump.
		Address interop.Hash160
		Bump    int
	}
)

const (
	stateKey = 's'

	transferPrefix = 't'
	sequencePrefix = 'n'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("bridge contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	common.UpdateContract(nefFile, manifest, data)
	runtime.Log("bridge contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// InitializeBridge creates Bridge state owned by the authority. bump must
// derive ("bridge") address of the contract. It can be called only once and
// must be witnessed by the authority.
func InitializeBridge(authority interop.Hash160, bump int) interop.Hash160 {
	ctx := storage.GetContext()
	if common.Exists(ctx, []byte{stateKey}) {
		panic(bridgeconst.ErrAlreadyInitialized)
	}

	common.CheckAuthorityWitness(authority)

	addr := common.DeriveAddress(runtime.GetExecutingScriptHash(), bridgeconst.BridgeTag, [][]byte{}, bump)

	common.SetSerialized(ctx, []byte{stateKey}, State{
		Authority: authority,
		Address:   addr,
		Bump:      bump,
		Active:    true,
	})

	runtime.Log("bridge initialized")

	return addr
}

// SetActive switches Bridge activity. Inactive Bridge rejects new transfers,
// pending ones still can be confirmed.
func SetActive(active bool) {
	ctx := storage.GetContext()
	s := getState(ctx)

	common.CheckAuthorityWitness(s.Authority)

	s.Active = active
	common.SetSerialized(ctx, []byte{stateKey}, s)
}

// GetBridge returns Bridge state.
func GetBridge() State {
	return getState(storage.GetReadOnlyContext())
}

// TotalTransfers returns the number of initiated transfers.
func TotalTransfers() int {
	return getState(storage.GetReadOnlyContext()).TotalTransfers
}

// NextSequence returns sequence number of the next transfer of the sender.
// Together with the sender it is the key material of the transfer address.
func NextSequence(sender interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, append([]byte{sequencePrefix}, sender...))
}

// CrossChainTransfer records pending transfer of the amount initiated by the
// sender. bump must derive ("transfer", sender, sequence) address where
// sequence is the value of NextSequence. Returns transfer address which is
// the transfer ID.
//
// It produces CrossChainTransferInitiated notification.
func CrossChainTransfer(sender interop.Hash160, amount int, bump int) interop.Hash160 {
	ctx := storage.GetContext()
	s := getState(ctx)
	if !s.Active {
		panic(bridgeconst.ErrInactive)
	}

	common.CheckOwnerWitness(sender)

	if amount <= 0 || amount > common.MaxAmount {
		panic(bridgeconst.ErrInvalidAmount)
	}

	seqKey := append([]byte{sequencePrefix}, sender...)
	seq := common.GetInt(ctx, seqKey)

	addr := common.DeriveAddress(runtime.GetExecutingScriptHash(), bridgeconst.TransferTag, transferKeys(sender, seq), bump)
	key := append([]byte{transferPrefix}, addr...)
	if common.Exists(ctx, key) {
		panic(bridgeconst.ErrTransferExists)
	}

	common.SetSerialized(ctx, key, Transfer{
		Amount:      amount,
		Sender:      sender,
		Sequence:    seq,
		InitiatedAt: runtime.GetTime() / 1000,
		Status:      int(bridgeconst.Pending),
		Address:     addr,
		Bump:        bump,
	})
	storage.Put(ctx, seqKey, seq+1)

	s.TotalTransfers = common.CheckedAdd(s.TotalTransfers, 1, bridgeconst.ErrCounterOverflow)
	common.SetSerialized(ctx, []byte{stateKey}, s)

	runtime.Notify("CrossChainTransferInitiated", amount, sender, addr)

	return addr
}

// ConfirmTransfer completes pending transfer. It can be invoked only by the
// Bridge authority.
//
// It produces CrossChainTransferCompleted notification.
func ConfirmTransfer(transferID interop.Hash160) {
	ctx := storage.GetContext()
	s := getState(ctx)

	common.CheckAuthorityWitness(s.Authority)

	t := getTransfer(ctx, transferID)
	if t.Status != int(bridgeconst.Pending) {
		panic(bridgeconst.ErrTransferNotPending)
	}

	now := runtime.GetTime() / 1000

	t.Status = int(bridgeconst.Completed)
	t.ConfirmedAt = now
	common.SetSerialized(ctx, append([]byte{transferPrefix}, transferID...), t)

	runtime.Notify("CrossChainTransferCompleted", transferID, now)
}

// GetTransfer returns transfer record by its ID.
func GetTransfer(transferID interop.Hash160) Transfer {
	return getTransfer(storage.GetReadOnlyContext(), transferID)
}

func getState(ctx storage.Context) State {
	data := common.GetSerialized(ctx, []byte{stateKey})
	if data == nil {
		panic(bridgeconst.ErrNotInitialized)
	}

	s := data.(State)
	common.CheckDerivedAddress(s.Address, runtime.GetExecutingScriptHash(), bridgeconst.BridgeTag, [][]byte{}, s.Bump)

	return s
}

// getTransfer returns transfer record re-derived from its seed.
func getTransfer(ctx storage.Context, transferID interop.Hash160) Transfer {
	if len(transferID) != interop.Hash160Len {
		panic(bridgeconst.ErrTransferNotFound)
	}

	data := common.GetSerialized(ctx, append([]byte{transferPrefix}, transferID...))
	if data == nil {
		panic(bridgeconst.ErrTransferNotFound)
	}

	t := data.(Transfer)
	common.CheckDerivedAddress(transferID, runtime.GetExecutingScriptHash(), bridgeconst.TransferTag, transferKeys(t.Sender, t.Sequence), t.Bump)

	return t
}

func transferKeys(sender interop.Hash160, seq int) [][]byte {
	return [][]byte{sender, []byte(std.Itoa(seq, 10))}
}
