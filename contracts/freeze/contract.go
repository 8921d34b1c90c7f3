package freeze

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/ulpin-registry/ulpin-contract/common"
	"github.com/ulpin-registry/ulpin-contract/contracts/freeze/freezeconst"
	"github.com/ulpin-registry/ulpin-contract/contracts/treasury/landparcel"
)

// State is the Freeze authority singleton.
type State struct {
	Authority interop.Hash160
	// Treasury contract holding parcel tokens.
	Treasury interop.Hash160
	// Derived ("freeze_authority") address and its bump. They are presented
	// to Treasury on every custody call.
	Address interop.Hash160
	Bump    int
}

const (
	stateKey    = 's'
	treasuryKey = 't'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		treasury interop.Hash160
	})

	if len(args.treasury) != interop.Hash160Len {
		panic(freezeconst.ErrMissingTreasury)
	}

	storage.Put(ctx, []byte{treasuryKey}, args.treasury)

	runtime.Log("freeze contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	common.UpdateContract(nefFile, manifest, data)
	runtime.Log("freeze contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// InitializeFreezeAuthority creates Freeze authority state. bump must derive
// ("freeze_authority") address of the contract. It can be called only once and
// must be witnessed by the authority. Returns derived address which is then
// registered in Treasury by its authority.
func InitializeFreezeAuthority(authority interop.Hash160, bump int) interop.Hash160 {
	ctx := storage.GetContext()
	if common.Exists(ctx, []byte{stateKey}) {
		panic(freezeconst.ErrAlreadyInitialized)
	}

	common.CheckAuthorityWitness(authority)

	treasury := storage.Get(ctx, []byte{treasuryKey}).(interop.Hash160)
	addr := common.DeriveAddress(runtime.GetExecutingScriptHash(), freezeconst.FreezeAuthorityTag, [][]byte{}, bump)

	common.SetSerialized(ctx, []byte{stateKey}, State{
		Authority: authority,
		Treasury:  treasury,
		Address:   addr,
		Bump:      bump,
	})

	runtime.Log("freeze authority initialized")

	return addr
}

// GetFreezeAuthority returns Freeze authority state.
func GetFreezeAuthority() State {
	return getState(storage.GetReadOnlyContext())
}

// IsFrozen checks whether parcel token is frozen.
func IsFrozen(id []byte) bool {
	s := getState(storage.GetReadOnlyContext())
	return getParcel(s.Treasury, id).Frozen
}

// FreezeLandNFT locks parcel token for duration seconds starting from the
// current block time. It can be invoked only by the Freeze authority.
//
// It produces NFTFrozen notification.
func FreezeLandNFT(id []byte, duration int) {
	s := getState(storage.GetReadOnlyContext())

	common.CheckAuthorityWitness(s.Authority)

	if duration <= 0 {
		panic(freezeconst.ErrInvalidDuration)
	}

	rec := getParcel(s.Treasury, id)
	checkTokenized(rec)
	if rec.Frozen {
		panic(freezeconst.ErrAlreadyFrozen)
	}

	start := runtime.GetTime() / 1000
	contract.Call(s.Treasury, "freezeToken", contract.All, id, s.Address, s.Bump, start, duration)

	tokenID := common.TrimZeros(rec.ID)
	runtime.Notify("NFTFrozen", string(tokenID), tokenID, duration)
}

// ThawLandNFT unlocks parcel token once its freeze period is over, that is
// when current block time is strictly after freeze start plus duration. It
// must be witnessed by the Freeze authority or by the token owner.
//
// It produces NFTThawed notification.
func ThawLandNFT(id []byte) {
	s := getState(storage.GetReadOnlyContext())

	rec := getParcel(s.Treasury, id)
	if !runtime.CheckWitness(s.Authority) && !runtime.CheckWitness(rec.Owner) {
		panic(freezeconst.ErrThawWitness)
	}

	checkTokenized(rec)
	if !rec.Frozen {
		panic(freezeconst.ErrNoActiveFreeze)
	}

	now := runtime.GetTime() / 1000
	if now <= rec.FreezeStart+rec.FreezeDuration {
		panic(freezeconst.ErrFreezePeriodNotExpired)
	}

	contract.Call(s.Treasury, "thawToken", contract.All, id, s.Address, s.Bump)

	tokenID := common.TrimZeros(rec.ID)
	runtime.Notify("NFTThawed", string(tokenID), tokenID)
}

func getState(ctx storage.Context) State {
	data := common.GetSerialized(ctx, []byte{stateKey})
	if data == nil {
		panic(freezeconst.ErrNotInitialized)
	}

	s := data.(State)
	common.CheckDerivedAddress(s.Address, runtime.GetExecutingScriptHash(), freezeconst.FreezeAuthorityTag, [][]byte{}, s.Bump)

	return s
}

// getParcel reads parcel record from Treasury contract.
func getParcel(treasury interop.Hash160, id []byte) landparcel.Record {
	return contract.Call(treasury, "getParcel", contract.ReadOnly, id).(landparcel.Record)
}

func checkTokenized(rec landparcel.Record) {
	if !rec.Verified {
		panic(freezeconst.ErrLandNotVerified)
	}
	if !rec.Minted {
		panic(freezeconst.ErrNFTNotMinted)
	}
}
