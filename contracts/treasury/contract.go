package treasury

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/ulpin-registry/ulpin-contract/common"
	"github.com/ulpin-registry/ulpin-contract/contracts/freeze/freezeconst"
	"github.com/ulpin-registry/ulpin-contract/contracts/treasury/landparcel"
	"github.com/ulpin-registry/ulpin-contract/contracts/treasury/treasuryconst"
)

type (
	// State is the Treasury singleton.
	State struct {
		Authority interop.Hash160
		// Derived ("treasury") address and its bump.
		Address interop.Hash160
		Bump    int

		LandParcelCount    int
		TotalFeesCollected int

		BaseFee    int
		PerUnitFee int

		Active bool
	}

	// FreezeDelegate is the Freeze contract allowed to lock parcel tokens
	// along with its derived ("freeze_authority") address.
	FreezeDelegate struct {
		Contract interop.Hash160
		Address  interop.Hash160
		Bump     int
	}
)

const (
	stateKey          = 's'
	freezeDelegateKey = 'f'
	totalSupplyKey    = 'T'

	parcelPrefix       = 'p'
	tokenPrefix        = 't'
	metadataPrefix     = 'm'
	balancePrefix      = 'b'
	accountTokenPrefix = 'a'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	storage.Put(ctx, []byte{totalSupplyKey}, 0)

	runtime.Log("treasury contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	common.UpdateContract(nefFile, manifest, data)
	runtime.Log("treasury contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Initialize creates Treasury state owned by the authority. bump must derive
// ("treasury") address of the contract, see pda.Find. Initialize can be
// called only once and must be witnessed by the authority. It returns derived
// Treasury address.
func Initialize(authority interop.Hash160, bump int) interop.Hash160 {
	ctx := storage.GetContext()
	if common.Exists(ctx, []byte{stateKey}) {
		panic(treasuryconst.ErrAlreadyInitialized)
	}

	if !isValid(authority) {
		panic(treasuryconst.ErrInvalidOwner)
	}

	common.CheckAuthorityWitness(authority)

	addr := common.DeriveAddress(runtime.GetExecutingScriptHash(), treasuryconst.TreasuryTag, [][]byte{}, bump)

	common.SetSerialized(ctx, []byte{stateKey}, State{
		Authority:  authority,
		Address:    addr,
		Bump:       bump,
		BaseFee:    treasuryconst.DefaultBaseFee,
		PerUnitFee: treasuryconst.DefaultPerUnitFee,
		Active:     true,
	})

	runtime.Log("treasury initialized")

	return addr
}

// SetActive switches Treasury activity. Inactive Treasury rejects parcel
// registration, verification, minting and ownership updates. Token transfers
// are not affected.
func SetActive(active bool) {
	ctx := storage.GetContext()
	s := getState(ctx)

	common.CheckAuthorityWitness(s.Authority)

	s.Active = active
	common.SetSerialized(ctx, []byte{stateKey}, s)
}

// GetTreasury returns Treasury state.
func GetTreasury() State {
	return getState(storage.GetReadOnlyContext())
}

// ParcelCount returns the number of registered land parcels.
func ParcelCount() int {
	return getState(storage.GetReadOnlyContext()).LandParcelCount
}

// TotalFeesCollected returns the sum of all minting fees paid.
func TotalFeesCollected() int {
	return getState(storage.GetReadOnlyContext()).TotalFeesCollected
}

// FeeFor returns minting fee of the parcel with the given area.
func FeeFor(area int) int {
	if area <= 0 {
		panic(treasuryconst.ErrInvalidArea)
	}

	s := getState(storage.GetReadOnlyContext())
	return common.CheckedMulAdd(s.BaseFee, area, s.PerUnitFee, treasuryconst.ErrFeeOverflow)
}

// RegisterLandParcel records a new land parcel owned by owner. It can be
// invoked only by the Treasury authority. bump must derive ("land_parcel", id)
// address where id is padded to 64 bytes. Returns derived parcel address.
//
// It produces LandParcelRegistered notification.
func RegisterLandParcel(id []byte, area int, district, taluka, village []byte, owner interop.Hash160, bump int) interop.Hash160 {
	ctx := storage.GetContext()
	s := getActiveState(ctx)

	common.CheckAuthorityWitness(s.Authority)

	checkID(id)
	if area <= 0 || area > common.MaxAmount {
		panic(treasuryconst.ErrInvalidArea)
	}
	checkLabel(district)
	checkLabel(taluka)
	checkLabel(village)
	if !isValid(owner) {
		panic(treasuryconst.ErrInvalidOwner)
	}

	paddedID := common.PadBytes(id, treasuryconst.MaxIDLength)
	key := parcelKey(paddedID)
	if common.Exists(ctx, key) {
		panic(treasuryconst.ErrAlreadyRegistered)
	}

	addr := common.DeriveAddress(runtime.GetExecutingScriptHash(), treasuryconst.LandParcelTag, [][]byte{paddedID}, bump)
	now := runtime.GetTime() / 1000

	common.SetSerialized(ctx, key, landparcel.Record{
		ID:           paddedID,
		Area:         area,
		District:     common.PadBytes(district, treasuryconst.MaxLabelLength),
		Taluka:       common.PadBytes(taluka, treasuryconst.MaxLabelLength),
		Village:      common.PadBytes(village, treasuryconst.MaxLabelLength),
		Owner:        owner,
		RegisteredAt: now,
		Address:      addr,
		Bump:         bump,
	})

	s.LandParcelCount = common.CheckedAdd(s.LandParcelCount, 1, common.ErrOverflow)
	common.SetSerialized(ctx, []byte{stateKey}, s)

	runtime.Notify("LandParcelRegistered", string(common.TrimZeros(paddedID)), owner, area, now)

	return addr
}

// VerifyLandParcel marks parcel as verified. verifier must be the Treasury
// authority and witness the call.
//
// It produces LandParcelVerified notification.
func VerifyLandParcel(id []byte, verifier interop.Hash160) {
	ctx := storage.GetContext()
	s := getActiveState(ctx)

	if !common.BytesEqual(s.Authority, verifier) {
		panic(treasuryconst.ErrNotVerifier)
	}
	common.CheckWitness(verifier)

	rec := getParcel(ctx, id)
	if rec.Verified {
		panic(treasuryconst.ErrAlreadyVerified)
	}

	now := runtime.GetTime() / 1000

	rec.Verified = true
	rec.VerifiedAt = now
	putParcel(ctx, rec)

	runtime.Notify("LandParcelVerified", string(common.TrimZeros(rec.ID)), verifier, now)
}

// MintLandNFT issues parcel token to the parcel owner. Minting fee (see
// FeeFor) is withdrawn in GAS from payer before the token is issued, so
// payer's witness scope must allow GAS contract (CustomContracts or Global).
// Payers signing with CalledByEntry scope transfer the fee themselves, see
// OnNEP17Payment. Token ID is the parcel ID without zero padding.
//
// It produces Transfer and NFTMinted notifications.
func MintLandNFT(id []byte, metadataURI string, payer interop.Hash160) {
	ctx := storage.GetContext()
	s := getActiveState(ctx)

	rec := getMintableParcel(ctx, id, metadataURI)
	fee := common.CheckedMulAdd(s.BaseFee, rec.Area, s.PerUnitFee, treasuryconst.ErrFeeOverflow)
	s.TotalFeesCollected = common.CheckedAdd(s.TotalFeesCollected, fee, treasuryconst.ErrFeeOverflow)

	if !gas.Transfer(payer, runtime.GetExecutingScriptHash(), fee, nil) {
		panic(treasuryconst.ErrFeePaymentFailed)
	}

	issueToken(ctx, s, rec, metadataURI, fee)
}

// UpdateLandOwnership moves minted parcel with its token to the new owner.
// It can be invoked only by the Treasury authority and fails while the token
// is frozen.
//
// It produces Transfer and OwnershipTransferred notifications.
func UpdateLandOwnership(id []byte, newOwner interop.Hash160) {
	ctx := storage.GetContext()
	s := getActiveState(ctx)

	common.CheckAuthorityWitness(s.Authority)

	if !isValid(newOwner) {
		panic(treasuryconst.ErrInvalidOwner)
	}

	rec := getParcel(ctx, id)
	if !rec.Verified {
		panic(treasuryconst.ErrLandNotVerified)
	}
	if !rec.Minted {
		panic(treasuryconst.ErrNFTNotMinted)
	}
	if rec.Frozen {
		panic(treasuryconst.ErrTokenFrozen)
	}

	previousOwner := rec.Owner
	tokenID := common.TrimZeros(rec.ID)

	if !common.BytesEqual(previousOwner, newOwner) {
		rec.Owner = newOwner
		putParcel(ctx, rec)

		updateBalance(ctx, tokenID, previousOwner, -1)
		updateBalance(ctx, tokenID, newOwner, 1)
	}

	postTransfer(previousOwner, newOwner, tokenID, nil)
	runtime.Notify("OwnershipTransferred", string(tokenID), previousOwner, newOwner, runtime.GetTime()/1000)
}

// GetParcel returns record of the registered parcel.
func GetParcel(id []byte) landparcel.Record {
	return getParcel(storage.GetReadOnlyContext(), id)
}

// OnNEP17Payment accepts minting fees. Only GAS is accepted. Payment with
// nil data is a plain fee deposit. Otherwise data must be a pair of parcel
// ID and token metadata URI: the amount must be exactly the minting fee of
// the parcel and the token is issued to the parcel owner like MintLandNFT
// does.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !common.BytesEqual(caller, []byte(gas.Hash)) {
		common.AbortWithMessage(treasuryconst.ErrOnlyGAS)
	}

	if data == nil {
		return
	}

	args := data.(struct {
		id          []byte
		metadataURI string
	})

	ctx := storage.GetContext()
	s := getActiveState(ctx)

	rec := getMintableParcel(ctx, args.id, args.metadataURI)
	fee := common.CheckedMulAdd(s.BaseFee, rec.Area, s.PerUnitFee, treasuryconst.ErrFeeOverflow)
	if amount != fee {
		panic(treasuryconst.ErrFeeAmountMismatch)
	}
	s.TotalFeesCollected = common.CheckedAdd(s.TotalFeesCollected, fee, treasuryconst.ErrFeeOverflow)

	issueToken(ctx, s, rec, args.metadataURI, fee)
}

// SetFreezeAuthority registers Freeze contract allowed to lock and unlock
// parcel tokens. address and bump must derive ("freeze_authority") address
// owned by freezeContract. It can be invoked only by the Treasury authority.
func SetFreezeAuthority(freezeContract, address interop.Hash160, bump int) {
	ctx := storage.GetContext()
	s := getState(ctx)

	common.CheckAuthorityWitness(s.Authority)

	if !isValid(freezeContract) {
		panic(treasuryconst.ErrInvalidOwner)
	}

	common.CheckDerivedAddress(address, freezeContract, freezeconst.FreezeAuthorityTag, [][]byte{}, bump)

	common.SetSerialized(ctx, []byte{freezeDelegateKey}, FreezeDelegate{
		Contract: freezeContract,
		Address:  address,
		Bump:     bump,
	})

	runtime.Log("freeze authority registered")
}

// GetFreezeAuthority returns registered Freeze contract.
func GetFreezeAuthority() FreezeDelegate {
	return getFreezeDelegate(storage.GetReadOnlyContext())
}

// FreezeToken makes parcel token non-transferable from start for duration
// seconds. It can be invoked only by registered Freeze contract proving its
// derived address with the bump.
func FreezeToken(id []byte, address interop.Hash160, bump int, start, duration int) {
	ctx := storage.GetContext()
	checkFreezeDelegate(ctx, address, bump)

	if duration <= 0 {
		panic(treasuryconst.ErrInvalidFreezeDuration)
	}

	rec := getParcel(ctx, id)
	if !rec.Verified {
		panic(treasuryconst.ErrLandNotVerified)
	}
	if !rec.Minted {
		panic(treasuryconst.ErrNFTNotMinted)
	}
	if rec.Frozen {
		panic(treasuryconst.ErrAlreadyFrozen)
	}

	rec.Frozen = true
	rec.FreezeStart = start
	rec.FreezeDuration = duration
	putParcel(ctx, rec)
}

// ThawToken clears freeze of the parcel token. It can be invoked only by
// registered Freeze contract proving its derived address with the bump.
func ThawToken(id []byte, address interop.Hash160, bump int) {
	ctx := storage.GetContext()
	checkFreezeDelegate(ctx, address, bump)

	rec := getParcel(ctx, id)
	if !rec.Frozen {
		panic(treasuryconst.ErrNoActiveFreeze)
	}

	rec.Frozen = false
	rec.FreezeStart = 0
	rec.FreezeDuration = 0
	putParcel(ctx, rec)
}

// Symbol is a NEP-11 standard method that returns parcel token symbol.
func Symbol() string {
	return treasuryconst.Symbol
}

// Decimals is a NEP-11 standard method, parcel tokens are indivisible.
func Decimals() int {
	return 0
}

// TotalSupply is a NEP-11 standard method that returns the number of minted
// parcel tokens.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return getTotalSupply(ctx)
}

// OwnerOf is a NEP-11 standard method that returns the owner of the parcel
// token.
func OwnerOf(tokenID []byte) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	rec := getMintedParcel(ctx, tokenID)
	return rec.Owner
}

// Properties returns parcel token properties.
func Properties(tokenID []byte) map[string]any {
	ctx := storage.GetReadOnlyContext()
	rec := getMintedParcel(ctx, tokenID)
	id := common.TrimZeros(rec.ID)
	return map[string]any{
		"name":     string(id),
		"uri":      storage.Get(ctx, append([]byte{metadataPrefix}, getTokenKey(id)...)),
		"area":     rec.Area,
		"district": string(common.TrimZeros(rec.District)),
		"taluka":   string(common.TrimZeros(rec.Taluka)),
		"village":  string(common.TrimZeros(rec.Village)),
		"frozen":   rec.Frozen,
	}
}

// BalanceOf is a NEP-11 standard method that returns the number of parcel
// tokens owned by the account.
func BalanceOf(owner interop.Hash160) int {
	if !isValid(owner) {
		panic(treasuryconst.ErrInvalidOwner)
	}
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, append([]byte{balancePrefix}, owner...))
}

// Tokens returns iterator over all minted parcel token IDs.
func Tokens() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{tokenPrefix}, storage.ValuesOnly)
}

// TokensOf is a NEP-11 standard method that returns iterator over parcel
// token IDs owned by the account.
func TokensOf(owner interop.Hash160) iterator.Iterator {
	if !isValid(owner) {
		panic(treasuryconst.ErrInvalidOwner)
	}
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{accountTokenPrefix}, owner...), storage.ValuesOnly)
}

// Transfer is a NEP-11 standard method that transfers parcel token to a new
// owner. It must be witnessed by the current owner and fails while the token
// is frozen. Parcel owner follows the token.
func Transfer(to interop.Hash160, tokenID []byte, data any) bool {
	if !isValid(to) {
		panic(`invalid receiver`)
	}

	ctx := storage.GetContext()
	rec := getMintedParcel(ctx, tokenID)

	from := rec.Owner
	if !runtime.CheckWitness(from) {
		return false
	}
	if rec.Frozen {
		panic(treasuryconst.ErrTokenFrozen)
	}

	id := common.TrimZeros(rec.ID)
	if !common.BytesEqual(from, to) {
		rec.Owner = to
		putParcel(ctx, rec)

		updateBalance(ctx, id, from, -1)
		updateBalance(ctx, id, to, 1)
	}

	postTransfer(from, to, id, data)
	return true
}

func getState(ctx storage.Context) State {
	data := common.GetSerialized(ctx, []byte{stateKey})
	if data == nil {
		panic(treasuryconst.ErrNotInitialized)
	}

	s := data.(State)
	common.CheckDerivedAddress(s.Address, runtime.GetExecutingScriptHash(), treasuryconst.TreasuryTag, [][]byte{}, s.Bump)

	return s
}

func getActiveState(ctx storage.Context) State {
	s := getState(ctx)
	if !s.Active {
		panic(treasuryconst.ErrInactive)
	}
	return s
}

// getParcel returns parcel record re-derived from its seed.
func getParcel(ctx storage.Context, id []byte) landparcel.Record {
	checkID(id)

	data := common.GetSerialized(ctx, parcelKey(common.PadBytes(id, treasuryconst.MaxIDLength)))
	if data == nil {
		panic(treasuryconst.ErrParcelNotFound)
	}

	rec := data.(landparcel.Record)
	common.CheckDerivedAddress(rec.Address, runtime.GetExecutingScriptHash(), treasuryconst.LandParcelTag, [][]byte{rec.ID}, rec.Bump)

	return rec
}

func getMintedParcel(ctx storage.Context, tokenID []byte) landparcel.Record {
	rec := getParcel(ctx, tokenID)
	if !rec.Minted {
		panic(treasuryconst.ErrNFTNotMinted)
	}
	return rec
}

// getMintableParcel returns verified parcel which has no token yet.
func getMintableParcel(ctx storage.Context, id []byte, metadataURI string) landparcel.Record {
	if len(metadataURI) > treasuryconst.MaxMetadataURILength {
		panic(treasuryconst.ErrInvalidMetadataURI)
	}

	rec := getParcel(ctx, id)
	if rec.Minted {
		panic(treasuryconst.ErrNFTAlreadyMinted)
	}
	if !rec.Verified {
		panic(treasuryconst.ErrLandNotVerified)
	}

	return rec
}

// issueToken mints parcel token to the owner and saves s with the paid fee
// already accounted.
func issueToken(ctx storage.Context, s State, rec landparcel.Record, metadataURI string, fee int) {
	rec.Minted = true
	putParcel(ctx, rec)

	tokenID := common.TrimZeros(rec.ID)
	tokenKey := getTokenKey(tokenID)
	storage.Put(ctx, append([]byte{tokenPrefix}, tokenKey...), tokenID)
	storage.Put(ctx, append([]byte{metadataPrefix}, tokenKey...), metadataURI)
	updateBalance(ctx, tokenID, rec.Owner, 1)
	updateTotalSupply(ctx, 1)

	common.SetSerialized(ctx, []byte{stateKey}, s)

	postTransfer(nil, rec.Owner, tokenID, nil)
	runtime.Notify("NFTMinted", string(tokenID), rec.Owner, tokenID, metadataURI, fee)
}

func putParcel(ctx storage.Context, rec landparcel.Record) {
	common.SetSerialized(ctx, parcelKey(rec.ID), rec)
}

// parcelKey returns storage key of the parcel record. It depends on the seed
// only, so a parcel can't be registered twice with different bumps.
func parcelKey(paddedID []byte) []byte {
	return append([]byte{parcelPrefix}, common.SeedKey(treasuryconst.LandParcelTag, [][]byte{paddedID})...)
}

func getFreezeDelegate(ctx storage.Context) FreezeDelegate {
	data := common.GetSerialized(ctx, []byte{freezeDelegateKey})
	if data == nil {
		panic(treasuryconst.ErrFreezeAuthorityNotSet)
	}
	return data.(FreezeDelegate)
}

// checkFreezeDelegate checks that calling contract is the registered Freeze
// contract presenting its registered derived address and bump.
func checkFreezeDelegate(ctx storage.Context, address interop.Hash160, bump int) {
	d := getFreezeDelegate(ctx)

	caller := runtime.GetCallingScriptHash()
	if !common.BytesEqual(caller, d.Contract) {
		panic(treasuryconst.ErrNotFreezeAuthority)
	}

	// derivation was checked on registration
	if !common.BytesEqual(address, d.Address) || bump != d.Bump {
		panic(common.ErrForgedAccount)
	}
}

func checkID(id []byte) {
	if len(id) == 0 || len(id) > treasuryconst.MaxIDLength {
		panic(treasuryconst.ErrInvalidIdentifierLength)
	}
}

func checkLabel(label []byte) {
	if len(label) > treasuryconst.MaxLabelLength {
		panic(treasuryconst.ErrInvalidLabel)
	}
}

// updateBalance updates account's balance and account's tokens.
func updateBalance(ctx storage.Context, tokenID []byte, acc interop.Hash160, diff int) {
	balanceKey := append([]byte{balancePrefix}, acc...)
	balance := common.GetInt(ctx, balanceKey) + diff
	if balance == 0 {
		storage.Delete(ctx, balanceKey)
	} else {
		storage.Put(ctx, balanceKey, balance)
	}

	accountTokenKey := append(append([]byte{accountTokenPrefix}, acc...), getTokenKey(tokenID)...)
	if diff < 0 {
		storage.Delete(ctx, accountTokenKey)
	} else {
		storage.Put(ctx, accountTokenKey, tokenID)
	}
}

// postTransfer sends Transfer notification to the network and calls onNEP11Payment
// method.
func postTransfer(from, to interop.Hash160, tokenID []byte, data any) {
	runtime.Notify("Transfer", from, to, 1, tokenID)
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP11Payment", contract.All, from, 1, tokenID, data)
	}
}

func getTotalSupply(ctx storage.Context) int {
	return common.GetInt(ctx, []byte{totalSupplyKey})
}

func updateTotalSupply(ctx storage.Context, diff int) {
	storage.Put(ctx, []byte{totalSupplyKey}, getTotalSupply(ctx)+diff)
}

// getTokenKey computes hash160 from the given tokenID.
func getTokenKey(tokenID []byte) []byte {
	return crypto.Ripemd160(tokenID)
}

// isValid checks whether the provided address is a valid Hash160.
func isValid(address interop.Hash160) bool {
	return address != nil && len(address) == interop.Hash160Len
}
