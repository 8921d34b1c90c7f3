package tests

import (
	"math/big"
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/ulpin-registry/ulpin-contract/common"
	"github.com/ulpin-registry/ulpin-contract/contracts/treasury/treasuryconst"
	"github.com/ulpin-registry/ulpin-contract/pda"
	"github.com/ulpin-registry/ulpin-contract/rpc/treasury"
)

const parcelID = "ULPIN-MH-PUNE-0001"

func TestTreasuryInitialize(t *testing.T) {
	e := newExecutor(t)
	ctr := compileContract(t, e, treasuryPath)
	e.DeployContract(t, ctr, nil)

	authority := e.NewAccount(t)
	c := e.NewInvoker(ctr.Hash, authority)

	c.InvokeFail(t, treasuryconst.ErrNotInitialized, "parcelCount")

	addr, bump, err := pda.Treasury(ctr.Hash)
	require.NoError(t, err)

	stranger := e.NewAccount(t)
	e.NewInvoker(ctr.Hash, stranger).InvokeFail(t, common.ErrAuthorityWitnessFailed,
		"initialize", authority.ScriptHash(), int64(bump))

	c.Invoke(t, addr.Uint160(), "initialize", authority.ScriptHash(), int64(bump))
	c.InvokeFail(t, treasuryconst.ErrAlreadyInitialized, "initialize", authority.ScriptHash(), int64(bump))

	s, err := c.TestInvoke(t, "getTreasury")
	require.NoError(t, err)
	var st treasury.TreasuryState
	require.NoError(t, st.FromStackItem(s.Pop().Item()))
	require.Equal(t, authority.ScriptHash(), st.Authority)
	require.Equal(t, addr.Uint160(), st.Address)
	require.Equal(t, int64(bump), st.Bump.Int64())
	require.Zero(t, st.LandParcelCount.Sign())
	require.Zero(t, st.TotalFeesCollected.Sign())
	require.Equal(t, int64(treasuryconst.DefaultBaseFee), st.BaseFee.Int64())
	require.Equal(t, int64(treasuryconst.DefaultPerUnitFee), st.PerUnitFee.Int64())
	require.True(t, st.Active)

	c.Invoke(t, "ULPIN", "symbol")
	c.Invoke(t, 0, "decimals")
	c.Invoke(t, 0, "totalSupply")
	c.Invoke(t, common.Version, "version")
}

func TestTreasuryRegister(t *testing.T) {
	r := newRegistry(t)
	owner := r.e.NewAccount(t).ScriptHash()

	t.Run("identifier length", func(t *testing.T) {
		long := strings.Repeat("A", treasuryconst.MaxIDLength+1)
		_, bump, err := pda.LandParcel(r.treasuryHash, []byte(long[:treasuryconst.MaxIDLength]))
		require.NoError(t, err)

		r.treasury.InvokeFail(t, treasuryconst.ErrInvalidIdentifierLength, "registerLandParcel",
			long, 100, "Pune", "Haveli", "Wagholi", owner, int64(bump))
		r.treasury.InvokeFail(t, treasuryconst.ErrInvalidIdentifierLength, "registerLandParcel",
			"", 100, "Pune", "Haveli", "Wagholi", owner, int64(bump))

		r.treasury.Invoke(t, 0, "parcelCount")
		r.treasury.InvokeFail(t, treasuryconst.ErrParcelNotFound, "getParcel", long[:treasuryconst.MaxIDLength])
	})

	t.Run("area", func(t *testing.T) {
		_, bump, err := pda.LandParcel(r.treasuryHash, []byte(parcelID))
		require.NoError(t, err)
		for _, area := range []int64{0, -1} {
			r.treasury.InvokeFail(t, treasuryconst.ErrInvalidArea, "registerLandParcel",
				parcelID, area, "Pune", "Haveli", "Wagholi", owner, int64(bump))
		}
		r.treasury.InvokeFail(t, treasuryconst.ErrInvalidArea, "feeFor", 0)
	})

	t.Run("labels", func(t *testing.T) {
		_, bump, err := pda.LandParcel(r.treasuryHash, []byte(parcelID))
		require.NoError(t, err)
		long := strings.Repeat("x", treasuryconst.MaxLabelLength+1)
		r.treasury.InvokeFail(t, treasuryconst.ErrInvalidLabel, "registerLandParcel",
			parcelID, 100, long, "Haveli", "Wagholi", owner, int64(bump))
	})

	t.Run("authority only", func(t *testing.T) {
		_, bump, err := pda.LandParcel(r.treasuryHash, []byte(parcelID))
		require.NoError(t, err)
		r.e.NewInvoker(r.treasuryHash, r.e.NewAccount(t)).InvokeFail(t, common.ErrAuthorityWitnessFailed,
			"registerLandParcel", parcelID, 100, "Pune", "Haveli", "Wagholi", owner, int64(bump))
	})

	t.Run("invalid bump", func(t *testing.T) {
		r.treasury.InvokeFail(t, common.ErrInvalidBump, "registerLandParcel",
			parcelID, 100, "Pune", "Haveli", "Wagholi", owner, 256)
	})

	addr := r.register(t, parcelID, 500, owner)
	r.treasury.Invoke(t, 1, "parcelCount")

	rec := r.parcel(t, parcelID)
	padded, err := pda.PadParcelID([]byte(parcelID))
	require.NoError(t, err)
	require.Equal(t, padded, rec.ID)
	require.Equal(t, int64(500), rec.Area.Int64())
	require.Equal(t, owner, rec.Owner)
	require.Equal(t, addr.Uint160(), rec.Address)
	require.False(t, rec.Verified)
	require.False(t, rec.Minted)
	require.False(t, rec.Frozen)
	require.Equal(t, "Wagholi", string(common.TrimZeros(rec.Village)))

	t.Run("duplicate", func(t *testing.T) {
		_, bump, err := pda.LandParcel(r.treasuryHash, []byte(parcelID))
		require.NoError(t, err)
		r.treasury.InvokeFail(t, treasuryconst.ErrAlreadyRegistered, "registerLandParcel",
			parcelID, 100, "Pune", "Haveli", "Wagholi", owner, int64(bump))

		// Another bump derives another address but the seed is taken.
		r.treasury.InvokeFail(t, treasuryconst.ErrAlreadyRegistered, "registerLandParcel",
			parcelID, 100, "Pune", "Haveli", "Wagholi", owner, int64(bump)-1)

		// Zero padding makes these identifiers equal.
		r.treasury.InvokeFail(t, treasuryconst.ErrAlreadyRegistered, "registerLandParcel",
			parcelID+"\x00", 100, "Pune", "Haveli", "Wagholi", owner, int64(bump))
	})

	r.register(t, "ULPIN-MH-PUNE-0002", 200, owner)
	r.register(t, "ULPIN-MH-PUNE-0003", 300, owner)
	r.treasury.Invoke(t, 3, "parcelCount")

	t.Run("event", func(t *testing.T) {
		const id = "ULPIN-MH-PUNE-0004"
		addr, bump, err := pda.LandParcel(r.treasuryHash, []byte(id))
		require.NoError(t, err)
		h := r.treasury.Invoke(t, addr.Uint160(), "registerLandParcel",
			id, 42, "Pune", "Haveli", "Wagholi", owner, int64(bump))

		events, err := treasury.LandParcelRegisteredEventsFromApplicationLog(appLog(t, r.e, h))
		require.NoError(t, err)
		require.Len(t, events, 1)
		require.Equal(t, id, events[0].UlpinID)
		require.Equal(t, owner, events[0].Owner)
		require.Equal(t, int64(42), events[0].AreaSqm.Int64())
		require.Equal(t, r.parcel(t, id).RegisteredAt, events[0].RegistrationTimestamp)
	})
}

func TestTreasuryVerify(t *testing.T) {
	r := newRegistry(t)
	owner := r.e.NewAccount(t).ScriptHash()

	r.treasury.InvokeFail(t, treasuryconst.ErrParcelNotFound, "verifyLandParcel", parcelID, r.authority.ScriptHash())

	r.register(t, parcelID, 500, owner)

	stranger := r.e.NewAccount(t)
	r.e.NewInvoker(r.treasuryHash, stranger).InvokeFail(t, treasuryconst.ErrNotVerifier,
		"verifyLandParcel", parcelID, stranger.ScriptHash())
	r.e.NewInvoker(r.treasuryHash, stranger).InvokeFail(t, common.ErrWitnessFailed,
		"verifyLandParcel", parcelID, r.authority.ScriptHash())

	h := r.treasury.Invoke(t, stackitem.Null{}, "verifyLandParcel", parcelID, r.authority.ScriptHash())
	events, err := treasury.LandParcelVerifiedEventsFromApplicationLog(appLog(t, r.e, h))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, parcelID, events[0].UlpinID)
	require.Equal(t, r.authority.ScriptHash(), events[0].Verifier)

	rec := r.parcel(t, parcelID)
	require.True(t, rec.Verified)
	require.Equal(t, events[0].VerificationTimestamp, rec.VerifiedAt)

	r.e.AddNewBlock(t)

	r.treasury.InvokeFail(t, treasuryconst.ErrAlreadyVerified, "verifyLandParcel", parcelID, r.authority.ScriptHash())
	require.Equal(t, rec.VerifiedAt, r.parcel(t, parcelID).VerifiedAt)
}

func TestTreasuryMint(t *testing.T) {
	r := newRegistry(t)
	owner := r.e.NewAccount(t)

	r.register(t, parcelID, 500, owner.ScriptHash())
	r.treasury.Invoke(t, 105_000, "feeFor", 500)

	payer := r.e.NewInvoker(r.treasuryHash, owner)
	payer.InvokeFail(t, treasuryconst.ErrLandNotVerified, "mintLandNFT", parcelID, "ipfs://parcel", owner.ScriptHash())

	r.verify(t, parcelID)

	payer.InvokeFail(t, treasuryconst.ErrInvalidMetadataURI, "mintLandNFT",
		parcelID, strings.Repeat("u", treasuryconst.MaxMetadataURILength+1), owner.ScriptHash())

	// Fee can't be charged without payer's witness.
	r.treasury.InvokeFail(t, treasuryconst.ErrFeePaymentFailed, "mintLandNFT",
		parcelID, "ipfs://parcel", owner.ScriptHash())

	h := r.mint(t, parcelID, owner)

	r.e.CheckGASBalance(t, r.treasuryHash, big.NewInt(105_000))
	r.treasury.Invoke(t, 105_000, "totalFeesCollected")

	events, err := treasury.NFTMintedEventsFromApplicationLog(appLog(t, r.e, h))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, parcelID, events[0].UlpinID)
	require.Equal(t, owner.ScriptHash(), events[0].Owner)
	require.Equal(t, []byte(parcelID), events[0].TokenId)
	require.Equal(t, "ipfs://parcels/"+parcelID, events[0].MetadataURI)
	require.Equal(t, int64(105_000), events[0].FeePaid.Int64())

	rec := r.parcel(t, parcelID)
	require.True(t, rec.Verified)
	require.True(t, rec.Minted)

	payer.InvokeFail(t, treasuryconst.ErrNFTAlreadyMinted, "mintLandNFT", parcelID, "ipfs://parcel", owner.ScriptHash())
	r.treasury.Invoke(t, 105_000, "totalFeesCollected")

	r.treasury.Invoke(t, 1, "totalSupply")
	r.treasury.Invoke(t, 1, "balanceOf", owner.ScriptHash())
	r.treasury.Invoke(t, owner.ScriptHash(), "ownerOf", parcelID)

	s, err := r.treasury.TestInvoke(t, "tokensOf", owner.ScriptHash())
	require.NoError(t, err)
	tokens := iteratorToArray(s.Pop().Value().(*storage.Iterator))
	require.Equal(t, []stackitem.Item{stackitem.Make(parcelID)}, tokens)

	s, err = r.treasury.TestInvoke(t, "properties", parcelID)
	require.NoError(t, err)
	props := s.Pop().Value().([]stackitem.MapElement)
	found := make(map[string]stackitem.Item, len(props))
	for _, kv := range props {
		k, err := kv.Key.TryBytes()
		require.NoError(t, err)
		found[string(k)] = kv.Value
	}
	require.Equal(t, stackitem.Make(parcelID), found["name"])
	require.Equal(t, stackitem.Make("Haveli"), found["taluka"])
	require.Equal(t, stackitem.Make(false), found["frozen"])

	t.Run("second parcel", func(t *testing.T) {
		r.register(t, "ULPIN-MH-PUNE-0002", 1000, owner.ScriptHash())
		r.verify(t, "ULPIN-MH-PUNE-0002")
		r.mint(t, "ULPIN-MH-PUNE-0002", owner)

		r.treasury.Invoke(t, 105_000+110_000, "totalFeesCollected")
		r.e.CheckGASBalance(t, r.treasuryHash, big.NewInt(105_000+110_000))
		r.treasury.Invoke(t, 2, "balanceOf", owner.ScriptHash())
	})
}

func TestTreasuryMintWitnessScope(t *testing.T) {
	r := newRegistry(t)
	owner := r.e.NewAccount(t)
	gasHash := r.e.NativeHash(t, nativenames.Gas)
	calledByEntry := transaction.Signer{Scopes: transaction.CalledByEntry}

	r.register(t, parcelID, 500, owner.ScriptHash())
	r.verify(t, parcelID)

	// Withdrawal by the contract is not covered by CalledByEntry scope.
	h := invokeWithScope(t, r.e, owner, calledByEntry, r.treasuryHash,
		"mintLandNFT", parcelID, "ipfs://parcel", owner.ScriptHash())
	r.e.CheckFault(t, h, treasuryconst.ErrFeePaymentFailed)

	h = invokeWithScope(t, r.e, owner, calledByEntry, gasHash,
		"transfer", owner.ScriptHash(), r.treasuryHash, 105_000-1, []any{parcelID, "ipfs://parcel"})
	r.e.CheckFault(t, h, treasuryconst.ErrFeeAmountMismatch)

	r.e.CheckGASBalance(t, r.treasuryHash, big.NewInt(0))
	require.False(t, r.parcel(t, parcelID).Minted)

	h = invokeWithScope(t, r.e, owner, calledByEntry, gasHash,
		"transfer", owner.ScriptHash(), r.treasuryHash, 105_000, []any{parcelID, "ipfs://parcel"})
	r.e.CheckHalt(t, h, stackitem.NewBool(true))

	events, err := treasury.NFTMintedEventsFromApplicationLog(appLog(t, r.e, h))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, parcelID, events[0].UlpinID)
	require.Equal(t, owner.ScriptHash(), events[0].Owner)
	require.Equal(t, "ipfs://parcel", events[0].MetadataURI)
	require.Equal(t, int64(105_000), events[0].FeePaid.Int64())

	require.True(t, r.parcel(t, parcelID).Minted)
	r.treasury.Invoke(t, owner.ScriptHash(), "ownerOf", parcelID)
	r.treasury.Invoke(t, 105_000, "totalFeesCollected")
	r.e.CheckGASBalance(t, r.treasuryHash, big.NewInt(105_000))

	h = invokeWithScope(t, r.e, owner, calledByEntry, gasHash,
		"transfer", owner.ScriptHash(), r.treasuryHash, 105_000, []any{parcelID, "ipfs://parcel"})
	r.e.CheckFault(t, h, treasuryconst.ErrNFTAlreadyMinted)

	// Withdrawal works once GAS contract is allowed to check the witness.
	const second = "ULPIN-MH-PUNE-0002"
	r.register(t, second, 1000, owner.ScriptHash())
	r.verify(t, second)

	h = invokeWithScope(t, r.e, owner, transaction.Signer{
		Scopes:           transaction.CustomContracts,
		AllowedContracts: []util.Uint160{gasHash},
	}, r.treasuryHash, "mintLandNFT", second, "ipfs://parcel", owner.ScriptHash())
	r.e.CheckHalt(t, h, stackitem.Null{})

	r.treasury.Invoke(t, 105_000+110_000, "totalFeesCollected")
	r.e.CheckGASBalance(t, r.treasuryHash, big.NewInt(105_000+110_000))
	r.treasury.Invoke(t, 2, "balanceOf", owner.ScriptHash())
}

func TestTreasuryFeeOverflow(t *testing.T) {
	// The largest area with representable fee.
	const maxArea = (common.MaxAmount - treasuryconst.DefaultBaseFee) / treasuryconst.DefaultPerUnitFee

	r := newRegistry(t)
	owner := r.e.NewAccount(t)

	r.treasury.Invoke(t, int64(treasuryconst.DefaultBaseFee+maxArea*treasuryconst.DefaultPerUnitFee),
		"feeFor", int64(maxArea))
	r.treasury.InvokeFail(t, treasuryconst.ErrFeeOverflow, "feeFor", int64(maxArea+1))
	r.treasury.InvokeFail(t, treasuryconst.ErrFeeOverflow, "feeFor", int64(common.MaxAmount))

	// Area over the bound is rejected at registration.
	_, bump, err := pda.LandParcel(r.treasuryHash, []byte(parcelID))
	require.NoError(t, err)
	r.treasury.InvokeFail(t, treasuryconst.ErrInvalidArea, "registerLandParcel",
		parcelID, new(big.Int).Add(big.NewInt(common.MaxAmount), big.NewInt(1)),
		"Pune", "Haveli", "Wagholi", owner.ScriptHash(), int64(bump))

	r.register(t, parcelID, common.MaxAmount, owner.ScriptHash())
	r.verify(t, parcelID)

	r.e.NewInvoker(r.treasuryHash, owner).InvokeFail(t, treasuryconst.ErrFeeOverflow,
		"mintLandNFT", parcelID, "ipfs://parcel", owner.ScriptHash())
	r.e.NewInvoker(r.e.NativeHash(t, nativenames.Gas), owner).InvokeFail(t, treasuryconst.ErrFeeOverflow,
		"transfer", owner.ScriptHash(), r.treasuryHash, 1, []any{parcelID, "ipfs://parcel"})

	require.False(t, r.parcel(t, parcelID).Minted)
	r.treasury.Invoke(t, 0, "totalFeesCollected")
	r.treasury.Invoke(t, 0, "totalSupply")
	r.e.CheckGASBalance(t, r.treasuryHash, big.NewInt(0))
}

func TestTreasuryOnlyGAS(t *testing.T) {
	r := newRegistry(t)

	neoInvoker := r.e.CommitteeInvoker(r.e.NativeHash(t, "NeoToken"))
	// Rejected payments are aborted.
	neoInvoker.InvokeFail(t, "ABORT", "transfer",
		neoInvoker.CommitteeHash, r.treasuryHash, 1, nil)
}

func TestTreasuryUpdateOwnership(t *testing.T) {
	r := newRegistry(t)
	owner := r.e.NewAccount(t)
	newOwner := r.e.NewAccount(t)

	r.register(t, parcelID, 500, owner.ScriptHash())
	r.treasury.InvokeFail(t, treasuryconst.ErrLandNotVerified, "updateLandOwnership", parcelID, newOwner.ScriptHash())

	r.verify(t, parcelID)
	r.treasury.InvokeFail(t, treasuryconst.ErrNFTNotMinted, "updateLandOwnership", parcelID, newOwner.ScriptHash())

	r.mint(t, parcelID, owner)

	r.e.NewInvoker(r.treasuryHash, owner).InvokeFail(t, common.ErrAuthorityWitnessFailed,
		"updateLandOwnership", parcelID, newOwner.ScriptHash())

	h := r.treasury.Invoke(t, stackitem.Null{}, "updateLandOwnership", parcelID, newOwner.ScriptHash())

	events, err := treasury.OwnershipTransferredEventsFromApplicationLog(appLog(t, r.e, h))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, owner.ScriptHash(), events[0].PreviousOwner)
	require.Equal(t, newOwner.ScriptHash(), events[0].NewOwner)

	r.treasury.Invoke(t, newOwner.ScriptHash(), "ownerOf", parcelID)
	r.treasury.Invoke(t, 0, "balanceOf", owner.ScriptHash())
	r.treasury.Invoke(t, 1, "balanceOf", newOwner.ScriptHash())

	rec := r.parcel(t, parcelID)
	require.Equal(t, newOwner.ScriptHash(), rec.Owner)
	require.True(t, rec.Verified)
	require.True(t, rec.Minted)
}

func TestTreasuryNEP11Transfer(t *testing.T) {
	r := newRegistry(t)
	owner := r.tokenize(t, parcelID, 500)
	acc := r.e.NewAccount(t)

	// Only the owner can move the token.
	r.e.NewInvoker(r.treasuryHash, acc).Invoke(t, false, "transfer", acc.ScriptHash(), parcelID, nil)
	r.treasury.Invoke(t, owner.ScriptHash(), "ownerOf", parcelID)

	r.e.NewInvoker(r.treasuryHash, owner).Invoke(t, true, "transfer", acc.ScriptHash(), parcelID, nil)
	r.treasury.Invoke(t, acc.ScriptHash(), "ownerOf", parcelID)
	require.Equal(t, acc.ScriptHash(), r.parcel(t, parcelID).Owner)

	t.Run("to contract", func(t *testing.T) {
		ctr := compileContract(t, r.e, nep11RecvPath)
		r.e.DeployContract(t, ctr, nil)
		recv := r.e.CommitteeInvoker(ctr.Hash)

		recv.Invoke(t, stackitem.Null{}, "setReject", true)
		r.e.NewInvoker(r.treasuryHash, acc).InvokeFail(t, "parcel token rejected",
			"transfer", ctr.Hash, parcelID, nil)
		recv.Invoke(t, stackitem.Null{}, "setReject", false)

		r.e.NewInvoker(r.treasuryHash, acc).Invoke(t, true, "transfer", ctr.Hash, parcelID, "escrow")
		r.treasury.Invoke(t, ctr.Hash, "ownerOf", parcelID)

		s, err := recv.TestInvoke(t, "lastReceipt")
		require.NoError(t, err)
		receipt := s.Pop().Array()
		require.Len(t, receipt, 4)
		for i, expected := range [][]byte{
			r.treasuryHash.BytesBE(),
			acc.ScriptHash().BytesBE(),
			[]byte(parcelID),
			[]byte("escrow"),
		} {
			actual, err := receipt[i].TryBytes()
			require.NoError(t, err)
			require.Equal(t, expected, actual)
		}
	})
}

func TestTreasuryInactive(t *testing.T) {
	r := newRegistry(t)
	owner := r.tokenize(t, parcelID, 500)

	r.e.NewInvoker(r.treasuryHash, owner).InvokeFail(t, common.ErrAuthorityWitnessFailed, "setActive", false)
	r.treasury.Invoke(t, stackitem.Null{}, "setActive", false)

	_, bump, err := pda.LandParcel(r.treasuryHash, []byte("ULPIN-MH-PUNE-0002"))
	require.NoError(t, err)
	r.treasury.InvokeFail(t, treasuryconst.ErrInactive, "registerLandParcel",
		"ULPIN-MH-PUNE-0002", 100, "Pune", "Haveli", "Wagholi", owner.ScriptHash(), int64(bump))
	r.treasury.InvokeFail(t, treasuryconst.ErrInactive, "updateLandOwnership", parcelID, r.authority.ScriptHash())

	// Tokens still move.
	r.e.NewInvoker(r.treasuryHash, owner).Invoke(t, true, "transfer", r.authority.ScriptHash(), parcelID, nil)

	r.treasury.Invoke(t, stackitem.Null{}, "setActive", true)
	r.register(t, "ULPIN-MH-PUNE-0002", 100, owner.ScriptHash())
}

func TestTreasuryParcelAddress(t *testing.T) {
	r := newRegistry(t)

	for _, id := range []string{"A", parcelID, strings.Repeat("Z", treasuryconst.MaxIDLength)} {
		want, bump, err := pda.LandParcel(r.treasuryHash, []byte(id))
		require.NoError(t, err)

		r.treasury.Invoke(t, want.Uint160(), "registerLandParcel",
			id, 1, "", "", "", r.authority.ScriptHash(), int64(bump))
		require.Equal(t, want.Uint160(), r.parcel(t, id).Address)
		require.Equal(t, int64(bump), r.parcel(t, id).Bump.Int64())
	}

	s, err := r.treasury.TestInvoke(t, "getFreezeAuthority")
	require.NoError(t, err)
	var d treasury.TreasuryFreezeDelegate
	require.NoError(t, d.FromStackItem(s.Pop().Item()))
	require.Equal(t, r.freezeHash, d.Contract)

	faddr, _, err := pda.FreezeAuthority(r.freezeHash)
	require.NoError(t, err)
	require.Equal(t, faddr.Uint160(), d.Address)
}

func TestTreasurySetFreezeAuthority(t *testing.T) {
	r := newRegistry(t)

	faddr, fbump, err := pda.FreezeAuthority(r.freezeHash)
	require.NoError(t, err)

	r.treasury.InvokeFail(t, common.ErrForgedAccount, "setFreezeAuthority",
		r.freezeHash, util.Uint160{1, 2, 3}, int64(fbump))
	r.treasury.InvokeFail(t, common.ErrForgedAccount, "setFreezeAuthority",
		r.treasuryHash, faddr.Uint160(), int64(fbump))
	r.e.NewInvoker(r.treasuryHash, r.freezeAuthority).InvokeFail(t, common.ErrAuthorityWitnessFailed,
		"setFreezeAuthority", r.freezeHash, faddr.Uint160(), int64(fbump))

	r.tokenize(t, parcelID, 500)

	// Accounts can't pretend to be the freeze contract.
	r.treasury.InvokeFail(t, treasuryconst.ErrNotFreezeAuthority, "freezeToken",
		parcelID, faddr.Uint160(), int64(fbump), 0, 3600)
	r.treasury.InvokeFail(t, treasuryconst.ErrNotFreezeAuthority, "thawToken",
		parcelID, faddr.Uint160(), int64(fbump))
}
