package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/ulpin-registry/ulpin-contract/pda"
	"github.com/ulpin-registry/ulpin-contract/rpc/treasury"
)

const (
	treasuryPath  = "../contracts/treasury"
	freezePath    = "../contracts/freeze"
	bridgePath    = "../contracts/bridge"
	nep11RecvPath = "../internal/testcontracts/nep11recv"
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// iteratorToArray drains the iterator returned by a test invocation.
func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	var res []stackitem.Item
	for iter.Next() {
		res = append(res, iter.Value())
	}
	return res
}

func compileContract(t testing.TB, e *neotest.Executor, ctrPath string) *neotest.Contract {
	return neotest.CompileFile(t, e.CommitteeHash, ctrPath, path.Join(ctrPath, "config.yml"))
}

// registry is a deployed and initialized Treasury with Freeze wired to it.
type registry struct {
	e *neotest.Executor

	authority       neotest.Signer
	freezeAuthority neotest.Signer

	treasuryHash util.Uint160
	freezeHash   util.Uint160

	// Invokers signed by the corresponding authorities.
	treasury *neotest.ContractInvoker
	freeze   *neotest.ContractInvoker
}

func newRegistry(t *testing.T) *registry {
	e := newExecutor(t)

	trCtr := compileContract(t, e, treasuryPath)
	e.DeployContract(t, trCtr, nil)

	frCtr := compileContract(t, e, freezePath)
	e.DeployContract(t, frCtr, []any{trCtr.Hash})

	r := &registry{
		e:               e,
		authority:       e.NewAccount(t),
		freezeAuthority: e.NewAccount(t),
		treasuryHash:    trCtr.Hash,
		freezeHash:      frCtr.Hash,
	}
	r.treasury = e.NewInvoker(r.treasuryHash, r.authority)
	r.freeze = e.NewInvoker(r.freezeHash, r.freezeAuthority)

	addr, bump, err := pda.Treasury(r.treasuryHash)
	require.NoError(t, err)
	r.treasury.Invoke(t, addr.Uint160(), "initialize", r.authority.ScriptHash(), int64(bump))

	faddr, fbump, err := pda.FreezeAuthority(r.freezeHash)
	require.NoError(t, err)
	r.freeze.Invoke(t, faddr.Uint160(), "initializeFreezeAuthority", r.freezeAuthority.ScriptHash(), int64(fbump))
	r.treasury.Invoke(t, stackitem.Null{}, "setFreezeAuthority", r.freezeHash, faddr.Uint160(), int64(fbump))

	return r
}

func (r *registry) register(t *testing.T, id string, area int64, owner util.Uint160) pda.Address {
	addr, bump, err := pda.LandParcel(r.treasuryHash, []byte(id))
	require.NoError(t, err)
	r.treasury.Invoke(t, addr.Uint160(), "registerLandParcel",
		id, area, "Pune", "Haveli", "Wagholi", owner, int64(bump))
	return addr
}

func (r *registry) verify(t *testing.T, id string) {
	r.treasury.Invoke(t, stackitem.Null{}, "verifyLandParcel", id, r.authority.ScriptHash())
}

// mint pays the fee by the payer account.
func (r *registry) mint(t *testing.T, id string, payer neotest.Signer) util.Uint256 {
	return r.e.NewInvoker(r.treasuryHash, payer).Invoke(t, stackitem.Null{}, "mintLandNFT",
		id, "ipfs://parcels/"+id, payer.ScriptHash())
}

// tokenize registers, verifies and mints parcel owned by a new account.
func (r *registry) tokenize(t *testing.T, id string, area int64) neotest.Signer {
	owner := r.e.NewAccount(t)
	r.register(t, id, area, owner.ScriptHash())
	r.verify(t, id)
	r.mint(t, id, owner)
	return owner
}

func (r *registry) parcel(t *testing.T, id string) *treasury.LandParcelRecord {
	s, err := r.treasury.TestInvoke(t, "getParcel", id)
	require.NoError(t, err)

	rec := new(treasury.LandParcelRecord)
	require.NoError(t, rec.FromStackItem(s.Pop().Item()))
	return rec
}

// appLog wraps transaction execution result to be parsed by RPC bindings.
func appLog(t *testing.T, e *neotest.Executor, h util.Uint256) *result.ApplicationLog {
	aer := e.GetTxExecResult(t, h)
	return &result.ApplicationLog{
		Container:     h,
		IsTransaction: true,
		Executions:    []state.Execution{aer.Execution},
	}
}

// invokeWithScope persists transaction calling the method signed by the
// signer account with the given witness scope. Executor signs with Global
// scope only.
func invokeWithScope(t *testing.T, e *neotest.Executor, signer neotest.Signer, scope transaction.Signer,
	hash util.Uint160, method string, args ...any) util.Uint256 {
	scope.Account = signer.ScriptHash()

	tx := e.NewUnsignedTx(t, hash, method, args...)
	tx.Signers = []transaction.Signer{scope}
	neotest.AddNetworkFee(e.Chain, tx, signer)
	neotest.AddSystemFee(e.Chain, tx, -1)
	require.NoError(t, signer.SignTx(e.Chain.GetConfig().Magic, tx))

	e.AddNewBlock(t, tx)
	return tx.Hash()
}
