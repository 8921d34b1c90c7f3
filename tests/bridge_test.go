package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/ulpin-registry/ulpin-contract/common"
	"github.com/ulpin-registry/ulpin-contract/contracts/bridge/bridgeconst"
	"github.com/ulpin-registry/ulpin-contract/pda"
	"github.com/ulpin-registry/ulpin-contract/rpc/bridge"
)

func newBridgeInvoker(t *testing.T) (*neotest.ContractInvoker, neotest.Signer) {
	e := newExecutor(t)
	ctr := compileContract(t, e, bridgePath)
	e.DeployContract(t, ctr, nil)

	authority := e.NewAccount(t)
	c := e.NewInvoker(ctr.Hash, authority)

	addr, bump, err := pda.Bridge(ctr.Hash)
	require.NoError(t, err)
	c.Invoke(t, addr.Uint160(), "initializeBridge", authority.ScriptHash(), int64(bump))

	return c, authority
}

// initiate starts the transfer of the amount signed by the sender.
func initiate(t *testing.T, c *neotest.ContractInvoker, sender neotest.Signer, amount int64) (util.Uint160, util.Uint256) {
	s, err := c.TestInvoke(t, "nextSequence", sender.ScriptHash())
	require.NoError(t, err)
	seq, err := s.Pop().Item().TryInteger()
	require.NoError(t, err)

	addr, bump, err := pda.Transfer(c.Hash, sender.ScriptHash(), seq.Uint64())
	require.NoError(t, err)

	h := c.WithSigners(sender).Invoke(t, addr.Uint160(), "crossChainTransfer", sender.ScriptHash(), amount, int64(bump))
	return addr.Uint160(), h
}

func getTransfer(t *testing.T, c *neotest.ContractInvoker, id util.Uint160) *bridge.BridgeTransfer {
	s, err := c.TestInvoke(t, "getTransfer", id)
	require.NoError(t, err)

	tr := new(bridge.BridgeTransfer)
	require.NoError(t, tr.FromStackItem(s.Pop().Item()))
	return tr
}

func TestBridgeInitialize(t *testing.T) {
	c, authority := newBridgeInvoker(t)

	_, bump, err := pda.Bridge(c.Hash)
	require.NoError(t, err)
	c.InvokeFail(t, bridgeconst.ErrAlreadyInitialized, "initializeBridge", authority.ScriptHash(), int64(bump))

	s, err := c.TestInvoke(t, "getBridge")
	require.NoError(t, err)
	var st bridge.BridgeState
	require.NoError(t, st.FromStackItem(s.Pop().Item()))
	require.Equal(t, authority.ScriptHash(), st.Authority)
	require.Zero(t, st.TotalTransfers.Sign())
	require.True(t, st.Active)

	c.Invoke(t, common.Version, "version")
}

func TestBridgeLifecycle(t *testing.T) {
	c, _ := newBridgeInvoker(t)
	sender := c.NewAccount(t)

	id, h := initiate(t, c, sender, 50)

	initiated, err := bridge.CrossChainTransferInitiatedEventsFromApplicationLog(appLog(t, c.Executor, h))
	require.NoError(t, err)
	require.Len(t, initiated, 1)
	require.Equal(t, int64(50), initiated[0].Amount.Int64())
	require.Equal(t, sender.ScriptHash(), initiated[0].Sender)
	require.Equal(t, id, initiated[0].TransferID)

	tr := getTransfer(t, c, id)
	require.Equal(t, int64(50), tr.Amount.Int64())
	require.Equal(t, sender.ScriptHash(), tr.Sender)
	require.Equal(t, int64(bridgeconst.Pending), tr.Status.Int64())
	require.Zero(t, tr.ConfirmedAt.Sign())
	require.Equal(t, id, tr.Address)
	c.Invoke(t, 1, "totalTransfers")

	c.WithSigners(sender).InvokeFail(t, common.ErrAuthorityWitnessFailed, "confirmTransfer", id)

	h = c.Invoke(t, stackitem.Null{}, "confirmTransfer", id)
	completed, err := bridge.CrossChainTransferCompletedEventsFromApplicationLog(appLog(t, c.Executor, h))
	require.NoError(t, err)
	require.Len(t, completed, 1)
	require.Equal(t, id, completed[0].TransferID)

	tr = getTransfer(t, c, id)
	require.Equal(t, int64(bridgeconst.Completed), tr.Status.Int64())
	require.Equal(t, completed[0].CompletionTimestamp, tr.ConfirmedAt)

	c.InvokeFail(t, bridgeconst.ErrTransferNotPending, "confirmTransfer", id)
}

func TestBridgeTransferValidation(t *testing.T) {
	c, _ := newBridgeInvoker(t)
	sender := c.NewAccount(t)

	addr, bump, err := pda.Transfer(c.Hash, sender.ScriptHash(), 0)
	require.NoError(t, err)

	for _, amount := range []int64{0, -50} {
		c.WithSigners(sender).InvokeFail(t, bridgeconst.ErrInvalidAmount,
			"crossChainTransfer", sender.ScriptHash(), amount, int64(bump))
	}
	c.InvokeFail(t, common.ErrOwnerWitnessFailed,
		"crossChainTransfer", sender.ScriptHash(), 50, int64(bump))
	c.Invoke(t, 0, "totalTransfers")
	c.Invoke(t, 0, "nextSequence", sender.ScriptHash())

	c.InvokeFail(t, bridgeconst.ErrTransferNotFound, "getTransfer", addr.Uint160())
	c.InvokeFail(t, bridgeconst.ErrTransferNotFound, "confirmTransfer", addr.Uint160())
	c.InvokeFail(t, bridgeconst.ErrTransferNotFound, "getTransfer", []byte{1, 2, 3})
}

func TestBridgeConcurrentTransfers(t *testing.T) {
	c, _ := newBridgeInvoker(t)
	alice, bob := c.NewAccount(t), c.NewAccount(t)

	a1, _ := initiate(t, c, alice, 10)
	a2, _ := initiate(t, c, alice, 20)
	b1, _ := initiate(t, c, bob, 30)

	require.NotEqual(t, a1, a2)
	require.NotEqual(t, a1, b1)
	c.Invoke(t, 3, "totalTransfers")
	c.Invoke(t, 2, "nextSequence", alice.ScriptHash())
	c.Invoke(t, 1, "nextSequence", bob.ScriptHash())

	require.Equal(t, int64(1), getTransfer(t, c, a2).Sequence.Int64())

	// Completing one transfer doesn't touch others of the same sender.
	c.Invoke(t, stackitem.Null{}, "confirmTransfer", a2)
	require.Equal(t, int64(bridgeconst.Pending), getTransfer(t, c, a1).Status.Int64())
	require.Equal(t, int64(bridgeconst.Completed), getTransfer(t, c, a2).Status.Int64())
}

func TestBridgeInactive(t *testing.T) {
	c, _ := newBridgeInvoker(t)
	sender := c.NewAccount(t)

	id, _ := initiate(t, c, sender, 50)

	c.Invoke(t, stackitem.Null{}, "setActive", false)

	_, bump, err := pda.Transfer(c.Hash, sender.ScriptHash(), 1)
	require.NoError(t, err)
	c.WithSigners(sender).InvokeFail(t, bridgeconst.ErrInactive,
		"crossChainTransfer", sender.ScriptHash(), 50, int64(bump))

	// Pending transfers are still confirmed.
	c.Invoke(t, stackitem.Null{}, "confirmTransfer", id)
}
