package bridge

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	res    *result.Invoke
	params []any
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	t.params = params
	return t.res, nil
}

func TestGetTransfer(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	sender, id := util.Uint160{0x0a}, util.Uint160{0x0b}
	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{
		stackitem.NewStruct([]stackitem.Item{
			stackitem.Make(50),
			stackitem.Make(sender),
			stackitem.Make(0),
			stackitem.Make(1700000000),
			stackitem.Make(1),
			stackitem.Make(1700000060),
			stackitem.Make(id),
			stackitem.Make(255),
		}),
	}}
	tr, err := r.GetTransfer(id)
	require.NoError(t, err)
	require.Equal(t, []any{id}, ti.params)
	require.Equal(t, int64(50), tr.Amount.Int64())
	require.Equal(t, sender, tr.Sender)
	require.Equal(t, int64(1), tr.Status.Int64())
	require.Equal(t, id, tr.Address)

	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.Make(1)}}
	_, err = r.GetTransfer(id)
	require.Error(t, err)
}

func TestEvents(t *testing.T) {
	sender, id := util.Uint160{0x0a}, util.Uint160{0x0b}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					Name: "CrossChainTransferInitiated",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(50),
						stackitem.Make(sender),
						stackitem.Make(id),
					}),
				},
				{
					Name: "CrossChainTransferCompleted",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(id),
						stackitem.Make(1700000060),
					}),
				},
			},
		}},
	}

	initiated, err := CrossChainTransferInitiatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, initiated, 1)
	require.Equal(t, id, initiated[0].TransferID)

	completed, err := CrossChainTransferCompletedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	require.Equal(t, int64(1700000060), completed[0].CompletionTimestamp.Int64())
}
