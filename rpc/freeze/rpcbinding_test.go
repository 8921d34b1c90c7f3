package freeze

import (
	"errors"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func TestReader(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.IsFrozen([]byte("ULPIN-MH-001"))
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.Make(true)}}
	frozen, err := r.IsFrozen([]byte("ULPIN-MH-001"))
	require.NoError(t, err)
	require.True(t, frozen)

	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{
		stackitem.NewStruct([]stackitem.Item{
			stackitem.Make(util.Uint160{1}),
			stackitem.Make(util.Uint160{2}),
			stackitem.Make(util.Uint160{3}),
			stackitem.Make(253),
		}),
	}}
	s, err := r.GetFreezeAuthority()
	require.NoError(t, err)
	require.Equal(t, util.Uint160{2}, s.Treasury)
	require.Equal(t, int64(253), s.Bump.Int64())
}

func TestEvents(t *testing.T) {
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					Name: "NFTFrozen",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make("ULPIN-MH-001"),
						stackitem.Make([]byte("ULPIN-MH-001")),
						stackitem.Make(3600),
					}),
				},
				{
					Name: "NFTThawed",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make("ULPIN-MH-001"),
						stackitem.Make([]byte("ULPIN-MH-001")),
					}),
				},
			},
		}},
	}

	frozen, err := NFTFrozenEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, frozen, 1)
	require.Equal(t, int64(3600), frozen[0].FreezeDuration.Int64())

	thawed, err := NFTThawedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, thawed, 1)
	require.Equal(t, []byte("ULPIN-MH-001"), thawed[0].TokenId)

	log.Executions[0].Events[1].Item = stackitem.NewArray([]stackitem.Item{stackitem.Make([]byte{0xff})})
	_, err = NFTThawedEventsFromApplicationLog(log)
	require.Error(t, err)
}
