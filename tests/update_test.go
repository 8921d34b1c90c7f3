package tests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ulpin-registry/ulpin-contract/common"
)

func TestContractUpdate(t *testing.T) {
	e := newExecutor(t)

	for _, tc := range []struct {
		name string
		path string
		data any
	}{
		{name: "treasury", path: treasuryPath},
		{name: "freeze", path: freezePath, data: []any{e.CommitteeHash}},
		{name: "bridge", path: bridgePath},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctr := compileContract(t, e, tc.path)
			e.DeployContract(t, ctr, tc.data)

			rawNef, err := ctr.NEF.Bytes()
			require.NoError(t, err)
			rawManifest, err := json.Marshal(ctr.Manifest)
			require.NoError(t, err)

			e.NewInvoker(ctr.Hash, e.NewAccount(t)).InvokeFail(t, common.ErrUpdateAccessDenied,
				"update", rawNef, rawManifest, nil)

			// Update reaches _deploy which rejects migration to the same version.
			e.CommitteeInvoker(ctr.Hash).InvokeFail(t, common.ErrAlreadyUpdated,
				"update", rawNef, rawManifest, nil)

			e.CommitteeInvoker(ctr.Hash).Invoke(t, common.Version, "version")
		})
	}
}
