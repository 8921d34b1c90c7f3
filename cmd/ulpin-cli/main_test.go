package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/ulpin-registry/ulpin-contract/contracts"
	"github.com/ulpin-registry/ulpin-contract/contracts/treasury/treasuryconst"
	"github.com/ulpin-registry/ulpin-contract/pda"
	"github.com/ulpin-registry/ulpin-contract/rpc/treasury"
)

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	err := newApp(&out, &out).Run(append([]string{"ulpin-cli"}, args...))
	return out.String(), err
}

func TestParseHash(t *testing.T) {
	h := util.Uint160{1, 2, 3}

	for _, s := range []string{h.StringLE(), "0x" + h.StringLE(), address.Uint160ToString(h)} {
		res, err := parseHash(s)
		require.NoError(t, err, s)
		require.Equal(t, h, res, s)
	}

	_, err := parseHash("not a hash")
	require.Error(t, err)
}

func TestDerive(t *testing.T) {
	program := util.Uint160{0xde, 0xad}

	t.Run("treasury", func(t *testing.T) {
		out, err := run(t, "derive", "--program", program.StringLE(), "treasury")
		require.NoError(t, err)

		addr, bump, err := pda.Treasury(program)
		require.NoError(t, err)
		require.Contains(t, out, addr.String())
		require.Contains(t, out, addr.NeoAddress())
		require.Contains(t, out, fmt.Sprintf("Bump:        %d\n", bump))
	})

	t.Run("parcel", func(t *testing.T) {
		out, err := run(t, "derive", "-p", program.StringLE(), "--id", "ULPIN-MH-PUNE-0001", "parcel")
		require.NoError(t, err)

		addr, _, err := pda.LandParcel(program, []byte("ULPIN-MH-PUNE-0001"))
		require.NoError(t, err)
		require.Contains(t, out, addr.Uint160().StringLE())
	})

	t.Run("transfer", func(t *testing.T) {
		sender := util.Uint160{0xbe, 0xef}
		out, err := run(t, "derive", "-p", program.StringLE(),
			"--sender", address.Uint160ToString(sender), "--seq", "7", "transfer")
		require.NoError(t, err)

		addr, _, err := pda.Transfer(program, sender, 7)
		require.NoError(t, err)
		require.Contains(t, out, addr.String())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := run(t, "derive", "treasury")
		require.ErrorContains(t, err, "--program")

		_, err = run(t, "derive", "-p", program.StringLE())
		require.Error(t, err)

		_, err = run(t, "derive", "-p", program.StringLE(), "vault")
		require.ErrorContains(t, err, "unknown address kind")

		_, err = run(t, "derive", "-p", program.StringLE(), "parcel")
		require.ErrorContains(t, err, "--id")

		_, err = run(t, "derive", "-p", program.StringLE(), "--id", strings.Repeat("x", 65), "parcel")
		require.ErrorIs(t, err, pda.ErrInvalidParcelID)

		_, err = run(t, "derive", "-p", program.StringLE(), "transfer")
		require.ErrorContains(t, err, "--sender")
	})
}

func TestCompile(t *testing.T) {
	out := t.TempDir()

	stdout, err := run(t, "compile", "--src", filepath.Join("..", "..", "contracts"), "--out", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "ULPIN Treasury")

	cs, err := contracts.Read(os.DirFS(out))
	require.NoError(t, err)
	require.Len(t, cs, len(contracts.Dirs))
	require.Equal(t, "ULPIN Bridge", cs[2].Manifest.Name)
}

func TestMissingRPC(t *testing.T) {
	t.Setenv("ULPIN_RPC", "")

	_, err := run(t, "snapshot", "--label", "testnet")
	require.ErrorContains(t, err, "RPC")

	_, err = run(t, "parcel", "ULPIN-MH-PUNE-0001")
	require.ErrorContains(t, err, "RPC")

	_, err = run(t, "deploy", "--wallet", "wallet.json")
	require.ErrorContains(t, err, "RPC")
}

func TestPrintEvents(t *testing.T) {
	treasuryHash, bridgeHash := util.Uint160{1}, util.Uint160{3}
	owner := util.Uint160{0xaa}

	log := &result.ApplicationLog{
		Container: util.Uint256{0xff},
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					ScriptHash: treasuryHash,
					Name:       "OwnershipTransferred",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make("ULPIN-MH-PUNE-0001"),
						stackitem.Make(util.Uint160{0xbb}),
						stackitem.Make(owner),
						stackitem.Make(1700000000),
					}),
				},
				{
					// Same name from a foreign contract is ignored.
					ScriptHash: util.Uint160{0x99},
					Name:       "OwnershipTransferred",
					Item:       stackitem.NewArray([]stackitem.Item{stackitem.Make(1)}),
				},
				{
					ScriptHash: bridgeHash,
					Name:       "CrossChainTransferCompleted",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(util.Uint160{0xcc}),
						stackitem.Make(1700000100),
					}),
				},
			},
		}},
	}

	var out bytes.Buffer
	err := printEvents(&out, log, map[util.Uint160]eventDecoder{
		treasuryHash: treasuryEvents,
		bridgeHash:   bridgeEvents,
	})
	require.NoError(t, err)

	var decoded map[string][]map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded["OwnershipTransferred"], 1)
	require.Equal(t, "ULPIN-MH-PUNE-0001", decoded["OwnershipTransferred"][0]["UlpinID"])
	require.Len(t, decoded["CrossChainTransferCompleted"], 1)
	require.NotContains(t, decoded, "NFTMinted")
}

func TestPrintParcel(t *testing.T) {
	id, err := pda.PadParcelID([]byte("ULPIN-MH-PUNE-0001"))
	require.NoError(t, err)
	label := func(s string) []byte {
		b := make([]byte, treasuryconst.MaxLabelLength)
		copy(b, s)
		return b
	}

	var out bytes.Buffer
	printParcel(&out, &treasury.LandParcelRecord{
		ID:             id,
		Area:           big.NewInt(500),
		District:       label("Pune"),
		Taluka:         label("Haveli"),
		Village:        label("Wagholi"),
		Owner:          util.Uint160{0xaa},
		Verified:       true,
		Minted:         true,
		RegisteredAt:   big.NewInt(1700000000),
		VerifiedAt:     big.NewInt(0),
		FreezeStart:    big.NewInt(0),
		FreezeDuration: big.NewInt(0),
		Address:        util.Uint160{0xbb},
		Bump:           big.NewInt(254),
	})

	require.NotContains(t, out.String(), "\x00")
	require.Contains(t, out.String(), "ULPIN ID:    ULPIN-MH-PUNE-0001\n")
	require.Contains(t, out.String(), "Location:    Pune / Haveli / Wagholi\n")
	require.Contains(t, out.String(), "Registered:  2023-11-14T22:13:20Z\n")
	require.Contains(t, out.String(), "Verified:    true (-)\n")
}
