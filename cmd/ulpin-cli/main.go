package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/ulpin-registry/ulpin-contract/common"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	rpcFlag = cli.StringFlag{
		Name:   "rpc, r",
		EnvVar: "ULPIN_RPC",
		Usage:  "network address of the Neo RPC server `URL`",
	}
	treasuryFlag = cli.StringFlag{
		Name:  "treasury",
		Usage: "Treasury contract `HASH` or address",
	}
	freezeFlag = cli.StringFlag{
		Name:  "freeze",
		Usage: "Freeze contract `HASH` or address",
	}
	bridgeFlag = cli.StringFlag{
		Name:  "bridge",
		Usage: "Bridge contract `HASH` or address",
	}
	dbFlag = cli.StringFlag{
		Name:  "db",
		Value: "snapshots",
		Usage: "snapshot database `DIR`",
	}
)

func newApp(w, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "ulpin-cli"
	app.Usage = "ULPIN land registry contracts tool"
	app.Version = fmt.Sprintf("%d.%d.%d", common.Version/1_000_000, common.Version/1_000%1_000, common.Version%1_000)
	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "enable debug logging",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "compile",
			Usage: "compile contracts into NEF and manifest files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "src",
					Value: "contracts",
					Usage: "directory with contract sources `DIR`",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "out",
					Usage: "output `DIR`",
				},
			},
			Action: runCompile,
		},
		{
			Name:      "derive",
			Usage:     "derive canonical contract-owned address",
			ArgsUsage: "treasury|freeze|bridge|parcel|transfer",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "program, p",
					Usage: "owning contract `HASH` or address",
				},
				cli.StringFlag{
					Name:  "id",
					Usage: "parcel `ULPIN_ID`",
				},
				cli.StringFlag{
					Name:  "sender",
					Usage: "transfer sender `HASH` or address",
				},
				cli.Uint64Flag{
					Name:  "seq",
					Usage: "transfer sequence `NUMBER`",
				},
			},
			Action: runDerive,
		},
		{
			Name:  "deploy",
			Usage: "deploy and initialize the registry",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Usage: "deployment configuration `FILE`",
				},
				rpcFlag,
				cli.StringFlag{
					Name:   "wallet, w",
					EnvVar: "ULPIN_WALLET",
					Usage:  "wallet `FILE` of the deploying account",
				},
				cli.StringFlag{
					Name:   "password",
					EnvVar: "ULPIN_WALLET_PASSWORD",
					Usage:  "wallet account `PASSWORD`",
				},
				cli.StringFlag{
					Name:  "contracts",
					Usage: "directory with compiled contracts `DIR`",
				},
			},
			Action: runDeploy,
		},
		{
			Name:  "snapshot",
			Usage: "save registry contract states and storages",
			Flags: []cli.Flag{
				rpcFlag,
				dbFlag,
				cli.StringFlag{
					Name:  "label, l",
					Usage: "label of the blockchain environment (e.g. 'testnet') `LABEL`",
				},
				treasuryFlag,
				freezeFlag,
				bridgeFlag,
				cli.StringFlag{
					Name:  "metrics",
					Usage: "write Prometheus metrics to the text `FILE`",
				},
			},
			Action: runSnapshot,
		},
		{
			Name:  "snapshots",
			Usage: "list saved snapshots",
			Flags: []cli.Flag{
				dbFlag,
			},
			Action: runListSnapshots,
		},
		{
			Name:      "events",
			Usage:     "print registry notifications of the transaction",
			ArgsUsage: "TXID",
			Flags: []cli.Flag{
				rpcFlag,
				treasuryFlag,
				freezeFlag,
				bridgeFlag,
				cli.StringFlag{
					Name:  "db",
					Usage: "also save notifications into the snapshot database `DIR`",
				},
			},
			Action: runEvents,
		},
		{
			Name:      "parcel",
			Usage:     "print land parcel record",
			ArgsUsage: "ULPIN_ID",
			Flags: []cli.Flag{
				rpcFlag,
				treasuryFlag,
			},
			Action: runParcel,
		},
	}

	return app
}

func newLogger(c *cli.Context) (*zap.Logger, error) {
	if c.GlobalBool("debug") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// parseHash decodes script hash from the little-endian hex string or Neo
// address.
func parseHash(s string) (util.Uint160, error) {
	if h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x")); err == nil {
		return h, nil
	}

	h, err := address.StringToUint160(s)
	if err != nil {
		return h, fmt.Errorf("'%s' is neither hex script hash nor address", s)
	}
	return h, nil
}

func hashFlag(c *cli.Context, name string) (util.Uint160, error) {
	s := c.String(name)
	if s == "" {
		return util.Uint160{}, fmt.Errorf("missing --%s", name)
	}

	h, err := parseHash(s)
	if err != nil {
		return h, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return h, nil
}

func requireRPC(c *cli.Context) (string, error) {
	endpoint := c.String("rpc")
	if endpoint == "" {
		return "", errors.New("missing Neo RPC endpoint")
	}
	return endpoint, nil
}
