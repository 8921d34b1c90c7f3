package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/ulpin-registry/ulpin-contract/contracts"
	"github.com/ulpin-registry/ulpin-contract/deploy"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// deployConfig reads configuration file if any and overrides its values with
// explicitly set flags.
func deployConfig(c *cli.Context) (*deploy.Config, error) {
	var cfg = &deploy.Config{
		DialTimeout:  deploy.DefaultDialTimeout,
		Timeout:      deploy.DefaultTimeout,
		PollInterval: deploy.DefaultPollInterval,
		Contracts:    "out",
	}

	if p := c.String("config"); p != "" {
		var err error
		cfg, err = deploy.LoadConfig(p)
		if err != nil {
			return nil, err
		}
	}

	if s := c.String("rpc"); s != "" {
		cfg.Endpoint = s
	}
	if s := c.String("wallet"); s != "" {
		cfg.Wallet.Path = s
	}
	if s := c.String("password"); s != "" {
		cfg.Wallet.Password = s
	}
	if s := c.String("contracts"); s != "" {
		cfg.Contracts = s
	}

	switch {
	case cfg.Endpoint == "":
		return nil, errors.New("missing Neo RPC endpoint")
	case cfg.Wallet.Path == "":
		return nil, errors.New("missing wallet")
	}

	return cfg, nil
}

func openAccount(cfg deploy.WalletConfig) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var acc *wallet.Account
	if cfg.Address != "" {
		h, err := address.StringToUint160(cfg.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid account address: %w", err)
		}
		acc = w.GetAccount(h)
		if acc == nil {
			return nil, fmt.Errorf("account %s is missing in the wallet", cfg.Address)
		}
	} else {
		if len(w.Accounts) == 0 {
			return nil, errors.New("wallet has no accounts")
		}
		acc = w.Accounts[0]
	}

	if err := acc.Decrypt(cfg.Password, w.Scrypt); err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

func runDeploy(c *cli.Context) error {
	cfg, err := deployConfig(c)
	if err != nil {
		return err
	}

	log, err := newLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	acc, err := openAccount(cfg.Wallet)
	if err != nil {
		return err
	}

	cs, err := contracts.Read(os.DirFS(cfg.Contracts))
	if err != nil {
		return fmt.Errorf("read compiled contracts: %w", err)
	}

	rpc, err := dial(cfg.Endpoint, cfg.DialTimeout)
	if err != nil {
		return err
	}
	defer rpc.Close()

	prm := deploy.Prm{
		Logger:       log,
		Blockchain:   rpc,
		LocalAccount: acc,
		PollInterval: cfg.PollInterval,
	}
	// see contracts.Dirs
	for i, p := range []*deploy.CommonDeployPrm{&prm.Treasury, &prm.Freeze, &prm.Bridge} {
		p.NEF, p.Manifest = cs[i].NEF, cs[i].Manifest
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	log.Info("deploying registry...", zap.String("account", acc.Address))

	res, err := deploy.Deploy(ctx, prm)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Treasury: %s (state %s)\n", res.Treasury.StringLE(), res.TreasuryState.StringLE())
	fmt.Fprintf(w, "Freeze:   %s (state %s)\n", res.Freeze.StringLE(), res.FreezeState.StringLE())
	fmt.Fprintf(w, "Bridge:   %s (state %s)\n", res.Bridge.StringLE(), res.BridgeState.StringLE())

	return nil
}
