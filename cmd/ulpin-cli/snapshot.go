package main

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ulpin-registry/ulpin-contract/snapshot"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// registry contract names used in snapshots.
var snapshotContracts = []string{"treasury", "freeze", "bridge"}

func runSnapshot(c *cli.Context) error {
	endpoint, err := requireRPC(c)
	if err != nil {
		return err
	}

	label := c.String("label")
	if label == "" {
		return errors.New("missing blockchain label")
	}

	hashes := make(map[string]util.Uint160, len(snapshotContracts))
	for _, name := range snapshotContracts {
		if c.String(name) == "" {
			continue
		}
		if hashes[name], err = hashFlag(c, name); err != nil {
			return err
		}
	}
	if len(hashes) == 0 {
		return errors.New("no contracts to snapshot")
	}

	log, err := newLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()

	s, err := snapshot.Open(c.String("db"), snapshot.NewMetrics(reg))
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	b, err := newRemoteBlockChain(endpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}
	defer b.close()

	id := snapshot.ID{Label: label, Block: b.currentBlock}

	imp, err := s.NewImport(id)
	if err != nil {
		return fmt.Errorf("init snapshot: %w", err)
	}
	defer imp.Abort()

	for _, name := range snapshotContracts {
		h, ok := hashes[name]
		if !ok {
			continue
		}

		log.Info("processing contract...", zap.String("name", name), zap.Stringer("address", h))

		st, err := b.contractState(h)
		if err != nil {
			return fmt.Errorf("get '%s' contract state: %w", name, err)
		}

		w, err := imp.AddContract(name, st)
		if err != nil {
			return err
		}

		err = b.iterateContractStorage(h, w.Write)
		if err != nil {
			return fmt.Errorf("iterate '%s' contract storage: %w", name, err)
		}
	}

	if err := imp.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}

	if p := c.String("metrics"); p != "" {
		if err := prometheus.WriteToTextfile(p, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	fmt.Fprintf(c.App.Writer, "Registry snapshot %s is saved to '%s'\n", id, c.String("db"))

	return nil
}

func runListSnapshots(c *cli.Context) error {
	s, err := snapshot.Open(c.String("db"), nil)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	ids, err := s.Snapshots()
	if err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Fprintln(c.App.Writer, id)
	}

	return nil
}
