package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/ulpin-registry/ulpin-contract/rpc/bridge"
	"github.com/ulpin-registry/ulpin-contract/rpc/freeze"
	"github.com/ulpin-registry/ulpin-contract/rpc/treasury"
	"github.com/ulpin-registry/ulpin-contract/snapshot"
	"github.com/urfave/cli"
)

// eventDecoder decodes notifications of the particular contract.
type eventDecoder func(*result.ApplicationLog) (map[string]any, error)

func treasuryEvents(log *result.ApplicationLog) (map[string]any, error) {
	res := make(map[string]any)

	registered, err := treasury.LandParcelRegisteredEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	verified, err := treasury.LandParcelVerifiedEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	minted, err := treasury.NFTMintedEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	transferred, err := treasury.OwnershipTransferredEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}

	addEvents(res, "LandParcelRegistered", registered)
	addEvents(res, "LandParcelVerified", verified)
	addEvents(res, "NFTMinted", minted)
	addEvents(res, "OwnershipTransferred", transferred)

	return res, nil
}

func freezeEvents(log *result.ApplicationLog) (map[string]any, error) {
	res := make(map[string]any)

	frozen, err := freeze.NFTFrozenEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	thawed, err := freeze.NFTThawedEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}

	addEvents(res, "NFTFrozen", frozen)
	addEvents(res, "NFTThawed", thawed)

	return res, nil
}

func bridgeEvents(log *result.ApplicationLog) (map[string]any, error) {
	res := make(map[string]any)

	initiated, err := bridge.CrossChainTransferInitiatedEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	completed, err := bridge.CrossChainTransferCompletedEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}

	addEvents(res, "CrossChainTransferInitiated", initiated)
	addEvents(res, "CrossChainTransferCompleted", completed)

	return res, nil
}

func addEvents[T any](m map[string]any, name string, events []*T) {
	if len(events) > 0 {
		m[name] = events
	}
}

// contractLog returns copy of the log with notifications of the given contract
// only.
func contractLog(log *result.ApplicationLog, h util.Uint160) *result.ApplicationLog {
	res := &result.ApplicationLog{
		Container:     log.Container,
		IsTransaction: log.IsTransaction,
		Executions:    make([]state.Execution, len(log.Executions)),
	}

	for i, ex := range log.Executions {
		res.Executions[i] = ex
		res.Executions[i].Events = nil
		for _, ev := range ex.Events {
			if ev.ScriptHash.Equals(h) {
				res.Executions[i].Events = append(res.Executions[i].Events, ev)
			}
		}
	}

	return res
}

func printEvents(w io.Writer, log *result.ApplicationLog, decoders map[util.Uint160]eventDecoder) error {
	out := make(map[string]any)

	for h, decode := range decoders {
		events, err := decode(contractLog(log, h))
		if err != nil {
			return fmt.Errorf("decode notifications of %s: %w", h.StringLE(), err)
		}
		for name, v := range events {
			out[name] = v
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runEvents(c *cli.Context) error {
	endpoint, err := requireRPC(c)
	if err != nil {
		return err
	}

	if c.NArg() != 1 {
		return errors.New("exactly one transaction ID is expected")
	}

	txID, err := util.Uint256DecodeStringLE(strings.TrimPrefix(c.Args().First(), "0x"))
	if err != nil {
		return fmt.Errorf("invalid transaction ID: %w", err)
	}

	decoders := make(map[util.Uint160]eventDecoder)
	for name, decode := range map[string]eventDecoder{
		"treasury": treasuryEvents,
		"freeze":   freezeEvents,
		"bridge":   bridgeEvents,
	} {
		if c.String(name) == "" {
			continue
		}
		h, err := hashFlag(c, name)
		if err != nil {
			return err
		}
		decoders[h] = decode
	}
	if len(decoders) == 0 {
		return errors.New("no registry contracts specified")
	}

	b, err := newRemoteBlockChain(endpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}
	defer b.close()

	log, err := b.applicationLog(txID)
	if err != nil {
		return fmt.Errorf("get application log: %w", err)
	}

	if err := printEvents(c.App.Writer, log, decoders); err != nil {
		return err
	}

	if p := c.String("db"); p != "" {
		s, err := snapshot.Open(p, nil)
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		contracts := make([]util.Uint160, 0, len(decoders))
		for h := range decoders {
			contracts = append(contracts, h)
		}

		n, err := s.PutEvents(log, contracts...)
		if err != nil {
			return fmt.Errorf("save notifications: %w", err)
		}
		fmt.Fprintf(c.App.ErrWriter, "%d notifications saved\n", n)
	}

	return nil
}
