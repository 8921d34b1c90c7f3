package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/ulpin-registry/ulpin-contract/pda"
	"github.com/ulpin-registry/ulpin-contract/rpc/treasury"
	"github.com/urfave/cli"
)

func runParcel(c *cli.Context) error {
	endpoint, err := requireRPC(c)
	if err != nil {
		return err
	}

	if c.NArg() != 1 {
		return errors.New("exactly one ULPIN ID is expected")
	}

	h, err := hashFlag(c, "treasury")
	if err != nil {
		return err
	}

	b, err := newRemoteBlockChain(endpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}
	defer b.close()

	rec, err := treasury.NewReader(b.invoker, h).GetParcel([]byte(c.Args().First()))
	if err != nil {
		return fmt.Errorf("get parcel: %w", err)
	}

	printParcel(c.App.Writer, rec)

	return nil
}

// printParcel writes human-readable record with padding of the fixed-width
// fields removed.
func printParcel(w io.Writer, rec *treasury.LandParcelRecord) {
	unix := func(sec int64) string {
		if sec == 0 {
			return "-"
		}
		return time.Unix(sec, 0).UTC().Format(time.RFC3339)
	}

	label := func(b []byte) []byte {
		return bytes.TrimRight(b, "\x00")
	}

	fmt.Fprintf(w, "ULPIN ID:    %s\n", pda.TrimParcelID(rec.ID))
	fmt.Fprintf(w, "Area, sqm:   %s\n", rec.Area)
	fmt.Fprintf(w, "Location:    %s / %s / %s\n", label(rec.District), label(rec.Taluka), label(rec.Village))
	fmt.Fprintf(w, "Owner:       %s\n", address.Uint160ToString(rec.Owner))
	fmt.Fprintf(w, "Registered:  %s\n", unix(rec.RegisteredAt.Int64()))
	fmt.Fprintf(w, "Verified:    %t (%s)\n", rec.Verified, unix(rec.VerifiedAt.Int64()))
	fmt.Fprintf(w, "Minted:      %t\n", rec.Minted)
	if rec.Frozen {
		fmt.Fprintf(w, "Frozen:      since %s for %s s\n", unix(rec.FreezeStart.Int64()), rec.FreezeDuration)
	} else {
		fmt.Fprintf(w, "Frozen:      false\n")
	}
	fmt.Fprintf(w, "Record:      %s (bump %s)\n", address.Uint160ToString(rec.Address), rec.Bump)
}
