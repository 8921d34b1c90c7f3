package main

import (
	"errors"
	"fmt"

	"github.com/ulpin-registry/ulpin-contract/pda"
	"github.com/urfave/cli"
)

func runDerive(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("exactly one address kind is expected")
	}

	program, err := hashFlag(c, "program")
	if err != nil {
		return err
	}

	var (
		addr pda.Address
		bump uint8
	)

	switch kind := c.Args().First(); kind {
	case "treasury":
		addr, bump, err = pda.Treasury(program)
	case "freeze":
		addr, bump, err = pda.FreezeAuthority(program)
	case "bridge":
		addr, bump, err = pda.Bridge(program)
	case "parcel":
		id := c.String("id")
		if id == "" {
			return errors.New("missing --id")
		}
		addr, bump, err = pda.LandParcel(program, []byte(id))
	case "transfer":
		sender, err := hashFlag(c, "sender")
		if err != nil {
			return err
		}
		addr, bump, err = pda.Transfer(program, sender, c.Uint64("seq"))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown address kind '%s'", kind)
	}
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Address:     %s\n", addr)
	fmt.Fprintf(w, "Script hash: %s\n", addr.Uint160().StringLE())
	fmt.Fprintf(w, "Neo address: %s\n", addr.NeoAddress())
	fmt.Fprintf(w, "Bump:        %d\n", bump)

	return nil
}
