package main

import (
	"fmt"
	"path/filepath"

	"github.com/ulpin-registry/ulpin-contract/contracts"
	"github.com/urfave/cli"
)

func runCompile(c *cli.Context) error {
	src, out := c.String("src"), c.String("out")

	for _, dir := range contracts.Dirs {
		ctr, err := contracts.Compile(filepath.Join(src, dir))
		if err != nil {
			return fmt.Errorf("compile %s contract: %w", dir, err)
		}

		if err := ctr.Write(filepath.Join(out, dir)); err != nil {
			return fmt.Errorf("write %s contract: %w", dir, err)
		}

		fmt.Fprintf(c.App.Writer, "%s: %s (checksum %d)\n", dir, ctr.Manifest.Name, ctr.NEF.Checksum)
	}

	return nil
}
