/*
Package contracts provides access to compiled ULPIN contracts.

Contracts are compiled from their source directories with Compile and stored
as contract.nef and manifest.json files under treasury, freeze and bridge
subdirectories of some file system, see Write and Read.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

// Contract directories.
const (
	TreasuryDir = "treasury"
	FreezeDir   = "freeze"
	BridgeDir   = "bridge"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about Neo contract stored in the current package.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")

	// Dirs lists contract directories in the order they're supposed to be
	// deployed: Freeze needs Treasury hash at deployment.
	Dirs = []string{
		TreasuryDir,
		FreezeDir,
		BridgeDir,
	}
)

// Read returns all ULPIN contracts stored in the given file system in the
// order of Dirs.
func Read(_fs fs.FS) ([]Contract, error) {
	return read(_fs, Dirs)
}

func read(_fs fs.FS, dirs []string) ([]Contract, error) {
	var res = make([]Contract, 0, len(dirs))

	for i := range dirs {
		c, err := ReadContract(_fs, dirs[i])
		if err != nil {
			return nil, fmt.Errorf("read contract %s: %w", dirs[i], err)
		}

		res = append(res, c)
	}

	return res, nil
}

// ReadContract reads single contract from the dir of the given file system.
func ReadContract(_fs fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS paths are slash-separated on every OS, so filepath.Join() is not
	// applicable.
	fNEF, err := _fs.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := _fs.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}
