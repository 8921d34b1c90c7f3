package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ID is a unique identifier of the snapshot.
type ID struct {
	// Label of the snapshot source (e.g. testnet, mainnet).
	Label string
	// Blockchain height at which the state was pulled.
	Block uint32
}

// word separator used in ID string.
const sep = "-"

var errInvalidLabel = errors.New("label must be non-empty, no longer than 255 bytes and contain no '" + sep + "'")

// String returns hyphen-separated ID fields.
func (x ID) String() string {
	return x.Label + sep + strconv.FormatUint(uint64(x.Block), 10)
}

// ParseID decodes ID fields from the hyphen-separated string.
func ParseID(s string) (ID, error) {
	var x ID

	ss := strings.Split(s, sep)
	if len(ss) != 2 {
		return x, fmt.Errorf("expected '%s'-separated string with 2 items", sep)
	}

	n, err := strconv.ParseUint(ss[1], 10, 32)
	if err != nil {
		return x, fmt.Errorf("decode block number from '%s': %w", ss[1], err)
	}

	x.Label = ss[0]
	x.Block = uint32(n)

	return x, x.validate()
}

func (x ID) validate() error {
	if len(x.Label) == 0 || len(x.Label) > 255 || strings.Contains(x.Label, sep) {
		return errInvalidLabel
	}
	return nil
}

// bytes returns binary ID representation used in database keys.
func (x ID) bytes() []byte {
	b := make([]byte, 1+len(x.Label)+4)
	b[0] = byte(len(x.Label))
	copy(b[1:], x.Label)
	binary.BigEndian.PutUint32(b[1+len(x.Label):], x.Block)
	return b
}

func idFromBytes(b []byte) (ID, error) {
	if len(b) == 0 || len(b) != 1+int(b[0])+4 {
		return ID{}, errors.New("invalid binary ID")
	}
	return ID{
		Label: string(b[1 : 1+b[0]]),
		Block: binary.BigEndian.Uint32(b[1+b[0]:]),
	}, nil
}
