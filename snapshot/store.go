package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	prefixSnapshot byte = iota + 1
	prefixContract
	prefixStorage
	prefixEvent
)

var (
	// ErrExists is returned on attempt to create already existing snapshot.
	ErrExists = errors.New("snapshot already exists")
	// ErrNotFound is returned on attempt to read missing snapshot.
	ErrNotFound = errors.New("snapshot not found")
)

// Store is a LevelDB database of snapshots. Store is safe for concurrent use.
type Store struct {
	db      *leveldb.DB
	metrics *Metrics
}

// Open opens the database located at the given path, creating it if needed.
// Metrics may be nil. Resulting Store should be closed when finished working
// with it.
func Open(path string, m *Metrics) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open LevelDB database: %w", err)
	}

	return &Store{db: db, metrics: m}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Snapshots returns IDs of all complete snapshots in the store.
func (s *Store) Snapshots() ([]ID, error) {
	var res []ID

	it := s.db.NewIterator(util.BytesPrefix([]byte{prefixSnapshot}), nil)
	defer it.Release()

	for it.Next() {
		id, err := idFromBytes(it.Key()[1:])
		if err != nil {
			return nil, err
		}
		res = append(res, id)
	}

	return res, it.Error()
}

// Has checks whether complete snapshot with the given ID exists.
func (s *Store) Has(id ID) (bool, error) {
	return s.db.Has(snapshotKey(id), nil)
}

// NewImport starts a new snapshot with the given ID. Nothing is saved until
// Import.Commit.
//
// NewImport fails with ErrExists if snapshot with provided ID already exists.
func (s *Store) NewImport(id ID) (*Import, error) {
	if err := id.validate(); err != nil {
		return nil, err
	}

	ok, err := s.Has(id)
	if err != nil {
		return nil, fmt.Errorf("check snapshot presence: %w", err)
	}
	if ok {
		return nil, fmt.Errorf("%w: %s", ErrExists, id)
	}

	return &Import{
		store: s,
		id:    id,
		batch: new(leveldb.Batch),
	}, nil
}

// Reader returns Reader of the existing snapshot. Returns ErrNotFound if there
// is no such snapshot.
func (s *Store) Reader(id ID) (*Reader, error) {
	ok, err := s.Has(id)
	if err != nil {
		return nil, fmt.Errorf("check snapshot presence: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return &Reader{db: s.db, id: id}, nil
}

// Import accumulates snapshot data. Import is not safe for concurrent use.
type Import struct {
	store *Store
	id    ID
	batch *leveldb.Batch

	storageItems map[string]int
}

// AddContract adds given state of the named contract to the snapshot and
// returns StorageWriter for the contract storage.
func (x *Import) AddContract(name string, st state.Contract) (*StorageWriter, error) {
	if len(name) == 0 || len(name) > 255 {
		return nil, fmt.Errorf("invalid contract name length %d", len(name))
	}

	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode state of '%s' contract to JSON: %w", name, err)
	}

	x.batch.Put(contractKey(x.id, name), data)

	return &StorageWriter{
		imp:    x,
		name:   name,
		prefix: storagePrefix(x.id, name),
	}, nil
}

// Commit atomically saves accumulated snapshot.
func (x *Import) Commit() error {
	x.batch.Put(snapshotKey(x.id), nil)

	err := x.store.db.Write(x.batch, nil)
	if err != nil {
		return fmt.Errorf("write batch: %w", err)
	}

	x.store.metrics.addSnapshot(x.storageItems)
	x.Abort()

	return nil
}

// Abort drops accumulated data.
func (x *Import) Abort() {
	x.batch.Reset()
	x.storageItems = nil
}

// StorageWriter writes data into the superior contract's storage snapshot.
type StorageWriter struct {
	imp    *Import
	name   string
	prefix []byte
}

// Write saves given binary key-value into the snapshot as storage item. The
// signature allows to pass Write as an iteration callback.
func (x *StorageWriter) Write(key, value []byte) error {
	k := make([]byte, len(x.prefix)+len(key))
	copy(k, x.prefix)
	copy(k[len(x.prefix):], key)

	x.imp.batch.Put(k, value)

	if x.imp.storageItems == nil {
		x.imp.storageItems = make(map[string]int)
	}
	x.imp.storageItems[x.name]++

	return nil
}

// Reader reads contracts collected in the superior snapshot.
type Reader struct {
	db *leveldb.DB
	id ID
}

// ID returns snapshot identifier.
func (x *Reader) ID() ID {
	return x.id
}

// IterateContractStates iterates over all contracts from the snapshot and
// passes their states into f.
func (x *Reader) IterateContractStates(f func(name string, st state.Contract)) error {
	prefix := append([]byte{prefixContract}, x.id.bytes()...)

	it := x.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()

	for it.Next() {
		name, _, err := decodeName(it.Key()[len(prefix):])
		if err != nil {
			return err
		}

		var st state.Contract
		if err := json.Unmarshal(it.Value(), &st); err != nil {
			return fmt.Errorf("decode state of '%s' contract from JSON: %w", name, err)
		}

		f(name, st)
	}

	return it.Error()
}

// IterateContractStorages iterates over all contracts from the snapshot and
// passes their storage items into f. Items of each contract go in key order.
func (x *Reader) IterateContractStorages(f func(name string, key, value []byte)) error {
	prefix := append([]byte{prefixStorage}, x.id.bytes()...)

	it := x.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()

	for it.Next() {
		name, key, err := decodeName(it.Key()[len(prefix):])
		if err != nil {
			return err
		}

		// iterator reuses buffers
		f(name, bytes.Clone(key), bytes.Clone(it.Value()))
	}

	return it.Error()
}

func snapshotKey(id ID) []byte {
	return append([]byte{prefixSnapshot}, id.bytes()...)
}

func contractKey(id ID, name string) []byte {
	return appendName(append([]byte{prefixContract}, id.bytes()...), name)
}

func storagePrefix(id ID, name string) []byte {
	return appendName(append([]byte{prefixStorage}, id.bytes()...), name)
}

func appendName(b []byte, name string) []byte {
	return append(append(b, byte(len(name))), name...)
}

func decodeName(b []byte) (string, []byte, error) {
	if len(b) == 0 || len(b) < 1+int(b[0]) {
		return "", nil, errors.New("invalid contract name in key")
	}
	return string(b[1 : 1+b[0]]), b[1+b[0]:], nil
}
