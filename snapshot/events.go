package snapshot

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	neoutil "github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Event is a contract notification saved in the Store.
type Event struct {
	// Transaction or block which emitted the notification.
	Container neoutil.Uint256 `json:"container"`
	// Position of the notification in the execution.
	Index    uint32          `json:"index"`
	Contract neoutil.Uint160 `json:"contract"`
	Name     string          `json:"name"`
	// Notification parameters as stack item JSON with types.
	Params json.RawMessage `json:"params"`
}

// Item decodes notification parameters.
func (e Event) Item() (stackitem.Item, error) {
	return stackitem.FromJSONWithTypes(e.Params)
}

// PutEvents saves notifications of the given contracts from the application
// log and returns number of saved events. All contracts are accepted if none
// is given. Saving the same log twice is a no-op.
func (s *Store) PutEvents(log *result.ApplicationLog, contracts ...neoutil.Uint160) (int, error) {
	var (
		batch  = new(leveldb.Batch)
		counts = make(map[string]int)
		n      int
	)

	for _, ex := range log.Executions {
		for i, ev := range ex.Events {
			if !acceptContract(ev.ScriptHash, contracts) {
				continue
			}

			params, err := stackitem.ToJSONWithTypes(ev.Item)
			if err != nil {
				return 0, fmt.Errorf("encode '%s' notification parameters: %w", ev.Name, err)
			}

			data, err := json.Marshal(Event{
				Container: log.Container,
				Index:     uint32(i),
				Contract:  ev.ScriptHash,
				Name:      ev.Name,
				Params:    params,
			})
			if err != nil {
				return 0, fmt.Errorf("encode '%s' notification: %w", ev.Name, err)
			}

			batch.Put(eventKey(ev.ScriptHash, log.Container, uint32(i)), data)
			counts[ev.Name]++
			n++
		}
	}

	if n == 0 {
		return 0, nil
	}

	if err := s.db.Write(batch, nil); err != nil {
		return 0, fmt.Errorf("write batch: %w", err)
	}

	s.metrics.addEvents(counts)

	return n, nil
}

// IterateEvents passes all saved notifications of the contract into f. f's
// error breaks the iteration and is returned.
func (s *Store) IterateEvents(contract neoutil.Uint160, f func(Event) error) error {
	it := s.db.NewIterator(util.BytesPrefix(append([]byte{prefixEvent}, contract.BytesBE()...)), nil)
	defer it.Release()

	for it.Next() {
		var ev Event
		if err := json.Unmarshal(it.Value(), &ev); err != nil {
			return fmt.Errorf("decode notification: %w", err)
		}

		if err := f(ev); err != nil {
			return err
		}
	}

	return it.Error()
}

func acceptContract(h neoutil.Uint160, list []neoutil.Uint160) bool {
	if len(list) == 0 {
		return true
	}
	for i := range list {
		if list[i].Equals(h) {
			return true
		}
	}
	return false
}

func eventKey(contract neoutil.Uint160, container neoutil.Uint256, index uint32) []byte {
	k := make([]byte, 1+neoutil.Uint160Size+neoutil.Uint256Size+4)
	k[0] = prefixEvent
	copy(k[1:], contract.BytesBE())
	copy(k[1+neoutil.Uint160Size:], container.BytesBE())
	binary.BigEndian.PutUint32(k[1+neoutil.Uint160Size+neoutil.Uint256Size:], index)
	return k
}
