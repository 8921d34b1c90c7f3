/*
Package snapshot persists collected states of the registry contracts.

Snapshot of the contracts (their states along with storage items) pulled from
some network at some height allows to reproduce and inspect "live" registry
offline. Snapshots are identified by ID and kept in the LevelDB database
managed by Store together with registry notifications decoded from
application logs.

Database layout:

	0x01 | id               -> empty, marks complete snapshot
	0x02 | id | name        -> JSON contract state
	0x03 | id | name | key  -> storage item value
	0x04 | contract | tx | n -> JSON notification

where id is a length-prefixed label followed by big-endian block number and
name is a length-prefixed contract name.
*/
package snapshot
