// Package bridgeconst contains constants shared by Bridge contract and
// its off-chain clients.
package bridgeconst

const (
	// BridgeTag is a derivation domain of the Bridge singleton.
	BridgeTag = "bridge"
	// TransferTag is a derivation domain of transfer records. Key material
	// is the sender account and decimal sequence number of the transfer.
	TransferTag = "transfer"
)

// Status is a state of the cross-chain transfer record.
type Status int

// Transfer record states.
const (
	// Pending is set on initiation.
	Pending Status = iota
	// Completed is set on confirmation by the bridge authority.
	Completed
	// Failed is reserved for aborted transfers and is never set by the
	// contract itself.
	Failed
)

// Errors thrown by the contract.
const (
	ErrAlreadyInitialized = "bridge is already initialized"
	ErrNotInitialized     = "bridge is not initialized"
	ErrInactive           = "bridge is not active"
	ErrInvalidAmount      = "amount must be greater than zero"
	ErrTransferExists     = "transfer record already exists"
	ErrTransferNotFound   = "transfer not found"
	ErrTransferNotPending = "transfer is not in pending status"
	ErrCounterOverflow    = "transfer counter overflow"
)
