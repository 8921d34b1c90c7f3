// Package freezeconst contains constants shared by Freeze contract and
// its off-chain clients.
package freezeconst

// FreezeAuthorityTag is a derivation domain of the Freeze singleton.
const FreezeAuthorityTag = "freeze_authority"

// Errors thrown by the contract.
const (
	ErrAlreadyInitialized     = "freeze authority is already initialized"
	ErrNotInitialized         = "freeze authority is not initialized"
	ErrMissingTreasury        = "treasury contract hash is missing"
	ErrLandNotVerified        = "land parcel must be verified before freezing"
	ErrNFTNotMinted           = "NFT must be minted before freezing"
	ErrInvalidDuration        = "invalid freeze duration"
	ErrAlreadyFrozen          = "token is already frozen"
	ErrNoActiveFreeze         = "no active freeze"
	ErrFreezePeriodNotExpired = "freeze period has not expired yet"
	ErrThawWitness            = "thaw must be signed by freeze authority or token owner"
)
