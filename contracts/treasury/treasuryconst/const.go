// Package treasuryconst contains constants shared by Treasury contract and
// its off-chain clients.
package treasuryconst

const (
	// TreasuryTag is a derivation domain of the Treasury singleton.
	TreasuryTag = "treasury"
	// LandParcelTag is a derivation domain of parcel records. Key material
	// is the parcel ID padded to MaxIDLength.
	LandParcelTag = "land_parcel"

	// MaxIDLength is a capacity of the parcel identifier.
	MaxIDLength = 64
	// MaxLabelLength is a capacity of district, taluka and village labels.
	MaxLabelLength = 32
	// MaxMetadataURILength limits token metadata URI.
	MaxMetadataURILength = 200

	// DefaultBaseFee is a flat part of the minting fee in GAS fractions.
	DefaultBaseFee = 100_000
	// DefaultPerUnitFee is a minting fee per square meter in GAS fractions.
	DefaultPerUnitFee = 10

	// Symbol is a NEP-11 symbol of parcel tokens.
	Symbol = "ULPIN"
)

// Errors thrown by the contract.
const (
	ErrAlreadyInitialized      = "treasury is already initialized"
	ErrNotInitialized          = "treasury is not initialized"
	ErrInactive                = "treasury is not active"
	ErrInvalidIdentifierLength = "ULPIN ID must be 64 characters or less"
	ErrInvalidArea             = "land area must be greater than zero"
	ErrInvalidLabel            = "location label must be 32 characters or less"
	ErrAlreadyRegistered       = "land parcel is already registered"
	ErrParcelNotFound          = "land parcel not found"
	ErrAlreadyVerified         = "land parcel already verified"
	ErrNotVerifier             = "verifier is not the treasury authority"
	ErrInvalidMetadataURI      = "metadata URI must be 200 characters or less"
	ErrNFTAlreadyMinted        = "NFT already minted for this land parcel"
	ErrLandNotVerified         = "land parcel is not verified"
	ErrNFTNotMinted            = "NFT is not minted for this land parcel"
	ErrFeeOverflow             = "fee overflow"
	ErrFeePaymentFailed        = "fee payment failed"
	ErrFeeAmountMismatch       = "paid amount differs from minting fee"
	ErrTokenFrozen             = "token is frozen"
	ErrFreezeAuthorityNotSet   = "freeze authority is not set"
	ErrNotFreezeAuthority      = "caller is not the freeze authority"
	ErrAlreadyFrozen           = "token is already frozen"
	ErrNoActiveFreeze          = "no active freeze"
	ErrInvalidFreezeDuration   = "invalid freeze duration"
	ErrInvalidOwner            = "invalid owner"
	ErrOnlyGAS                 = "only GAS can be accepted as a fee"
)
