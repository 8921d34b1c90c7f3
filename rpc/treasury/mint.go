package treasury

import (
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// PayForMint transfers minting fee in GAS from payer to the contract with
// parcel ID and metadata URI as transfer data, so the contract mints parcel
// token to its owner. fee must be exactly the value of FeeFor for the parcel
// area. Unlike MintLandNFT, payer signer with CalledByEntry scope is enough.
// The values returned are transaction hash, its ValidUntilBlock value and
// error if any.
func (c *Contract) PayForMint(payer util.Uint160, fee *big.Int, id []byte, metadataURI string) (util.Uint256, uint32, error) {
	return gas.New(c.actor).Transfer(payer, c.hash, fee, mintData(id, metadataURI))
}

// PayForMintTransaction is the same as PayForMint but returns signed
// transaction without sending it.
func (c *Contract) PayForMintTransaction(payer util.Uint160, fee *big.Int, id []byte, metadataURI string) (*transaction.Transaction, error) {
	return gas.New(c.actor).TransferTransaction(payer, c.hash, fee, mintData(id, metadataURI))
}

// PayForMintUnsigned is the same as PayForMint but returns unsigned
// transaction.
func (c *Contract) PayForMintUnsigned(payer util.Uint160, fee *big.Int, id []byte, metadataURI string) (*transaction.Transaction, error) {
	return gas.New(c.actor).TransferUnsigned(payer, c.hash, fee, mintData(id, metadataURI))
}

func mintData(id []byte, metadataURI string) []any {
	return []any{id, metadataURI}
}
