/*
Package treasury implements Treasury contract which is the registry of land
parcels identified by ULPIN.

Treasury authority registers parcels, verifies them and updates their owners.
A verified parcel can be tokenized: any payer covering the minting fee in GAS
gets a NEP-11 token minted to the parcel owner. Token ID is the parcel ID.
The fee is a flat base fee plus a per square meter part, all collected fees are
kept by the contract.

The fee can be paid in two ways:
  - payer transfers exactly the fee in GAS to the contract with [id, metadataURI]
    as transfer data, the token is minted from onNEP17Payment. CalledByEntry
    witness scope of the payer is enough;
  - mintLandNFT withdraws the fee from payer, so payer's witness scope must
    allow GAS contract (CustomContracts with GAS or Global).

Minted tokens can be locked by the registered Freeze contract. Locked tokens
can't be transferred, neither by NEP-11 transfer nor by ownership update.

Every stored record carries its derived address and bump. The address is
re-derived on each access and the call fails on mismatch.

# Contract notifications

Transfer notification. This is a NEP-11 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: tokenId
	    type: ByteArray

LandParcelRegistered notification. It contains parcel ID without zero padding,
owner account, parcel area and registration time in seconds.

	LandParcelRegistered:
	  - name: ulpinID
	    type: String
	  - name: owner
	    type: Hash160
	  - name: areaSqm
	    type: Integer
	  - name: registrationTimestamp
	    type: Integer

LandParcelVerified notification.

	LandParcelVerified:
	  - name: ulpinID
	    type: String
	  - name: verifier
	    type: Hash160
	  - name: verificationTimestamp
	    type: Integer

NFTMinted notification. It contains the fee paid in GAS fractions.

	NFTMinted:
	  - name: ulpinID
	    type: String
	  - name: owner
	    type: Hash160
	  - name: tokenId
	    type: ByteArray
	  - name: metadataURI
	    type: String
	  - name: feePaid
	    type: Integer

OwnershipTransferred notification. previousOwner is the owner before the
update.

	OwnershipTransferred:
	  - name: ulpinID
	    type: String
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
	  - name: transferTimestamp
	    type: Integer
*/
package treasury
