/*
Package freeze implements Freeze contract which time-locks parcel tokens held
by Treasury contract.

Freeze contract never owns tokens. It proves its delegated custody right to
Treasury by its derived ("freeze_authority") address and bump, which Treasury
authority registers beforehand. Freeze start and duration are kept in the
parcel record owned by Treasury.

# Contract notifications

NFTFrozen notification. It contains parcel ID without zero padding, token ID
and freeze duration in seconds.

	NFTFrozen:
	  - name: ulpinID
	    type: String
	  - name: tokenId
	    type: ByteArray
	  - name: freezeDuration
	    type: Integer

NFTThawed notification.

	NFTThawed:
	  - name: ulpinID
	    type: String
	  - name: tokenId
	    type: ByteArray
*/
package freeze
