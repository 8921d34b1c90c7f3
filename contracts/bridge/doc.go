/*
Package bridge implements Bridge contract which records cross-chain transfers.

Transfer is a two-phase record: the sender initiates it and it stays pending
until Bridge authority confirms it. The contract does not move any assets and
does not check any proofs from the other network, relayers do.

Each sender has its own sequence of transfers, so any number of transfers can
be pending at once. Transfer ID is the derived ("transfer", sender, sequence)
address.

# Contract notifications

CrossChainTransferInitiated notification.

	CrossChainTransferInitiated:
	  - name: amount
	    type: Integer
	  - name: sender
	    type: Hash160
	  - name: transferID
	    type: Hash160

CrossChainTransferCompleted notification. It contains confirmation time in
seconds.

	CrossChainTransferCompleted:
	  - name: transferID
	    type: Hash160
	  - name: completionTimestamp
	    type: Integer
*/
package bridge
