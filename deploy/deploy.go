package deploy

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/ulpin-registry/ulpin-contract/contracts/bridge/bridgeconst"
	"github.com/ulpin-registry/ulpin-contract/contracts/freeze/freezeconst"
	"github.com/ulpin-registry/ulpin-contract/contracts/treasury/treasuryconst"
	"github.com/ulpin-registry/ulpin-contract/pda"
	"github.com/ulpin-registry/ulpin-contract/rpc/bridge"
	"github.com/ulpin-registry/ulpin-contract/rpc/freeze"
	"github.com/ulpin-registry/ulpin-contract/rpc/treasury"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the registry deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error if requested contract is
	// missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)

	// GetApplicationLog returns execution results of the accepted transaction.
	// GetApplicationLog returns error if transaction is not accepted yet.
	GetApplicationLog(util.Uint256, *trigger.Type) (*result.ApplicationLog, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Prm groups all parameters of the registry deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy the registry to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// It deploys all contracts and becomes authority of all of them.
	LocalAccount *wallet.Account

	// Interval between transaction acceptance checks. Defaults to
	// DefaultPollInterval.
	PollInterval time.Duration

	Treasury CommonDeployPrm
	Freeze   CommonDeployPrm
	Bridge   CommonDeployPrm
}

// Result contains on-chain addresses of the deployed registry.
type Result struct {
	Treasury util.Uint160
	Freeze   util.Uint160
	Bridge   util.Uint160

	// Contract-owned state addresses created by initialization.
	TreasuryState util.Uint160
	FreezeState   util.Uint160
	BridgeState   util.Uint160
}

// DefaultPollInterval is a default interval between transaction acceptance
// checks.
const DefaultPollInterval = time.Second

// errTxExpired is returned when transaction wasn't accepted before its
// ValidUntilBlock.
var errTxExpired = errors.New("transaction expired")

type deployer struct {
	log   *zap.Logger
	bc    Blockchain
	act   *actor.Actor
	poll  time.Duration
	owner util.Uint160
}

// Deploy deploys Treasury, Freeze and Bridge contracts and initializes them
// with the local account as an authority. Freeze is registered as a freeze
// delegate of the Treasury.
//
// Deploy is idempotent: already deployed contracts and already initialized
// states are skipped, so an interrupted procedure can be repeated. Contract
// addresses depend on the local account only, so repeated Deploy resolves the
// same contracts.
//
// Deploy aborts by context or when a fatal error occurs.
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	// wrap the parent context into the context of the current function so that
	// transaction wait routines do not leak
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d := &deployer{
		log:   prm.Logger,
		bc:    prm.Blockchain,
		poll:  prm.PollInterval,
		owner: prm.LocalAccount.ScriptHash(),
	}
	if d.poll <= 0 {
		d.poll = DefaultPollInterval
	}

	var err error
	d.act, err = actor.NewTuned(prm.Blockchain, []actor.SignerAccount{{
		Signer: transaction.Signer{
			Account: d.owner,
			Scopes:  transaction.CalledByEntry,
		},
		Account: prm.LocalAccount,
	}}, actor.Options{
		CheckerModifier: stableTransactionModifier(func() uint32 {
			h, err := prm.Blockchain.GetBlockCount()
			if err != nil {
				return 0
			}
			return h
		}),
	})
	if err != nil {
		return res, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	// Contracts dependent on others come after.
	res.Treasury, err = d.syncContract(ctx, prm.Treasury, nil)
	if err != nil {
		return res, fmt.Errorf("sync Treasury contract with the chain: %w", err)
	}

	res.Freeze, err = d.syncContract(ctx, prm.Freeze, []any{res.Treasury})
	if err != nil {
		return res, fmt.Errorf("sync Freeze contract with the chain: %w", err)
	}

	res.Bridge, err = d.syncContract(ctx, prm.Bridge, nil)
	if err != nil {
		return res, fmt.Errorf("sync Bridge contract with the chain: %w", err)
	}

	res.TreasuryState, err = d.initTreasury(ctx, res.Treasury)
	if err != nil {
		return res, fmt.Errorf("init Treasury: %w", err)
	}

	res.FreezeState, err = d.initFreeze(ctx, res.Freeze)
	if err != nil {
		return res, fmt.Errorf("init Freeze: %w", err)
	}

	err = d.delegateFreeze(ctx, res.Treasury, res.Freeze)
	if err != nil {
		return res, fmt.Errorf("register freeze delegate: %w", err)
	}

	res.BridgeState, err = d.initBridge(ctx, res.Bridge)
	if err != nil {
		return res, fmt.Errorf("init Bridge: %w", err)
	}

	d.log.Info("registry successfully deployed",
		zap.Stringer("treasury", res.Treasury),
		zap.Stringer("freeze", res.Freeze),
		zap.Stringer("bridge", res.Bridge))

	return res, nil
}

// syncContract deploys the contract unless it's already on the chain and
// returns its address.
func (d *deployer) syncContract(ctx context.Context, prm CommonDeployPrm, data any) (util.Uint160, error) {
	name := prm.Manifest.Name
	h := state.CreateContractHash(d.owner, prm.NEF.Checksum, name)
	l := d.log.With(zap.String("contract", name), zap.Stringer("address", h))

	if _, err := d.bc.GetContractStateByHash(h); err == nil {
		l.Info("contract is already deployed, skip")
		return h, nil
	}

	l.Info("contract is missing on the chain, deploying...")

	txID, vub, err := management.New(d.act).Deploy(&prm.NEF, &prm.Manifest, data)
	if err != nil {
		return h, fmt.Errorf("send deployment transaction: %w", err)
	}

	if err := d.await(ctx, txID, vub); err != nil {
		return h, fmt.Errorf("deploy %q: %w", name, err)
	}

	l.Info("contract successfully deployed", zap.Stringer("tx", txID))
	return h, nil
}

func (d *deployer) initTreasury(ctx context.Context, h util.Uint160) (util.Uint160, error) {
	addr, bump, err := pda.Treasury(h)
	if err != nil {
		return util.Uint160{}, err
	}

	c := treasury.New(d.act, h)
	_, err = c.GetTreasury()
	if err == nil {
		d.log.Info("Treasury is already initialized, skip")
		return addr.Uint160(), nil
	}
	if !isFault(err, treasuryconst.ErrNotInitialized) {
		return util.Uint160{}, fmt.Errorf("get Treasury state: %w", err)
	}

	txID, vub, err := c.Initialize(d.owner, big.NewInt(int64(bump)))
	return addr.Uint160(), d.sent(ctx, "initialize Treasury", txID, vub, err)
}

func (d *deployer) initFreeze(ctx context.Context, h util.Uint160) (util.Uint160, error) {
	addr, bump, err := pda.FreezeAuthority(h)
	if err != nil {
		return util.Uint160{}, err
	}

	c := freeze.New(d.act, h)
	_, err = c.GetFreezeAuthority()
	if err == nil {
		d.log.Info("freeze authority is already initialized, skip")
		return addr.Uint160(), nil
	}
	if !isFault(err, freezeconst.ErrNotInitialized) {
		return util.Uint160{}, fmt.Errorf("get freeze authority: %w", err)
	}

	txID, vub, err := c.InitializeFreezeAuthority(d.owner, big.NewInt(int64(bump)))
	return addr.Uint160(), d.sent(ctx, "initialize freeze authority", txID, vub, err)
}

func (d *deployer) delegateFreeze(ctx context.Context, treasuryHash, freezeHash util.Uint160) error {
	addr, bump, err := pda.FreezeAuthority(freezeHash)
	if err != nil {
		return err
	}

	c := treasury.New(d.act, treasuryHash)
	del, err := c.GetFreezeAuthority()
	if err == nil {
		if del.Contract.Equals(freezeHash) && del.Address.Equals(addr.Uint160()) {
			d.log.Info("freeze delegate is already registered, skip")
			return nil
		}
	} else if !isFault(err, treasuryconst.ErrFreezeAuthorityNotSet) {
		return fmt.Errorf("get freeze delegate: %w", err)
	}

	txID, vub, err := c.SetFreezeAuthority(freezeHash, addr.Uint160(), big.NewInt(int64(bump)))
	return d.sent(ctx, "set freeze delegate", txID, vub, err)
}

func (d *deployer) initBridge(ctx context.Context, h util.Uint160) (util.Uint160, error) {
	addr, bump, err := pda.Bridge(h)
	if err != nil {
		return util.Uint160{}, err
	}

	c := bridge.New(d.act, h)
	_, err = c.GetBridge()
	if err == nil {
		d.log.Info("Bridge is already initialized, skip")
		return addr.Uint160(), nil
	}
	if !isFault(err, bridgeconst.ErrNotInitialized) {
		return util.Uint160{}, fmt.Errorf("get Bridge state: %w", err)
	}

	txID, vub, err := c.InitializeBridge(d.owner, big.NewInt(int64(bump)))
	return addr.Uint160(), d.sent(ctx, "initialize Bridge", txID, vub, err)
}

func (d *deployer) sent(ctx context.Context, op string, txID util.Uint256, vub uint32, err error) error {
	if err != nil {
		return fmt.Errorf("%s: send transaction: %w", op, err)
	}

	d.log.Info("transaction sent, waiting for acceptance...",
		zap.String("op", op), zap.Stringer("tx", txID), zap.Uint32("vub", vub))

	if err := d.await(ctx, txID, vub); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	d.log.Info("transaction accepted", zap.String("op", op), zap.Stringer("tx", txID))
	return nil
}

// await blocks until transaction is accepted with HALT state.
func (d *deployer) await(ctx context.Context, txID util.Uint256, vub uint32) error {
	t := time.NewTicker(d.poll)
	defer t.Stop()

	for {
		appLog, err := d.bc.GetApplicationLog(txID, nil)
		if err == nil {
			if len(appLog.Executions) == 0 {
				return errors.New("missing transaction execution")
			}
			if ex := appLog.Executions[0]; ex.VMState != vmstate.Halt {
				return fmt.Errorf("transaction failed with %s state: %s", ex.VMState, ex.FaultException)
			}
			return nil
		}

		height, err := d.bc.GetBlockCount()
		if err != nil {
			d.log.Debug("failed to get chain height", zap.Error(err))
		} else if height > vub+1 {
			return errTxExpired
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

func isFault(err error, msg string) bool {
	return strings.Contains(err.Error(), msg)
}

// returns actor.TransactionCheckerModifier which checks that invocation
// finished with 'HALT' state and, if so, sets transaction's nonce and
// ValidUntilBlock to 100*N and 100*(N+1) correspondingly, where
// 100*N <= current height < 100*(N+1). Repeated Deploy sends the same
// transactions within the span.
func stableTransactionModifier(getBlockchainHeight func() uint32) actor.TransactionCheckerModifier {
	return func(r *result.Invoke, tx *transaction.Transaction) error {
		err := actor.DefaultCheckerModifier(r, tx)
		if err != nil {
			return err
		}

		curHeight := getBlockchainHeight()
		const span = 100
		n := curHeight / span

		tx.Nonce = n * span

		if math.MaxUint32-span > tx.Nonce {
			tx.ValidUntilBlock = tx.Nonce + span
		} else {
			tx.ValidUntilBlock = math.MaxUint32
		}

		return nil
	}
}
