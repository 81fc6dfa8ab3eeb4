// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/danielhkuo/chainvote/models"
)

// BoundContract is the subset of bind.BoundContract the gateway uses.
// Keeping it narrow lets tests substitute an in-memory contract.
type BoundContract interface {
	Call(opts *bind.CallOpts, results *[]interface{}, method string, params ...interface{}) error
	Transact(opts *bind.TransactOpts, method string, params ...interface{}) (*types.Transaction, error)
}

// Gateway wraps one voting contract at a fixed address. Reads are view
// calls; writes submit a transaction and block until it is mined.
type Gateway struct {
	contract BoundContract
	backend  bind.DeployBackend
	address  common.Address
}

// New binds the gateway to the contract at address through an RPC client.
func New(client *ethclient.Client, address common.Address) (*Gateway, error) {
	parsed, err := ParseABI()
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}
	bound := bind.NewBoundContract(address, parsed, client, client, client)
	return &Gateway{contract: bound, backend: client, address: address}, nil
}

// NewWithBackend binds the gateway to an arbitrary contract and receipt
// backend. Used by tests; production code goes through New.
func NewWithBackend(contract BoundContract, backend bind.DeployBackend, address common.Address) *Gateway {
	return &Gateway{contract: contract, backend: backend, address: address}
}

// Address returns the contract address the gateway is bound to.
func (g *Gateway) Address() common.Address {
	return g.address
}

// RegisterCandidate submits a registration for name and waits for the
// transaction to be mined. Only the contract owner's transaction will
// succeed; anyone else's reverts on-chain.
func (g *Gateway) RegisterCandidate(ctx context.Context, signer *bind.TransactOpts, name string) error {
	id, err := EncodeName(name)
	if err != nil {
		return err
	}
	opts := *signer
	opts.Context = ctx
	tx, err := g.contract.Transact(&opts, "registerCandidate", id)
	if err != nil {
		return Classify(err)
	}
	return g.waitMined(ctx, tx)
}

// Vote submits a vote for name and waits for the transaction to be
// mined. The contract reverts for an unknown candidate or a sender that
// has already voted.
func (g *Gateway) Vote(ctx context.Context, signer *bind.TransactOpts, name string) error {
	id, err := EncodeName(name)
	if err != nil {
		return err
	}
	opts := *signer
	opts.Context = ctx
	tx, err := g.contract.Transact(&opts, "vote", id)
	if err != nil {
		return Classify(err)
	}
	return g.waitMined(ctx, tx)
}

// ListCandidates reads the full identifier list, then one vote count
// per identifier (one round trip each; the contract offers no batch
// read), and returns the assembled list. Side-effect free.
func (g *Gateway) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	opts := &bind.CallOpts{Context: ctx}

	var out []interface{}
	if err := g.contract.Call(opts, &out, "listCandidateIds"); err != nil {
		return nil, Classify(err)
	}
	ids, ok := out[0].([][IDLength]byte)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected identifier list type %T", ErrNetwork, out[0])
	}

	candidates := make([]models.Candidate, 0, len(ids))
	for _, id := range ids {
		var cnt []interface{}
		if err := g.contract.Call(opts, &cnt, "voteCountOf", id); err != nil {
			return nil, Classify(err)
		}
		count, ok := cnt[0].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected vote count type %T", ErrNetwork, cnt[0])
		}
		candidates = append(candidates, models.Candidate{
			Name:  DecodeName(id),
			ID:    hexutil.Encode(id[:]),
			Votes: count.Uint64(),
		})
	}
	return candidates, nil
}

// VoteCountOf reads the current tally for a single candidate name.
func (g *Gateway) VoteCountOf(ctx context.Context, name string) (uint64, error) {
	id, err := EncodeName(name)
	if err != nil {
		return 0, err
	}
	var out []interface{}
	if err := g.contract.Call(&bind.CallOpts{Context: ctx}, &out, "voteCountOf", id); err != nil {
		return 0, Classify(err)
	}
	count, ok := out[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected vote count type %T", ErrNetwork, out[0])
	}
	return count.Uint64(), nil
}

// CandidateCount reads the number of registered candidates.
func (g *Gateway) CandidateCount(ctx context.Context) (uint64, error) {
	var out []interface{}
	if err := g.contract.Call(&bind.CallOpts{Context: ctx}, &out, "candidateCount"); err != nil {
		return 0, Classify(err)
	}
	count, ok := out[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected candidate count type %T", ErrNetwork, out[0])
	}
	return count.Uint64(), nil
}

// Owner reads the contract's recorded owner address.
func (g *Gateway) Owner(ctx context.Context) (common.Address, error) {
	var out []interface{}
	if err := g.contract.Call(&bind.CallOpts{Context: ctx}, &out, "owner"); err != nil {
		return common.Address{}, Classify(err)
	}
	owner, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("%w: unexpected owner type %T", ErrNetwork, out[0])
	}
	return owner, nil
}

// IsOwner reports whether account case-insensitively equals the
// contract's recorded owner address.
func (g *Gateway) IsOwner(ctx context.Context, account string) (bool, error) {
	owner, err := g.Owner(ctx)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(owner.Hex(), account), nil
}

// waitMined blocks until the transaction is mined, then checks the
// receipt status. A mined-but-failed receipt means an on-chain require
// tripped after submission.
func (g *Gateway) waitMined(ctx context.Context, tx *types.Transaction) error {
	receipt, err := bind.WaitMined(ctx, g.backend, tx)
	if err != nil {
		return Classify(err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return fmt.Errorf("%w: transaction %s failed on-chain", ErrContractReverted, tx.Hash().Hex())
	}
	return nil
}
