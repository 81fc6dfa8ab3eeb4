// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"

	"github.com/danielhkuo/chainvote/wallet"
)

// Well-known test addresses. OwnerAddress is the contract owner the
// fake chain is created with.
var (
	OwnerAddress = common.HexToAddress("0x00000000000000000000000000000000000A11CE")
	VoterAddress = common.HexToAddress("0x0000000000000000000000000000000000000B0B")
	ContractAddr = common.HexToAddress("0x000000000000000000000000000000000000C0DE")
)

// FakeChain is an in-memory stand-in for the voting contract plus the
// node behind it. It implements the gateway's BoundContract interface
// and bind.DeployBackend, and applies the contract's real rules:
// owner-gated registration, unique candidates, one vote per address.
// Reverts are reported the way a node reports them, as
// "execution reverted: <reason>" errors.
type FakeChain struct {
	mu          sync.Mutex
	owner       common.Address
	ids         [][32]byte
	votes       map[[32]byte]uint64
	voted       map[common.Address]bool
	receipts    map[common.Hash]*types.Receipt
	nonce       uint64
	callErr     error
	transactErr error

	// RevertInReceipt makes failed preconditions surface as a mined
	// transaction with a failed receipt instead of a submit-time error,
	// the way a node without gas estimation would behave.
	RevertInReceipt bool
}

func NewFakeChain() *FakeChain {
	return &FakeChain{
		owner:    OwnerAddress,
		votes:    make(map[[32]byte]uint64),
		voted:    make(map[common.Address]bool),
		receipts: make(map[common.Hash]*types.Receipt),
	}
}

// FailCalls makes all view calls fail with err, simulating a provider
// outage. Pass nil to heal.
func (f *FakeChain) FailCalls(err error) {
	f.mu.Lock()
	f.callErr = err
	f.mu.Unlock()
}

// FailTransacts makes all writes fail with err before submission,
// simulating a declined signature or a dead provider.
func (f *FakeChain) FailTransacts(err error) {
	f.mu.Lock()
	f.transactErr = err
	f.mu.Unlock()
}

// Call implements the view entry points.
func (f *FakeChain) Call(opts *bind.CallOpts, results *[]interface{}, method string, params ...interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.callErr != nil {
		return f.callErr
	}

	switch method {
	case "listCandidateIds":
		ids := make([][32]byte, len(f.ids))
		copy(ids, f.ids)
		*results = []interface{}{ids}
	case "voteCountOf":
		id := params[0].([32]byte)
		*results = []interface{}{new(big.Int).SetUint64(f.votes[id])}
	case "candidateCount":
		*results = []interface{}{big.NewInt(int64(len(f.ids)))}
	case "owner":
		*results = []interface{}{f.owner}
	default:
		return fmt.Errorf("unknown method %q", method)
	}
	return nil
}

// Transact implements the state-changing entry points.
func (f *FakeChain) Transact(opts *bind.TransactOpts, method string, params ...interface{}) (*types.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.transactErr != nil {
		return nil, f.transactErr
	}

	var revert error
	id := params[0].([32]byte)

	switch method {
	case "registerCandidate":
		switch {
		case opts.From != f.owner:
			revert = errors.New("execution reverted: caller is not the owner")
		case f.has(id):
			revert = errors.New("execution reverted: candidate already registered")
		}
	case "vote":
		switch {
		case !f.has(id):
			revert = errors.New("execution reverted: unknown candidate")
		case f.voted[opts.From]:
			revert = errors.New("execution reverted: already voted")
		}
	default:
		return nil, fmt.Errorf("unknown method %q", method)
	}

	if revert != nil && !f.RevertInReceipt {
		return nil, revert
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    f.nonce,
		To:       &ContractAddr,
		Gas:      60000,
		GasPrice: big.NewInt(1),
		Data:     id[:],
	})
	f.nonce++

	if revert != nil {
		f.receipts[tx.Hash()] = &types.Receipt{Status: types.ReceiptStatusFailed, TxHash: tx.Hash()}
		return tx, nil
	}

	switch method {
	case "registerCandidate":
		f.ids = append(f.ids, id)
	case "vote":
		f.votes[id]++
		f.voted[opts.From] = true
	}
	f.receipts[tx.Hash()] = &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: tx.Hash()}
	return tx, nil
}

// TransactionReceipt implements bind.DeployBackend.
func (f *FakeChain) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.receipts[txHash]; ok {
		return r, nil
	}
	return nil, ethereum.NotFound
}

// CodeAt implements bind.DeployBackend.
func (f *FakeChain) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (f *FakeChain) has(id [32]byte) bool {
	for _, existing := range f.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Seed registers a candidate id directly, bypassing the owner gate.
func (f *FakeChain) Seed(id [32]byte, votes uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.has(id) {
		f.ids = append(f.ids, id)
	}
	f.votes[id] = votes
}

// SignerFor builds pass-through transact opts for addr, enough for the
// fake chain which only inspects the sender.
func SignerFor(addr common.Address) *bind.TransactOpts {
	return &bind.TransactOpts{
		From: addr,
		Signer: func(a common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return tx, nil
		},
	}
}

// FakeConnector stands in for the wallet. Connect succeeds with the
// configured account unless Err is set.
type FakeConnector struct {
	Account common.Address
	Err     error

	mu        sync.Mutex
	connected bool
}

func (f *FakeConnector) Connect(passphrase string) (*wallet.Session, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	f.connected = true
	f.mu.Unlock()
	return &wallet.Session{
		ID:      uuid.NewString(),
		Account: f.Account,
		Signer: &bind.TransactOpts{
			From: f.Account,
			Signer: func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
				return tx, nil
			},
		},
	}, nil
}

func (f *FakeConnector) Disconnect(s *wallet.Session) {
	f.mu.Lock()
	f.connected = false
	f.mu.Unlock()
}

func (f *FakeConnector) Connected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
