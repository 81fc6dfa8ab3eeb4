// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wallet

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/danielhkuo/chainvote/gateway"
)

// ErrWalletUnavailable: no signing key is present, the local analogue
// of a missing browser wallet injection.
var ErrWalletUnavailable = errors.New("no wallet available")

// Wallet fronts an on-disk encrypted keystore. Opening it never fails;
// availability is only checked when a session is requested, the same
// way a page only discovers a missing wallet at connect time.
type Wallet struct {
	ks      *keystore.KeyStore
	chainID *big.Int
}

// Session is a signing handle scoped to one authorized account.
type Session struct {
	ID      string
	Account common.Address
	Signer  *bind.TransactOpts
}

// Open binds the wallet to a keystore directory.
func Open(dir string, chainID int64) *Wallet {
	ks := keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP)
	return &Wallet{ks: ks, chainID: big.NewInt(chainID)}
}

// Available reports whether the keystore holds at least one account.
func (w *Wallet) Available() bool {
	return len(w.ks.Accounts()) > 0
}

// Connect unlocks the first keystore account and returns a session
// bound to it. Fails with ErrWalletUnavailable if the keystore is
// empty, or gateway.ErrUserRejected if decryption is refused (a wrong
// passphrase is the local analogue of declining the wallet prompt).
func (w *Wallet) Connect(passphrase string) (*Session, error) {
	accts := w.ks.Accounts()
	if len(accts) == 0 {
		return nil, ErrWalletUnavailable
	}
	acct := accts[0]

	if err := w.ks.Unlock(acct, passphrase); err != nil {
		if errors.Is(err, keystore.ErrDecrypt) {
			return nil, fmt.Errorf("%w: %v", gateway.ErrUserRejected, err)
		}
		return nil, err
	}

	signer, err := bind.NewKeyStoreTransactorWithChainID(w.ks, acct, w.chainID)
	if err != nil {
		w.ks.Lock(acct.Address)
		return nil, fmt.Errorf("failed to build signer: %w", err)
	}

	return &Session{
		ID:      uuid.NewString(),
		Account: acct.Address,
		Signer:  signer,
	}, nil
}

// Disconnect re-locks the session's account. It is a purely local
// reset; browser wallets have no session-revocation API and neither
// does this one, so nothing is sent anywhere.
func (w *Wallet) Disconnect(s *Session) {
	if s == nil {
		return
	}
	w.ks.Lock(s.Account)
}
