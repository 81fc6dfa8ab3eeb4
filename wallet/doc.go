// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wallet manages the local signing wallet.

The wallet plays the role a browser-injected wallet plays for a dApp
page: it authorizes one account and produces a signing handle scoped to
it. Keys live in a standard encrypted keystore directory.

# Connecting

	w := wallet.Open(cfg.KeystoreDir, cfg.ChainID)
	session, err := w.Connect(passphrase)

Connect fails with ErrWalletUnavailable when the keystore holds no
accounts, and with gateway.ErrUserRejected when the passphrase does not
decrypt the key (the local analogue of declining the signing prompt).

# Sessions

A Session carries the account address, a bind.TransactOpts signer for
state-changing contract calls, and a random session id:

	gw.Vote(ctx, session.Signer, "alice")

# Disconnecting

	w.Disconnect(session)

Disconnect re-locks the account. It is purely local; there is no
network interaction and no server-side session to revoke.
*/
package wallet
