// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the chainvote web client.

chainvote is a thin single-page client for a fixed on-chain voting
contract: connect a wallet, view candidates, cast one vote per address,
and watch live tallies. The contract enforces the actual rules; this
server only builds transactions, polls view functions, and renders
state.

# Starting the Server

The server requires environment variables or CLI flags for
configuration:

	RPC_URL=http://localhost:8545 CONTRACT_ADDRESS=0x... go run main.go

Or with flags:

	go run main.go -p 3318 -r http://localhost:8545 -c 0x...

# Configuration

Required settings:

  - RPC_URL (-r): JSON-RPC endpoint of an Ethereum-compatible node
  - CONTRACT_ADDRESS (-c): Address of the deployed voting contract

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - KEYSTORE_DIR (-k): Encrypted key directory (default: ./keystore)
  - CHAIN_ID (--chain-id): Chain ID for signing (default: 1337)

A .env file in the working directory is loaded first if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - wallet: Keystore unlock and signing sessions
  - gateway: Contract reads/writes over the fixed ABI
  - state: Immutable snapshot store with subscriptions
  - handlers: HTTP request handlers (session, candidates, votes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, error mapping
  - models: Request/response types
  - cliparse: Configuration parsing
  - web: The embedded single page

See package documentation for each component.
*/
package main
