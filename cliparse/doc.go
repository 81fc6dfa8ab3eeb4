// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - RPCURL: JSON-RPC endpoint of an Ethereum-compatible node (required)
  - ContractAddress: Address of the deployed voting contract (required)
  - KeystoreDir: Directory holding encrypted key files (default: ./keystore)
  - ChainID: Chain ID used for transaction signing (default: 1337)

# CLI Flags

	-p         Server port
	-r         JSON-RPC endpoint URL
	-c         Voting contract address
	-k         Keystore directory
	--chain-id Chain ID

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	RPC_URL          → -r
	CONTRACT_ADDRESS → -c
	KEYSTORE_DIR     → -k
	CHAIN_ID         → --chain-id

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - RPC_URL must be provided
  - CONTRACT_ADDRESS must be provided and look like a 20-byte hex address

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	client, err := ethclient.Dial(cfg.RPCURL)
	// ...
	mux := router.NewRouter(gw, w, store, cfg)
*/
package cliparse
