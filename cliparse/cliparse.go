package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port            int
	RPCURL          string
	ContractAddress string
	KeystoreDir     string
	ChainID         int64
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("chainvote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.RPCURL, "r", "", "JSON-RPC endpoint URL")
	fs.StringVar(&cfg.ContractAddress, "c", "", "Voting contract address (0x-prefixed hex)")

	// Wallet config
	fs.StringVar(&cfg.KeystoreDir, "k", "", "Keystore directory")
	fs.Int64Var(&cfg.ChainID, "chain-id", 0, "Chain ID for transaction signing")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.RPCURL == "" {
		cfg.RPCURL = os.Getenv("RPC_URL")
	}
	if cfg.RPCURL == "" {
		return Config{}, errors.New("RPC URL required (use -r or RPC_URL env)")
	}

	if cfg.ContractAddress == "" {
		cfg.ContractAddress = os.Getenv("CONTRACT_ADDRESS")
	}
	if cfg.ContractAddress == "" {
		return Config{}, errors.New("contract address required (use -c or CONTRACT_ADDRESS env)")
	}
	if !strings.HasPrefix(cfg.ContractAddress, "0x") || len(cfg.ContractAddress) != 42 {
		return Config{}, errors.New("contract address must be a 0x-prefixed 20-byte hex string")
	}

	if cfg.KeystoreDir == "" {
		cfg.KeystoreDir = os.Getenv("KEYSTORE_DIR")
		if cfg.KeystoreDir == "" {
			cfg.KeystoreDir = "./keystore"
		}
	}

	if cfg.ChainID == 0 {
		if idStr := os.Getenv("CHAIN_ID"); idStr != "" {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid CHAIN_ID env variable")
			}
			cfg.ChainID = id
		} else {
			cfg.ChainID = 1337 // default: local dev chain
		}
	}

	return cfg, nil
}
