package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/chainvote/cliparse"
	"github.com/danielhkuo/chainvote/gateway"
	"github.com/danielhkuo/chainvote/middleware"
	"github.com/danielhkuo/chainvote/router"
	"github.com/danielhkuo/chainvote/state"
	"github.com/danielhkuo/chainvote/wallet"
)

func main() {
	var err error

	// Optional .env for local development
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the RPC node
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		slog.Error("node connection failed", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	// Verify connection and chain
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	chainID, err := client.ChainID(ctx)
	cancel()
	if err != nil {
		slog.Error("node ping failed", "error", err)
		os.Exit(1)
	}
	if chainID.Int64() != cfg.ChainID {
		slog.Error("chain ID mismatch", "configured", cfg.ChainID, "node", chainID.Int64())
		os.Exit(1)
	}
	slog.Info("Node connected", "chain_id", chainID.Int64())

	// Bind the contract gateway
	gw, err := gateway.New(client, common.HexToAddress(cfg.ContractAddress))
	if err != nil {
		slog.Error("contract binding failed", "error", err)
		os.Exit(1)
	}

	// Open the wallet and the state store
	w := wallet.Open(cfg.KeystoreDir, cfg.ChainID)
	if !w.Available() {
		slog.Warn("keystore holds no accounts; connect will fail until one is added", "dir", cfg.KeystoreDir)
	}
	store := state.NewStore()

	// Create router
	mux := router.NewRouter(w, gw, store)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "contract", cfg.ContractAddress)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
