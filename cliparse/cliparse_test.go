// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("RPC_URL", "http://localhost:8545")
	os.Setenv("CONTRACT_ADDRESS", "0x1111111111111111111111111111111111111111")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.ChainID != 1337 {
		t.Errorf("expected default chain id 1337, got %d", cfg.ChainID)
	}
	if cfg.KeystoreDir != "./keystore" {
		t.Errorf("expected default keystore dir, got %q", cfg.KeystoreDir)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{
		"-p", "8080",
		"-r", "ws://localhost:8546",
		"-c", "0x2222222222222222222222222222222222222222",
		"-chain-id", "11155111",
	})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.ChainID != 11155111 {
		t.Errorf("expected chain id 11155111, got %d", cfg.ChainID)
	}
}

func TestParseFlags_MissingRequired(t *testing.T) {
	os.Clearenv()

	tests := []struct {
		name string
		args []string
	}{
		{"no rpc url", []string{"-c", "0x2222222222222222222222222222222222222222"}},
		{"no contract address", []string{"-r", "http://localhost:8545"}},
		{"malformed contract address", []string{"-r", "http://localhost:8545", "-c", "not-an-address"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
