package client

import "testing"

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("HEDERA_NETWORK", "testnet")
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.1234")
	t.Setenv("HEDERA_PRIVATE_KEY", "db484b828e64b2d8f12ce3c0a0e93a0b8cce7af1bb8f39c97732394482538e10")

	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if config.Network != "testnet" {
		t.Fatalf("unexpected network: %s", config.Network)
	}
	if config.OperatorAccountID != "0.0.1234" {
		t.Fatalf("unexpected account ID: %s", config.OperatorAccountID)
	}
}

func TestConfigFromEnvOperatorAliases(t *testing.T) {
	t.Setenv("HEDERA_ACCOUNT_ID", "")
	t.Setenv("HEDERA_PRIVATE_KEY", "")
	t.Setenv("OPERATOR_ID", "0.0.42")
	t.Setenv("OPERATOR_KEY", "db484b828e64b2d8f12ce3c0a0e93a0b8cce7af1bb8f39c97732394482538e10")

	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if config.OperatorAccountID != "0.0.42" {
		t.Fatalf("unexpected account ID: %s", config.OperatorAccountID)
	}
}

func TestConfigFromEnvMissingOperator(t *testing.T) {
	for _, key := range []string{
		"HEDERA_ACCOUNT_ID", "HEDERA_OPERATOR_ID", "OPERATOR_ID",
		"HEDERA_PRIVATE_KEY", "HEDERA_OPERATOR_KEY", "OPERATOR_KEY",
	} {
		t.Setenv(key, "")
	}

	if _, err := ConfigFromEnv(); err == nil {
		t.Fatalf("expected error when operator is not configured")
	}
}

func TestNewClientValidatesConfig(t *testing.T) {
	if _, err := NewClient(Config{Network: "testnet"}); err == nil {
		t.Fatalf("expected error for missing operator")
	}

	if _, err := NewClient(Config{
		Network:            "testnet",
		OperatorAccountID:  "not-an-id",
		OperatorPrivateKey: "db484b828e64b2d8f12ce3c0a0e93a0b8cce7af1bb8f39c97732394482538e10",
	}); err == nil {
		t.Fatalf("expected error for malformed operator account ID")
	}
}
