package utils

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	os.Setenv("CLIENT_TOKEN_SECRET", "test-secret-key-for-unit-tests")
	code := m.Run()
	os.Exit(code)
}

func TestGenerateAndValidateClientToken(t *testing.T) {
	token, err := GenerateClientToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateClientToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.ClientID == "" {
		t.Error("expected a client id in the claims")
	}
	if claims.Issuer != "suuq-storefront" {
		t.Errorf("unexpected issuer: %s", claims.Issuer)
	}
}

func TestGenerateClientTokenUniqueIDs(t *testing.T) {
	t1, _ := GenerateClientToken()
	t2, _ := GenerateClientToken()

	c1, err := ValidateClientToken(t1)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	c2, err := ValidateClientToken(t2)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if c1.ClientID == c2.ClientID {
		t.Error("expected distinct client ids")
	}
}

func TestValidateClientTokenGarbage(t *testing.T) {
	if _, err := ValidateClientToken("not-a-token"); err == nil {
		t.Error("expected error for garbage token")
	}
}

func TestValidateClientTokenWrongSecret(t *testing.T) {
	token, err := GenerateClientToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	os.Setenv("CLIENT_TOKEN_SECRET", "a-different-secret")
	defer os.Setenv("CLIENT_TOKEN_SECRET", "test-secret-key-for-unit-tests")

	if _, err := ValidateClientToken(token); err == nil {
		t.Error("expected error for token signed with another secret")
	}
}
