package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	tm := TokenManager{Secret: []byte("test-secret")}

	token, err := tm.Issue(42, true)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if claims.UserID != 42 || !claims.IsStaff {
		t.Fatalf("claims wrong: %+v", claims)
	}
	if claims.TokenID == "" {
		t.Fatalf("expected a jti to be set")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tm := TokenManager{Secret: []byte("test-secret")}
	other := TokenManager{Secret: []byte("different")}

	token, err := tm.Issue(42, false)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}
	if _, err := other.Verify(token); err == nil {
		t.Fatalf("expected verification failure for wrong secret")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tm := TokenManager{Secret: []byte("test-secret")}
	if _, err := tm.Verify("not.a.token"); err == nil {
		t.Fatalf("expected verification failure")
	}
}

func TestRevokedTokenIsRejected(t *testing.T) {
	tm := TokenManager{Secret: []byte("test-secret"), Blacklist: NewBlacklist("")}

	token, err := tm.Issue(42, false)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}
	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}

	tm.Revoke(claims)
	if _, err := tm.Verify(token); err == nil {
		t.Fatalf("expected revoked token to be rejected")
	}
}

func TestBlacklistExpiry(t *testing.T) {
	bl := NewBlacklist("")
	bl.Revoke("token-1", 10*time.Millisecond)

	if !bl.IsRevoked("token-1") {
		t.Fatalf("token should be revoked right away")
	}
	time.Sleep(20 * time.Millisecond)
	if bl.IsRevoked("token-1") {
		t.Fatalf("revocation should expire with the token")
	}
}
