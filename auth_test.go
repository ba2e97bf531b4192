package gearpress

import "testing"

func TestSignIn(t *testing.T) {
	s := setupTestStore(t)
	auth := NewAuthenticator(s)

	if err := auth.SeedAccount("admin@example.com", "hunter2hunter2"); err != nil {
		t.Fatalf("SeedAccount failed: %v", err)
	}

	if err := auth.SignIn("admin@example.com", "hunter2hunter2"); err != nil {
		t.Errorf("SignIn with correct credentials failed: %v", err)
	}
	if err := auth.SignIn("admin@example.com", "wrong"); err != ErrBadCredentials {
		t.Errorf("wrong password: got %v, want ErrBadCredentials", err)
	}
	if err := auth.SignIn("nobody@example.com", "hunter2hunter2"); err != ErrBadCredentials {
		t.Errorf("unknown email: got %v, want ErrBadCredentials", err)
	}
}

func TestSeedAccountRotatesPassword(t *testing.T) {
	s := setupTestStore(t)
	auth := NewAuthenticator(s)

	if err := auth.SeedAccount("admin@example.com", "old-password"); err != nil {
		t.Fatalf("SeedAccount failed: %v", err)
	}
	if err := auth.SeedAccount("admin@example.com", "new-password"); err != nil {
		t.Fatalf("SeedAccount update failed: %v", err)
	}

	if err := auth.SignIn("admin@example.com", "old-password"); err != ErrBadCredentials {
		t.Errorf("old password should no longer work, got %v", err)
	}
	if err := auth.SignIn("admin@example.com", "new-password"); err != nil {
		t.Errorf("new password should work, got %v", err)
	}
}
