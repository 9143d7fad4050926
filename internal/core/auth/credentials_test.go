package auth

import "testing"

func TestAdminCredentials_Verify(t *testing.T) {
	creds := NewAdminCredentials("admin", "s3cret-key")

	if !creds.Verify("admin", "s3cret-key") {
		t.Fatalf("expected exact match to verify")
	}

	cases := []struct {
		name     string
		username string
		secret   string
	}{
		{"wrong username", "admim", "s3cret-key"},
		{"wrong secret first byte", "admin", "t3cret-key"},
		{"wrong secret last byte", "admin", "s3cret-kez"},
		{"secret too short", "admin", "s3cret-ke"},
		{"secret too long", "admin", "s3cret-key!"},
		{"empty username", "", "s3cret-key"},
		{"empty secret", "admin", ""},
		{"both empty", "", ""},
		{"swapped", "s3cret-key", "admin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if creds.Verify(tc.username, tc.secret) {
				t.Fatalf("Verify(%q, %q) = true, want false", tc.username, tc.secret)
			}
		})
	}
}

func TestAdminCredentials_BothFieldsRequired(t *testing.T) {
	creds := NewAdminCredentials("admin", "s3cret-key")

	// A correct username with a wrong secret (and vice versa) must fail;
	// partial matches never authenticate.
	if creds.Verify("admin", "wrong") {
		t.Fatalf("correct username alone must not verify")
	}
	if creds.Verify("wrong", "s3cret-key") {
		t.Fatalf("correct secret alone must not verify")
	}
}
