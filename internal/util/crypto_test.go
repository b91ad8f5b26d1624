package util

import (
	"bytes"
	"testing"
)

func TestValidatePassphrase(t *testing.T) {
	cases := []struct {
		name  string
		pass  string
		valid bool
	}{
		{"too short", "abc12", false},
		{"no digit", "password", false},
		{"no letter", "12345678", false},
		{"valid", "pass1234", true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassphrase(tc.pass)
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got error %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("expected error for %q", tc.pass)
			}
		})
	}
}

func TestDeriveKeyDeterministicPerSalt(t *testing.T) {
	salt, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt failed: %v", err)
	}
	a := DeriveKey("pass1234", salt)
	b := DeriveKey("pass1234", salt)
	if len(a) != 32 {
		t.Fatalf("key length = %d, want 32", len(a))
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("same passphrase and salt should derive the same key")
	}
	other, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt failed: %v", err)
	}
	if bytes.Equal(a, DeriveKey("pass1234", other)) {
		t.Fatalf("different salts should derive different keys")
	}
	if bytes.Equal(a, DeriveKey("pass12345", salt)) {
		t.Fatalf("different passphrases should derive different keys")
	}
}
