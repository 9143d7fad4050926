package auth

import (
	"strings"
	"testing"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher()

	digest, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "correct horse battery staple" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !h.Verify("correct horse battery staple", digest) {
		t.Fatalf("round trip verify failed")
	}
	if h.Verify("wrong password", digest) {
		t.Fatalf("wrong plaintext must not verify")
	}
}

func TestHasher_SelfDescribingDigest(t *testing.T) {
	h := NewHasher()

	digest, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	// bcrypt digests carry their algorithm/cost/salt prefix; verification
	// must not need any external metadata.
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("expected self-describing bcrypt digest, got %q", digest)
	}
}

func TestHasher_SaltedOutput(t *testing.T) {
	h := NewHasher()

	d1, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	d2, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("two hashes of the same input should differ (random salt)")
	}
	if !h.Verify("same input", d1) || !h.Verify("same input", d2) {
		t.Fatalf("both salted digests must verify")
	}
}

func TestHasher_GarbageDigest(t *testing.T) {
	h := NewHasher()
	if h.Verify("anything", "not-a-bcrypt-digest") {
		t.Fatalf("garbage digest must not verify")
	}
}
