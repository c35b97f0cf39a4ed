package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Str0ngPass!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "Str0ngPass!" {
		t.Fatal("hash equals plaintext")
	}

	if err := h.Compare(hash, "Str0ngPass!"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestBcryptHasher_SaltedPerHash(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	h1, err := h.Hash("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := h.Hash("same")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatal("identical hashes for same password")
	}
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(0)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("cost %d", h.cost)
	}
}
