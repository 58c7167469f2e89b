package utils

import "testing"

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plain password")
	}
	if !VerifyPassword(hash, "s3cret-pass") {
		t.Fatal("VerifyPassword() rejected the correct password")
	}
	if VerifyPassword(hash, "wrong-pass") {
		t.Fatal("VerifyPassword() accepted a wrong password")
	}
	if VerifyPassword("not-a-hash", "s3cret-pass") {
		t.Fatal("VerifyPassword() accepted a malformed hash")
	}
}
