package security

import (
	"strings"
	"testing"
)

func TestHashPassword_KnownDigests(t *testing.T) {
	cases := map[string]string{
		"password123": "ef92b778bafe771e89245b89ecbc08a44a4e166c06659911881f383d4473e94f",
		"mypassword":  "89e01536ac207279409d4de1e5253e01f4a1769e696db0d6062ca9b8f56767c8",
		"secret456":   "3c2122a1d02657a5aa61ba86504a111b04c425df3471f3b8d48d76e7557f3a7e",
	}
	for pw, want := range cases {
		got := HashPassword(pw)
		if got != want {
			t.Fatalf("HashPassword(%q) = %q, want %q", pw, got, want)
		}
	}
}

func TestHashPassword_Encoding(t *testing.T) {
	got := HashPassword("anything at all")
	if len(got) != 64 {
		t.Fatalf("digest length = %d, want 64", len(got))
	}
	if got != strings.ToLower(got) {
		t.Fatalf("digest not lower-case: %q", got)
	}
}
