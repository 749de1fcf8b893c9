package google

import (
	"strings"
	"testing"
)

func TestTokenFileName(t *testing.T) {
	tests := []struct {
		account string
		want    string
	}{
		{"", "google.token"},
		{"default", "google.token"},
		{"work", "google-work.token"},
	}

	for _, tt := range tests {
		if got := tokenFileName(tt.account); got != tt.want {
			t.Errorf("tokenFileName(%q) = %q, want %q", tt.account, got, tt.want)
		}
	}
}

func TestHasTokenForAccount_EmptyAccount(t *testing.T) {
	if HasTokenForAccount("") {
		t.Error("expected false for empty account name")
	}
}

func TestGetOAuthConfig(t *testing.T) {
	conf := GetOAuthConfig()

	if len(conf.Scopes) == 0 {
		t.Fatal("expected at least one scope")
	}
	for _, scope := range conf.Scopes {
		if !strings.Contains(scope, "calendar") {
			t.Errorf("unexpected non-calendar scope %q", scope)
		}
	}
	if conf.RedirectURL == "" {
		t.Error("expected a redirect URL")
	}
}

func TestGetAuthURL(t *testing.T) {
	url := GetAuthURL()
	if !strings.Contains(url, "state") {
		t.Errorf("auth URL missing state parameter: %s", url)
	}
}
