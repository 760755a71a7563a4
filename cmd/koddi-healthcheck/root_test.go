package main

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// newTestFlags mirrors the flag names and types that carry env fallbacks.
func newTestFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("email", "", "")
	fs.String("password", "", "")
	fs.Int("member-group-id", 0, "")
	fs.Int("advertiser-id", 0, "")
	fs.String("client-name", "", "")
	return fs
}

func TestApplyEnvFallbacks_FillsUnsetFlags(t *testing.T) {
	t.Setenv("KODDI_EMAIL", "env@example.com")
	t.Setenv("KODDI_MEMBER_GROUP_ID", "42")

	fs := newTestFlags()
	if err := applyEnvFallbacks(fs); err != nil {
		t.Fatalf("applyEnvFallbacks() error = %v", err)
	}

	if got, _ := fs.GetString("email"); got != "env@example.com" {
		t.Errorf("email = %q, want %q", got, "env@example.com")
	}
	if got, _ := fs.GetInt("member-group-id"); got != 42 {
		t.Errorf("member-group-id = %d, want 42", got)
	}
}

func TestApplyEnvFallbacks_FlagWinsOverEnv(t *testing.T) {
	t.Setenv("KODDI_EMAIL", "env@example.com")

	fs := newTestFlags()
	if err := fs.Set("email", "flag@example.com"); err != nil {
		t.Fatal(err)
	}
	if err := applyEnvFallbacks(fs); err != nil {
		t.Fatalf("applyEnvFallbacks() error = %v", err)
	}

	if got, _ := fs.GetString("email"); got != "flag@example.com" {
		t.Errorf("email = %q, want the flag value to win", got)
	}
}

func TestApplyEnvFallbacks_EmptyEnvIgnored(t *testing.T) {
	t.Setenv("KODDI_PASSWORD", "")

	fs := newTestFlags()
	if err := applyEnvFallbacks(fs); err != nil {
		t.Fatalf("applyEnvFallbacks() error = %v", err)
	}

	if got, _ := fs.GetString("password"); got != "" {
		t.Errorf("password = %q, want empty", got)
	}
}

func TestApplyEnvFallbacks_InvalidIntReportsVariable(t *testing.T) {
	t.Setenv("KODDI_ADVERTISER_ID", "not-a-number")

	fs := newTestFlags()
	err := applyEnvFallbacks(fs)
	if err == nil {
		t.Fatal("applyEnvFallbacks() error = nil, want parse error")
	}
	if want := "KODDI_ADVERTISER_ID"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should name %s", err, want)
	}
}
