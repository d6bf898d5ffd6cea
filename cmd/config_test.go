package cmd

import (
	"strings"
	"testing"
)

func TestConfigCmd_Structure(t *testing.T) {
	if configCmd.Use != "config" {
		t.Errorf("Expected command use 'config', got '%s'", configCmd.Use)
	}

	if configCmd.Short == "" {
		t.Error("Expected command short description to be set")
	}

	// Verify registration on the root command
	found := false
	for _, c := range rootCmd.Commands() {
		if c == configCmd {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'config' command to be registered on root")
	}
}

func TestConfigCmd_DisplaysEffectiveConfig(t *testing.T) {
	stdout, _, err := executeRoot(t, "config")
	if err != nil {
		t.Fatalf("config command returned error: %v", err)
	}

	for _, want := range []string{
		"Effective Configuration",
		"Output Configuration",
		"Labeled",
		"Trailing Newline",
		"Config file:",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("config output missing %q:\n%s", want, stdout)
		}
	}
}

func TestConfigCmd_DefaultValues(t *testing.T) {
	stdout, _, err := executeRoot(t, "config")
	if err != nil {
		t.Fatalf("config command returned error: %v", err)
	}

	if !strings.Contains(stdout, "Labeled:          false") {
		t.Errorf("expected default labeled=false in output:\n%s", stdout)
	}

	if !strings.Contains(stdout, "Trailing Newline: true") {
		t.Errorf("expected default trailing_newline=true in output:\n%s", stdout)
	}
}
