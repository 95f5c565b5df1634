package main

import "testing"

func TestServeCommandFlags(t *testing.T) {
	// serve loads the same tuning config as play; the flag must exist on
	// both commands or custom tuning is unreachable on the server.
	for _, name := range []string{"ssh", "host-key", "idle-timeout", "config"} {
		if serveCmd.Flags().Lookup(name) == nil {
			t.Errorf("serve command is missing the --%s flag", name)
		}
	}
}

func TestPlayCommandFlags(t *testing.T) {
	for _, name := range []string{"config", "difficulty"} {
		if playCmd.Flags().Lookup(name) == nil {
			t.Errorf("play command is missing the --%s flag", name)
		}
	}
}
