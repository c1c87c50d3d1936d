package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("store path from -f", func(t *testing.T) {
		os.Args = []string{"testbin", "-f", "/tmp/vault.json"}

		cfg := &Config{StorePath: "passwords.json"}
		parseFlags(cfg)

		assert.Equal(t, "/tmp/vault.json", cfg.StorePath)
	})

	t.Run("no flags keeps defaults", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{StorePath: "passwords.json"}
		parseFlags(cfg)

		assert.Equal(t, "passwords.json", cfg.StorePath)
	})

	t.Run("unrelated flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "conf.json", "-x", "1"}

		cfg := &Config{StorePath: "passwords.json"}
		parseFlags(cfg)

		assert.Equal(t, "passwords.json", cfg.StorePath)
	})
}
