// Package cli implements the interactive dialogs of the PassKeeper CLI:
// a small REPL over the password store plus the prompts that collect
// service names, usernames and passwords from the terminal.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"

	"github.com/dmitrijs2005/passkeeper/internal/config"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/store"
)

// copyToClipboard is a test seam over the system clipboard.
var copyToClipboard = clipboard.WriteAll

// App ties together the configuration, the password store and the
// terminal dialogs. A single App owns the only Store instance for the
// life of the process; the store is never a global.
type App struct {
	config *config.Config
	store  *store.Store
	logger logging.Logger
	reader *bufio.Reader
}

// NewApp opens the store at the configured path. An error here is fatal:
// the interactive session must not start without a usable store.
func NewApp(cfg *config.Config) (*App, error) {
	s, err := store.Open(cfg.StorePath)
	if err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	return &App{
		config: cfg,
		store:  s,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the interactive session and blocks until the user exits or
// standard input is closed.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the password manager!")
	runREPL(ctx, a, a.reader)
}
