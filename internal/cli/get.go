package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/passkeeper/internal/common"
)

// Get looks a service up and copies its password to the clipboard. The
// password itself is never printed. A clipboard failure is reported to
// the user but has no effect on the store.
func (a *App) Get(ctx context.Context) error {
	service, err := GetSimpleText(a.reader, "Enter service name:", os.Stdout)
	if err != nil {
		return err
	}

	entry, err := a.store.Get(service)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("Could not find an entry for service:", service)
			return nil
		}
		return err
	}

	if err := copyToClipboard(entry.Password); err != nil {
		a.logger.Error(ctx, "clipboard copy failed", "service", service, "err", err)
		printlnFn("Found an entry, but copying the password to the clipboard failed")
		return err
	}

	printlnFn(fmt.Sprintf("Found entry for %s - password was copied to clipboard!", service))
	return nil
}
