package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/store"
)

// Update runs the update dialog for an existing service. The user picks
// whether to replace the username or the password; the untouched field is
// carried over from the stored entry, so the replacement record keeps the
// same service key.
func (a *App) Update(ctx context.Context) error {
	service, err := GetSimpleText(a.reader, "Which service would you like to update?", os.Stdout)
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

	printlnFn("Updating service:", service)
	printlnFn("[1] -> Update username")
	printlnFn("[2] -> Update password")

	choice, err := GetSimpleText(a.reader, "", os.Stdout)
	if err != nil {
		return err
	}

	switch choice {
	case "1", "username":
		username, err := GetSimpleText(a.reader, "Enter new username:", os.Stdout)
		if err != nil {
			return err
		}
		return a.applyUpdate(ctx, store.NewEntry(service, username, entry.Password))

	case "2", "password":
		pw, err := GetConfirmedPassword(os.Stdout)
		if err != nil {
			return err
		}
		return a.applyUpdate(ctx, store.NewEntry(service, entry.Username, pw))

	default:
		printlnFn("Invalid command")
		return nil
	}
}

func (a *App) applyUpdate(ctx context.Context, e store.Entry) error {
	if err := a.store.Update(e); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			printlnFn("Could not find an entry for service:", e.Service)
		default:
			a.logger.Error(ctx, "updating entry failed", "service", e.Service, "err", err)
			printlnFn("Failed to update entry:", err)
		}
		return err
	}

	printlnFn("Service", e.Service, "was successfully updated")
	return nil
}
