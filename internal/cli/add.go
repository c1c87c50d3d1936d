package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/password"
	"github.com/dmitrijs2005/passkeeper/internal/store"
)

// Add runs the add-password dialog. The user picks between a generated
// and a manually entered password; either way the service name is read in
// a loop until it does not collide with an existing entry, and the final
// entry is stored and persisted in one step.
func (a *App) Add(ctx context.Context) error {
	printlnFn("Options:")
	printlnFn("[1] -> Generate password")
	printlnFn("[2] -> Enter password")

	choice, err := GetSimpleText(a.reader, "", os.Stdout)
	if err != nil {
		return err
	}

	switch choice {
	case "1", "generate":
		return a.addGenerated(ctx)
	case "2", "enter":
		return a.addManual(ctx)
	default:
		printlnFn("Invalid command")
		return nil
	}
}

// addGenerated collects service and username and stores them with a
// freshly generated password.
func (a *App) addGenerated(ctx context.Context) error {
	service, username, err := a.readServiceAndUsername()
	if err != nil {
		return err
	}

	pw, err := password.Generate()
	if err != nil {
		a.logger.Error(ctx, "password generation failed", "err", err)
		printlnFn("Could not generate a password:", err)
		return err
	}

	return a.saveNew(ctx, store.NewEntry(service, username, pw))
}

// addManual collects service, username and a typed, confirmed password.
func (a *App) addManual(ctx context.Context) error {
	service, username, err := a.readServiceAndUsername()
	if err != nil {
		return err
	}

	pw, err := GetConfirmedPassword(os.Stdout)
	if err != nil {
		return err
	}

	return a.saveNew(ctx, store.NewEntry(service, username, pw))
}

func (a *App) readServiceAndUsername() (string, string, error) {
	service, err := a.readNewServiceName()
	if err != nil {
		return "", "", err
	}
	username, err := GetSimpleText(a.reader, "Enter username:", os.Stdout)
	if err != nil {
		return "", "", err
	}
	return service, username, nil
}

// readNewServiceName re-prompts until the user supplies a non-empty
// service name that is not yet taken. Store.Add enforces uniqueness
// again, so this loop is purely a UX nicety.
func (a *App) readNewServiceName() (string, error) {
	for {
		service, err := GetSimpleText(a.reader, "Enter service name:", os.Stdout)
		if err != nil {
			return "", err
		}
		if service == "" {
			printlnFn("Service name must not be empty, please try again")
			continue
		}
		if !a.store.Exists(service) {
			return service, nil
		}
		printlnFn("This service already exists, please try again with a unique service name")
	}
}

func (a *App) saveNew(ctx context.Context, e store.Entry) error {
	if err := a.store.Add(e); err != nil {
		switch {
		case errors.Is(err, common.ErrorDuplicateService):
			printlnFn("This service already exists, entry was not saved")
		default:
			// The entry is in memory but not on disk; say so instead of
			// pretending the save worked.
			a.logger.Error(ctx, "saving entry failed", "service", e.Service, "err", err)
			printlnFn("Failed to save entry to file:", err)
		}
		return err
	}

	printlnFn("Password entry was successfully saved to file")
	return nil
}
