package cli

import (
	"context"
	"fmt"
)

// List prints service and username for every stored entry. Passwords are
// deliberately omitted from listing output.
func (a *App) List(ctx context.Context) error {
	for _, item := range a.store.List() {
		printlnFn(fmt.Sprintf("Service: %s, Username: %s", item.Service, item.Username))
	}
	return nil
}
