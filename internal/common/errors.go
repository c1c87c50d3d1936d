// Package common defines shared sentinel errors used across PassKeeper
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound         = errors.New("not found")
	ErrorDuplicateService = errors.New("service already exists")

	// Persistence errors. Write-side failures wrap ErrorPersist so the
	// dialog layer can tell a failed save apart from a plain miss.
	ErrorPersist = errors.New("persist failed")

	// ErrorMalformedStore is reported when the store file exists but its
	// content does not parse. Startup refuses to proceed instead of
	// silently discarding unreadable records.
	ErrorMalformedStore = errors.New("malformed store file")
)
