package store

// Entry is one stored (service, username, password) record. Entries are
// plain value types: "updating" one means constructing a replacement with
// the same service key, never mutating fields in place. Two entries are
// equal when all three fields are equal.
type Entry struct {
	Service  string
	Username string
	Password string
}

// NewEntry constructs an Entry. No validation is performed here; empty
// strings are accepted and any policy on them belongs to the caller.
func NewEntry(service, username, password string) Entry {
	return Entry{Service: service, Username: username, Password: password}
}
