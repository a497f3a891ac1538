package ports

// SessionStore is the local key-value persistence of the current session.
// Read failures are reported as absence.
type SessionStore interface {
	Get(field string) (string, bool)
	Set(fields map[string]string) error
	Clear() error
}
