package domain

// LocalStorage is the durable client-side key/value store that keeps the
// operator session between runs.
type LocalStorage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}
