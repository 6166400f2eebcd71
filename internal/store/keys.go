package store

const (
	// KeyDocument holds the serialized navigation document.
	KeyDocument = "data"
	// KeyPrefixSession is the prefix for session keys (session:<token>).
	KeyPrefixSession = "session:"
	// KeyPrefixApplication is the prefix for link application keys (link_apply:<id>).
	KeyPrefixApplication = "link_apply:"
)

// SessionKey returns the key for a session token
func SessionKey(token string) string {
	return KeyPrefixSession + token
}

// ApplicationKey returns the key for a link application
func ApplicationKey(id string) string {
	return KeyPrefixApplication + id
}

// ExtractApplicationID extracts the application id from its key.
// ok is false when key does not carry the application prefix or has no id.
func ExtractApplicationID(key string) (id string, ok bool) {
	if len(key) <= len(KeyPrefixApplication) || key[:len(KeyPrefixApplication)] != KeyPrefixApplication {
		return "", false
	}
	return key[len(KeyPrefixApplication):], true
}
