package core

// Signer produces the signature of a canonical query string.
// Implementations must be safe for concurrent use.
type Signer interface {
	Sign(payload []byte) (string, error)
}
