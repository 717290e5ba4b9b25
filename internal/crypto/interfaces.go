package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/fingerprinter_mock.go -package=mock

// Fingerprinter derives stable content identifiers for locally cached
// artifacts. It knows nothing about the network or the database; its only
// job is to map bytes to short, collision-resistant keys.
//
// Usage:
//
//	key    = Fingerprint(xCSV, yCSV)   // train-set cache key
//	digest = Digest([]byte(message))   // seen greeting message key
type Fingerprinter interface {
	// Fingerprint hashes the ordered parts into a hex-encoded key. Each part
	// is length-prefixed, so moving bytes between adjacent parts changes the
	// result.
	Fingerprint(parts ...[]byte) string

	// Digest hashes a single payload into a hex-encoded key.
	Digest(data []byte) string
}
