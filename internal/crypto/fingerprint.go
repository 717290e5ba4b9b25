// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// blake2bFingerprinter is the private implementation of [Fingerprinter].
type blake2bFingerprinter struct{}

// NewFingerprinter constructs a [Fingerprinter] backed by unkeyed
// BLAKE2b-256.
func NewFingerprinter() Fingerprinter {
	return blake2bFingerprinter{}
}

// Fingerprint implements [Fingerprinter]. Every part is preceded by its
// length as a big-endian uint64.
func (blake2bFingerprinter) Fingerprint(parts ...[]byte) string {
	// New256 only fails for keys longer than 64 bytes
	h, _ := blake2b.New256(nil)

	var size [8]byte
	for _, part := range parts {
		binary.BigEndian.PutUint64(size[:], uint64(len(part)))
		h.Write(size[:])
		h.Write(part)
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Digest implements [Fingerprinter].
func (blake2bFingerprinter) Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
