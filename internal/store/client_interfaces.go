package store

import (
	"context"

	"github.com/MKhiriev/go-tabpfn-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CredentialRepository persists the single access token cached on the device.
type CredentialRepository interface {
	// SaveCredential stores cred, replacing any previously cached one.
	SaveCredential(ctx context.Context, cred models.StoredCredential) error
	// GetCredential returns the cached credential or [ErrCredentialNotFound].
	GetCredential(ctx context.Context) (models.StoredCredential, error)
	// DeleteCredential removes the cached credential. Deleting a missing
	// credential is not an error.
	DeleteCredential(ctx context.Context) error
}

// TrainSetRepository maps dataset fingerprints to server-side train set IDs.
type TrainSetRepository interface {
	// GetTrainSetUID returns the UID cached for fingerprint or
	// [ErrTrainSetNotFound].
	GetTrainSetUID(ctx context.Context, fingerprint string) (string, error)
	// SaveTrainSetUID caches uid under fingerprint, replacing an older entry.
	SaveTrainSetUID(ctx context.Context, fingerprint, uid string) error
	// DeleteTrainSetUID drops every entry pointing at uid.
	DeleteTrainSetUID(ctx context.Context, uid string) error
	// DeleteAllTrainSets empties the cache.
	DeleteAllTrainSets(ctx context.Context) error
}

// SeenMessageRepository records which greeting messages were already shown.
type SeenMessageRepository interface {
	// FilterUnseen returns the subset of digests that were never marked seen,
	// preserving their order.
	FilterUnseen(ctx context.Context, digests ...string) ([]string, error)
	// MarkSeen records digests. Already recorded digests are ignored.
	MarkSeen(ctx context.Context, digests ...string) error
	// DeleteAllSeenMessages forgets every recorded digest.
	DeleteAllSeenMessages(ctx context.Context) error
}
