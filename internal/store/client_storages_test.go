package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-tabpfn-client/internal/config"
	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
	"github.com/MKhiriev/go-tabpfn-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClientStorages_SQLite exercises every repository against a real,
// migrated SQLite file.
func TestClientStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	cfg := config.ClientStorage{CacheDir: dir, DB: config.ClientDB{DSN: filepath.Join(dir, "tabpfn.db")}}

	s, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(cfg.DB.DSN)
	require.NoError(t, err, "database file should be created")

	// credentials
	_, err = s.Credentials.GetCredential(ctx)
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.Credentials.SaveCredential(ctx, models.StoredCredential{Email: "a@b.c", AccessToken: "t1", UpdatedAt: now}))
	require.NoError(t, s.Credentials.SaveCredential(ctx, models.StoredCredential{Email: "a@b.c", AccessToken: "t2", UpdatedAt: now}))

	cred, err := s.Credentials.GetCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t2", cred.AccessToken)
	assert.Equal(t, "a@b.c", cred.Email)

	require.NoError(t, s.Credentials.DeleteCredential(ctx))
	_, err = s.Credentials.GetCredential(ctx)
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	// train sets
	require.NoError(t, s.TrainSets.SaveTrainSetUID(ctx, "fp1", "uid-1"))
	uid, err := s.TrainSets.GetTrainSetUID(ctx, "fp1")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)

	require.NoError(t, s.TrainSets.DeleteTrainSetUID(ctx, "uid-1"))
	_, err = s.TrainSets.GetTrainSetUID(ctx, "fp1")
	assert.ErrorIs(t, err, ErrTrainSetNotFound)

	// seen messages
	require.NoError(t, s.SeenMessages.MarkSeen(ctx, "d1"))
	require.NoError(t, s.SeenMessages.MarkSeen(ctx, "d1", "d2"))
	unseen, err := s.SeenMessages.FilterUnseen(ctx, "d1", "d2", "d3")
	require.NoError(t, err)
	assert.Equal(t, []string{"d3"}, unseen)

	require.NoError(t, s.SeenMessages.DeleteAllSeenMessages(ctx))
	unseen, err = s.SeenMessages.FilterUnseen(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, []string{"d1"}, unseen)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
