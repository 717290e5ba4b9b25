package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
)

type seenMessageRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSeenMessageRepository returns a SQLite-backed [SeenMessageRepository].
func NewSeenMessageRepository(db *DB, logger *logger.Logger) SeenMessageRepository {
	return &seenMessageRepository{db: db, logger: logger, now: time.Now}
}

func (r *seenMessageRepository) FilterUnseen(ctx context.Context, digests ...string) ([]string, error) {
	if len(digests) == 0 {
		return nil, nil
	}

	query, args, err := buildSelectSeenDigestsQuery(digests)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "seenMessageRepository.FilterUnseen").
			Msg("failed to query seen messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	seen := make(map[string]struct{}, len(digests))
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		seen[d] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	unseen := make([]string, 0, len(digests))
	for _, d := range digests {
		if _, ok := seen[d]; !ok {
			unseen = append(unseen, d)
		}
	}

	return unseen, nil
}

func (r *seenMessageRepository) MarkSeen(ctx context.Context, digests ...string) error {
	if len(digests) == 0 {
		return nil
	}

	query, args, err := buildMarkSeenQuery(r.now().UTC(), digests)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "seenMessageRepository.MarkSeen").
			Int("count", len(digests)).
			Msg("failed to record seen messages")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *seenMessageRepository) DeleteAllSeenMessages(ctx context.Context) error {
	query, args, err := buildDeleteAllSeenMessagesQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "seenMessageRepository.DeleteAllSeenMessages").
			Msg("failed to delete seen messages")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
