package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	tableCredentials  = "credentials"
	tableTrainSets    = "train_sets"
	tableSeenMessages = "seen_messages"

	// credentialRowID pins the credentials table to a single row.
	credentialRowID = 1
)

// builder is the squirrel statement builder for SQLite's ? placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertCredentialQuery(email, accessToken string, updatedAt time.Time) (string, []any, error) {
	return builder.Insert(tableCredentials).
		Columns("id", "email", "access_token", "updated_at").
		Values(credentialRowID, email, accessToken, updatedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET email = excluded.email, access_token = excluded.access_token, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectCredentialQuery() (string, []any, error) {
	return builder.Select("email", "access_token", "updated_at").
		From(tableCredentials).
		Where(sq.Eq{"id": credentialRowID}).
		ToSql()
}

func buildDeleteCredentialQuery() (string, []any, error) {
	return builder.Delete(tableCredentials).ToSql()
}

func buildSelectTrainSetQuery(fingerprint string) (string, []any, error) {
	return builder.Select("train_set_uid").
		From(tableTrainSets).
		Where(sq.Eq{"fingerprint": fingerprint}).
		ToSql()
}

func buildSaveTrainSetQuery(fingerprint, uid string, createdAt time.Time) (string, []any, error) {
	return builder.Insert(tableTrainSets).
		Options("OR REPLACE").
		Columns("fingerprint", "train_set_uid", "created_at").
		Values(fingerprint, uid, createdAt).
		ToSql()
}

func buildDeleteTrainSetByUIDQuery(uid string) (string, []any, error) {
	return builder.Delete(tableTrainSets).
		Where(sq.Eq{"train_set_uid": uid}).
		ToSql()
}

func buildDeleteAllTrainSetsQuery() (string, []any, error) {
	return builder.Delete(tableTrainSets).ToSql()
}

func buildSelectSeenDigestsQuery(digests []string) (string, []any, error) {
	return builder.Select("digest").
		From(tableSeenMessages).
		Where(sq.Eq{"digest": digests}).
		ToSql()
}

func buildMarkSeenQuery(seenAt time.Time, digests []string) (string, []any, error) {
	q := builder.Insert(tableSeenMessages).
		Options("OR IGNORE").
		Columns("digest", "seen_at")
	for _, d := range digests {
		q = q.Values(d, seenAt)
	}
	return q.ToSql()
}

func buildDeleteAllSeenMessagesQuery() (string, []any, error) {
	return builder.Delete(tableSeenMessages).ToSql()
}
