package keystore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmuwanga/ohns-backoffice/internal/client/migrations"
	"github.com/dmuwanga/ohns-backoffice/internal/common"
	"github.com/dmuwanga/ohns-backoffice/internal/cryptox"
	"github.com/dmuwanga/ohns-backoffice/internal/dbx"
)

const (
	sqliteFileName = "credentials.db"
	secretFileName = "device.secret"

	// device.secret layout: 32 bytes of secret followed by 32 bytes of salt.
	secretLen = 32
	saltLen   = 32
)

// SQLiteStore keeps credentials in an SQLite database, with every value
// sealed (AES-GCM) under a key derived from a per-device secret. This is the
// encrypted-at-rest backing, standing in for an OS keychain.
type SQLiteStore struct {
	db     *sql.DB
	handle dbx.DBTX
	key    []byte
}

// OpenSQLite opens (creating if needed) the credential database under dir,
// applies the embedded migrations, and derives the sealing key from the
// device secret, generating the secret on first run.
func OpenSQLite(ctx context.Context, dir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	secret, salt, err := loadDeviceSecret(filepath.Join(dir, secretFileName))
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(secret)

	db, err := sql.Open("sqlite", filepath.Join(dir, sqliteFileName))
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db, handle: db, key: cryptox.DeriveStoreKey(secret, salt)}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// loadDeviceSecret reads the device secret file, creating it with fresh
// random material on first run. The file is the root of trust for at-rest
// encryption and is written with owner-only permissions.
func loadDeviceSecret(path string) (secret, salt []byte, err error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != secretLen+saltLen {
			return nil, nil, fmt.Errorf("device secret %s is corrupt", path)
		}
		return data[:secretLen], data[secretLen:], nil
	}
	if !os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("read device secret: %w", err)
	}

	secret = common.GenerateRandByteArray(secretLen)
	salt = common.GenerateRandByteArray(saltLen)
	if err := os.WriteFile(path, append(append([]byte{}, secret...), salt...), 0o600); err != nil {
		return nil, nil, fmt.Errorf("write device secret: %w", err)
	}
	return secret, salt, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string, v any) (bool, error) {
	var blob []byte
	err := s.handle.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&blob)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get credential[%s]: %w", key, err)
	}

	plaintext, err := cryptox.Open(s.key, blob)
	if err != nil {
		return false, fmt.Errorf("failed to unseal credential[%s]: %w", key, err)
	}
	if err := json.Unmarshal(plaintext, v); err != nil {
		return false, fmt.Errorf("failed to decode credential[%s]: %w", key, err)
	}
	return true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, v any) error {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode credential[%s]: %w", key, err)
	}

	blob, err := cryptox.Seal(s.key, plaintext)
	if err != nil {
		return fmt.Errorf("failed to seal credential[%s]: %w", key, err)
	}

	_, err = s.handle.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, blob)
	if err != nil {
		return fmt.Errorf("failed to set credential[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.handle.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete credential[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	common.WipeByteArray(s.key)
	return s.db.Close()
}
