package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pliablepixels/zmng/internal/client/models"
	"github.com/pliablepixels/zmng/internal/common"
	"github.com/pliablepixels/zmng/internal/cryptox"
	"github.com/pliablepixels/zmng/internal/dbx"
)

// SQLiteRepository stores profiles in SQLite, encrypting passwords at rest
// with the supplied key.
type SQLiteRepository struct {
	db  *sql.DB
	key []byte
}

func NewSQLiteRepository(db *sql.DB, key []byte) *SQLiteRepository {
	return &SQLiteRepository{db: db, key: key}
}

func (r *SQLiteRepository) GetByName(ctx context.Context, name string) (*models.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, portal_url, api_base_url, cgi_base_url, username,
		       password_cipher, password_nonce, created_at
		FROM profiles WHERE name = ?`, name)

	p, err := r.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile %q: %w", name, err)
	}
	return p, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, portal_url, api_base_url, cgi_base_url, username,
		       password_cipher, password_nonce, created_at
		FROM profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var result []*models.Profile
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *SQLiteRepository) Save(ctx context.Context, p *models.Profile) error {
	var cipher, nonce []byte
	if p.Password != "" {
		var err error
		cipher, nonce, err = cryptox.EncryptString(p.Password, r.key)
		if err != nil {
			return fmt.Errorf("encrypting profile password: %w", err)
		}
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO profiles (name, portal_url, api_base_url, cgi_base_url,
			                      username, password_cipher, password_nonce)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				portal_url = excluded.portal_url,
				api_base_url = excluded.api_base_url,
				cgi_base_url = excluded.cgi_base_url,
				username = excluded.username,
				password_cipher = excluded.password_cipher,
				password_nonce = excluded.password_nonce
		`, p.Name, p.PortalURL, p.APIBaseURL, p.CGIBaseURL, p.Username, cipher, nonce)
		if err != nil {
			return fmt.Errorf("saving profile %q: %w", p.Name, err)
		}
		return nil
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE name = ?`, name); err != nil {
		return fmt.Errorf("deleting profile %q: %w", name, err)
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteRepository) scan(row rowScanner) (*models.Profile, error) {
	var (
		p         models.Profile
		cipher    []byte
		nonce     []byte
		createdAt string
	)
	err := row.Scan(&p.ID, &p.Name, &p.PortalURL, &p.APIBaseURL, &p.CGIBaseURL,
		&p.Username, &cipher, &nonce, &createdAt)
	if err != nil {
		return nil, err
	}

	if t, err := time.Parse("2006-01-02 15:04:05", createdAt); err == nil {
		p.CreatedAt = t
	}

	if len(cipher) > 0 {
		password, err := cryptox.DecryptString(cipher, nonce, r.key)
		if err != nil {
			return nil, fmt.Errorf("decrypting profile password: %w", err)
		}
		p.Password = password
	}
	return &p, nil
}
