package profiles

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pliablepixels/zmng/internal/client/models"
	"github.com/pliablepixels/zmng/internal/common"
	"github.com/pliablepixels/zmng/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "profiles.db")
	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	key := cryptox.DeriveKey([]byte("test-device-secret"))
	return NewSQLiteRepository(db, key)
}

func testProfile() *models.Profile {
	return &models.Profile{
		Name:       "home",
		PortalURL:  "https://cams.example.com/zm",
		APIBaseURL: "https://cams.example.com/zm/api",
		CGIBaseURL: "https://cams.example.com/zm/cgi-bin",
		Username:   "admin",
		Password:   "camera-password",
	}
}

func TestSQLiteRepository_SaveAndGetByName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testProfile()))

	got, err := repo.GetByName(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "home", got.Name)
	assert.Equal(t, "https://cams.example.com/zm/api", got.APIBaseURL)
	assert.Equal(t, "admin", got.Username)
	// The password round-trips through encryption transparently.
	assert.Equal(t, "camera-password", got.Password)
	assert.NotZero(t, got.ID)
}

func TestSQLiteRepository_GetByName_Missing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByName(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteRepository_SaveUpsertsByName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testProfile()))

	updated := testProfile()
	updated.Username = "operator"
	updated.Password = "new-password"
	require.NoError(t, repo.Save(ctx, updated))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "operator", all[0].Username)
	assert.Equal(t, "new-password", all[0].Password)
}

func TestSQLiteRepository_ListOrderedByName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, name := range []string{"office", "home", "garage"} {
		p := testProfile()
		p.Name = name
		require.NoError(t, repo.Save(ctx, p))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "garage", all[0].Name)
	assert.Equal(t, "home", all[1].Name)
	assert.Equal(t, "office", all[2].Name)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testProfile()))
	require.NoError(t, repo.Delete(ctx, "home"))

	_, err := repo.GetByName(ctx, "home")
	require.ErrorIs(t, err, common.ErrNotFound)

	// Deleting a missing profile is not an error.
	require.NoError(t, repo.Delete(ctx, "home"))
}

func TestSQLiteRepository_EmptyPasswordStoredWithoutCipher(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	p := testProfile()
	p.Password = ""
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.GetByName(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "", got.Password)
}

func TestSQLiteRepository_PasswordNotStoredInPlaintext(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testProfile()))

	var cipher []byte
	err := repo.db.QueryRowContext(ctx,
		`SELECT password_cipher FROM profiles WHERE name = ?`, "home").Scan(&cipher)
	require.NoError(t, err)
	assert.NotEmpty(t, cipher)
	assert.NotContains(t, string(cipher), "camera-password")
}
