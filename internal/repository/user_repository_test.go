package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"taskmanager/internal/models"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func userRows(user models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "fullname", "username", "email", "password_hash", "photo", "created_at", "updated_at",
	}).AddRow(
		user.ID, user.Fullname, user.Username, user.Email, user.PasswordHash, user.Photo, user.CreatedAt, user.UpdatedAt,
	)
}

func TestGormUserRepository_FindByUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	want := models.User{
		ID:           "u1",
		Fullname:     "Alice Example",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE username = (.+)").
		WillReturnRows(userRows(want))

	user, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, want.ID, user.ID)
	require.Equal(t, want.Username, user.Username)
	require.Equal(t, want.PasswordHash, user.PasswordHash)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByUsernameNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE username = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.FindByUsername("nobody")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.Nil(t, user)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	want := models.User{ID: "u1", Email: "alice@example.com"}

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE email = (.+)").
		WillReturnRows(userRows(want))

	user, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	require.Equal(t, want.Email, user.Email)

	require.NoError(t, mock.ExpectationsWereMet())
}
