package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-br/chamados-api/internal/domain"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock
}

func TestUserRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	repo := NewUserRepository(mock)
	ctx := context.Background()

	user := &domain.User{
		Name:         "Ana",
		Email:        "ana@x.com",
		PasswordHash: "$2a$10$hash",
		Sector:       "TI",
	}

	mock.ExpectQuery(`INSERT INTO users \(name, email, password_hash, sector\)`).
		WithArgs(user.Name, user.Email, user.PasswordHash, user.Sector).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("user-1"))
	require.NoError(t, repo.Create(ctx, user))
	require.Equal(t, "user-1", user.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	repo := NewUserRepository(mock)

	user := &domain.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "h", Sector: "TI"}

	mock.ExpectQuery(`INSERT INTO users \(name, email, password_hash, sector\)`).
		WithArgs(user.Name, user.Email, user.PasswordHash, user.Sector).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), user)
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	repo := NewUserRepository(mock)
	ctx := context.Background()

	cols := []string{"id", "name", "email", "password_hash", "sector"}

	mock.ExpectQuery(`SELECT id, name, email, password_hash, sector\s+FROM users WHERE email=\$1`).
		WithArgs("ana@x.com").
		WillReturnRows(pgxmock.NewRows(cols).AddRow("user-1", "Ana", "ana@x.com", "hash", "TI"))

	user, err := repo.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Equal(t, "user-1", user.ID)
	require.Equal(t, "ana@x.com", user.Email)

	mock.ExpectQuery(`SELECT id, name, email, password_hash, sector\s+FROM users WHERE email=\$1`).
		WithArgs("ghost@x.com").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetByEmail(ctx, "ghost@x.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	repo := NewUserRepository(mock)

	cols := []string{"id", "name", "email", "password_hash", "sector"}
	mock.ExpectQuery(`SELECT id, name, email, password_hash, sector\s+FROM users WHERE id=\$1`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(cols).AddRow("user-1", "Ana", "ana@x.com", "hash", "TI"))

	user, err := repo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "Ana", user.Name)
}
