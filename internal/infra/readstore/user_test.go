//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"commerce-ledger/internal/infra"
	sqlc "commerce-ledger/internal/infra/sqlc/generated"
	"commerce-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindUserByIDRow), args.Error(1)
}

func TestUserFindByEmail(t *testing.T) {
	operator := builder.NewUserBuilder().WithRole("operator").WithPasswordHash("$2a$10$hash").BuildInfra()

	t.Run("returns the hash alongside the view", func(t *testing.T) {
		q := new(MockUserReadQueries)
		q.On("FindUserByEmail", mock.Anything, mock.Anything, operator.Email).Return(operator, nil)

		view, hash, err := NewUserReadStore(q, nil).FindByEmail(context.Background(), operator.Email)
		require.NoError(t, err)
		assert.Equal(t, operator.ID, view.ID)
		assert.Equal(t, "operator", view.Role)
		assert.Equal(t, "$2a$10$hash", hash)
		assert.Nil(t, view.LastLogin)
		q.AssertExpectations(t)
	})

	t.Run("inactive users are returned so login can reject them", func(t *testing.T) {
		inactive := builder.NewUserBuilder().AsInactive().BuildInfra()
		q := new(MockUserReadQueries)
		q.On("FindUserByEmail", mock.Anything, mock.Anything, inactive.Email).Return(inactive, nil)

		view, _, err := NewUserReadStore(q, nil).FindByEmail(context.Background(), inactive.Email)
		require.NoError(t, err)
		assert.False(t, view.IsActive)
	})
}

func TestUserFindByID(t *testing.T) {
	lastLogin := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	row := sqlc.FindUserByIDRow{
		ID:        uuid.New(),
		Email:     "viewer@example.com",
		Role:      "viewer",
		IsActive:  true,
		LastLogin: pgtype.Timestamptz{Time: lastLogin, Valid: true},
	}

	q := new(MockUserReadQueries)
	q.On("FindUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

	view, err := NewUserReadStore(q, nil).FindByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, "viewer", view.Role)
	require.NotNil(t, view.LastLogin)
	assert.True(t, lastLogin.Equal(*view.LastLogin))
}

func TestUserLookupErrors(t *testing.T) {
	cases := []struct {
		name     string
		queryErr error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "no rows is not found", queryErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "anything else is a db failure", queryErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := uuid.New()
			q := new(MockUserReadQueries)
			q.On("FindUserByID", mock.Anything, mock.Anything, id).Return(sqlc.FindUserByIDRow{}, tc.queryErr)
			q.On("FindUserByEmail", mock.Anything, mock.Anything, "ghost@example.com").Return(sqlc.Users{}, tc.queryErr)
			store := NewUserReadStore(q, nil)

			view, err := store.FindByID(context.Background(), id)
			assert.Nil(t, view)
			assert.True(t, infra.IsKind(err, tc.wantKind))

			view, hash, err := store.FindByEmail(context.Background(), "ghost@example.com")
			assert.Nil(t, view)
			assert.Empty(t, hash)
			assert.True(t, infra.IsKind(err, tc.wantKind))

			q.AssertExpectations(t)
		})
	}
}
