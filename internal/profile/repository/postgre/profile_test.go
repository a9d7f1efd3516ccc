package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "strategy-shop/internal/profile/repository"
	"strategy-shop/pkg/log"
)

var createdAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func profileRows() *sqlmock.Rows {
	return sqlmock.NewRows(profileColumns)
}

func newTestRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop()).(*implRepository), mock
}

func TestGetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, business_name, business_type, revenue, team_size, biggest_challenge, created_at, conversation_count, has_provided_email, has_completed_profile FROM profiles WHERE id = $1 LIMIT 1`)).
			WithArgs("user_1").
			WillReturnRows(profileRows().AddRow("user_1", "a@b.co", "Acme", "agency", "$1M", "5", "hiring", createdAt, 2, true, true))

		p, err := r.GetProfile(context.Background(), "user_1")
		require.NoError(t, err)
		assert.Equal(t, "user_1", p.ID)
		assert.Equal(t, "agency", p.BusinessType)
		assert.Equal(t, 2, p.ConversationCount)
		assert.True(t, p.HasCompletedProfile)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found returns zero value", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`SELECT .* FROM profiles WHERE id = \$1`).
			WithArgs("ghost").
			WillReturnRows(profileRows())

		p, err := r.GetProfile(context.Background(), "ghost")
		require.NoError(t, err)
		assert.Empty(t, p.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db failure", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`SELECT .* FROM profiles`).WillReturnError(errors.New("conn reset"))

		_, err := r.GetProfile(context.Background(), "user_1")
		assert.ErrorIs(t, err, repo.ErrFailedToGet)
	})
}

func TestCreateProfile(t *testing.T) {
	r, mock := newTestRepo(t)
	mock.ExpectQuery(`INSERT INTO profiles \(id,created_at,updated_at\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(id\) DO UPDATE SET id = EXCLUDED.id RETURNING id, email`).
		WithArgs("user_1", createdAt, createdAt).
		WillReturnRows(profileRows().AddRow("user_1", "", "", "", "", "", "", createdAt, 0, false, false))

	p, err := r.CreateProfile(context.Background(), repo.CreateProfileOptions{ID: "user_1", CreatedAt: createdAt})
	require.NoError(t, err)
	assert.Equal(t, "user_1", p.ID)
	assert.Equal(t, createdAt, p.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile(t *testing.T) {
	opt := repo.UpdateProfileOptions{
		ID:                  "user_1",
		Email:               "a@b.co",
		BusinessType:        "agency",
		Revenue:             "$1M",
		HasProvidedEmail:    true,
		HasCompletedProfile: true,
	}

	t.Run("updated", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`UPDATE profiles SET email = \$1, business_name = \$2, business_type = \$3, revenue = \$4, team_size = \$5, biggest_challenge = \$6, has_provided_email = \$7, has_completed_profile = \$8, updated_at = NOW\(\) WHERE id = \$9 RETURNING`).
			WithArgs("a@b.co", "", "agency", "$1M", "", "", true, true, "user_1").
			WillReturnRows(profileRows().AddRow("user_1", "a@b.co", "", "agency", "$1M", "", "", createdAt, 1, true, true))

		p, err := r.UpdateProfile(context.Background(), opt)
		require.NoError(t, err)
		assert.Equal(t, 1, p.ConversationCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`UPDATE profiles SET`).WillReturnRows(profileRows())

		_, err := r.UpdateProfile(context.Background(), opt)
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})
}

func TestIncrementConversationCount(t *testing.T) {
	t.Run("increments", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE profiles SET conversation_count = conversation_count + 1, updated_at = NOW() WHERE id = $1 RETURNING conversation_count`)).
			WithArgs("user_1").
			WillReturnRows(sqlmock.NewRows([]string{"conversation_count"}).AddRow(3))

		count, err := r.IncrementConversationCount(context.Background(), "user_1")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown profile", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`UPDATE profiles SET conversation_count`).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"conversation_count"}))

		_, err := r.IncrementConversationCount(context.Background(), "ghost")
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})
}

func TestDeleteProfile(t *testing.T) {
	r, mock := newTestRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM profiles WHERE id = $1`)).
		WithArgs("user_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.DeleteProfile(context.Background(), "user_1"))
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(`DELETE FROM profiles`).WillReturnError(errors.New("boom"))
	assert.ErrorIs(t, r.DeleteProfile(context.Background(), "user_1"), repo.ErrFailedToDelete)
}
