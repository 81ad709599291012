package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/gym-ui-api/internal/domain/model"
	"github.com/gymdesk/gym-ui-api/internal/testutil"
)

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func TestMemberRepo_Create_Get_List_Update_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewMemberRepo(db)

		email := uniqueEmail("dana")
		req := testutil.NewMemberRequest().
			WithEmail(email).
			WithPlan(model.MembershipPremium).
			WithPhone("+4917012345").
			Build()

		m, err := repo.Create(ctx, req)
		require.NoError(t, err)
		require.NotEmpty(t, m.ID)
		assert.Equal(t, model.MembershipPremium, m.Plan)
		assert.True(t, m.Active)
		assert.NotZero(t, m.JoinedAt)

		// get by id
		got, err := repo.GetByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, m.Email, got.Email)

		// get by email is case-insensitive against the lowercased column
		byEmail, err := repo.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, m.ID, byEmail.ID)

		// list with search filter
		q := "dana"
		lst, err := repo.List(ctx, model.MembersListOptions{Limit: 10, Q: &q})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(lst), 1)

		// update - deactivate and switch plan
		basic := model.MembershipBasic
		updated, err := repo.Update(ctx, m.ID, model.UpdateMemberRequest{
			Active: testutil.BoolPtr(false),
			Plan:   &basic,
		})
		require.NoError(t, err)
		assert.False(t, updated.Active)
		assert.Equal(t, model.MembershipBasic, updated.Plan)

		// delete
		deleted, err := repo.Delete(ctx, m.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, m.ID)
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})
}

func TestMemberRepo_DuplicateEmail(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewMemberRepo(db)

		email := uniqueEmail("dup")
		_, err := repo.Create(ctx, testutil.NewMemberRequest().WithEmail(email).Build())
		require.NoError(t, err)

		// Same address with different case still collides.
		_, err = repo.Create(ctx, testutil.NewMemberRequest().
			WithName("Other Person").
			WithEmail("DUP" + email[3:]).
			Build())
		assert.ErrorIs(t, err, ErrMemberEmailExists)
	})
}

func TestMemberRepo_Count(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewMemberRepo(db)

		_, err := repo.Create(ctx, testutil.NewMemberRequest().WithEmail(uniqueEmail("a")).Build())
		require.NoError(t, err)
		_, err = repo.Create(ctx, testutil.NewMemberRequest().
			WithName("Idle Ingrid").
			WithEmail(uniqueEmail("b")).
			Inactive().
			Build())
		require.NoError(t, err)

		total, err := repo.Count(ctx, false)
		require.NoError(t, err)
		active, err := repo.Count(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Equal(t, 1, active)
	})
}

func TestMemberRepo_BuildListWhere(t *testing.T) {
	repo := &MemberRepo{}

	t.Run("no filters", func(t *testing.T) {
		where, args := repo.buildListWhere(model.MembersListOptions{})
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("search matches name or email", func(t *testing.T) {
		q := "  dana "
		where, args := repo.buildListWhere(model.MembersListOptions{Q: &q})
		assert.Equal(t, " WHERE (name ILIKE $1 OR email ILIKE $1)", where)
		assert.Equal(t, []any{"%dana%"}, args)
	})

	t.Run("blank search is ignored", func(t *testing.T) {
		q := "   "
		where, args := repo.buildListWhere(model.MembersListOptions{Q: &q})
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("all filters combined", func(t *testing.T) {
		q := "dana"
		plan := model.MembershipPremium
		where, args := repo.buildListWhere(model.MembersListOptions{
			Q:      &q,
			Active: testutil.BoolPtr(true),
			Plan:   &plan,
		})
		assert.Equal(t, " WHERE (name ILIKE $1 OR email ILIKE $1) AND active = $2 AND plan = $3", where)
		assert.Equal(t, []any{"%dana%", true, plan}, args)
	})
}
