package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/gym-ui-api/internal/domain/model"
	"github.com/gymdesk/gym-ui-api/internal/testutil"
)

func createTestTrainer(t *testing.T, db *sql.DB) *model.Trainer {
	t.Helper()
	tr, err := NewTrainerRepo(db).Create(context.Background(), &model.CreateTrainerRequest{
		Name:      "Tom Trainer",
		Email:     uniqueEmail("trainer"),
		Specialty: "Spinning",
	})
	require.NoError(t, err)
	return tr
}

func createTestActivity(t *testing.T, db *sql.DB, trainerID string) *model.Activity {
	t.Helper()
	a, err := NewActivityRepo(db).Create(context.Background(), testutil.NewActivityRequest(trainerID).Build())
	require.NoError(t, err)
	return a
}

func createTestMember(t *testing.T, db *sql.DB) *model.Member {
	t.Helper()
	m, err := NewMemberRepo(db).Create(context.Background(), testutil.NewMemberRequest().
		WithEmail(uniqueEmail("member")).
		Build())
	require.NoError(t, err)
	return m
}

func TestBookingRepo_CreateAndStatus(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewBookingRepo(db)

		trainer := createTestTrainer(t, db)
		activity := createTestActivity(t, db, trainer.ID)
		member := createTestMember(t, db)

		b, err := repo.Create(ctx, &model.CreateBookingRequest{
			MemberID:   member.ID,
			ActivityID: activity.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, model.BookingBooked, b.Status)
		assert.NotZero(t, b.BookedAt)

		count, err := repo.CountActiveByActivity(ctx, activity.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		// A second live booking for the same member and class is rejected.
		_, err = repo.Create(ctx, &model.CreateBookingRequest{
			MemberID:   member.ID,
			ActivityID: activity.ID,
		})
		assert.ErrorIs(t, err, ErrBookingDuplicate)

		// Cancelling frees the slot and allows rebooking.
		cancelled, err := repo.SetStatus(ctx, b.ID, model.BookingCancelled)
		require.NoError(t, err)
		assert.Equal(t, model.BookingCancelled, cancelled.Status)

		count, err = repo.CountActiveByActivity(ctx, activity.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		rebooked, err := repo.Create(ctx, &model.CreateBookingRequest{
			MemberID:   member.ID,
			ActivityID: activity.ID,
		})
		require.NoError(t, err)
		assert.NotEqual(t, b.ID, rebooked.ID)
	})
}

func TestBookingRepo_ListFilters(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewBookingRepo(db)

		trainer := createTestTrainer(t, db)
		spin := createTestActivity(t, db, trainer.ID)
		yoga := createTestActivity(t, db, trainer.ID)
		member := createTestMember(t, db)
		other := createTestMember(t, db)

		for _, pair := range []struct{ memberID, activityID string }{
			{member.ID, spin.ID},
			{member.ID, yoga.ID},
			{other.ID, spin.ID},
		} {
			_, err := repo.Create(ctx, &model.CreateBookingRequest{
				MemberID:   pair.memberID,
				ActivityID: pair.activityID,
			})
			require.NoError(t, err)
		}

		byMember, err := repo.List(ctx, model.BookingsListOptions{Limit: 10, MemberID: &member.ID})
		require.NoError(t, err)
		assert.Len(t, byMember, 2)

		byActivity, err := repo.List(ctx, model.BookingsListOptions{Limit: 10, ActivityID: &spin.ID})
		require.NoError(t, err)
		assert.Len(t, byActivity, 2)

		booked := model.BookingBooked
		all, err := repo.List(ctx, model.BookingsListOptions{Limit: 10, Status: &booked})
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}

func TestActivityRepo_DeleteWithBookings(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		activities := NewActivityRepo(db)

		trainer := createTestTrainer(t, db)
		activity := createTestActivity(t, db, trainer.ID)
		member := createTestMember(t, db)

		_, err := NewBookingRepo(db).Create(ctx, &model.CreateBookingRequest{
			MemberID:   member.ID,
			ActivityID: activity.ID,
		})
		require.NoError(t, err)

		_, err = activities.Delete(ctx, activity.ID)
		assert.ErrorIs(t, err, ErrActivityHasBookings)
	})
}

func TestBookingRepo_CreateEnforcesCapacity(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewBookingRepo(db)

		trainer := createTestTrainer(t, db)
		tight, err := NewActivityRepo(db).Create(ctx, testutil.NewActivityRequest(trainer.ID).
			WithName("Tiny Class").
			WithCapacity(1).
			Build())
		require.NoError(t, err)

		first := createTestMember(t, db)
		second := createTestMember(t, db)

		_, err = repo.Create(ctx, &model.CreateBookingRequest{
			MemberID:   first.ID,
			ActivityID: tight.ID,
		})
		require.NoError(t, err)

		// The row-locked re-check turns away the booking that would
		// oversubscribe the class.
		_, err = repo.Create(ctx, &model.CreateBookingRequest{
			MemberID:   second.ID,
			ActivityID: tight.ID,
		})
		assert.ErrorIs(t, err, ErrBookingCapacity)

		_, err = repo.Create(ctx, &model.CreateBookingRequest{
			MemberID:   first.ID,
			ActivityID: "00000000-0000-0000-0000-000000000000",
		})
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})
}
