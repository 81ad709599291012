package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gymdesk/gym-ui-api/internal/data"
	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
	"github.com/gymdesk/gym-ui-api/internal/mocks"
	"github.com/gymdesk/gym-ui-api/internal/service"
)

type bookingHandlerFixture struct {
	handlers   *BookingHandlers
	bookings   *mocks.MockBookingRepository
	members    *mocks.MockMemberRepository
	activities *mocks.MockActivityRepository
}

func newBookingHandlers(t *testing.T) *bookingHandlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	bookings := mocks.NewMockBookingRepository(ctrl)
	members := mocks.NewMockMemberRepository(ctrl)
	activities := mocks.NewMockActivityRepository(ctrl)

	bookingSvc := service.NewBookingService(service.BookingServiceOptions{
		BookingRepo:  bookings,
		MemberRepo:   members,
		ActivityRepo: activities,
	})
	memberSvc := service.NewMemberService(service.MemberServiceOptions{MemberRepo: members})

	return &bookingHandlerFixture{
		handlers:   &BookingHandlers{Svc: bookingSvc, Members: memberSvc},
		bookings:   bookings,
		members:    members,
		activities: activities,
	}
}

func memberSession(email string) *domainauth.Session {
	return &domainauth.Session{
		UserID:      "u-1",
		DisplayName: "Mia Member",
		Email:       email,
		Role:        domainauth.RoleMember,
		Verified:    true,
		Token:       "tok-1",
	}
}

func withSession(req *http.Request, sess *domainauth.Session) *http.Request {
	return req.WithContext(SetSessionInContext(req.Context(), sess))
}

func sampleBooking(id, memberID string) *model.Booking {
	return &model.Booking{
		ID:         id,
		MemberID:   memberID,
		ActivityID: "a-1",
		Status:     model.BookingBooked,
		BookedAt:   time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC),
	}
}

func TestBookingHandlersListScopedToMember(t *testing.T) {
	fix := newBookingHandlers(t)
	own := sampleMember("m-1")
	fix.members.EXPECT().GetByEmail(gomock.Any(), "mia@example.com").Return(own, nil)
	fix.bookings.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, opts model.BookingsListOptions) ([]*model.Booking, error) {
			// The member_id filter from the query string is overridden.
			require.NotNil(t, opts.MemberID)
			assert.Equal(t, "m-1", *opts.MemberID)
			return []*model.Booking{sampleBooking("b-1", "m-1")}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?member_id=m-9", nil)
	req = withSession(req, memberSession("mia@example.com"))
	rec := httptest.NewRecorder()
	fix.handlers.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookingHandlersListStaffUnscoped(t *testing.T) {
	fix := newBookingHandlers(t)
	fix.bookings.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, opts model.BookingsListOptions) ([]*model.Booking, error) {
			require.NotNil(t, opts.MemberID)
			assert.Equal(t, "m-9", *opts.MemberID)
			return nil, nil
		})

	admin := memberSession("ada@example.com")
	admin.Role = domainauth.RoleAdmin

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?member_id=m-9", nil)
	req = withSession(req, admin)
	rec := httptest.NewRecorder()
	fix.handlers.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookingHandlersCreateForOtherMemberForbidden(t *testing.T) {
	fix := newBookingHandlers(t)
	fix.members.EXPECT().GetByEmail(gomock.Any(), "mia@example.com").Return(sampleMember("m-1"), nil)

	body := `{"member_id":"m-2","activity_id":"a-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req = withSession(req, memberSession("mia@example.com"))
	rec := httptest.NewRecorder()
	fix.handlers.Create(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_allowed")
}

func TestBookingHandlersCreateWithoutMembershipRecord(t *testing.T) {
	fix := newBookingHandlers(t)
	fix.members.EXPECT().
		GetByEmail(gomock.Any(), "mia@example.com").
		Return(nil, data.ErrMemberNotFound)

	body := `{"member_id":"m-1","activity_id":"a-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req = withSession(req, memberSession("mia@example.com"))
	rec := httptest.NewRecorder()
	fix.handlers.Create(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBookingHandlersCreateFullClass(t *testing.T) {
	fix := newBookingHandlers(t)
	member := sampleMember("m-1")
	fix.members.EXPECT().GetByEmail(gomock.Any(), "mia@example.com").Return(member, nil)
	fix.members.EXPECT().GetByID(gomock.Any(), "m-1").Return(member, nil)
	fix.activities.EXPECT().GetByID(gomock.Any(), "a-1").Return(&model.Activity{
		ID:              "a-1",
		Name:            "Morning Spin",
		TrainerID:       "t-1",
		Capacity:        2,
		StartsAt:        time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
	}, nil)
	fix.bookings.EXPECT().CountActiveByActivity(gomock.Any(), "a-1").Return(2, nil)

	body := `{"member_id":"m-1","activity_id":"a-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req = withSession(req, memberSession("mia@example.com"))
	rec := httptest.NewRecorder()
	fix.handlers.Create(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "activity_full")
}

func TestBookingHandlersGetByIDCrossMemberHidden(t *testing.T) {
	fix := newBookingHandlers(t)
	fix.bookings.EXPECT().GetByID(gomock.Any(), "b-2").Return(sampleBooking("b-2", "m-2"), nil)
	fix.members.EXPECT().GetByEmail(gomock.Any(), "mia@example.com").Return(sampleMember("m-1"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/b-2", nil)
	req.SetPathValue("id", "b-2")
	req = withSession(req, memberSession("mia@example.com"))
	rec := httptest.NewRecorder()
	fix.handlers.GetByID(rec, req)

	// Cross-member bookings read as missing, not forbidden.
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingHandlersCancelOwn(t *testing.T) {
	fix := newBookingHandlers(t)
	fix.bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(sampleBooking("b-1", "m-1"), nil)
	fix.members.EXPECT().GetByEmail(gomock.Any(), "mia@example.com").Return(sampleMember("m-1"), nil)
	cancelled := sampleBooking("b-1", "m-1")
	cancelled.Status = model.BookingCancelled
	fix.bookings.EXPECT().
		SetStatus(gomock.Any(), "b-1", model.BookingCancelled).
		Return(cancelled, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/b-1/cancel", nil)
	req.SetPathValue("id", "b-1")
	req = withSession(req, memberSession("mia@example.com"))
	rec := httptest.NewRecorder()
	fix.handlers.Cancel(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(model.BookingCancelled))
}

func TestBookingHandlersCreateNullBody(t *testing.T) {
	fix := newBookingHandlers(t)
	admin := memberSession("ada@example.com")
	admin.Role = domainauth.RoleAdmin

	// A literal JSON null must fall through to validation as an empty
	// request, never reach the repositories, and never panic.
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`null`))
	req = withSession(req, admin)
	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() { fix.handlers.Create(rec, req) })

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_failed")
}
