package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gymdesk/gym-ui-api/internal/data"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
	"github.com/gymdesk/gym-ui-api/internal/mocks"
	"github.com/gymdesk/gym-ui-api/internal/service"
)

func newMemberHandlers(t *testing.T) (*MemberHandlers, *mocks.MockMemberRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMemberRepository(ctrl)
	svc := service.NewMemberService(service.MemberServiceOptions{MemberRepo: repo})
	return &MemberHandlers{Svc: svc}, repo
}

func sampleMember(id string) *model.Member {
	return &model.Member{
		ID:        id,
		Name:      "Dana Fields",
		Email:     "dana@example.com",
		Plan:      model.MembershipBasic,
		Active:    true,
		JoinedAt:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestMemberHandlersCreate(t *testing.T) {
	h, repo := newMemberHandlers(t)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(sampleMember("m-1"), nil)

	body := `{"name":"Dana Fields","email":"dana@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/members", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got model.Member
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "m-1", got.ID)
}

func TestMemberHandlersCreateEmailConflict(t *testing.T) {
	h, repo := newMemberHandlers(t)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, data.ErrMemberEmailExists)

	body := `{"name":"Dana Fields","email":"dana@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/members", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email_conflict")
}

func TestMemberHandlersCreateValidation(t *testing.T) {
	h, _ := newMemberHandlers(t)

	// Missing name never reaches the repository.
	body := `{"email":"dana@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/members", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_failed")
}

func TestMemberHandlersCreateNullBody(t *testing.T) {
	h, _ := newMemberHandlers(t)

	// A literal JSON null decodes cleanly; it must read as an empty request
	// and fail validation, not blow up in the handler.
	req := httptest.NewRequest(http.MethodPost, "/api/members", strings.NewReader(`null`))
	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() { h.Create(rec, req) })

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_failed")
}

func TestMemberHandlersGetByIDNotFound(t *testing.T) {
	h, repo := newMemberHandlers(t)
	repo.EXPECT().
		GetByID(gomock.Any(), "nope").
		Return(nil, data.ErrMemberNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/members/nope", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	h.GetByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "member_not_found")
}

func TestMemberHandlersListFilters(t *testing.T) {
	h, repo := newMemberHandlers(t)
	repo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, opts model.MembersListOptions) ([]*model.Member, error) {
			assert.Equal(t, 10, opts.Limit)
			assert.Equal(t, 20, opts.Offset)
			require.NotNil(t, opts.Q)
			assert.Equal(t, "dana", *opts.Q)
			require.NotNil(t, opts.Active)
			assert.True(t, *opts.Active)
			require.NotNil(t, opts.Plan)
			assert.Equal(t, model.MembershipPremium, *opts.Plan)
			return []*model.Member{sampleMember("m-1")}, nil
		})

	target := "/api/members?limit=10&offset=20&q=dana&active=true&plan=premium"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"members"`)
}

func TestMemberHandlersListBadPlan(t *testing.T) {
	h, _ := newMemberHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/members?plan=platinum", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_plan")
}

func TestMemberHandlersDelete(t *testing.T) {
	h, repo := newMemberHandlers(t)
	repo.EXPECT().Delete(gomock.Any(), "m-1").Return(true, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/members/m-1", nil)
	req.SetPathValue("id", "m-1")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deleted":true`)
}

func TestMemberHandlersDeleteMissing(t *testing.T) {
	h, repo := newMemberHandlers(t)
	repo.EXPECT().Delete(gomock.Any(), "m-9").Return(false, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/members/m-9", nil)
	req.SetPathValue("id", "m-9")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
