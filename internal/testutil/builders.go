package testutil

import (
	"time"

	"github.com/gymdesk/gym-ui-api/internal/domain/model"
)

// MemberRequestBuilder provides a fluent interface for building CreateMemberRequest objects for testing.
type MemberRequestBuilder struct {
	req *model.CreateMemberRequest
}

// NewMemberRequest creates a new MemberRequestBuilder with sensible defaults.
func NewMemberRequest() *MemberRequestBuilder {
	return &MemberRequestBuilder{
		req: &model.CreateMemberRequest{
			Name:  "Dana Fields",
			Email: "dana@example.com",
			Plan:  model.MembershipBasic,
		},
	}
}

// WithName sets the member name.
func (b *MemberRequestBuilder) WithName(name string) *MemberRequestBuilder {
	b.req.Name = name
	return b
}

// WithEmail sets the member email.
func (b *MemberRequestBuilder) WithEmail(email string) *MemberRequestBuilder {
	b.req.Email = email
	return b
}

// WithPlan sets the membership plan.
func (b *MemberRequestBuilder) WithPlan(plan model.MembershipPlan) *MemberRequestBuilder {
	b.req.Plan = plan
	return b
}

// WithPhone sets the phone number.
func (b *MemberRequestBuilder) WithPhone(phone string) *MemberRequestBuilder {
	b.req.Phone = &phone
	return b
}

// Inactive marks the member as inactive on creation.
func (b *MemberRequestBuilder) Inactive() *MemberRequestBuilder {
	b.req.Active = BoolPtr(false)
	return b
}

// Build returns the constructed CreateMemberRequest.
func (b *MemberRequestBuilder) Build() *model.CreateMemberRequest {
	return b.req
}

// ActivityRequestBuilder provides a fluent interface for building CreateActivityRequest objects for testing.
type ActivityRequestBuilder struct {
	req *model.CreateActivityRequest
}

// NewActivityRequest creates a new ActivityRequestBuilder with sensible defaults.
// A trainer ID must be supplied since activities reference real trainers.
func NewActivityRequest(trainerID string) *ActivityRequestBuilder {
	return &ActivityRequestBuilder{
		req: &model.CreateActivityRequest{
			Name:            "Morning Spin",
			TrainerID:       trainerID,
			Capacity:        20,
			StartsAt:        time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second),
			DurationMinutes: 45,
		},
	}
}

// WithName sets the activity name.
func (b *ActivityRequestBuilder) WithName(name string) *ActivityRequestBuilder {
	b.req.Name = name
	return b
}

// WithCapacity sets the class capacity.
func (b *ActivityRequestBuilder) WithCapacity(capacity int) *ActivityRequestBuilder {
	b.req.Capacity = capacity
	return b
}

// WithStartsAt sets the start time.
func (b *ActivityRequestBuilder) WithStartsAt(t time.Time) *ActivityRequestBuilder {
	b.req.StartsAt = t
	return b
}

// Build returns the constructed CreateActivityRequest.
func (b *ActivityRequestBuilder) Build() *model.CreateActivityRequest {
	return b.req
}
