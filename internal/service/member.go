package service

import (
	"context"

	"github.com/gymdesk/gym-ui-api/internal/core"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
)

// MemberServiceOptions groups dependencies for MemberService.
type MemberServiceOptions struct {
	MemberRepo core.MemberRepository
}

// MemberService orchestrates member CRUD.
type MemberService struct {
	members core.MemberRepository
}

// NewMemberService constructs a new MemberService.
func NewMemberService(opts MemberServiceOptions) *MemberService {
	return &MemberService{members: opts.MemberRepo}
}

// Create validates and creates a member.
func (s *MemberService) Create(ctx context.Context, req *model.CreateMemberRequest) (*model.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.members.Create(ctx, req)
}

// GetByID retrieves a member by ID.
func (s *MemberService) GetByID(ctx context.Context, id string) (*model.Member, error) {
	return s.members.GetByID(ctx, id)
}

// GetByEmail retrieves a member by email. Login identities are tied to their
// membership record through this lookup.
func (s *MemberService) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	return s.members.GetByEmail(ctx, email)
}

// List returns a page of members using normalized options.
func (s *MemberService) List(ctx context.Context, opts model.MembersListOptions) ([]*model.Member, error) {
	return s.members.List(ctx, normalizeMemberListOptions(opts))
}

// Update validates and applies a partial update.
func (s *MemberService) Update(ctx context.Context, id string, req model.UpdateMemberRequest) (*model.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.members.Update(ctx, id, req)
}

// Delete removes a member. Returns false when no such member exists.
func (s *MemberService) Delete(ctx context.Context, id string) (bool, error) {
	return s.members.Delete(ctx, id)
}

func normalizeMemberListOptions(opts model.MembersListOptions) model.MembersListOptions {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return opts
}
