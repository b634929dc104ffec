package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskmate/internal/model"
)

// InviteTTL is the fixed validity window of an invitation.
const InviteTTL = 7 * 24 * time.Hour

var (
	// ErrInviteInvalid covers both a missing and an expired invitation;
	// the joiner is told the same thing either way.
	ErrInviteInvalid = errors.New("invitation is invalid or has expired")
	// ErrNotMember rejects sharing a checklist the user is not part of.
	ErrNotMember = errors.New("not a member of this checklist")
)

// InvitationStore is the gateway surface for join tokens.
type InvitationStore interface {
	Create(ctx context.Context, invitation *model.Invitation) error
	FindValid(ctx context.Context, id string, now time.Time) (*model.Invitation, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// MemberStore is the slice of the checklist gateway the join workflow
// needs: lookups plus the atomic member append.
type MemberStore interface {
	FindByID(ctx context.Context, id string) (*model.Checklist, error)
	IsMember(ctx context.Context, checklistID, userID string) (bool, error)
	AddMember(ctx context.Context, checklistID, userID string) error
}

// InviteService issues invitations and redeems them into memberships.
type InviteService struct {
	invitations InvitationStore
	checklists  MemberStore
}

func NewInviteService(invitations InvitationStore, checklists MemberStore) *InviteService {
	return &InviteService{invitations: invitations, checklists: checklists}
}

// Issue creates a time-limited invitation for the checklist. Any member
// may share; the expiry is fixed at now + InviteTTL.
func (s *InviteService) Issue(ctx context.Context, checklistID, createdBy string, now time.Time) (*model.Invitation, error) {
	member, err := s.checklists.IsMember(ctx, checklistID, createdBy)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, ErrNotMember
	}

	invitation := model.Invitation{
		ChecklistID: checklistID,
		CreatedBy:   createdBy,
		ExpiresAt:   now.Add(InviteTTL),
	}
	if err := s.invitations.Create(ctx, &invitation); err != nil {
		return nil, err
	}
	return &invitation, nil
}

// Redeem runs the joiner's pipeline after the session check: validate
// the invitation (present, expiry strictly after now), append the user
// to the member set, return the target checklist. The append is atomic
// and idempotent, so a second redemption by the same user changes
// nothing. Invitations are not single-use; distinct users may redeem the
// same unexpired token.
func (s *InviteService) Redeem(ctx context.Context, invitationID, userID string, now time.Time) (*model.Checklist, error) {
	invitation, err := s.invitations.FindValid(ctx, invitationID, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteInvalid
		}
		return nil, fmt.Errorf("find invitation: %w", err)
	}

	if err := s.checklists.AddMember(ctx, invitation.ChecklistID, userID); err != nil {
		return nil, err
	}

	return s.checklists.FindByID(ctx, invitation.ChecklistID)
}

// Sweep deletes invitations whose expiry has passed.
func (s *InviteService) Sweep(ctx context.Context, now time.Time) (int64, error) {
	return s.invitations.DeleteExpired(ctx, now)
}
