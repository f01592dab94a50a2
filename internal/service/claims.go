//go:generate mockgen -source ./claims.go -destination=./mocks/claims.go -package=mock_service
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/warrantyguard/claim-portal/internal/inflight"
	"github.com/warrantyguard/claim-portal/internal/lifecycle"
	"github.com/warrantyguard/claim-portal/internal/model"
)

var (
	ErrUnknownAction     = errors.New("unknown action")
	ErrActionUnavailable = errors.New("action not available for current status")
	ErrInFlight          = errors.New("another action is already in progress for this claim")

	// ErrRefetch means the stage advance was accepted but the claim could not
	// be read back afterwards.
	ErrRefetch = errors.New("action sent but claim could not be reloaded")
)

// UnknownActionLabel is reported to the failure hook in place of action names
// that do not resolve, so callers can use the name as a metric label.
const UnknownActionLabel = "unknown"

type Backend interface {
	SubmitClaim(ctx context.Context, deviceID, issueText, customerID string) (*model.Claim, error)
	GetClaim(ctx context.Context, id model.ClaimID) (*model.Claim, error)
	AdvanceLogistics(ctx context.Context, id model.ClaimID, status, agentID string) (*model.StageUpdate, error)
	AdvanceRepair(ctx context.Context, id model.ClaimID, status, technicianID, notes string) (*model.StageUpdate, error)
}

// Operator is the identity stamped on stage-advance calls.
type Operator struct {
	AgentID      string
	TechnicianID string
	RepairNotes  string
}

type ClaimService struct {
	backend  Backend
	operator Operator
	gate     inflight.Gate
	gateTTL  time.Duration

	newCustomerID func() string

	onAdvanced func(ctx context.Context, id model.ClaimID, action lifecycle.Action)
	onFailed   func(ctx context.Context, id model.ClaimID, action string, err error)
}

func NewClaimService(backend Backend, operator Operator, gate inflight.Gate, gateTTL time.Duration) *ClaimService {
	if gate == nil {
		gate = inflight.NewMemoryGate()
	}
	return &ClaimService{
		backend:       backend,
		operator:      operator,
		gate:          gate,
		gateTTL:       gateTTL,
		newCustomerID: NewCustomerID,
	}
}

func (s *ClaimService) WithHooks(
	onAdvanced func(ctx context.Context, id model.ClaimID, action lifecycle.Action),
	onFailed func(ctx context.Context, id model.ClaimID, action string, err error),
) *ClaimService {
	s.onAdvanced = onAdvanced
	s.onFailed = onFailed
	return s
}

// NewCustomerID returns a placeholder customer reference. The portal has no
// customer accounts.
func NewCustomerID() string {
	return "CUST-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *ClaimService) Submit(ctx context.Context, imei, issue string) (*model.Claim, error) {
	return s.backend.SubmitClaim(ctx, imei, issue, s.newCustomerID())
}

func (s *ClaimService) Lookup(ctx context.Context, id model.ClaimID) (*model.Claim, error) {
	return s.backend.GetClaim(ctx, id)
}

// Perform issues the named stage-advance action for the claim and returns the
// claim as re-fetched afterwards. Repeated calls are not deduplicated.
//
// A failed re-fetch is returned wrapped in ErrRefetch; the advance itself has
// gone through at that point.
func (s *ClaimService) Perform(ctx context.Context, id model.ClaimID, actionName string) (*model.Claim, error) {
	label := UnknownActionLabel
	if a, ok := lifecycle.ByName(actionName); ok {
		label = a.Name
	}

	claim, action, err := s.resolve(ctx, id, actionName)
	if err != nil {
		s.fail(ctx, id, label, err)
		return nil, err
	}

	if err := s.advance(ctx, claim.ID, action); err != nil {
		s.fail(ctx, id, label, err)
		return nil, err
	}

	if s.onAdvanced != nil {
		s.onAdvanced(ctx, claim.ID, action)
	}

	refreshed, err := s.backend.GetClaim(ctx, claim.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRefetch, err)
	}
	return refreshed, nil
}

func (s *ClaimService) resolve(ctx context.Context, id model.ClaimID, actionName string) (*model.Claim, lifecycle.Action, error) {
	requested, ok := lifecycle.ByName(actionName)
	if !ok {
		return nil, lifecycle.Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, actionName)
	}

	claim, err := s.backend.GetClaim(ctx, id)
	if err != nil {
		return nil, lifecycle.Action{}, err
	}

	current, ok := lifecycle.Lookup(claim.Status)
	if !ok || current.Name != requested.Name {
		return claim, lifecycle.Action{}, fmt.Errorf("%w: %s on %s", ErrActionUnavailable, requested.Label, claim.Status)
	}
	return claim, current, nil
}

func (s *ClaimService) advance(ctx context.Context, id model.ClaimID, action lifecycle.Action) (err error) {
	key := id.String()
	token, acquired, err := s.gate.Acquire(ctx, key, s.gateTTL)
	if err != nil {
		return fmt.Errorf("acquire in-flight flag: %w", err)
	}
	if !acquired {
		return ErrInFlight
	}
	defer func() {
		// The request context may already be done; the flag still has to go.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		_ = s.gate.Release(releaseCtx, key, token)
	}()

	switch action.Stage {
	case lifecycle.Logistics:
		_, err = s.backend.AdvanceLogistics(ctx, id, action.Target, s.operator.AgentID)
	case lifecycle.Repair:
		_, err = s.backend.AdvanceRepair(ctx, id, action.Target, s.operator.TechnicianID, s.operator.RepairNotes)
	default:
		err = fmt.Errorf("%w: stage %q", ErrUnknownAction, action.Stage)
	}
	return err
}

func (s *ClaimService) fail(ctx context.Context, id model.ClaimID, action string, err error) {
	if s.onFailed != nil {
		s.onFailed(ctx, id, action, err)
	}
}
