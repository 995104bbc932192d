package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/insurai"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/logger"
)

// AdminUseCase is the view model behind the admin dashboard: claim oversight,
// agent assignment, settlement, and policy management. Every mutation issues
// one call and re-fetches the affected collection; the rendered state is
// whatever the backend answered, never a local guess.
type AdminUseCase struct {
	api *insurai.Client
	log *logger.Logger
}

// NewAdmin builds the admin use case.
func NewAdmin(api *insurai.Client, log *logger.Logger) *AdminUseCase {
	return &AdminUseCase{api: api, log: log}
}

// AdminOverview is everything the admin landing page renders.
type AdminOverview struct {
	Claims   []entity.Claim
	Agents   []entity.User
	Policies []entity.Policy
}

// Overview fetches claims, agents and policies concurrently; the three reads
// are independent.
func (uc *AdminUseCase) Overview(ctx context.Context, sess *entity.Session) (*AdminOverview, error) {
	var out AdminOverview
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Claims, err = uc.api.Claims(ctx, sess.Token)
		return err
	})
	g.Go(func() (err error) {
		out.Agents, err = uc.api.UsersByRole(ctx, sess.Token, entity.RoleAgent)
		return err
	})
	g.Go(func() (err error) {
		out.Policies, err = uc.api.Policies(ctx, sess.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClaimStatus requests approval or rejection, then re-reads the claim
// list.
func (uc *AdminUseCase) UpdateClaimStatus(ctx context.Context, sess *entity.Session, claimID int64, status entity.ClaimStatus) ([]entity.Claim, error) {
	if err := uc.api.UpdateClaimStatus(ctx, sess.Token, claimID, status); err != nil {
		return nil, err
	}
	return uc.api.Claims(ctx, sess.Token)
}

// AssignAgent assigns a claim to an agent, then re-reads the claim list.
func (uc *AdminUseCase) AssignAgent(ctx context.Context, sess *entity.Session, claimID, agentID int64) ([]entity.Claim, error) {
	if err := uc.api.AssignAgent(ctx, sess.Token, claimID, agentID); err != nil {
		return nil, err
	}
	return uc.api.Claims(ctx, sess.Token)
}

// SettleClaim settles an approved claim. The settling admin's user id travels
// as processedById.
func (uc *AdminUseCase) SettleClaim(ctx context.Context, sess *entity.Session, claimID int64, amount, resolutionNotes string) ([]entity.Claim, error) {
	settlement, err := parseDecimal(amount, "settlement amount")
	if err != nil {
		return nil, err
	}
	in := insurai.SettleClaimRequest{
		SettlementAmount: settlement,
		ResolutionNotes:  resolutionNotes,
		ProcessedByID:    sess.UserID,
	}
	if err := uc.api.SettleClaim(ctx, sess.Token, claimID, in); err != nil {
		return nil, err
	}
	return uc.api.Claims(ctx, sess.Token)
}

// PolicyBoard is what the policy management page renders.
type PolicyBoard struct {
	Policies  []entity.Policy
	Employees []entity.Employee
}

// PolicyManagement fetches policies and employees concurrently.
func (uc *AdminUseCase) PolicyManagement(ctx context.Context, sess *entity.Session) (*PolicyBoard, error) {
	var out PolicyBoard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Policies, err = uc.api.Policies(ctx, sess.Token)
		return err
	})
	g.Go(func() (err error) {
		out.Employees, err = uc.api.Employees(ctx, sess.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// PolicyInput is the policy form as posted. Amount fields arrive as text and
// are validated here, not in the handler.
type PolicyInput struct {
	PolicyName         string
	PolicyCode         string
	PolicyType         string
	Status             string
	Description        string
	Premium            string
	CoverageAmount     string
	InstallmentType    string
	TermsAndConditions string
	RiskLevel          string
	ClaimLimit         string
	RenewalNoticeDays  int
	Notes              string
	EffectiveDate      string
	ExpiryDate         string
}

// SavePolicy creates the policy, or updates it when policyID is non-zero,
// then re-reads the policy list.
func (uc *AdminUseCase) SavePolicy(ctx context.Context, sess *entity.Session, policyID int64, in PolicyInput) ([]entity.Policy, error) {
	if in.PolicyName == "" || in.PolicyType == "" {
		return nil, fmt.Errorf("%w: policy name and type are required", domain.ErrValidation)
	}
	premium, err := parseDecimal(in.Premium, "premium")
	if err != nil {
		return nil, err
	}
	coverage, err := parseDecimal(in.CoverageAmount, "coverage amount")
	if err != nil {
		return nil, err
	}
	claimLimit, err := parseDecimal(in.ClaimLimit, "claim limit")
	if err != nil {
		return nil, err
	}

	req := insurai.PolicyRequest{
		PolicyName:         in.PolicyName,
		PolicyCode:         in.PolicyCode,
		PolicyType:         in.PolicyType,
		Status:             in.Status,
		Description:        in.Description,
		Premium:            premium,
		CoverageAmount:     coverage,
		InstallmentType:    in.InstallmentType,
		TermsAndConditions: in.TermsAndConditions,
		RiskLevel:          in.RiskLevel,
		ClaimLimit:         claimLimit,
		RenewalNoticeDays:  in.RenewalNoticeDays,
		Notes:              in.Notes,
		EffectiveDate:      in.EffectiveDate,
		ExpiryDate:         in.ExpiryDate,
	}
	if policyID > 0 {
		err = uc.api.UpdatePolicy(ctx, sess.Token, policyID, req)
	} else {
		err = uc.api.CreatePolicy(ctx, sess.Token, req)
	}
	if err != nil {
		return nil, err
	}
	return uc.api.Policies(ctx, sess.Token)
}

// DeletePolicy removes a policy, then re-reads the list.
func (uc *AdminUseCase) DeletePolicy(ctx context.Context, sess *entity.Session, policyID int64) ([]entity.Policy, error) {
	if err := uc.api.DeletePolicy(ctx, sess.Token, policyID); err != nil {
		return nil, err
	}
	return uc.api.Policies(ctx, sess.Token)
}

// AssignPolicy assigns a policy to an employee, then re-reads the list.
func (uc *AdminUseCase) AssignPolicy(ctx context.Context, sess *entity.Session, policyID, employeeID int64) ([]entity.Policy, error) {
	if err := uc.api.AssignPolicy(ctx, sess.Token, policyID, employeeID); err != nil {
		return nil, err
	}
	return uc.api.Policies(ctx, sess.Token)
}
