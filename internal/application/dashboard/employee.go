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

// EmployeeUseCase is the view model behind the employee pages: the overview,
// claim submission and tracking, assigned policies, appointments and booking.
type EmployeeUseCase struct {
	api *insurai.Client
	log *logger.Logger
}

// NewEmployee builds the employee use case.
func NewEmployee(api *insurai.Client, log *logger.Logger) *EmployeeUseCase {
	return &EmployeeUseCase{api: api, log: log}
}

// resolveEmployeeID answers the employee record id for the session: the
// cached one when login stored it, otherwise a lookup by username. Every
// employee-scoped read depends on this, so it always runs first.
func (uc *EmployeeUseCase) resolveEmployeeID(ctx context.Context, sess *entity.Session) (int64, error) {
	if sess.EmployeeID != nil {
		return *sess.EmployeeID, nil
	}
	emp, err := uc.api.EmployeeByUsername(ctx, sess.Token, sess.Username)
	if err != nil {
		return 0, fmt.Errorf("resolve employee for %s: %w", sess.Username, err)
	}
	return emp.ID, nil
}

// EmployeeOverview is what the employee landing page renders.
type EmployeeOverview struct {
	Policies     []entity.Policy
	Claims       []entity.Claim
	Appointments []entity.Appointment
}

// Overview resolves the employee id, then fetches policies, claims and
// appointments concurrently.
func (uc *EmployeeUseCase) Overview(ctx context.Context, sess *entity.Session) (*EmployeeOverview, error) {
	employeeID, err := uc.resolveEmployeeID(ctx, sess)
	if err != nil {
		return nil, err
	}

	var out EmployeeOverview
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Policies, err = uc.api.EmployeePolicies(ctx, sess.Token, employeeID)
		return err
	})
	g.Go(func() (err error) {
		out.Claims, err = uc.api.EmployeeClaims(ctx, sess.Token, employeeID)
		return err
	})
	g.Go(func() (err error) {
		out.Appointments, err = uc.api.EmployeeAppointments(ctx, sess.Token, employeeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClaimsPage is the claims page payload: the employee's claims plus the full
// policy list feeding the submission form's picker.
type ClaimsPage struct {
	Claims   []entity.Claim
	Policies []entity.Policy
}

// Claims fetches the claims page payload.
func (uc *EmployeeUseCase) Claims(ctx context.Context, sess *entity.Session) (*ClaimsPage, error) {
	employeeID, err := uc.resolveEmployeeID(ctx, sess)
	if err != nil {
		return nil, err
	}

	var out ClaimsPage
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Claims, err = uc.api.EmployeeClaims(ctx, sess.Token, employeeID)
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

// SubmitClaimInput is the claim submission form.
type SubmitClaimInput struct {
	Description string
	Amount      string
	PolicyID    int64
	Documents   []insurai.ClaimDocument
}

// SubmitClaim validates the form, posts the multipart submission and
// re-reads the employee's claims.
func (uc *EmployeeUseCase) SubmitClaim(ctx context.Context, sess *entity.Session, in SubmitClaimInput) ([]entity.Claim, error) {
	if in.Description == "" || in.PolicyID == 0 {
		return nil, fmt.Errorf("%w: description and policy are required", domain.ErrValidation)
	}
	amount, err := parseDecimal(in.Amount, "amount")
	if err != nil {
		return nil, err
	}
	employeeID, err := uc.resolveEmployeeID(ctx, sess)
	if err != nil {
		return nil, err
	}

	req := insurai.SubmitClaimRequest{
		Description: in.Description,
		Amount:      amount,
		PolicyID:    in.PolicyID,
		EmployeeID:  employeeID,
		Documents:   in.Documents,
	}
	if err := uc.api.SubmitClaim(ctx, sess.Token, req); err != nil {
		return nil, err
	}
	return uc.api.EmployeeClaims(ctx, sess.Token, employeeID)
}

// AddClaimFiles attaches more documents to an existing claim, then re-reads
// the claim list. The uploading account's user id travels with the form.
// Settled claims are closed to further uploads.
func (uc *EmployeeUseCase) AddClaimFiles(ctx context.Context, sess *entity.Session, claimID int64, docs []insurai.ClaimDocument) ([]entity.Claim, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no files selected", domain.ErrValidation)
	}
	employeeID, err := uc.resolveEmployeeID(ctx, sess)
	if err != nil {
		return nil, err
	}
	claims, err := uc.api.EmployeeClaims(ctx, sess.Token, employeeID)
	if err != nil {
		return nil, err
	}
	for _, c := range claims {
		if c.ID == claimID && c.Status == entity.ClaimSettled {
			return nil, fmt.Errorf("%w: settled claims cannot take more files", domain.ErrValidation)
		}
	}
	if err := uc.api.AddClaimFiles(ctx, sess.Token, claimID, sess.UserID, docs); err != nil {
		return nil, err
	}
	return uc.api.EmployeeClaims(ctx, sess.Token, employeeID)
}

// Policies fetches the employee's assigned policies.
func (uc *EmployeeUseCase) Policies(ctx context.Context, sess *entity.Session) ([]entity.Policy, error) {
	employeeID, err := uc.resolveEmployeeID(ctx, sess)
	if err != nil {
		return nil, err
	}
	return uc.api.EmployeePolicies(ctx, sess.Token, employeeID)
}

// Appointments fetches the employee's appointments.
func (uc *EmployeeUseCase) Appointments(ctx context.Context, sess *entity.Session) ([]entity.Appointment, error) {
	employeeID, err := uc.resolveEmployeeID(ctx, sess)
	if err != nil {
		return nil, err
	}
	return uc.api.EmployeeAppointments(ctx, sess.Token, employeeID)
}

// BookingPage lists the employee's claims, and the open slots of the agent
// being booked when one is selected.
type BookingPage struct {
	Claims        []entity.Claim
	SelectedAgent int64
	Slots         []entity.AppointmentSlot
}

// BookingBoard fetches the booking page payload. agentID zero means no agent
// selected yet.
func (uc *EmployeeUseCase) BookingBoard(ctx context.Context, sess *entity.Session, agentID int64) (*BookingPage, error) {
	employeeID, err := uc.resolveEmployeeID(ctx, sess)
	if err != nil {
		return nil, err
	}
	out := BookingPage{SelectedAgent: agentID}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Claims, err = uc.api.EmployeeClaims(ctx, sess.Token, employeeID)
		return err
	})
	if agentID > 0 {
		g.Go(func() (err error) {
			out.Slots, err = uc.api.AgentSlots(ctx, sess.Token, agentID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Book fetches the agent's current slot sequence, picks the slot at
// slotIndex and submits exactly its start and end times. A negative index
// means nothing was selected and blocks the submission; an index past the end
// of the sequence means the slot list changed underneath the user.
func (uc *EmployeeUseCase) Book(ctx context.Context, sess *entity.Session, agentID int64, slotIndex int, notes string) error {
	if slotIndex < 0 {
		return fmt.Errorf("%w: select a slot first", domain.ErrValidation)
	}
	employeeID, err := uc.resolveEmployeeID(ctx, sess)
	if err != nil {
		return err
	}
	slots, err := uc.api.AgentSlots(ctx, sess.Token, agentID)
	if err != nil {
		return err
	}
	if slotIndex >= len(slots) {
		return fmt.Errorf("%w: selected slot not found", domain.ErrValidation)
	}
	slot := slots[slotIndex]

	return uc.api.ScheduleAppointment(ctx, sess.Token, insurai.ScheduleRequest{
		EmployeeID:   employeeID,
		EmployeeName: sess.Username,
		AgentID:      agentID,
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
		Notes:        notes,
	})
}
