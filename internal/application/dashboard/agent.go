package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/insurai"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/logger"
)

// AgentUseCase is the view model behind the agent pages: assigned claims with
// progress notes, appointment handling, and the weekly free-time schedule.
type AgentUseCase struct {
	api *insurai.Client
	log *logger.Logger
}

// NewAgent builds the agent use case.
func NewAgent(api *insurai.Client, log *logger.Logger) *AgentUseCase {
	return &AgentUseCase{api: api, log: log}
}

// AssignedClaims lists the claims assigned to the agent's user account.
func (uc *AgentUseCase) AssignedClaims(ctx context.Context, sess *entity.Session) ([]entity.Claim, error) {
	return uc.api.AgentClaims(ctx, sess.Token, sess.UserID)
}

// AddNote appends a progress note to a claim and re-reads the assigned
// claims. An empty note never reaches the backend.
func (uc *AgentUseCase) AddNote(ctx context.Context, sess *entity.Session, claimID int64, note string) ([]entity.Claim, error) {
	if strings.TrimSpace(note) == "" {
		return nil, fmt.Errorf("%w: note cannot be empty", domain.ErrValidation)
	}
	in := insurai.ProgressNoteRequest{ClaimID: claimID, AgentID: sess.UserID, Note: note}
	if err := uc.api.AddProgressNote(ctx, sess.Token, in); err != nil {
		return nil, err
	}
	return uc.api.AgentClaims(ctx, sess.Token, sess.UserID)
}

// Appointments lists the appointments booked with this agent.
func (uc *AgentUseCase) Appointments(ctx context.Context, sess *entity.Session) ([]entity.Appointment, error) {
	return uc.api.AgentAppointments(ctx, sess.Token, sess.UserID)
}

// UpdateAppointmentStatus completes or cancels an appointment and re-reads
// the list. Only SCHEDULED rows offer these actions in the view; the backend
// still has the final word.
func (uc *AgentUseCase) UpdateAppointmentStatus(ctx context.Context, sess *entity.Session, appointmentID int64, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	if err := uc.api.UpdateAppointmentStatus(ctx, sess.Token, appointmentID, status); err != nil {
		return nil, err
	}
	return uc.api.AgentAppointments(ctx, sess.Token, sess.UserID)
}

// FreeTime lists the agent's weekly availability slots.
func (uc *AgentUseCase) FreeTime(ctx context.Context, sess *entity.Session) ([]entity.AvailabilitySlot, error) {
	return uc.api.AgentAvailability(ctx, sess.Token, sess.UserID)
}

// SlotInput is the free-time form: create when ID is nil, update otherwise.
type SlotInput struct {
	ID        *int64
	DayOfWeek int
	StartTime string
	EndTime   string
	Off       bool
}

// SaveSlot validates and saves a weekly slot, then re-reads the schedule.
// Overlap between slots is not checked here; the backend resolves conflicts.
func (uc *AgentUseCase) SaveSlot(ctx context.Context, sess *entity.Session, in SlotInput) ([]entity.AvailabilitySlot, error) {
	if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: select a day", domain.ErrValidation)
	}
	if !in.Off && (in.StartTime == "" || in.EndTime == "") {
		return nil, fmt.Errorf("%w: start and end times required", domain.ErrValidation)
	}
	req := insurai.SaveSlotRequest{
		ID:        in.ID,
		AgentID:   sess.UserID,
		DayOfWeek: in.DayOfWeek,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Off:       in.Off,
	}
	if err := uc.api.SaveAvailability(ctx, sess.Token, req); err != nil {
		return nil, err
	}
	return uc.api.AgentAvailability(ctx, sess.Token, sess.UserID)
}

// ToggleSlotOff flips a slot's off flag and re-reads the schedule.
func (uc *AgentUseCase) ToggleSlotOff(ctx context.Context, sess *entity.Session, slotID int64) ([]entity.AvailabilitySlot, error) {
	if err := uc.api.ToggleAvailabilityOff(ctx, sess.Token, slotID); err != nil {
		return nil, err
	}
	return uc.api.AgentAvailability(ctx, sess.Token, sess.UserID)
}

// DeleteSlot removes a slot and re-reads the schedule.
func (uc *AgentUseCase) DeleteSlot(ctx context.Context, sess *entity.Session, slotID int64) ([]entity.AvailabilitySlot, error) {
	if err := uc.api.DeleteAvailability(ctx, sess.Token, slotID); err != nil {
		return nil, err
	}
	return uc.api.AgentAvailability(ctx, sess.Token, sess.UserID)
}
