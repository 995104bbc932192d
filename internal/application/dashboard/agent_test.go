package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/application/dashboard"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/insurai"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/config"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/logger"
)

func newAgentUseCase(t *testing.T, rec *recorder) *dashboard.AgentUseCase {
	t.Helper()
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	api := insurai.New(config.APIConfig{BaseURL: srv.URL + "/api", TimeoutSeconds: 5}, log)
	return dashboard.NewAgent(api, log)
}

func agentSession() *entity.Session {
	return &entity.Session{Token: "jwt", Username: "agent-a", Role: entity.RoleAgent, UserID: 9}
}

func TestAddNote_EmptyNoteNeverReachesBackend(t *testing.T) {
	rec := newRecorder()
	uc := newAgentUseCase(t, rec)

	_, err := uc.AddNote(context.Background(), agentSession(), 5, "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, rec.callLog())
}

func TestAddNote_PostsThenRefetches(t *testing.T) {
	rec := newRecorder()
	rec.responses["POST /api/claim-notes/add"] = `{}`
	rec.responses["GET /api/claims/agent/9"] = `[{"id":5,"status":"APPROVED"}]`
	uc := newAgentUseCase(t, rec)

	claims, err := uc.AddNote(context.Background(), agentSession(), 5, "called the employee")
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, []string{"POST /api/claim-notes/add", "GET /api/claims/agent/9"}, rec.callLog())

	var posted struct {
		ClaimID int64  `json:"claimId"`
		AgentID int64  `json:"agentId"`
		Note    string `json:"note"`
	}
	require.NoError(t, json.Unmarshal([]byte(rec.bodies["POST /api/claim-notes/add"]), &posted))
	assert.Equal(t, int64(5), posted.ClaimID)
	assert.Equal(t, int64(9), posted.AgentID, "the note is attributed to the signed-in agent")
	assert.Equal(t, "called the employee", posted.Note)
}

func TestSaveSlot_Validation(t *testing.T) {
	rec := newRecorder()
	uc := newAgentUseCase(t, rec)

	_, err := uc.SaveSlot(context.Background(), agentSession(), dashboard.SlotInput{DayOfWeek: -1})
	assert.ErrorIs(t, err, domain.ErrValidation, "a day must be selected")

	_, err = uc.SaveSlot(context.Background(), agentSession(), dashboard.SlotInput{DayOfWeek: 2})
	assert.ErrorIs(t, err, domain.ErrValidation, "times are required unless the day is off")

	assert.Empty(t, rec.callLog())
}

func TestSaveSlot_OffDayNeedsNoTimes(t *testing.T) {
	rec := newRecorder()
	rec.responses["POST /api/agent-availability/save"] = `{}`
	rec.responses["GET /api/agent-availability/agent/9"] = `[{"id":1,"agentId":9,"dayOfWeek":2,"off":true}]`
	uc := newAgentUseCase(t, rec)

	slots, err := uc.SaveSlot(context.Background(), agentSession(), dashboard.SlotInput{DayOfWeek: 2, Off: true})
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.True(t, slots[0].Off)

	var posted struct {
		ID        *int64 `json:"id"`
		AgentID   int64  `json:"agentId"`
		DayOfWeek int    `json:"dayOfWeek"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
		Off       bool   `json:"off"`
	}
	require.NoError(t, json.Unmarshal([]byte(rec.bodies["POST /api/agent-availability/save"]), &posted))
	assert.Nil(t, posted.ID, "a new slot posts without an id")
	assert.Equal(t, int64(9), posted.AgentID)
	assert.Equal(t, 2, posted.DayOfWeek)
	assert.True(t, posted.Off)
}

func TestSaveSlot_UpdateCarriesID(t *testing.T) {
	rec := newRecorder()
	rec.responses["POST /api/agent-availability/save"] = `{}`
	rec.responses["GET /api/agent-availability/agent/9"] = `[]`
	uc := newAgentUseCase(t, rec)

	id := int64(17)
	_, err := uc.SaveSlot(context.Background(), agentSession(), dashboard.SlotInput{
		ID: &id, DayOfWeek: 3, StartTime: "09:00", EndTime: "12:00",
	})
	require.NoError(t, err)

	var posted struct {
		ID *int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(rec.bodies["POST /api/agent-availability/save"]), &posted))
	require.NotNil(t, posted.ID)
	assert.Equal(t, int64(17), *posted.ID)
}

func TestUpdateAppointmentStatus_Refetches(t *testing.T) {
	rec := newRecorder()
	rec.responses["PUT /api/appointments/3/status"] = `{}`
	rec.responses["GET /api/appointments/agent/9"] = `[{"id":3,"status":"COMPLETED"}]`
	uc := newAgentUseCase(t, rec)

	appointments, err := uc.UpdateAppointmentStatus(context.Background(), agentSession(), 3, entity.AppointmentCompleted)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, entity.AppointmentCompleted, appointments[0].Status)
	assert.Equal(t, []string{"PUT /api/appointments/3/status", "GET /api/appointments/agent/9"}, rec.callLog())
}
