package insurai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
)

// Claims lists every claim (admin view).
func (c *Client) Claims(ctx context.Context, tok string) ([]entity.Claim, error) {
	var out []entity.Claim
	if err := c.getJSON(ctx, tok, "/claims", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EmployeeClaims lists the claims submitted by one employee.
func (c *Client) EmployeeClaims(ctx context.Context, tok string, employeeID int64) ([]entity.Claim, error) {
	var out []entity.Claim
	if err := c.getJSON(ctx, tok, fmt.Sprintf("/claims/employee/%d", employeeID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AgentClaims lists the claims assigned to one agent (by user id).
func (c *Client) AgentClaims(ctx context.Context, tok string, agentID int64) ([]entity.Claim, error) {
	var out []entity.Claim
	if err := c.getJSON(ctx, tok, fmt.Sprintf("/claims/agent/%d", agentID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateClaimStatus requests a status transition. The backend decides whether
// the transition is legal.
func (c *Client) UpdateClaimStatus(ctx context.Context, tok string, claimID int64, status entity.ClaimStatus) error {
	path := fmt.Sprintf("/claims/%d/status?status=%s", claimID, url.QueryEscape(string(status)))
	return c.sendJSON(ctx, tok, http.MethodPut, path, nil, nil)
}

// AssignAgent assigns a claim to an agent.
func (c *Client) AssignAgent(ctx context.Context, tok string, claimID, agentID int64) error {
	return c.sendJSON(ctx, tok, http.MethodPut, fmt.Sprintf("/claims/%d/assign-agent/%d", claimID, agentID), nil, nil)
}

// SettleClaimRequest carries the admin's settlement decision.
type SettleClaimRequest struct {
	SettlementAmount decimal.Decimal `json:"settlementAmount"`
	ResolutionNotes  string          `json:"resolutionNotes"`
	ProcessedByID    int64           `json:"processedById"`
}

// SettleClaim settles an approved claim. Settling from any other status is
// the backend's call to reject.
func (c *Client) SettleClaim(ctx context.Context, tok string, claimID int64, in SettleClaimRequest) error {
	return c.sendJSON(ctx, tok, http.MethodPut, fmt.Sprintf("/claims/%d/settle", claimID), in, nil)
}

// ClaimDocument is one file attached to a claim submission.
type ClaimDocument struct {
	Name    string
	Content io.Reader
}

// SubmitClaimRequest carries a new claim with its supporting documents.
type SubmitClaimRequest struct {
	Description string
	Amount      decimal.Decimal
	PolicyID    int64
	EmployeeID  int64
	Documents   []ClaimDocument
}

// SubmitClaim posts a new claim as multipart form data with fields
// description, amount, policyId, employeeId and repeated documents parts.
func (c *Client) SubmitClaim(ctx context.Context, tok string, in SubmitClaimRequest) error {
	fields := map[string]string{
		"description": in.Description,
		"amount":      in.Amount.String(),
		"policyId":    fmt.Sprintf("%d", in.PolicyID),
		"employeeId":  fmt.Sprintf("%d", in.EmployeeID),
	}
	return c.postMultipart(ctx, tok, "/claims/submit", fields, in.Documents)
}

// AddClaimFiles attaches additional documents to an existing claim.
func (c *Client) AddClaimFiles(ctx context.Context, tok string, claimID, userID int64, docs []ClaimDocument) error {
	fields := map[string]string{"userId": fmt.Sprintf("%d", userID)}
	return c.postMultipart(ctx, tok, fmt.Sprintf("/claims/%d/add-files", claimID), fields, docs)
}

func (c *Client) postMultipart(ctx context.Context, tok, path string, fields map[string]string, docs []ClaimDocument) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}
	for _, doc := range docs {
		part, err := w.CreateFormFile("documents", doc.Name)
		if err != nil {
			return fmt.Errorf("create part %s: %w", doc.Name, err)
		}
		if _, err := io.Copy(part, doc.Content); err != nil {
			return fmt.Errorf("copy document %s: %w", doc.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}
	return c.roundTrip(ctx, tok, http.MethodPost, path, buf.Bytes(), w.FormDataContentType(), nil)
}

// ProgressNoteRequest adds one note to a claim's progress log.
type ProgressNoteRequest struct {
	ClaimID int64  `json:"claimId"`
	AgentID int64  `json:"agentId"`
	Note    string `json:"note"`
}

// AddProgressNote appends a progress note to a claim.
func (c *Client) AddProgressNote(ctx context.Context, tok string, in ProgressNoteRequest) error {
	return c.sendJSON(ctx, tok, http.MethodPost, "/claim-notes/add", in, nil)
}

// DocumentURL builds the viewer link for a stored document path: the path is
// reduced to its final element and appended to the view-document endpoint.
// Whether the filename is safe is the backend's trust boundary, as it is the
// one serving the file.
func (c *Client) DocumentURL(storedPath string) string {
	parts := strings.Split(storedPath, "/")
	filename := parts[len(parts)-1]
	return c.baseURL + "/claims/view-document/" + filename
}
