package entity

import "github.com/shopspring/decimal"

// ClaimStatus progresses PENDING -> APPROVED/REJECTED -> SETTLED. Transitions
// are server-authoritative; the dashboard only requests them and re-reads.
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "PENDING"
	ClaimApproved ClaimStatus = "APPROVED"
	ClaimRejected ClaimStatus = "REJECTED"
	ClaimSettled  ClaimStatus = "SETTLED"
)

// Claim is an employee-submitted request for policy payout.
type Claim struct {
	ID                int64           `json:"id"`
	EmployeeID        int64           `json:"employeeId"`
	EmployeeName      string          `json:"employeeName"`
	PolicyID          int64           `json:"policyId"`
	PolicyName        string          `json:"policyName"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	Status            ClaimStatus     `json:"status"`
	DocumentPath      string          `json:"documentPath"`
	DocumentPaths     []string        `json:"documentPaths"`
	ClaimDate         DateTime        `json:"claimDate"`
	AssignedAgentID   int64           `json:"assignedAgentId"`
	AssignedAgentName string          `json:"assignedAgentName"`
	DecisionDate      DateTime        `json:"decisionDate"`
	SettlementAmount  decimal.Decimal `json:"settlementAmount"`
	ResolutionNotes   string          `json:"resolutionNotes"`
	Notes             []ProgressNote  `json:"notes"`
}

// Documents returns every stored document path; older claims carry a single
// documentPath instead of the list.
func (c Claim) Documents() []string {
	if len(c.DocumentPaths) > 0 {
		return c.DocumentPaths
	}
	if c.DocumentPath != "" {
		return []string{c.DocumentPath}
	}
	return nil
}

// ProgressNote is append-only from the dashboard's perspective.
type ProgressNote struct {
	ID        int64    `json:"id"`
	AgentName string   `json:"agentName"`
	Note      string   `json:"note"`
	CreatedAt DateTime `json:"createdAt"`
}
