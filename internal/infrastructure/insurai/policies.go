package insurai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
)

// Policies lists every policy.
func (c *Client) Policies(ctx context.Context, tok string) ([]entity.Policy, error) {
	var out []entity.Policy
	if err := c.getJSON(ctx, tok, "/policies", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EmployeePolicies lists the policies assigned to one employee.
func (c *Client) EmployeePolicies(ctx context.Context, tok string, employeeID int64) ([]entity.Policy, error) {
	var out []entity.Policy
	if err := c.getJSON(ctx, tok, fmt.Sprintf("/policies/employee/%d", employeeID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PolicyRequest carries the full policy form, create and update alike.
type PolicyRequest struct {
	PolicyName         string          `json:"policyName"`
	PolicyCode         string          `json:"policyCode"`
	PolicyType         string          `json:"policyType"`
	Status             string          `json:"status"`
	Description        string          `json:"description"`
	Premium            decimal.Decimal `json:"premium"`
	CoverageAmount     decimal.Decimal `json:"coverageAmount"`
	InstallmentType    string          `json:"installmentType"`
	TermsAndConditions string          `json:"termsAndConditions"`
	RiskLevel          string          `json:"riskLevel"`
	ClaimLimit         decimal.Decimal `json:"claimLimit"`
	RenewalNoticeDays  int             `json:"renewalNoticeDays"`
	Notes              string          `json:"notes"`
	EffectiveDate      string          `json:"effectiveDate"`
	ExpiryDate         string          `json:"expiryDate"`
}

// CreatePolicy creates a policy.
func (c *Client) CreatePolicy(ctx context.Context, tok string, in PolicyRequest) error {
	return c.sendJSON(ctx, tok, http.MethodPost, "/policies/create", in, nil)
}

// UpdatePolicy replaces an existing policy.
func (c *Client) UpdatePolicy(ctx context.Context, tok string, policyID int64, in PolicyRequest) error {
	return c.sendJSON(ctx, tok, http.MethodPut, fmt.Sprintf("/policies/%d", policyID), in, nil)
}

// DeletePolicy removes a policy.
func (c *Client) DeletePolicy(ctx context.Context, tok string, policyID int64) error {
	return c.sendJSON(ctx, tok, http.MethodDelete, fmt.Sprintf("/policies/%d", policyID), nil, nil)
}

// AssignPolicy assigns a policy to an employee.
func (c *Client) AssignPolicy(ctx context.Context, tok string, policyID, employeeID int64) error {
	return c.sendJSON(ctx, tok, http.MethodPut, fmt.Sprintf("/policies/%d/assign/%d", policyID, employeeID), nil, nil)
}

// Employees lists every employee record (admin policy assignment).
func (c *Client) Employees(ctx context.Context, tok string) ([]entity.Employee, error) {
	var out []entity.Employee
	if err := c.getJSON(ctx, tok, "/employees", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EmployeeByUsername resolves the employee record behind a username. Employee
// pages depend on this lookup before any employee-scoped read.
func (c *Client) EmployeeByUsername(ctx context.Context, tok, username string) (*entity.Employee, error) {
	var out entity.Employee
	if err := c.getJSON(ctx, tok, "/employees/by-username/"+url.PathEscape(username), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UsersByRole lists user accounts with the given role (agent pickers).
func (c *Client) UsersByRole(ctx context.Context, tok string, role entity.Role) ([]entity.User, error) {
	var out []entity.User
	if err := c.getJSON(ctx, tok, "/users/role/"+url.PathEscape(string(role)), &out); err != nil {
		return nil, err
	}
	return out, nil
}
