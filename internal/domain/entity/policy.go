package entity

import "github.com/shopspring/decimal"

// Policy is an insurance product record assignable to employees. Dates travel
// as plain ISO dates (backend LocalDate), so they stay strings here.
type Policy struct {
	ID                 int64           `json:"id"`
	PolicyCode         string          `json:"policyCode"`
	PolicyName         string          `json:"policyName"`
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
	AssignedEmployees  []Employee      `json:"assignedEmployees"`
}

// Employee links a user account to the employee record claims and policies
// hang off.
type Employee struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	User     *User  `json:"user"`
}

// DisplayName prefers the linked account's username over the HR full name.
func (e Employee) DisplayName() string {
	if e.User != nil && e.User.Username != "" {
		return e.User.Username
	}
	return e.FullName
}
