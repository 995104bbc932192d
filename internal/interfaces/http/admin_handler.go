package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/application/dashboard"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
)

// AdminHandler serves the admin dashboard and policy management pages.
// Mutations post back to the page they came from; the redirect re-renders
// from a fresh backend read.
type AdminHandler struct {
	uc    *dashboard.AdminUseCase
	guard *Guard
}

// NewAdminHandler builds the admin handler.
func NewAdminHandler(uc *dashboard.AdminUseCase, guard *Guard) *AdminHandler {
	return &AdminHandler{uc: uc, guard: guard}
}

// Dashboard renders the claim oversight page.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	sess := SessionFrom(c)
	view, err := h.uc.Overview(c.UserContext(), sess)
	if err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		data := pageData(c)
		data["Error"] = userMessage(err)
		return c.Render("admin_dashboard", data)
	}
	data := pageData(c)
	data["Claims"] = view.Claims
	data["Agents"] = view.Agents
	data["Policies"] = view.Policies
	return c.Render("admin_dashboard", data)
}

// ClaimStatus approves or rejects a claim.
func (h *AdminHandler) ClaimStatus(c *fiber.Ctx) error {
	claimID, err := c.ParamsInt("id")
	if err != nil {
		return redirectError(c, "/admin-dashboard", err)
	}
	status := entity.ClaimStatus(c.FormValue("status"))
	if status != entity.ClaimApproved && status != entity.ClaimRejected {
		return c.Redirect("/admin-dashboard?error=Pick+approve+or+reject.", fiber.StatusSeeOther)
	}
	if _, err := h.uc.UpdateClaimStatus(c.UserContext(), SessionFrom(c), int64(claimID), status); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, "/admin-dashboard", err)
	}
	return redirectSuccess(c, "/admin-dashboard", "Claim updated.")
}

// AssignAgent assigns a claim to the selected agent.
func (h *AdminHandler) AssignAgent(c *fiber.Ctx) error {
	claimID, err := c.ParamsInt("id")
	if err != nil {
		return redirectError(c, "/admin-dashboard", err)
	}
	agentID := atoiForm(c, "agentId")
	if agentID <= 0 {
		return c.Redirect("/admin-dashboard?error=Pick+an+agent+first.", fiber.StatusSeeOther)
	}
	if _, err := h.uc.AssignAgent(c.UserContext(), SessionFrom(c), int64(claimID), int64(agentID)); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, "/admin-dashboard", err)
	}
	return redirectSuccess(c, "/admin-dashboard", "Agent assigned.")
}

// SettleClaim settles an approved claim with the posted amount and notes.
func (h *AdminHandler) SettleClaim(c *fiber.Ctx) error {
	claimID, err := c.ParamsInt("id")
	if err != nil {
		return redirectError(c, "/admin-dashboard", err)
	}
	amount := c.FormValue("settlementAmount")
	notes := c.FormValue("resolutionNotes")
	if _, err := h.uc.SettleClaim(c.UserContext(), SessionFrom(c), int64(claimID), amount, notes); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, "/admin-dashboard", err)
	}
	return redirectSuccess(c, "/admin-dashboard", "Claim settled.")
}

// PolicyManagement renders the policy CRUD page.
func (h *AdminHandler) PolicyManagement(c *fiber.Ctx) error {
	view, err := h.uc.PolicyManagement(c.UserContext(), SessionFrom(c))
	if err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		data := pageData(c)
		data["Error"] = userMessage(err)
		return c.Render("policy_management", data)
	}
	data := pageData(c)
	data["Policies"] = view.Policies
	data["Employees"] = view.Employees
	return c.Render("policy_management", data)
}

// SavePolicy handles the policy form, creating or updating depending on the
// hidden id field.
func (h *AdminHandler) SavePolicy(c *fiber.Ctx) error {
	policyID, _ := c.ParamsInt("id", 0)
	in := dashboard.PolicyInput{
		PolicyName:         c.FormValue("policyName"),
		PolicyCode:         c.FormValue("policyCode"),
		PolicyType:         c.FormValue("policyType"),
		Status:             c.FormValue("status"),
		Description:        c.FormValue("description"),
		Premium:            c.FormValue("premium"),
		CoverageAmount:     c.FormValue("coverageAmount"),
		InstallmentType:    c.FormValue("installmentType"),
		TermsAndConditions: c.FormValue("termsAndConditions"),
		RiskLevel:          c.FormValue("riskLevel"),
		ClaimLimit:         c.FormValue("claimLimit"),
		RenewalNoticeDays:  atoiForm(c, "renewalNoticeDays"),
		Notes:              c.FormValue("notes"),
		EffectiveDate:      c.FormValue("effectiveDate"),
		ExpiryDate:         c.FormValue("expiryDate"),
	}
	if _, err := h.uc.SavePolicy(c.UserContext(), SessionFrom(c), int64(policyID), in); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, "/policy-management", err)
	}
	msg := "Policy created."
	if policyID > 0 {
		msg = "Policy updated."
	}
	return redirectSuccess(c, "/policy-management", msg)
}

// DeletePolicy removes a policy.
func (h *AdminHandler) DeletePolicy(c *fiber.Ctx) error {
	policyID, err := c.ParamsInt("id")
	if err != nil {
		return redirectError(c, "/policy-management", err)
	}
	if _, err := h.uc.DeletePolicy(c.UserContext(), SessionFrom(c), int64(policyID)); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, "/policy-management", err)
	}
	return redirectSuccess(c, "/policy-management", "Policy deleted.")
}

// AssignPolicy assigns a policy to the selected employee.
func (h *AdminHandler) AssignPolicy(c *fiber.Ctx) error {
	policyID, err := c.ParamsInt("id")
	if err != nil {
		return redirectError(c, "/policy-management", err)
	}
	employeeID := atoiForm(c, "employeeId")
	if employeeID <= 0 {
		return c.Redirect("/policy-management?error=Pick+an+employee+first.", fiber.StatusSeeOther)
	}
	if _, err := h.uc.AssignPolicy(c.UserContext(), SessionFrom(c), int64(policyID), int64(employeeID)); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, "/policy-management", err)
	}
	return redirectSuccess(c, "/policy-management", "Policy assigned.")
}
