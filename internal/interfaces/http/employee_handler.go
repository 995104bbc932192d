package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/application/dashboard"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/insurai"
)

// EmployeeHandler serves the employee pages: overview, claims, policies,
// appointments and agent booking.
type EmployeeHandler struct {
	uc    *dashboard.EmployeeUseCase
	guard *Guard
}

// NewEmployeeHandler builds the employee handler.
func NewEmployeeHandler(uc *dashboard.EmployeeUseCase, guard *Guard) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, guard: guard}
}

// Dashboard renders the employee landing page.
func (h *EmployeeHandler) Dashboard(c *fiber.Ctx) error {
	view, err := h.uc.Overview(c.UserContext(), SessionFrom(c))
	if err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		data := pageData(c)
		data["Error"] = userMessage(err)
		return c.Render("user_dashboard", data)
	}
	data := pageData(c)
	data["Policies"] = view.Policies
	data["Claims"] = view.Claims
	data["Appointments"] = view.Appointments
	return c.Render("user_dashboard", data)
}

// Claims renders the claim list plus the submission form.
func (h *EmployeeHandler) Claims(c *fiber.Ctx) error {
	view, err := h.uc.Claims(c.UserContext(), SessionFrom(c))
	if err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		data := pageData(c)
		data["Error"] = userMessage(err)
		return c.Render("employee_claims", data)
	}
	data := pageData(c)
	data["Claims"] = view.Claims
	data["Policies"] = view.Policies
	return c.Render("employee_claims", data)
}

// SubmitClaim handles the multipart claim submission form.
func (h *EmployeeHandler) SubmitClaim(c *fiber.Ctx) error {
	docs, closeDocs, err := formDocuments(c, "documents")
	if err != nil {
		return redirectError(c, "/employee-claims", err)
	}
	defer closeDocs()

	in := dashboard.SubmitClaimInput{
		Description: c.FormValue("description"),
		Amount:      c.FormValue("amount"),
		PolicyID:    int64(atoiForm(c, "policyId")),
		Documents:   docs,
	}
	if _, err := h.uc.SubmitClaim(c.UserContext(), SessionFrom(c), in); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, "/employee-claims", err)
	}
	return redirectSuccess(c, "/employee-claims", "Claim submitted.")
}

// AddClaimFiles attaches more documents to an existing claim.
func (h *EmployeeHandler) AddClaimFiles(c *fiber.Ctx) error {
	claimID, err := c.ParamsInt("id")
	if err != nil {
		return redirectError(c, "/employee-claims", err)
	}
	docs, closeDocs, err := formDocuments(c, "documents")
	if err != nil {
		return redirectError(c, "/employee-claims", err)
	}
	defer closeDocs()

	if _, err := h.uc.AddClaimFiles(c.UserContext(), SessionFrom(c), int64(claimID), docs); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, "/employee-claims", err)
	}
	return redirectSuccess(c, "/employee-claims", "Documents uploaded.")
}

// Policies renders the assigned policy list.
func (h *EmployeeHandler) Policies(c *fiber.Ctx) error {
	policies, err := h.uc.Policies(c.UserContext(), SessionFrom(c))
	if err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		data := pageData(c)
		data["Error"] = userMessage(err)
		return c.Render("employee_policies", data)
	}
	data := pageData(c)
	data["Policies"] = policies
	return c.Render("employee_policies", data)
}

// Appointments renders the employee's appointments.
func (h *EmployeeHandler) Appointments(c *fiber.Ctx) error {
	appointments, err := h.uc.Appointments(c.UserContext(), SessionFrom(c))
	if err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		data := pageData(c)
		data["Error"] = userMessage(err)
		return c.Render("employee_appointments", data)
	}
	data := pageData(c)
	data["Appointments"] = appointments
	return c.Render("employee_appointments", data)
}

// Booking renders the booking page. The agent query parameter selects whose
// slots to show; it comes from the claim table's assigned agent.
func (h *EmployeeHandler) Booking(c *fiber.Ctx) error {
	agentID := int64(c.QueryInt("agent", 0))
	view, err := h.uc.BookingBoard(c.UserContext(), SessionFrom(c), agentID)
	if err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		data := pageData(c)
		data["Error"] = userMessage(err)
		return c.Render("book_appointment", data)
	}
	data := pageData(c)
	data["Claims"] = view.Claims
	data["SelectedAgent"] = view.SelectedAgent
	data["Slots"] = view.Slots
	if agentID > 0 && len(view.Slots) == 0 {
		data["Error"] = "No available slots for this agent in the upcoming days."
	}
	return c.Render("book_appointment", data)
}

// Book submits the booking form: the selected slot index against the agent's
// current slot sequence, plus optional notes.
func (h *EmployeeHandler) Book(c *fiber.Ctx) error {
	agentID := int64(atoiForm(c, "agentId"))
	slotIndex := atoiForm(c, "slotIndex")
	if c.FormValue("slotIndex") == "" {
		slotIndex = -1
	}
	notes := c.FormValue("notes")

	back := "/book-appointment"
	if agentID > 0 {
		back = "/book-appointment?agent=" + c.FormValue("agentId")
	}
	if err := h.uc.Book(c.UserContext(), SessionFrom(c), agentID, slotIndex, notes); err != nil {
		if sessionExpired(err) {
			return bounce(c, h.guard)
		}
		return redirectError(c, back, err)
	}
	return redirectSuccess(c, "/book-appointment", "Appointment booked.")
}

// formDocuments collects the uploaded files under field into claim documents.
// The returned func closes every opened file; call it once the upload is
// done. No files is not an error here; the use case decides whether documents
// are required.
func formDocuments(c *fiber.Ctx, field string) ([]insurai.ClaimDocument, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Not a multipart post at all; treat as no files.
		return nil, func() {}, nil
	}
	headers := form.File[field]
	docs := make([]insurai.ClaimDocument, 0, len(headers))
	closers := make([]func() error, 0, len(headers))
	closeAll := func() {
		for _, cl := range closers {
			_ = cl()
		}
	}
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		closers = append(closers, f.Close)
		docs = append(docs, insurai.ClaimDocument{Name: fh.Filename, Content: f})
	}
	return docs, closeAll, nil
}
