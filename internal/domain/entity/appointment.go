package entity

// AppointmentStatus lifecycle of a booked appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
	AppointmentMissed    AppointmentStatus = "MISSED"
)

// Appointment as the backend returns it for agent and employee listings.
type Appointment struct {
	ID           int64             `json:"id"`
	EmployeeID   int64             `json:"employeeId"`
	EmployeeName string            `json:"employeeName"`
	AgentID      int64             `json:"agentId"`
	StartTime    DateTime          `json:"startTime"`
	EndTime      DateTime          `json:"endTime"`
	Status       AppointmentStatus `json:"status"`
	Notes        string            `json:"notes"`
}

// AvailabilitySlot is a recurring weekly window an agent is bookable in, or
// marked off. Times are wall-clock strings (backend LocalTime).
type AvailabilitySlot struct {
	ID        int64  `json:"id"`
	AgentID   int64  `json:"agentId"`
	AgentName string `json:"name"`
	DayOfWeek int    `json:"dayOfWeek"` // 0=Sunday .. 6=Saturday
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Booked    bool   `json:"booked"`
	Off       bool   `json:"off"`
}

// AppointmentSlot is a concrete bookable window the backend derives from an
// agent's availability for the next days.
type AppointmentSlot struct {
	AvailabilityID int64    `json:"availabilityId"`
	AgentID        int64    `json:"agentId"`
	AgentName      string   `json:"agentName"`
	StartTime      DateTime `json:"startTime"`
	EndTime        DateTime `json:"endTime"`
	Booked         bool     `json:"booked"`
	Off            bool     `json:"off"`
}

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DayName renders DayOfWeek for display; out-of-range values come back empty.
func (s AvailabilitySlot) DayName() string {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return ""
	}
	return dayNames[s.DayOfWeek]
}
