package model

type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "Upcoming"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Valid reports whether s is one of the three known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusUpcoming, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s permits no further transitions.
// Upcoming is the only non-terminal status.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

type Appointment struct {
	ID          int64             `json:"id"`
	DoctorID    int64             `json:"doctorId"`
	PatientName string            `json:"patientName"`
	Date        string            `json:"date"` // calendar date, YYYY-MM-DD
	Time        string            `json:"time"` // display string, never ordered on
	Reason      string            `json:"reason"`
	Status      AppointmentStatus `json:"status"`
}

type CreateAppointmentRequest struct {
	DoctorID    int64  `json:"doctorId" binding:"required"`
	PatientName string `json:"patientName" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

type UpdateAppointmentStatusRequest struct {
	ID     int64             `json:"id" binding:"required"`
	Status AppointmentStatus `json:"status" binding:"required"`
}
