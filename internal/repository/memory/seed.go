package memory

import "github.com/jwalitptl/clinic-api/internal/model"

// SeedDoctors is the clinic's static roster.
func SeedDoctors() []*model.Doctor {
	return []*model.Doctor{
		{ID: 1, Name: "Dr. Aisha Patel", Specialty: "Cardiologist", Email: "aisha@clinic.com", Bio: "Expert in heart conditions."},
		{ID: 2, Name: "Dr. Ben Carter", Specialty: "Dermatologist", Email: "ben@clinic.com", Bio: "Specializes in skin health."},
		{ID: 3, Name: "Dr. Chloe Davis", Specialty: "Pediatrician", Email: "chloe@clinic.com", Bio: "Cares for children's health."},
		{ID: 4, Name: "Dr. David Rodriguez", Specialty: "Orthopedic Surgeon", Email: "david@clinic.com", Bio: "Expert in sports medicine."},
		{ID: 5, Name: "Dr. Evelyn Reed", Specialty: "Neurologist", Email: "evelyn@clinic.com", Bio: "Disorders of the nervous system."},
		{ID: 6, Name: "Dr. Frank Miller", Specialty: "Psychiatrist", Email: "frank@clinic.com", Bio: "Provides mental health care."},
	}
}

// SeedAppointments is the demo schedule the service boots with.
func SeedAppointments() []*model.Appointment {
	return []*model.Appointment{
		{ID: 1001, DoctorID: 1, PatientName: "John Doe", Date: "2025-07-29", Time: "10:00 AM", Reason: "Annual Checkup", Status: model.AppointmentStatusUpcoming},
		{ID: 1002, DoctorID: 2, PatientName: "Jane Smith", Date: "2025-07-29", Time: "11:30 AM", Reason: "Follow-up Visit", Status: model.AppointmentStatusUpcoming},
		{ID: 1003, DoctorID: 1, PatientName: "Peter Jones", Date: "2025-07-29", Time: "02:00 PM", Reason: "Consultation", Status: model.AppointmentStatusUpcoming},
		{ID: 1004, DoctorID: 3, PatientName: "Emily White", Date: "2025-07-30", Time: "09:30 AM", Reason: "Vaccination", Status: model.AppointmentStatusUpcoming},
		{ID: 1005, DoctorID: 2, PatientName: "Michael Brown", Date: "2025-07-30", Time: "03:00 PM", Reason: "Skin Rash", Status: model.AppointmentStatusUpcoming},
		{ID: 1006, DoctorID: 1, PatientName: "Sarah Wilson", Date: "2025-08-05", Time: "10:30 AM", Reason: "Heart Palpitations", Status: model.AppointmentStatusUpcoming},
		{ID: 2001, DoctorID: 1, PatientName: "Alex Ray", Date: "2025-07-28", Time: "09:00 AM", Reason: "Initial Consultation", Status: model.AppointmentStatusCompleted},
		{ID: 2002, DoctorID: 2, PatientName: "Brenda Lee", Date: "2025-07-28", Time: "10:30 AM", Reason: "Prescription Refill", Status: model.AppointmentStatusCompleted},
		{ID: 2003, DoctorID: 1, PatientName: "Carl Sagan", Date: "2025-07-22", Time: "03:00 PM", Reason: "Follow-up", Status: model.AppointmentStatusCancelled},
		{ID: 2004, DoctorID: 3, PatientName: "Diana Prince", Date: "2025-07-22", Time: "11:00 AM", Reason: "Well-child Visit", Status: model.AppointmentStatusCompleted},
	}
}

// NewSeededStore returns a store loaded with the demo fixtures.
func NewSeededStore() *Store {
	s := NewStore()
	s.LoadDoctors(SeedDoctors())
	s.LoadAppointments(SeedAppointments())
	return s
}
