package dto

type AdminDashboardResponse struct {
	Doctors      int64 `json:"doctors"`
	Patients     int64 `json:"patients"`
	Appointments int64 `json:"appointments"`
}

type DoctorDashboardResponse struct {
	Appointments int64 `json:"appointments"`
}
