package http

import (
	"net/http"

	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/domain/entity"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router                    *mux.Router
	log                       *logrus.Logger
	authHandler               *handler.AuthHandler
	adminHandler              *handler.AdminHandler
	doctorHandler             *handler.DoctorHandler
	patientHandler            *handler.PatientHandler
	profileHandler            *handler.ProfileHandler
	healthHandler             *handler.HealthHandler
	authMiddleware            *middleware.AuthMiddleware
	roleMiddleware            *middleware.RoleMiddleware
	securityHeadersMiddleware *middleware.SecurityHeadersMiddleware
}

func NewRouter(
	log *logrus.Logger,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	profileHandler *handler.ProfileHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
	securityHeadersMiddleware *middleware.SecurityHeadersMiddleware,
) *Router {
	return &Router{
		router:                    mux.NewRouter(),
		log:                       log,
		authHandler:               authHandler,
		adminHandler:              adminHandler,
		doctorHandler:             doctorHandler,
		patientHandler:            patientHandler,
		profileHandler:            profileHandler,
		healthHandler:             healthHandler,
		authMiddleware:            authMiddleware,
		roleMiddleware:            roleMiddleware,
		securityHeadersMiddleware: securityHeadersMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Logger(r.log))
	r.router.Use(middleware.Recovery(r.log))
	r.router.Use(r.securityHeadersMiddleware.Handle)

	// Health check
	r.router.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Public routes
	r.router.HandleFunc("/login", r.authHandler.LoginPage).Methods(http.MethodGet)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/signup", r.authHandler.SignupPage).Methods(http.MethodGet)
	r.router.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	r.router.HandleFunc("/admin", r.authHandler.AdminSignupPage).Methods(http.MethodGet)
	r.router.HandleFunc("/admin", r.authHandler.AdminSignup).Methods(http.MethodPost)
	r.router.HandleFunc("/forgetpassword", r.authHandler.ForgetPasswordPage).Methods(http.MethodGet)
	r.router.HandleFunc("/forgetpassword", r.authHandler.ForgetPassword).Methods(http.MethodPost)
	r.router.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodGet, http.MethodPost)

	// Protected routes (any signed-in user)
	protected := r.router.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/", r.authHandler.Index).Methods(http.MethodGet)
	protected.HandleFunc("/index", r.authHandler.Index).Methods(http.MethodGet)

	// Admin routes
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(r.roleMiddleware.RequireAdmin)
	admin.HandleFunc("/dashboard", r.adminHandler.Dashboard).Methods(http.MethodGet)
	admin.HandleFunc("/doctors", r.adminHandler.Doctors).Methods(http.MethodGet, http.MethodPost)
	admin.HandleFunc("/doctors/new", r.adminHandler.NewDoctorPage).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/new", r.adminHandler.NewDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/patients", r.adminHandler.Patients).Methods(http.MethodGet, http.MethodPost)

	allAppointments := admin.NewRoute().Subrouter()
	allAppointments.Use(r.roleMiddleware.Require(entity.Role.CanViewAllAppointments))
	allAppointments.HandleFunc("/appointments", r.adminHandler.Appointments).Methods(http.MethodGet, http.MethodPost)

	// Doctor routes
	doctor := protected.NewRoute().Subrouter()
	doctor.Use(r.roleMiddleware.RequireDoctor)
	doctor.HandleFunc("/doctordashboard", r.doctorHandler.Dashboard).Methods(http.MethodGet)
	doctor.HandleFunc("/doctorappointments", r.doctorHandler.Appointments).Methods(http.MethodGet, http.MethodPost)
	doctor.HandleFunc("/editdoctorprofile", r.profileHandler.EditPage).Methods(http.MethodGet)
	doctor.HandleFunc("/editdoctorprofile", r.profileHandler.Edit).Methods(http.MethodPost)

	prescribing := doctor.NewRoute().Subrouter()
	prescribing.Use(r.roleMiddleware.Require(entity.Role.CanPrescribe))
	prescribing.HandleFunc("/addprescription", r.doctorHandler.AddPrescriptionPage).Methods(http.MethodGet)
	prescribing.HandleFunc("/addprescription", r.doctorHandler.AddPrescription).Methods(http.MethodPost)

	// Patient routes
	patient := protected.NewRoute().Subrouter()
	patient.Use(r.roleMiddleware.RequirePatient)
	patient.HandleFunc("/patientdashboard", r.patientHandler.Dashboard).Methods(http.MethodGet, http.MethodPost)
	patient.HandleFunc("/bookappointment", r.patientHandler.BookAppointmentPage).Methods(http.MethodGet)
	patient.HandleFunc("/bookappointment", r.patientHandler.BookAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/editpatientprofile", r.profileHandler.EditPage).Methods(http.MethodGet)
	patient.HandleFunc("/editpatientprofile", r.profileHandler.Edit).Methods(http.MethodPost)

	prescriptions := patient.NewRoute().Subrouter()
	prescriptions.Use(r.roleMiddleware.Require(entity.Role.CanViewPrescriptions))
	prescriptions.HandleFunc("/prescriptions", r.patientHandler.Prescriptions).Methods(http.MethodGet)

	return r.router
}
