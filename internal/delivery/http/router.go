package http

import (
	"net/http"

	"go-hospital-management/internal/authz"
	"go-hospital-management/internal/delivery/http/handler"
	"go-hospital-management/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	doctorHandler        *handler.DoctorHandler
	patientHandler       *handler.PatientHandler
	departmentHandler    *handler.DepartmentHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	departmentHandler *handler.DepartmentHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		doctorHandler:        doctorHandler,
		patientHandler:       patientHandler,
		departmentHandler:    departmentHandler,
		appointmentHandler:   appointmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Everything below requires authentication; capability checks per
	// route come from the role permission table.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Doctor directory and availability
	protected.Handle("/doctors",
		middleware.RequirePermission(authz.ResourceDoctors, authz.ActionRead)(http.HandlerFunc(r.doctorHandler.ListDoctors))).Methods(http.MethodGet)
	protected.Handle("/doctors/{id}",
		middleware.RequirePermission(authz.ResourceDoctors, authz.ActionRead)(http.HandlerFunc(r.doctorHandler.GetDoctor))).Methods(http.MethodGet)
	// Own-scope or admin; the usecase decides
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	protected.Handle("/doctors/{id}/availability",
		middleware.RequirePermission(authz.ResourceSchedules, authz.ActionRead)(http.HandlerFunc(r.appointmentHandler.GetAvailability))).Methods(http.MethodGet)
	protected.Handle("/doctors/{id}/schedule",
		middleware.RequirePermission(authz.ResourceSchedules, authz.ActionWrite)(http.HandlerFunc(r.doctorHandler.UpdateWorkingSchedule))).Methods(http.MethodPut)

	// Patients
	protected.Handle("/patients",
		middleware.RequirePermission(authz.ResourcePatients, authz.ActionRead)(http.HandlerFunc(r.patientHandler.ListPatients))).Methods(http.MethodGet)
	protected.Handle("/patients/{id}",
		middleware.RequirePermission(authz.ResourcePatients, authz.ActionRead)(http.HandlerFunc(r.patientHandler.GetPatient))).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	protected.Handle("/patients/{id}/medical-records",
		http.HandlerFunc(r.medicalRecordHandler.GetPatientRecords)).Methods(http.MethodGet)

	// Departments
	protected.Handle("/departments",
		middleware.RequirePermission(authz.ResourceDepartments, authz.ActionRead)(http.HandlerFunc(r.departmentHandler.ListDepartments))).Methods(http.MethodGet)
	protected.Handle("/departments/{id}",
		middleware.RequirePermission(authz.ResourceDepartments, authz.ActionRead)(http.HandlerFunc(r.departmentHandler.GetDepartment))).Methods(http.MethodGet)

	// Appointments
	protected.Handle("/appointments",
		middleware.RequirePermission(authz.ResourceAppointments, authz.ActionWrite)(http.HandlerFunc(r.appointmentHandler.Book))).Methods(http.MethodPost)
	protected.Handle("/appointments",
		middleware.RequirePermission(authz.ResourceAppointments, authz.ActionRead)(http.HandlerFunc(r.appointmentHandler.ListAppointments))).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/me", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	protected.Handle("/appointments/{id}/cancel",
		middleware.RequirePermission(authz.ResourceAppointments, authz.ActionWrite)(http.HandlerFunc(r.appointmentHandler.Cancel))).Methods(http.MethodPost)
	protected.Handle("/appointments/{id}/complete",
		middleware.RequirePermission(authz.ResourceAppointments, authz.ActionWrite)(http.HandlerFunc(r.appointmentHandler.Complete))).Methods(http.MethodPost)

	// Medical records
	protected.Handle("/medical-records",
		middleware.RequirePermission(authz.ResourceMedicalRecords, authz.ActionWrite)(http.HandlerFunc(r.medicalRecordHandler.CreateRecord))).Methods(http.MethodPost)
	protected.Handle("/medical-records/{id}",
		middleware.RequirePermission(authz.ResourceMedicalRecords, authz.ActionWrite)(http.HandlerFunc(r.medicalRecordHandler.UpdateRecord))).Methods(http.MethodPut)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/register-staff", r.authHandler.RegisterStaff).Methods(http.MethodPost)
	admin.HandleFunc("/departments", r.departmentHandler.CreateDepartment).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeactivateDoctor).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetRecentLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
