// Package view renders the HTML pages from templates embedded in the binary.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"hospital-management/internal/delivery/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names
const (
	PageIndex              = "index"
	PageLogin              = "login"
	PageSignup             = "signup"
	PageAdminSignup        = "admin_signup"
	PageForgetPassword     = "forget_password"
	PageAdminDashboard     = "admin_dashboard"
	PageDoctors            = "doctors"
	PagePatients           = "patients"
	PageAppointments       = "appointments"
	PageNewDoctor          = "new_doctor"
	PageDoctorDashboard    = "doctor_dashboard"
	PageDoctorAppointments = "doctor_appointments"
	PageAddPrescription    = "add_prescription"
	PageEditProfile        = "edit_profile"
	PagePatientDashboard   = "patient_dashboard"
	PageBookAppointment    = "book_appointment"
	PagePrescriptions      = "prescriptions"
	PageForbidden          = "forbidden"
)

var pageNames = []string{
	PageIndex, PageLogin, PageSignup, PageAdminSignup, PageForgetPassword,
	PageAdminDashboard, PageDoctors, PagePatients, PageAppointments, PageNewDoctor,
	PageDoctorDashboard, PageDoctorAppointments, PageAddPrescription, PageEditProfile,
	PagePatientDashboard, PageBookAppointment, PagePrescriptions, PageForbidden,
}

// Page is the data every template receives. Data holds the page-specific
// payload.
type Page struct {
	Title   string
	User    *dto.UserResponse
	Flashes []string
	Data    interface{}
}

// Role returns the role tag of the signed-in user, or "".
func (p *Page) Role() string {
	if p.User == nil {
		return ""
	}
	return p.User.Role
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render executes the named page into a buffer first so a template error
// never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page *Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
