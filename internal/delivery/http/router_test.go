package http_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"hospital-management/cmd/bootstrap"
	"hospital-management/config"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/testutil"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type app struct {
	server *httptest.Server
	db     *gorm.DB
}

func newApp(t *testing.T) *app {
	t.Helper()

	db := testutil.NewDB(t)
	redisClient, _ := testutil.NewRedis(t)
	cfg := &config.Config{
		App: config.AppConfig{Env: "test", BcryptCost: bcrypt.MinCost},
		Session: config.SessionConfig{
			Secret:          "test-secret",
			Expiry:          time.Hour,
			CookieName:      "hms_session",
			FlashCookieName: "hms_flash",
			FlashExpiry:     time.Minute,
		},
	}

	h, err := bootstrap.NewHTTPHandler(cfg, db, redisClient, testutil.NewLogger())
	if err != nil {
		t.Fatalf("failed to build handler: %v", err)
	}

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return &app{server: srv, db: db}
}

func (a *app) userID(t *testing.T, email string) string {
	t.Helper()
	var user entity.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		t.Fatalf("load %s: %v", email, err)
	}
	return strconv.FormatUint(uint64(user.ID), 10)
}

// browser keeps cookies between requests and does not follow redirects.
type browser struct {
	t      *testing.T
	client *http.Client
	base   string
}

func (a *app) browser(t *testing.T) *browser {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &browser{
		t:    t,
		base: a.server.URL,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (b *browser) get(path string) (int, string) {
	b.t.Helper()
	resp, err := b.client.Get(b.base + path)
	if err != nil {
		b.t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		b.t.Fatalf("read %s: %v", path, err)
	}
	if resp.StatusCode == http.StatusSeeOther {
		return resp.StatusCode, resp.Header.Get("Location")
	}
	return resp.StatusCode, string(body)
}

// post returns the status and, for redirects, the Location; otherwise the body.
func (b *browser) post(path string, form url.Values) (int, string) {
	b.t.Helper()
	resp, err := b.client.PostForm(b.base+path, form)
	if err != nil {
		b.t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		b.t.Fatalf("read %s: %v", path, err)
	}
	if resp.StatusCode == http.StatusSeeOther {
		return resp.StatusCode, resp.Header.Get("Location")
	}
	return resp.StatusCode, string(body)
}

func (b *browser) expectRedirect(status int, location, want string) {
	b.t.Helper()
	if status != http.StatusSeeOther || location != want {
		b.t.Fatalf("expected 303 to %s, got %d %s", want, status, location)
	}
}

func (b *browser) expectFlash(path, message string) {
	b.t.Helper()
	status, body := b.get(path)
	if status != http.StatusOK {
		b.t.Fatalf("GET %s: expected 200, got %d", path, status)
	}
	if !strings.Contains(body, message) {
		b.t.Errorf("GET %s: expected flash %q", path, message)
	}
}

func signupForm(first, email, status string) url.Values {
	return url.Values{
		"firstname":        {first},
		"lastname":         {"Tester"},
		"email":            {email},
		"phonenumber":      {"0800000000"},
		"gender":           {"female"},
		"password":         {"secret"},
		"confirm_password": {"secret"},
		"status":           {status},
	}
}

func (b *browser) login(email, password, wantDashboard string) {
	b.t.Helper()
	status, location := b.post("/login", url.Values{"email": {email}, "password": {password}})
	b.expectRedirect(status, location, wantDashboard)
}

func TestHealth(t *testing.T) {
	a := newApp(t)
	status, body := a.browser(t).get("/health")
	if status != http.StatusOK || strings.TrimSpace(body) != `{"status":"ok"}` {
		t.Errorf("unexpected health response %d %s", status, body)
	}
}

func TestProtectedRoutesRequireLogin(t *testing.T) {
	a := newApp(t)

	for _, path := range []string{"/", "/index", "/patientdashboard", "/doctordashboard", "/admin/dashboard", "/prescriptions"} {
		b := a.browser(t)
		status, location := b.get(path)
		b.expectRedirect(status, location, "/login")
		b.expectFlash("/login", "Please log in to access this page.")
	}
}

func TestSignup(t *testing.T) {
	a := newApp(t)
	b := a.browser(t)

	status, location := b.post("/signup", signupForm("Ada", "ada@example.com", "patient"))
	b.expectRedirect(status, location, "/login")
	b.expectFlash("/login", "Account Created Successfully")

	status, location = b.post("/signup", signupForm("Ada", "ada@example.com", "doctor"))
	b.expectRedirect(status, location, "/signup")
	b.expectFlash("/signup", "User already exist")

	var count int64
	a.db.Model(&entity.User{}).Where("email = ?", "ada@example.com").Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one row, got %d", count)
	}

	missing := signupForm("", "bob@example.com", "patient")
	status, location = b.post("/signup", missing)
	b.expectRedirect(status, location, "/signup")
	b.expectFlash("/signup", "Enter all required fields")

	mismatch := signupForm("Bob", "bob@example.com", "patient")
	mismatch.Set("confirm_password", "other")
	status, location = b.post("/signup", mismatch)
	b.expectRedirect(status, location, "/signup")
	b.expectFlash("/signup", "Password Mismatch")

	nurse := signupForm("Nia", "nia@example.com", "nurse")
	status, location = b.post("/signup", nurse)
	b.expectRedirect(status, location, "/signup")
	_, body := b.get("/signup")
	if !strings.Contains(body, "Select a valid account type") {
		t.Error("expected invalid account type flash")
	}
	if strings.Contains(body, "Enter all required fields") {
		t.Error("invalid account type must not be reported as missing fields")
	}
}

func TestLogin(t *testing.T) {
	a := newApp(t)
	setup := a.browser(t)
	setup.post("/signup", signupForm("Pat", "pat@example.com", "patient"))
	setup.post("/signup", signupForm("Doc", "doc@example.com", "doctor"))
	setup.post("/admin", signupForm("Root", "root@example.com", ""))

	tests := []struct {
		email     string
		dashboard string
	}{
		{"pat@example.com", "/patientdashboard"},
		{"doc@example.com", "/doctordashboard"},
		{"root@example.com", "/admin/dashboard"},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			b := a.browser(t)
			b.login(tt.email, "secret", tt.dashboard)
			if status, _ := b.get(tt.dashboard); status != http.StatusOK {
				t.Errorf("dashboard: expected 200, got %d", status)
			}
		})
	}

	t.Run("wrong password", func(t *testing.T) {
		b := a.browser(t)
		b.login("pat@example.com", "wrong", "/login")
		b.expectFlash("/login", "Please check your login details and try again.")

		status, location := b.get("/patientdashboard")
		b.expectRedirect(status, location, "/login")
	})
}

func TestLogin_SessionCookieLifetime(t *testing.T) {
	a := newApp(t)
	b := a.browser(t)
	b.post("/signup", signupForm("Pat", "pat@example.com", "patient"))

	resp, err := b.client.PostForm(a.server.URL+"/login", url.Values{"email": {"pat@example.com"}, "password": {"secret"}})
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	resp.Body.Close()

	var found bool
	for _, c := range resp.Cookies() {
		if c.Name != "hms_session" {
			continue
		}
		found = true
		if c.MaxAge != int(time.Hour.Seconds()) {
			t.Errorf("expected session cookie Max-Age %d, got %d", int(time.Hour.Seconds()), c.MaxAge)
		}
		if !c.HttpOnly {
			t.Error("session cookie must be HttpOnly")
		}
	}
	if !found {
		t.Fatal("expected a session cookie")
	}
}

func TestLogout(t *testing.T) {
	a := newApp(t)
	b := a.browser(t)
	b.post("/signup", signupForm("Pat", "pat@example.com", "patient"))
	b.login("pat@example.com", "secret", "/patientdashboard")

	status, location := b.get("/logout")
	b.expectRedirect(status, location, "/login")

	status, location = b.get("/patientdashboard")
	b.expectRedirect(status, location, "/login")

	anonymous := a.browser(t)
	status, location = anonymous.get("/logout")
	anonymous.expectRedirect(status, location, "/login")
}

func TestRoleGate(t *testing.T) {
	a := newApp(t)
	b := a.browser(t)
	b.post("/signup", signupForm("Pat", "pat@example.com", "patient"))
	b.login("pat@example.com", "secret", "/patientdashboard")

	for _, path := range []string{"/admin/dashboard", "/admin/doctors", "/admin/appointments", "/doctordashboard", "/addprescription", "/editdoctorprofile"} {
		status, body := b.get(path)
		if status != http.StatusForbidden {
			t.Errorf("GET %s: expected 403, got %d", path, status)
		}
		if !strings.Contains(body, "Forbidden") {
			t.Errorf("GET %s: expected forbidden page", path)
		}
	}

	d := a.browser(t)
	d.post("/signup", signupForm("Doc", "doc@example.com", "doctor"))
	d.login("doc@example.com", "secret", "/doctordashboard")

	for path, want := range map[string]int{
		"/addprescription":    http.StatusOK,
		"/doctorappointments": http.StatusOK,
		"/prescriptions":      http.StatusForbidden,
		"/bookappointment":    http.StatusForbidden,
		"/admin/appointments": http.StatusForbidden,
	} {
		if status, _ := d.get(path); status != want {
			t.Errorf("doctor GET %s: expected %d, got %d", path, want, status)
		}
	}
}

func TestForgetPassword(t *testing.T) {
	a := newApp(t)
	b := a.browser(t)
	b.post("/signup", signupForm("Pat", "pat@example.com", "patient"))
	b.login("pat@example.com", "secret", "/patientdashboard")

	other := a.browser(t)
	status, location := other.post("/forgetpassword", url.Values{
		"email": {"pat@example.com"}, "password": {"fresh"}, "confirm-password": {"fresh"},
	})
	other.expectRedirect(status, location, "/login")
	other.expectFlash("/login", "Password Updated Successfully")

	status, location = b.get("/patientdashboard")
	b.expectRedirect(status, location, "/login")

	other.login("pat@example.com", "fresh", "/patientdashboard")

	status, location = other.post("/forgetpassword", url.Values{
		"email": {"ghost@example.com"}, "password": {"x"}, "confirm-password": {"x"},
	})
	other.expectRedirect(status, location, "/forgetpassword")
	other.expectFlash("/forgetpassword", "No account found for that email")
}

// Admin creates a doctor, a patient books with that doctor, the doctor sees
// the appointment and prescribes, and the patient sees the prescription.
func TestScenario_BookingAndPrescription(t *testing.T) {
	a := newApp(t)

	admin := a.browser(t)
	status, location := admin.post("/admin", signupForm("Root", "root@example.com", ""))
	admin.expectRedirect(status, location, "/login")
	admin.login("root@example.com", "secret", "/admin/dashboard")

	status, location = admin.post("/admin/doctors/new", signupForm("Gregory", "house@example.com", ""))
	admin.expectRedirect(status, location, "/admin/doctors")
	admin.expectFlash("/admin/doctors", "Gregory Tester")
	doctorID := a.userID(t, "house@example.com")

	patient := a.browser(t)
	patient.post("/signup", signupForm("Ada", "ada@example.com", "patient"))
	patient.post("/signup", signupForm("Bob", "bob@example.com", "patient"))
	patient.login("ada@example.com", "secret", "/patientdashboard")

	_, page := patient.get("/bookappointment")
	if !strings.Contains(page, "Gregory Tester") {
		t.Error("doctor must be offered on the booking page")
	}

	status, location = patient.post("/bookappointment", url.Values{
		"firstname":        {"Ada"},
		"lastname":         {"Tester"},
		"gender":           {"female"},
		"date":             {"2026-11-02"},
		"time":             {"09:30"},
		"phonenumber":      {"0800000000"},
		"select-doctor":    {doctorID},
		"injury-condition": {"migraine"},
	})
	patient.expectRedirect(status, location, "/patientdashboard")

	_, page = patient.get("/patientdashboard")
	if n := strings.Count(page, `class="appointment-row"`); n != 1 {
		t.Fatalf("patient must see exactly one appointment, got %d", n)
	}
	if !strings.Contains(page, "Gregory Tester") || !strings.Contains(page, "Appointment has been booked") {
		t.Error("patient dashboard must show the doctor and the booking flash")
	}

	doctor := a.browser(t)
	doctor.login("house@example.com", "secret", "/doctordashboard")

	_, page = doctor.get("/doctorappointments")
	if n := strings.Count(page, `class="appointment-row"`); n != 1 {
		t.Fatalf("doctor must see exactly one appointment, got %d", n)
	}
	if !strings.Contains(page, "Ada Tester") {
		t.Error("doctor must see the patient")
	}

	status, page = doctor.post("/addprescription", url.Values{
		"drug":      {"Sumatriptan"},
		"quantity":  {"6"},
		"condition": {"migraine"},
		"patient":   {a.userID(t, "ada@example.com")},
	})
	if status != http.StatusOK || !strings.Contains(page, "New Prescription has been added") {
		t.Fatalf("expected prescription confirmation, got %d", status)
	}

	_, page = patient.get("/prescriptions")
	if !strings.Contains(page, "Sumatriptan") || !strings.Contains(page, "Gregory Tester") {
		t.Error("patient must see the drug and the prescribing doctor")
	}

	bob := a.browser(t)
	bob.login("bob@example.com", "secret", "/patientdashboard")
	if _, page = bob.get("/prescriptions"); strings.Contains(page, "Sumatriptan") {
		t.Error("other patients must not see the prescription")
	}

	_, page = admin.get("/admin/dashboard")
	if !strings.Contains(page, `<span id="appointment-count">1</span>`) {
		t.Error("admin dashboard must count the appointment")
	}
}

func TestBooking_Validation(t *testing.T) {
	a := newApp(t)
	b := a.browser(t)
	b.post("/signup", signupForm("Ada", "ada@example.com", "patient"))
	b.login("ada@example.com", "secret", "/patientdashboard")

	status, location := b.post("/bookappointment", url.Values{"firstname": {"Ada"}})
	b.expectRedirect(status, location, "/bookappointment")
	b.expectFlash("/bookappointment", "Enter all required fields")

	status, location = b.post("/bookappointment", url.Values{
		"firstname": {"Ada"}, "lastname": {"T"}, "gender": {"f"}, "date": {"d"}, "time": {"t"},
		"phonenumber": {"1"}, "select-doctor": {"4242"}, "injury-condition": {"c"},
	})
	b.expectRedirect(status, location, "/bookappointment")
	b.expectFlash("/bookappointment", "Selected doctor does not exist")
}

func TestDeleteUnknownAppointmentIsNoop(t *testing.T) {
	a := newApp(t)
	setup := a.browser(t)
	setup.post("/signup", signupForm("Doc", "doc@example.com", "doctor"))

	b := a.browser(t)
	b.post("/signup", signupForm("Ada", "ada@example.com", "patient"))
	b.login("ada@example.com", "secret", "/patientdashboard")
	b.post("/bookappointment", url.Values{
		"firstname": {"Ada"}, "lastname": {"T"}, "gender": {"f"}, "date": {"2026-11-02"}, "time": {"10:00"},
		"phonenumber": {"1"}, "select-doctor": {a.userID(t, "doc@example.com")}, "injury-condition": {"c"},
	})

	_, before := b.get("/patientdashboard")
	for _, id := range []string{"999999", "not-a-number", ""} {
		status, after := b.post("/patientdashboard", url.Values{"id": {id}})
		if status != http.StatusOK {
			t.Fatalf("id %q: expected 200, got %d", id, status)
		}
		if strings.Count(after, `class="appointment-row"`) != strings.Count(before, `class="appointment-row"`) {
			t.Errorf("id %q: list must be unchanged", id)
		}
	}
}

func TestAdminDeletesDoctor(t *testing.T) {
	a := newApp(t)
	admin := a.browser(t)
	admin.post("/admin", signupForm("Root", "root@example.com", ""))
	admin.post("/signup", signupForm("Doc", "doc@example.com", "doctor"))
	admin.post("/signup", signupForm("Pat", "pat@example.com", "patient"))
	admin.login("root@example.com", "secret", "/admin/dashboard")

	status, page := admin.post("/admin/doctors", url.Values{"id": {a.userID(t, "pat@example.com")}})
	if status != http.StatusOK || strings.Count(page, `class="user-row"`) != 1 {
		t.Fatalf("patient id through doctor list must be a no-op")
	}

	status, page = admin.post("/admin/doctors", url.Values{"id": {a.userID(t, "doc@example.com")}})
	if status != http.StatusOK || strings.Count(page, `class="user-row"`) != 0 {
		t.Errorf("doctor must be removed from the list")
	}

	_, page = admin.get("/admin/patients")
	if strings.Count(page, `class="user-row"`) != 1 {
		t.Error("patient must survive")
	}
}

func TestProfileEdit(t *testing.T) {
	a := newApp(t)
	b := a.browser(t)
	b.post("/signup", signupForm("Pat", "pat@example.com", "patient"))
	b.login("pat@example.com", "secret", "/patientdashboard")

	status, location := b.post("/editpatientprofile", url.Values{
		"firstname":        {"Patricia"},
		"lastname":         {"Tester"},
		"email":            {"pat@example.com"},
		"phonenumber":      {"0899999999"},
		"gender":           {"female"},
		"password":         {"changed"},
		"confirm_password": {"different"},
	})
	b.expectRedirect(status, location, "/editpatientprofile")
	b.expectFlash("/editpatientprofile", "Profile Update Successfully")

	_, page := b.get("/editpatientprofile")
	if !strings.Contains(page, `value="Patricia"`) {
		t.Error("first name must be overwritten")
	}

	fresh := a.browser(t)
	fresh.login("pat@example.com", "secret", "/patientdashboard")
}
