package handler

import (
	"net/http"

	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/delivery/http/view"
	"hospital-management/pkg/form"
	"hospital-management/pkg/validator"

	"github.com/sirupsen/logrus"
)

// Flash messages shown to users
const (
	MessageMissingFields     = "Enter all required fields"
	MessagePasswordMismatch  = "Password Mismatch"
	MessageUserExists        = "User already exist"
	MessageAccountCreated    = "Account Created Successfully"
	MessageLoginFailed       = "Please check your login details and try again."
	MessageUnknownRole       = "Your account has no valid role, please contact an administrator."
	MessageInvalidRole       = "Select a valid account type"
	MessageNoAccount         = "No account found for that email"
	MessagePasswordUpdated   = "Password Updated Successfully"
	MessageProfileUpdated    = "Profile Update Successfully"
	MessageAppointmentBooked = "Appointment has been booked"
	MessageDoctorNotFound    = "Selected doctor does not exist"
	MessagePatientNotFound   = "Selected patient does not exist"
	MessagePrescriptionAdded = "New Prescription has been added"
	MessageStoreError        = "Something went wrong, please try again"
)

// Base carries what every page handler needs: template rendering, flash
// messages and form decoding.
type Base struct {
	renderer  *view.Renderer
	flasher   *middleware.Flasher
	decoder   *form.Decoder
	validator *validator.CustomValidator
	log       *logrus.Logger
}

func NewBase(
	renderer *view.Renderer,
	flasher *middleware.Flasher,
	decoder *form.Decoder,
	validator *validator.CustomValidator,
	log *logrus.Logger,
) *Base {
	return &Base{
		renderer:  renderer,
		flasher:   flasher,
		decoder:   decoder,
		validator: validator,
		log:       log,
	}
}

// render shows page with the pending flashes and the signed-in user, if any.
// notices are shown after the pending flashes on this render only.
func (b *Base) render(w http.ResponseWriter, r *http.Request, status int, page, title string, data interface{}, notices ...string) {
	user, _ := middleware.GetCurrentUserFromContext(r.Context())

	err := b.renderer.Render(w, status, page, &view.Page{
		Title:   title,
		User:    user,
		Flashes: append(b.flasher.Pop(r), notices...),
		Data:    data,
	})
	if err != nil {
		b.log.Errorf("Failed to render %s: %+v", page, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// redirect sends a 303 to target after queueing message.
func (b *Base) redirect(w http.ResponseWriter, r *http.Request, target, message string) {
	b.flasher.Redirect(w, r, target, message)
}

// decode fills dst from the posted form and runs its validate tags.
func (b *Base) decode(r *http.Request, dst interface{}) error {
	if err := b.decoder.Decode(r, dst); err != nil {
		return err
	}
	return b.validator.Validate(dst)
}

// formFailureMessage picks the flash for a form that did not decode or
// validate. A missing field wins over an unknown account type.
func (b *Base) formFailureMessage(err error) string {
	if b.validator.HasMissingFields(err) {
		return MessageMissingFields
	}
	if _, ok := b.validator.FormatValidationErrors(err)["Status"]; ok {
		return MessageInvalidRole
	}
	return MessageMissingFields
}

// Forbidden renders the fixed forbidden page for a role mismatch.
func (b *Base) Forbidden(w http.ResponseWriter, r *http.Request) {
	b.render(w, r, http.StatusForbidden, view.PageForbidden, "Forbidden", nil)
}
