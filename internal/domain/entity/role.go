package entity

import (
	"database/sql/driver"
	"fmt"
)

// Role is the closed set of account kinds. It is persisted in the users.status
// column as its string tag.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleDoctor
	RolePatient
)

// Role tags as stored and as submitted by forms
const (
	RoleNameAdmin   = "admin"
	RoleNameDoctor  = "doctor"
	RoleNamePatient = "patient"
)

// ParseRole maps a role tag to its Role. Unrecognised tags yield RoleUnknown.
func ParseRole(name string) (Role, error) {
	switch name {
	case RoleNameAdmin:
		return RoleAdmin, nil
	case RoleNameDoctor:
		return RoleDoctor, nil
	case RoleNamePatient:
		return RolePatient, nil
	}
	return RoleUnknown, fmt.Errorf("unknown role %q", name)
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return RoleNameAdmin
	case RoleDoctor:
		return RoleNameDoctor
	case RolePatient:
		return RoleNamePatient
	}
	return "unknown"
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleDoctor || r == RolePatient
}

// Dashboard returns the landing path after login, or "" for RoleUnknown.
func (r Role) Dashboard() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleDoctor:
		return "/doctordashboard"
	case RolePatient:
		return "/patientdashboard"
	}
	return ""
}

// Capability checks gate routes; each area of the app names the one it needs.

func (r Role) CanManageAccounts() bool { return r == RoleAdmin }

func (r Role) CanViewAllAppointments() bool { return r == RoleAdmin }

// CanTreatPatients covers the doctor area: own appointments, dashboard, profile.
func (r Role) CanTreatPatients() bool { return r == RoleDoctor }

func (r Role) CanPrescribe() bool { return r == RoleDoctor }

// CanBook covers the patient area: booking and the own appointment list.
func (r Role) CanBook() bool { return r == RolePatient }

func (r Role) CanViewPrescriptions() bool { return r == RolePatient }

// Value implements driver.Valuer
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("cannot store role %d", r)
	}
	return r.String(), nil
}

// Scan implements sql.Scanner. Unknown tags scan to RoleUnknown rather than
// failing so a bad row cannot break list queries.
func (r *Role) Scan(value interface{}) error {
	var name string
	switch v := value.(type) {
	case nil:
		*r = RoleUnknown
		return nil
	case []byte:
		name = string(v)
	case string:
		name = v
	default:
		return fmt.Errorf("failed to scan role from %T", value)
	}

	role, err := ParseRole(name)
	if err != nil {
		*r = RoleUnknown
		return nil
	}
	*r = role
	return nil
}
