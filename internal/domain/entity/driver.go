package entity

// Driver status
const (
	DriverActive    = "active"
	DriverSuspended = "suspended"
	DriverInactive  = "inactive"
)

// Driver represents a licensed vehicle operator
type Driver struct {
	ID            int64  `json:"id"`
	FullName      string `json:"fullName"`
	LicenseNumber string `json:"licenseNumber"` // unique
	ContactPhone  string `json:"contactPhone"`
	CorporateID   *int64 `json:"corporateId"`
	Status        string `json:"status"`
}

type DriverPatch struct {
	FullName      *string `json:"fullName,omitempty" binding:"omitempty,min=1"`
	LicenseNumber *string `json:"licenseNumber,omitempty" binding:"omitempty,min=1"`
	ContactPhone  *string `json:"contactPhone,omitempty"`
	CorporateID   *int64  `json:"corporateId,omitempty"`
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=active suspended inactive"`
}

func (p DriverPatch) Apply(d Driver) Driver {
	set(&d.FullName, p.FullName)
	set(&d.LicenseNumber, p.LicenseNumber)
	set(&d.ContactPhone, p.ContactPhone)
	setRef(&d.CorporateID, p.CorporateID)
	set(&d.Status, p.Status)
	return d
}
