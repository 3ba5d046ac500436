package entity

// User roles
const (
	RoleAdmin     = "admin"
	RoleOperator  = "operator"
	RoleSecurity  = "security"
	RoleCorporate = "corporate"
)

// User is an operator account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"` // unique
	Password    string `json:"-"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	AgencyID    *int64 `json:"agencyId"`
	CorporateID *int64 `json:"corporateId"`
}
