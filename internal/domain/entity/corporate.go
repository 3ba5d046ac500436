package entity

// Corporate subscription plans
const (
	SubscriptionBasic   = "basic"
	SubscriptionPremium = "premium"
)

// Corporate is a transport company operating vehicles and drivers
type Corporate struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Subscription  string `json:"subscription"`
	FleetCount    int    `json:"fleetCount"`
}

type CorporatePatch struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	Email         *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone         *string `json:"phone,omitempty"`
	Subscription  *string `json:"subscription,omitempty" binding:"omitempty,oneof=basic premium"`
	FleetCount    *int    `json:"fleetCount,omitempty" binding:"omitempty,min=0"`
}

func (p CorporatePatch) Apply(c Corporate) Corporate {
	set(&c.Name, p.Name)
	set(&c.ContactPerson, p.ContactPerson)
	set(&c.Email, p.Email)
	set(&c.Phone, p.Phone)
	set(&c.Subscription, p.Subscription)
	set(&c.FleetCount, p.FleetCount)
	return c
}
