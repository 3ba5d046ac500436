package entity

// Agency types
const (
	AgencyPolice      = "police"
	AgencyImmigration = "immigration"
	AgencyRoadSafety  = "road_safety"
	AgencyCustoms     = "customs"
)

// Agency connection status
const (
	ConnectionActive   = "active"
	ConnectionPartial  = "partial"
	ConnectionInactive = "inactive"
)

// Agency is an external security or regulatory institution connected for alert sharing
type Agency struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	ConnectionStatus  string `json:"connectionStatus"`
	ActiveConnections int    `json:"activeConnections"`
}

// AgencyPatch holds the fields of an agency partial update
type AgencyPatch struct {
	Name              *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Type              *string `json:"type,omitempty" binding:"omitempty,oneof=police immigration road_safety customs"`
	ConnectionStatus  *string `json:"connectionStatus,omitempty" binding:"omitempty,oneof=active partial inactive"`
	ActiveConnections *int    `json:"activeConnections,omitempty" binding:"omitempty,min=0"`
}

// Apply merges the patch over a and returns the result
func (p AgencyPatch) Apply(a Agency) Agency {
	set(&a.Name, p.Name)
	set(&a.Type, p.Type)
	set(&a.ConnectionStatus, p.ConnectionStatus)
	set(&a.ActiveConnections, p.ActiveConnections)
	return a
}
