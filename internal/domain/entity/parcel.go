package entity

// Parcel status
const (
	ParcelInTransit = "in_transit"
	ParcelDelivered = "delivered"
	ParcelReturned  = "returned"
)

// Parcel verification status
const (
	VerificationVerified = "verified"
	VerificationPending  = "pending"
	VerificationRejected = "rejected"
)

// Parcel is a logistics item carried under a manifest
type Parcel struct {
	ID                 int64  `json:"id"`
	TrackingCode       string `json:"trackingCode"` // unique
	ManifestID         int64  `json:"manifestId"`
	SenderName         string `json:"senderName"`
	SenderContact      string `json:"senderContact"`
	RecipientName      string `json:"recipientName"`
	RecipientContact   string `json:"recipientContact"`
	Weight             int    `json:"weight"` // kg
	Description        string `json:"description"`
	Status             string `json:"status"`
	VerificationStatus string `json:"verificationStatus"`
}

// ParcelPatch holds the fields of a parcel partial update
type ParcelPatch struct {
	TrackingCode       *string `json:"trackingCode,omitempty" binding:"omitempty,min=1"`
	ManifestID         *int64  `json:"manifestId,omitempty"`
	SenderName         *string `json:"senderName,omitempty"`
	SenderContact      *string `json:"senderContact,omitempty"`
	RecipientName      *string `json:"recipientName,omitempty"`
	RecipientContact   *string `json:"recipientContact,omitempty"`
	Weight             *int    `json:"weight,omitempty" binding:"omitempty,min=0"`
	Description        *string `json:"description,omitempty"`
	Status             *string `json:"status,omitempty" binding:"omitempty,oneof=in_transit delivered returned"`
	VerificationStatus *string `json:"verificationStatus,omitempty" binding:"omitempty,oneof=verified pending rejected"`
}

// Apply merges the patch over p and returns the result
func (p ParcelPatch) Apply(parcel Parcel) Parcel {
	set(&parcel.TrackingCode, p.TrackingCode)
	set(&parcel.ManifestID, p.ManifestID)
	set(&parcel.SenderName, p.SenderName)
	set(&parcel.SenderContact, p.SenderContact)
	set(&parcel.RecipientName, p.RecipientName)
	set(&parcel.RecipientContact, p.RecipientContact)
	set(&parcel.Weight, p.Weight)
	set(&parcel.Description, p.Description)
	set(&parcel.Status, p.Status)
	set(&parcel.VerificationStatus, p.VerificationStatus)
	return parcel
}
