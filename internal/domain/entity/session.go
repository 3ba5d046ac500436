package entity

import "time"

// Session binds an opaque token to an authenticated user
type Session struct {
	ID        string    `bson:"_id"`
	UserID    int64     `bson:"userId"`
	CreatedAt time.Time `bson:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt"`
}

// Expired reports whether the session is no longer valid at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
