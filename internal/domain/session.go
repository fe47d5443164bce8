package domain

import "time"

// Session tracks a browser across requests. UserID is zero for anonymous sessions.
type Session struct {
	ID        string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

func (s Session) IsAuthenticated() bool {
	return s.UserID != 0
}
