package domain

import "time"

// AdminUserID is the only user the shared password logs in as.
const AdminUserID = "admin"

// Session is what a bearer token resolves to while it is alive.
type Session struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
