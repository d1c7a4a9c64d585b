package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // argon2 encoded
	Role         string // lower-cased role tag
	Status       string // account status tag
	JoinDate     string // YYYY-MM-DD

	// Business counters, maintained by order/product flows. Auth never
	// reads them.
	Sales    float64
	Products int
	Spent    float64
	Orders   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// User statuses. Status transitions are an admin operation; outstanding
// session tokens of a suspended user stay valid until they expire (see
// the suspended-token test in the auth service).
const (
	UserStatusActive    = "active"
	UserStatusPending   = "pending"
	UserStatusSuspended = "suspended"
)

// ValidUserStatus reports whether s is one of the fixed status tags.
func ValidUserStatus(s string) bool {
	switch s {
	case UserStatusActive, UserStatusPending, UserStatusSuspended:
		return true
	}
	return false
}
