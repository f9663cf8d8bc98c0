package domain

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleTutor, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// CanTutor reports whether the role may publish availability and accept bookings.
func (r Role) CanTutor() bool {
	return r == RoleTutor || r == RoleAdmin
}

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	Skills         []string  `json:"skills"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
