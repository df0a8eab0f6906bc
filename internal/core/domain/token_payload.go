package domain

type UserRole string

const (
	Admin UserRole = "admin"
)

type TokenPayload struct {
	Subject string
	Role    UserRole
}
