package user

import "time"

// User is an account holder. Only the demo account exists until real
// sign-up ships; passwords are stored as bcrypt hashes either way.
type User struct {
	ID           int
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
