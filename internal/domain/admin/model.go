package admin

import "time"

// Admin учетная запись администратора
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // хэш bcrypt
	CreatedAt    time.Time `json:"createdAt"`
}
