package models

import "time"

// User представляет учетную запись пользователя
type User struct {
	ID           string     `json:"user_id"`    // UUID пользователя
	Username     string     `json:"username"`   // уникальный username
	PasswordHash string     `json:"-"`          // bcrypt хеш пароля, никогда не сериализуется
	Email        string     `json:"email"`      // опциональный email
	CreatedAt    time.Time  `json:"created_at"` // время регистрации
	LastLogin    *time.Time `json:"last_login"` // время последнего входа, nil до первого входа
}
