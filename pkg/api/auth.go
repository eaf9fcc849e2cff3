package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // username пользователя, 4-50 символов
	Password string `json:"password"` // пароль, минимум 6 символов
	Email    string `json:"email"`    // опциональный email
}

// RegisterResponse представляет ответ на успешную регистрацию
// Хеш пароля никогда не попадает в ответ
type RegisterResponse struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
	Status    string `json:"status"`
}

// LoginRequest представляет запрос на проверку учетных данных
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse представляет ответ на успешный вход
type LoginResponse struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	LastLogin string `json:"last_login"`
	Status    string `json:"status"`
}

// ErrorResponse представляет единый формат ответа с ошибкой
type ErrorResponse struct {
	Error     string `json:"error"`      // описание ошибки
	Status    string `json:"status"`     // всегда "error"
	ErrorCode string `json:"error_code"` // машиночитаемый код ошибки
}
