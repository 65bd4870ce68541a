package authservice

// User данные аутентифицированного пользователя админ-панели
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
}

// Session текущая сессия админ-панели
type Session struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

// LogoutResult результат завершения сессии
type LogoutResult struct {
	Success        bool   `json:"success"`
	RedirectTarget string `json:"redirectTarget,omitempty"`
}
