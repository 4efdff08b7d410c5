package models

// Session - локально сохраненный профиль текущего пользователя.
// Role выбирается на клиенте при логине и identity-провайдером не
// подтверждается (см. DESIGN.md). Token - opaque-токен провайдера.
type Session struct {
	ID        int      `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      UserRole `json:"role"`
	Token     string   `json:"token"`
}
