package auth

import (
	"errors"

	"hiretrack_backend/internal/models"
)

// Permissions - справочник разрешений по ролям. Используется read-only
// эндпоинтом /roles; фактический контроль доступа выполняет middleware
// по спискам ролей на маршрутах, сами хранилища никаких проверок не делают.
var Permissions = map[models.UserRole][]string{
	models.UserRoleAdmin: {
		"View all candidates",
		"Manage candidates",
		"View all feedback",
		"Schedule interviews",
		"Manage user roles",
		"Access analytics",
	},
	models.UserRoleTAMember: {
		"View all candidates",
		"Manage candidates",
		"View feedback",
		"Schedule interviews",
		"Access analytics",
	},
	models.UserRolePanelist: {
		"View assigned candidates",
		"Submit feedback",
		"View own feedback",
	},
}

// HasPermission проверяет есть ли у роли указанное разрешение
func HasPermission(role models.UserRole, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// IsAdmin проверяет является ли пользователь администратором
func IsAdmin(claims *Claims) bool {
	return claims.Role == models.UserRoleAdmin
}

// RoleLabel возвращает человекочитаемое имя роли
func RoleLabel(role models.UserRole) string {
	switch role {
	case models.UserRoleAdmin:
		return "Admin"
	case models.UserRoleTAMember:
		return "TA Member"
	case models.UserRolePanelist:
		return "Panelist"
	default:
		return string(role)
	}
}

// ValidateRole проверяет валидность роли
func ValidateRole(role models.UserRole) error {
	if !models.ValidUserRole(role) {
		return errors.New("invalid role")
	}
	return nil
}
