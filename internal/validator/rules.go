package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"hiretrack_backend/internal/models"
)

// registerCustomRules регистрирует кастомные правила валидации.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - ошибка времени запуска приложения
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': роль пользователя из справочника
	mustRegister("is-user-role", validateUserRole)

	// 'is-candidate-status': статус кандидата из жизненного цикла
	mustRegister("is-candidate-status", validateCandidateStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.ValidUserRole(models.UserRole(fl.Field().String()))
}

func validateCandidateStatus(fl validator.FieldLevel) bool {
	return models.ValidCandidateStatus(models.CandidateStatus(fl.Field().String()))
}
