package models

type CandidateStatus string
type UserRole string

const (
	// Жизненный цикл кандидата. Отдельного статуса "частично завершен" нет:
	// пока закрыты не все интервью, кандидат остается в scheduled.
	CandidateStatusScheduled CandidateStatus = "scheduled"
	CandidateStatusCompleted CandidateStatus = "completed"
	CandidateStatusCancelled CandidateStatus = "cancelled"

	UserRoleAdmin    UserRole = "admin"
	UserRoleTAMember UserRole = "ta_member"
	UserRolePanelist UserRole = "panelist"
)

// ValidCandidateStatus проверяет, что статус кандидата известен системе
func ValidCandidateStatus(s CandidateStatus) bool {
	switch s {
	case CandidateStatusScheduled, CandidateStatusCompleted, CandidateStatusCancelled:
		return true
	}
	return false
}

// ValidUserRole проверяет, что роль известна системе
func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleAdmin, UserRoleTAMember, UserRolePanelist:
		return true
	}
	return false
}
