package dto

// KPIResponse - сводка дашборда. Считается по реальным данным хранилищ,
// метрики намеренно простые (счетчики и средний балл из заголовков отзывов).
type KPIResponse struct {
	TotalCandidates      int     `json:"totalCandidates"`
	ScheduledCandidates  int     `json:"scheduledCandidates"`
	CompletedCandidates  int     `json:"completedCandidates"`
	CancelledCandidates  int     `json:"cancelledCandidates"`
	TotalInterviews      int     `json:"totalInterviews"`
	CompletedInterviews  int     `json:"completedInterviews"`
	UpcomingInterviews   int     `json:"upcomingInterviews"`
	TotalFeedback        int     `json:"totalFeedback"`
	PendingFeedback      int     `json:"pendingFeedback"`
	AverageFeedbackScore float64 `json:"averageFeedbackScore"`
}

// RoleInfo - роль и ее разрешения (read-only справочник)
type RoleInfo struct {
	Role        string   `json:"role"`
	Label       string   `json:"label"`
	Permissions []string `json:"permissions"`
}

// RolesResponse - все роли системы
type RolesResponse struct {
	Roles []RoleInfo `json:"roles"`
}
