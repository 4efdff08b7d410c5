package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService      AuthService
	CandidateService CandidateService
	InterviewService InterviewService
	FeedbackService  FeedbackService
	DashboardService DashboardService
}
