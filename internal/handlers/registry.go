package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	CandidateHandler *CandidateHandler
	InterviewHandler *InterviewHandler
	FeedbackHandler  *FeedbackHandler
	DashboardHandler *DashboardHandler
}
