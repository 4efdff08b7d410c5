package models

// Interview - запись об интервью, привязанная к одному кандидату.
// CandidateID - внешний ключ без принудительной проверки: осиротевшие
// интервью допустимы и ошибкой целостности не считаются.
type Interview struct {
	ID          int    `json:"id"`
	CandidateID int    `json:"candidateId"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
