package models

// Reactions - счетчики реакций на отзыв
type Reactions struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// Feedback - отзыв панелиста о кандидате. После создания запись неизменяема,
// кроме счетчика просмотров (audit trail оценок).
type Feedback struct {
	ID          int       `json:"id"`
	CandidateID int       `json:"candidateId"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Reactions   Reactions `json:"reactions"`
	Views       int       `json:"views"`
	SubmittedBy int       `json:"submittedBy"`
	SubmittedAt string    `json:"submittedAt"` // ISO-8601 / RFC3339
}
