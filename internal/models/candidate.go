package models

// Company - данные о текущем месте работы кандидата.
// При частичном обновлении кандидата заменяется целиком (shallow merge),
// отдельные поля компании не сливаются.
type Company struct {
	Department string `json:"department"`
	Name       string `json:"name"`
	Title      string `json:"title"`
}

// Candidate - запись о кандидате.
// Идентификаторы целочисленные, монотонно растущие, в пределах процесса
// не переиспользуются.
type Candidate struct {
	ID        int             `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Company   Company         `json:"company"`
	Image     string          `json:"image"`
	Status    CandidateStatus `json:"status"`
}
