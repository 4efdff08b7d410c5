package services

import (
	"context"

	"hiretrack_backend/internal/clients/dummyjson"
	"hiretrack_backend/internal/logger"
	"hiretrack_backend/internal/models"
	"hiretrack_backend/internal/repositories"
	"hiretrack_backend/internal/services/dto"
	"hiretrack_backend/pkg/apperrors"
)

type CandidateService interface {
	List() []models.Candidate
	Get(id int) (*models.Candidate, error)
	Create(req *dto.CreateCandidateRequest) models.Candidate
	Update(id int, req *dto.UpdateCandidateRequest) (*models.Candidate, error)
	Delete(id int) bool
	SeedFromRemote(ctx context.Context, limit, skip int) (int, error)
}

type CandidateServiceImpl struct {
	candidateRepo repositories.CandidateRepository
	directory     *dummyjson.Client
}

func NewCandidateService(candidateRepo repositories.CandidateRepository, directory *dummyjson.Client) CandidateService {
	return &CandidateServiceImpl{
		candidateRepo: candidateRepo,
		directory:     directory,
	}
}

func (s *CandidateServiceImpl) List() []models.Candidate {
	return s.candidateRepo.List()
}

func (s *CandidateServiceImpl) Get(id int) (*models.Candidate, error) {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return candidate, nil
}

func (s *CandidateServiceImpl) Create(req *dto.CreateCandidateRequest) models.Candidate {
	return s.candidateRepo.Create(models.Candidate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company: models.Company{
			Department: req.Company.Department,
			Name:       req.Company.Name,
			Title:      req.Company.Title,
		},
		Image:  req.Image,
		Status: models.CandidateStatus(req.Status),
	})
}

func (s *CandidateServiceImpl) Update(id int, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	updates := repositories.CandidateUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Image:     req.Image,
	}
	if req.Status != nil {
		status := models.CandidateStatus(*req.Status)
		updates.Status = &status
	}
	if req.Company != nil {
		updates.Company = &models.Company{
			Department: req.Company.Department,
			Name:       req.Company.Name,
			Title:      req.Company.Title,
		}
	}

	candidate, err := s.candidateRepo.Update(id, updates)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return candidate, nil
}

func (s *CandidateServiceImpl) Delete(id int) bool {
	return s.candidateRepo.Delete(id)
}

// SeedFromRemote - первичное наполнение справочника кандидатов из
// внешнего каталога пользователей. Полностью заменяет текущий список;
// при ошибке каталога локальные данные не трогаем.
func (s *CandidateServiceImpl) SeedFromRemote(ctx context.Context, limit, skip int) (int, error) {
	page, err := s.directory.FetchUsers(ctx, limit, skip)
	if err != nil {
		return 0, apperrors.ErrExternalService(err, "candidate", "Failed to fetch candidate directory")
	}

	candidates := make([]models.Candidate, 0, len(page.Users))
	for _, u := range page.Users {
		candidates = append(candidates, models.Candidate{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Phone:     u.Phone,
			Company: models.Company{
				Department: u.Company.Department,
				Name:       u.Company.Name,
				Title:      u.Company.Title,
			},
			Image:  u.Image,
			Status: models.CandidateStatusScheduled,
		})
	}
	s.candidateRepo.Seed(candidates)

	logger.CtxInfo(ctx, "Candidates seeded from directory", "count", len(candidates))
	return len(candidates), nil
}
