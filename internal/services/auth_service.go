package services

import (
	"context"

	"hiretrack_backend/internal/auth"
	"hiretrack_backend/internal/clients/dummyjson"
	"hiretrack_backend/internal/config"
	"hiretrack_backend/internal/logger"
	"hiretrack_backend/internal/models"
	"hiretrack_backend/internal/repositories"
	"hiretrack_backend/internal/services/dto"
	"hiretrack_backend/pkg/apperrors"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout()
	CurrentSession() *models.Session
}

type AuthServiceImpl struct {
	identity    *dummyjson.Client
	sessionRepo repositories.SessionRepository
}

func NewAuthService(identity *dummyjson.Client, sessionRepo repositories.SessionRepository) AuthService {
	return &AuthServiceImpl{
		identity:    identity,
		sessionRepo: sessionRepo,
	}
}

// Login - аутентификация через внешний identity-провайдер.
// Провайдер проверяет только логин/пароль; роль берется из запроса как есть
// и прикрепляется к сессии на нашей стороне. Это осознанная демо-модель:
// роль self-asserted и сервером identity не подтверждается.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := auth.ValidateRole(req.Role); err != nil {
		return nil, apperrors.ErrInvalidUserRole
	}

	cfg := config.GetConfig()

	profile, err := s.identity.Login(ctx, req.Username, req.Password, cfg.Identity.ExpiresInMins)
	if err != nil {
		// Неверные учетные данные и недоступный провайдер выглядят
		// для клиента одинаково - "login failed"
		logger.CtxWarn(ctx, "Login rejected", "username", req.Username, "error", err.Error())
		return nil, apperrors.ErrInvalidCredentials
	}

	session := models.Session{
		ID:        profile.ID,
		Username:  profile.Username,
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Role:      req.Role,
		Token:     profile.BearerToken(),
	}
	s.sessionRepo.Save(session)

	accessToken, err := auth.GenerateToken(session.ID, session.Username, session.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User logged in", "username", session.Username, "role", session.Role)

	return &dto.LoginResponse{
		User:        session,
		AccessToken: accessToken,
	}, nil
}

// Logout стирает сохраненную сессию
func (s *AuthServiceImpl) Logout() {
	s.sessionRepo.Clear()
}

// CurrentSession возвращает сохраненный профиль либо nil
func (s *AuthServiceImpl) CurrentSession() *models.Session {
	return s.sessionRepo.Get()
}
