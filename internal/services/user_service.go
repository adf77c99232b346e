package services

import (
	"errors"

	"eventbridge_admin/internal/models"
	"eventbridge_admin/internal/repositories"
	"eventbridge_admin/internal/services/dto"
	"eventbridge_admin/pkg/apperrors"
)

type UserService interface {
	List(query dto.UserListQuery) (*dto.UserListResponse, error)
	Get(id uint) (*dto.UserResponse, error)
	SetStatus(actor *models.User, id uint, isActive bool) (*dto.UserResponse, error)
	Delete(actor *models.User, id uint, req dto.DeleteUserRequest) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	audit    AuditService
}

func NewUserService(userRepo repositories.UserRepository, audit AuditService) UserService {
	return &UserServiceImpl{userRepo: userRepo, audit: audit}
}

func (s *UserServiceImpl) List(query dto.UserListQuery) (*dto.UserListResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}

	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:   query.Role,
		Search: query.Search,
		Page:   query.Page,
		Limit:  limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.ToUserResponse(&users[i]))
	}

	return &dto.UserListResponse{
		Users: responses,
		Total: total,
		Page:  query.Page,
		Limit: limit,
	}, nil
}

func (s *UserServiceImpl) Get(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByIDWithProfile(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) SetStatus(actor *models.User, id uint, isActive bool) (*dto.UserResponse, error) {
	if err := s.userRepo.SetActive(id, isActive); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	actorID := actor.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "users.set_status",
		EntityType: "user",
		EntityID:   &id,
		Metadata:   map[string]interface{}{"isActive": isActive},
	})

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Delete tombstones and deactivates the account. The row itself stays.
func (s *UserServiceImpl) Delete(actor *models.User, id uint, req dto.DeleteUserRequest) error {
	if err := s.userRepo.SoftDelete(id, req.Reason, req.Details); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	actorID := actor.ID
	s.audit.Record(AuditEntry{
		ActorID:    &actorID,
		Action:     "users.delete",
		EntityType: "user",
		EntityID:   &id,
		Metadata:   map[string]interface{}{"reason": req.Reason},
	})
	return nil
}
