package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strideworks/stride-backend/pkg/db/models"
	"github.com/strideworks/stride-backend/pkg/enums"
	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
	"github.com/strideworks/stride-backend/pkg/pagination"
)

// ListUsersInput carries filters for the admin user listing.
type ListUsersInput struct {
	Role   string
	Search string
	Page   pagination.Params
}

// ListResult pairs a user page with the unpaged total.
type ListResult struct {
	Users []UserDTO
	Total int64
	Page  pagination.Params
}

// UpdateProfileInput holds optional profile mutations; nil fields are untouched.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

// Service exposes user administration operations. The actor is the
// authenticated caller; guards compare it against the target row.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	List(ctx context.Context, input ListUsersInput) (*ListResult, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*UserDTO, error)
	UpdateRole(ctx context.Context, actorID, targetID uuid.UUID, role string) (*UserDTO, error)
	Deactivate(ctx context.Context, actorID, targetID uuid.UUID) (*UserDTO, error)
	Activate(ctx context.Context, targetID uuid.UUID) (*UserDTO, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a user service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*UserDTO, error) {
	user, err := s.loadUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewUserDTO(user), nil
}

func (s *service) List(ctx context.Context, input ListUsersInput) (*ListResult, error) {
	filter := ListFilter{Search: input.Search}
	if raw := strings.TrimSpace(input.Role); raw != "" {
		role, err := enums.ParseMemberRole(raw)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role filter")
		}
		filter.Role = role
	}

	// The admin listing is hard capped; large tenants page through it.
	page := pagination.NormalizeCapped(input.Page)
	rows, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list users")
	}

	out := make([]UserDTO, len(rows))
	for i := range rows {
		out[i] = *NewUserDTO(&rows[i])
	}
	return &ListResult{Users: out, Total: total, Page: page}, nil
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*UserDTO, error) {
	user, err := s.loadUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Phone != nil {
		phone := strings.TrimSpace(*input.Phone)
		if phone == "" {
			user.Phone = nil
		} else {
			user.Phone = &phone
		}
	}
	if user.FirstName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "first_name cannot be empty")
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update user")
	}
	return NewUserDTO(user), nil
}

func (s *service) UpdateRole(ctx context.Context, actorID, targetID uuid.UUID, role string) (*UserDTO, error) {
	newRole, err := enums.ParseMemberRole(strings.TrimSpace(role))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	if actorID == targetID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "cannot change your own role")
	}

	user, err := s.loadUser(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user.Role == enums.RoleSuperadmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "superadmin role cannot be changed")
	}
	if newRole == enums.RoleSuperadmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "superadmin role cannot be granted")
	}

	user.Role = newRole
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update user role")
	}
	return NewUserDTO(user), nil
}

func (s *service) Deactivate(ctx context.Context, actorID, targetID uuid.UUID) (*UserDTO, error) {
	if actorID == targetID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "cannot deactivate your own account")
	}

	user, err := s.loadUser(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user.Role == enums.RoleSuperadmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "superadmin cannot be deactivated")
	}

	user.IsActive = false
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: deactivate user")
	}
	return NewUserDTO(user), nil
}

func (s *service) Activate(ctx context.Context, targetID uuid.UUID) (*UserDTO, error) {
	user, err := s.loadUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.IsActive = true
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: activate user")
	}
	return NewUserDTO(user), nil
}

func (s *service) loadUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load user")
	}
	return user, nil
}
