package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ElectroStock-api/internal/application/dto"
	"github.com/jhoicas/ElectroStock-api/internal/domain"
	"github.com/jhoicas/ElectroStock-api/internal/domain/entity"
	"github.com/jhoicas/ElectroStock-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios (solo ADMIN).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios, sin hashes.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Save crea o edita un usuario. En edición, password vacío conserva la
// contraseña actual.
func (uc *UserUseCase) Save(ctx context.Context, in dto.SaveUserRequest) (*dto.UserResponse, error) {
	var errs domain.ValidationErrors

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = errs.Add("name", "el nombre es requerido")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		errs = errs.Add("email", "el email es requerido")
	}
	if !validRole(in.Role) {
		errs = errs.Add("role", "rol inválido")
	}
	if in.ID == "" && in.Password == "" {
		errs = errs.Add("password", "la contraseña es requerida")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != in.ID {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()

	if in.ID == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user := &entity.User{
			ID:           uuid.New().String(),
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         in.Role,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.repo.Create(ctx, user); err != nil {
			return nil, err
		}
		out := toUserResponse(user)
		return &out, nil
	}

	user, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Name = name
	user.Email = email
	user.Role = in.Role
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = now
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleStaff:
		return true
	}
	return false
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
