// Package auth contiene el caso de uso de registro y login de usuarios.
package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Crokily/aibuild-dashboard/internal/application/dto"
	"github.com/Crokily/aibuild-dashboard/internal/domain"
	"github.com/Crokily/aibuild-dashboard/internal/domain/entity"
	"github.com/Crokily/aibuild-dashboard/internal/domain/repository"
	"github.com/Crokily/aibuild-dashboard/pkg/jwt"
)

// UseCase registro y autenticación. Emite JWT con el rol embebido para que el
// middleware restrinja la carga de hojas a administradores sin consultar la DB.
type UseCase struct {
	users      repository.UserRepository
	jwtSecret  string
	jwtIssuer  string
	expMinutes int
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, jwtSecret, jwtIssuer string, expMinutes int) *UseCase {
	return &UseCase{
		users:      users,
		jwtSecret:  jwtSecret,
		jwtIssuer:  jwtIssuer,
		expMinutes: expMinutes,
	}
}

// Register crea un usuario nuevo. Email duplicado → domain.ErrEmailAlreadyExists.
func (uc *UseCase) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}

	role := req.Role
	switch role {
	case "":
		role = entity.RoleAnalyst
	case entity.RoleAdmin, entity.RoleAnalyst:
	default:
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Role:         role,
		Status:       "active",
	}
	if err := uc.users.Create(u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Login valida credenciales y emite el token.
// Credenciales incorrectas o usuario deshabilitado → domain.ErrUnauthorized.
func (uc *UseCase) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	u, err := uc.users.FindByEmail(email)
	if err != nil {
		// No distinguimos "no existe" de "clave incorrecta" hacia el cliente.
		return nil, domain.ErrUnauthorized
	}
	if u.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtSecret, u.ID, u.Role, uc.jwtIssuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(u)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
