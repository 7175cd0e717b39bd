package usecase

import (
	"context"
	"fmt"

	"laundry-service/internal/data/entity"
	"laundry-service/internal/data/repository"
	"laundry-service/internal/dto/request"
	"laundry-service/internal/dto/response"
	"laundry-service/pkg/utils"

	"go.uber.org/zap"
)

const (
	LandingAdmin    = "/admin"
	LandingCustomer = "/"

	msgFieldsRequired   = "All fields are required."
	msgPasswordMismatch = "Passwords do not match."
	msgPasswordTooShort = "Password must be at least 6 characters long."
	msgUserExists       = "Username or Email already exists."
	msgLoginRequired    = "Email and Password are required."
	msgInvalidLogin     = "Invalid email or password."
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, identity *utils.Identity)
	CreateAdmin(ctx context.Context, req *request.CreateAdminRequest) (*response.UserResponse, error)
}

type authService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, log *zap.Logger) AuthService {
	return &authService{
		repo: repo,
		log:  log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validate input
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(profileValidationMessage(errs), errs)
	}

	user := &entity.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      entity.RoleCustomer,
	}

	// 2. Uniqueness, hash, persist
	if err := s.createUser(ctx, user, req.Password); err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(msgLoginRequired, errs)
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("login %s: %w", req.Email, err)
	}

	// 3. Unknown email and wrong password look the same to the caller
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, utils.NewError(utils.ErrAuth, msgInvalidLogin)
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, utils.NewError(utils.ErrAuth, msgInvalidLogin)
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)))

	landing := LandingCustomer
	if user.Role == entity.RoleAdmin {
		landing = LandingAdmin
	}

	return &response.AuthResponse{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Landing:   landing,
	}, nil
}

// Logout has no server-side state to drop; the handler clears the cookie.
func (s *authService) Logout(ctx context.Context, identity *utils.Identity) {
	if identity == nil {
		s.log.Debug("Anonymous logout")
		return
	}
	s.log.Info("User logged out", zap.Int64("user_id", identity.UserID))
}

func (s *authService) CreateAdmin(ctx context.Context, req *request.CreateAdminRequest) (*response.UserResponse, error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create admin validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(profileValidationMessage(errs), errs)
	}

	user := &entity.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      entity.RoleAdmin,
	}

	if err := s.createUser(ctx, user, req.Password); err != nil {
		return nil, err
	}

	s.log.Info("Admin user created",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createUser(ctx context.Context, user *entity.User, password string) error {
	exists, err := s.repo.User.ExistsByUsernameOrEmail(ctx, user.Username, user.Email)
	if err != nil {
		return fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		s.log.Warn("Username or email already taken",
			zap.String("username", user.Username),
			zap.String("email", user.Email))
		return utils.NewError(utils.ErrConflict, msgUserExists)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("%w: hash password: %w", utils.ErrStorage, err)
	}
	user.PasswordHash = hashed

	if _, err := s.repo.User.Create(ctx, user); err != nil {
		return fmt.Errorf("create %s user: %w", user.Role, err)
	}
	return nil
}

// profileValidationMessage picks the summary shown for a failed profile form.
// Blank fields win over a password mismatch.
func profileValidationMessage(errs map[string]string) string {
	for _, msg := range errs {
		if msg == utils.MsgRequired {
			return msgFieldsRequired
		}
	}
	if _, ok := errs["password"]; ok {
		return msgPasswordTooShort
	}
	return msgPasswordMismatch
}
