package user

import (
	"context"
	"strings"

	"github.com/muhammadheryan/gadgetfix/application/policy"
	"github.com/muhammadheryan/gadgetfix/application/session"
	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
	userrepo "github.com/muhammadheryan/gadgetfix/repository/user"
	"github.com/muhammadheryan/gadgetfix/utils/errors"
	"github.com/muhammadheryan/gadgetfix/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, actor *model.Actor) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, actor *model.Actor, req *model.UpdateProfileRequest) (*model.UserEntity, error)
	ListUsers(ctx context.Context, actor *model.Actor, role constant.Role) ([]model.UserEntity, error)
	UpdateUser(ctx context.Context, actor *model.Actor, id uint64, req *model.UpdateUserRequest) (*model.UserEntity, error)
	DeleteUser(ctx context.Context, actor *model.Actor, id uint64) error
	EnsureAdmin(ctx context.Context, req *model.RegisterRequest) (*model.UserEntity, error)
}

type UserAppImpl struct {
	userRepo   userrepo.UserRepository
	sessionApp session.SessionApp
}

func NewUserApp(userRepo userrepo.UserRepository, sessionApp session.SessionApp) UserApp {
	return &UserAppImpl{
		userRepo:   userRepo,
		sessionApp: sessionApp,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	// Check if user exists by email or phone
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	existingUser, err = s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[Register] err userRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity, err := s.userRepo.Create(ctx, &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Role:         constant.RoleUser,
	})
	if err != nil {
		// the unique index catches a concurrent registration the pre-check missed
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	token, err := s.sessionApp.Issue(ctx, userEntity.ID, userEntity.Role)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		Message: "Registration successful",
		User:    summary(userEntity),
		Token:   token,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	// Find user by email or phone
	filter := &model.UserFilter{}
	if isEmail(req.Email) {
		filter.Email = strings.ToLower(strings.TrimSpace(req.Email))
	} else {
		filter.Phone = strings.TrimSpace(req.Email)
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}

	if user.IsBlocked {
		logger.Info("[Login] blocked account", zap.Uint64("user_id", user.ID))
		return nil, errors.SetCustomError(constant.ErrAccountBlocked)
	}

	token, err := s.sessionApp.Issue(ctx, user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		Message: "Login successful",
		User:    summary(user),
		Token:   token,
	}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, token string) error {
	return s.sessionApp.Revoke(ctx, token)
}

func (s *UserAppImpl) Me(ctx context.Context, actor *model.Actor) (*model.UserEntity, error) {
	if err := policy.Authorize(policy.ActionViewProfile, actor, nil); err != nil {
		return nil, err
	}
	return s.getUser(ctx, "[Me]", actor.ID)
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, actor *model.Actor, req *model.UpdateProfileRequest) (*model.UserEntity, error) {
	if err := policy.Authorize(policy.ActionUpdateProfile, actor, nil); err != nil {
		return nil, err
	}

	update := &model.UserUpdate{
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		ProfileImage: req.ProfileImage,
	}
	return s.applyUpdate(ctx, "[UpdateProfile]", actor.ID, update)
}

func (s *UserAppImpl) ListUsers(ctx context.Context, actor *model.Actor, role constant.Role) ([]model.UserEntity, error) {
	if err := policy.Authorize(policy.ActionListUsers, actor, nil); err != nil {
		return nil, err
	}
	if role != "" && !constant.ValidRoles[role] {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	users, err := s.userRepo.List(ctx, &model.UserFilter{Role: role})
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return users, nil
}

func (s *UserAppImpl) UpdateUser(ctx context.Context, actor *model.Actor, id uint64, req *model.UpdateUserRequest) (*model.UserEntity, error) {
	if err := policy.Authorize(policy.ActionUpdateUser, actor, nil); err != nil {
		return nil, err
	}

	update := &model.UserUpdate{
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      req.Role,
		IsBlocked: req.IsBlocked,
	}
	return s.applyUpdate(ctx, "[UpdateUser]", id, update)
}

// DeleteUser removes the account only; its bookings and tickets keep the
// stale owner id.
func (s *UserAppImpl) DeleteUser(ctx context.Context, actor *model.Actor, id uint64) error {
	if err := policy.Authorize(policy.ActionDeleteUser, actor, nil); err != nil {
		return err
	}

	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteUser] err userRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	logger.Info("[DeleteUser] account deleted", zap.Uint64("user_id", id), zap.Uint64("actor_id", actor.ID))
	return nil
}

// EnsureAdmin creates the administrator account, or resets an existing
// account with the same email to an unblocked admin with the given password.
func (s *UserAppImpl) EnsureAdmin(ctx context.Context, req *model.RegisterRequest) (*model.UserEntity, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[EnsureAdmin] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	hash := string(hashedPassword)

	existing, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[EnsureAdmin] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if existing == nil {
		created, err := s.userRepo.Create(ctx, &model.UserEntity{
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			PasswordHash: hash,
			Role:         constant.RoleAdmin,
		})
		if err != nil {
			if errors.IsDuplicateEntry(err) {
				return nil, errors.SetCustomError(constant.ErrCredentialExists)
			}
			logger.Error("[EnsureAdmin] err userRepo.Create", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		return created, nil
	}

	role := constant.RoleAdmin
	blocked := false
	return s.applyUpdate(ctx, "[EnsureAdmin]", existing.ID, &model.UserUpdate{
		Name:         &req.Name,
		Phone:        &req.Phone,
		Role:         &role,
		IsBlocked:    &blocked,
		PasswordHash: &hash,
	})
}

func (s *UserAppImpl) applyUpdate(ctx context.Context, op string, id uint64, update *model.UserUpdate) (*model.UserEntity, error) {
	current, err := s.getUser(ctx, op, id)
	if err != nil {
		return nil, err
	}

	if update.Phone != nil && *update.Phone != current.Phone {
		owner, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: *update.Phone})
		if err != nil {
			logger.Error(op+" err userRepo.Get phone", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if owner != nil && owner.ID != id {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
	}

	if err := s.userRepo.Update(ctx, id, update); err != nil {
		if errors.IsDuplicateEntry(err) {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error(op+" err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.getUser(ctx, op, id)
}

func (s *UserAppImpl) getUser(ctx context.Context, op string, id uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		logger.Error(op+" err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func summary(u *model.UserEntity) model.UserSummary {
	return model.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// isEmail checks if identifier looks like an email
func isEmail(identifier string) bool {
	return strings.ContainsRune(identifier, '@')
}
