package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
	"github.com/aussiebroadwan/gymtrack/pkg/cryptox"
	"github.com/aussiebroadwan/gymtrack/pkg/idx"
	"github.com/aussiebroadwan/gymtrack/pkg/slogx"
)

type UserService struct {
	Store    store.Store
	Notifier *Notifier
}

// GetProfile fetches the caller's own account.
func (s *UserService) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return u, ErrUserNotFound
	}
	return u, err
}

// ProfileUpdate holds the fields sent to PUT or PATCH /me. Nil fields are
// left untouched; a full (non Partial) update requires all of them.
type ProfileUpdate struct {
	Email    *string
	Username *string
	Password *string
	Partial  bool
}

func (in ProfileUpdate) validate() *ValidationError {
	ve := &ValidationError{}
	errs := validation.Errors{}
	check := func(field string, v *string, rules []validation.Rule) {
		switch {
		case v != nil:
			errs[field] = validation.Validate(*v, rules...)
		case !in.Partial:
			errs[field] = errors.New(MsgRequired)
		}
	}
	check("email", in.Email, emailRules)
	check("username", in.Username, usernameRules)
	check("password", in.Password, passwordRules)
	_ = ve.Merge(errs.Filter())
	return ve
}

// UpdateProfile applies in to the caller's account. A changed email clears
// is_verified and a verification link is mailed to the new address once the
// change is stored.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if in.Email != nil {
		email := domain.NormalizeEmail(*in.Email)
		in.Email = &email
	}
	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		in.Username = &username
	}
	if err := in.validate().Err(); err != nil {
		return domain.User{}, err
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	emailChanged := in.Email != nil && *in.Email != user.Email
	if emailChanged {
		user.Email = *in.Email
		user.IsVerified = false
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Password != nil {
		hash, err := cryptox.HashPassword(*in.Password)
		if err != nil {
			log.Error("failed to hash password", slog.Any("error", err))
			return domain.User{}, err
		}
		user.PasswordHash = hash
	}

	if err := s.Store.Users().UpdateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.User{}, fieldError("email", MsgEmailTaken)
		case errors.Is(err, store.ErrNotFound):
			return domain.User{}, ErrUserNotFound
		}
		log.Error("failed to update user", slog.Any("error", err))
		return domain.User{}, err
	}

	if emailChanged {
		log.Info("email changed, verification required", slog.String("user_id", user.ID))
		s.Notifier.SendVerification(ctx, user)
	}
	return user, nil
}

// CreateSuperuser creates a verified, active staff superuser. It is only
// reachable from the admin CLI.
func (s *UserService) CreateSuperuser(ctx context.Context, email, username, password string) (domain.User, error) {
	email = domain.NormalizeEmail(email)
	username = strings.TrimSpace(username)

	ve := &ValidationError{}
	if err := ve.Merge(validation.Errors{
		"email":    validation.Validate(email, emailRules...),
		"password": validation.Validate(password, passwordRules...),
		"username": validation.Validate(username, usernameRules...),
	}.Filter()); err != nil {
		return domain.User{}, err
	}
	if err := ve.Err(); err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		IsVerified:   true,
		IsActive:     true,
		IsStaff:      true,
		IsSuperuser:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, fieldError("email", MsgEmailTaken)
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("superuser created", slog.String("user_id", user.ID))
	return user, nil
}
