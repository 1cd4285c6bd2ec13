package service

import (
	"context"

	"github.com/MKhiriev/go-card-keeper/internal/app"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/store"
	"github.com/MKhiriev/go-card-keeper/internal/validators"
	"github.com/MKhiriev/go-card-keeper/models"
)

// userService is the concrete implementation of UserService.
//
// Usernames and emails are kept unique with explicit existence probes
// before any write; the relational schema additionally declares both
// columns UNIQUE, so a concurrent duplicate surfaces as a conflict instead
// of a second row.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.GetAll(ctx)
	if err != nil {
		logFailure(ctx, "*userService.GetAllUsers", err)
		return nil, err
	}

	if !validators.HasData(users) {
		return nil, app.NewResourceNotFoundError(app.MsgNoUsersFound)
	}

	return users, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	if !validators.IsValidID(id) {
		return models.User{}, app.NewInvalidInputError(app.MsgValidIDNotInput)
	}

	user, found, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		logFailure(ctx, "*userService.GetUserByID", err)
		return models.User{}, err
	}
	if !found {
		return models.User{}, app.NewResourceNotFoundError(app.MsgUserIDNotFound)
	}

	return user, nil
}

func (s *userService) GetUserByUniqueKey(ctx context.Context, query map[string]any) (models.User, error) {
	key, value, err := singleEntry(query)
	if err != nil {
		return models.User{}, err
	}

	// Passwords are credentials, never lookup keys.
	if key == "password" || !validators.IsPropertyOf(key, models.User{}) {
		return models.User{}, app.NewInvalidInputError(app.MsgUnknownQueryKey)
	}

	if key == "id" {
		id, err := validators.ParseID(value)
		if err != nil {
			return models.User{}, app.NewInvalidInputError(app.MsgValidIDNotInput)
		}
		return s.GetUserByID(ctx, id)
	}

	if !validators.IsValidString(value) {
		return models.User{}, app.NewInvalidInputError(app.MsgValidStringNotInput)
	}

	user, found, err := s.userRepository.GetByUniqueKey(ctx, key, value)
	if err != nil {
		logFailure(ctx, "*userService.GetUserByUniqueKey", err)
		return models.User{}, err
	}
	if !found {
		return models.User{}, app.NewResourceNotFoundError("")
	}

	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	if !validators.IsValidString(username) {
		return models.User{}, app.NewInvalidInputError(app.MsgValidStringNotInput)
	}

	user, found, err := s.userRepository.GetByUsername(ctx, username)
	if err != nil {
		logFailure(ctx, "*userService.GetUserByUsername", err)
		return models.User{}, err
	}
	if !found {
		return models.User{}, app.NewResourceNotFoundError(app.MsgUsernameNotFound)
	}

	return user, nil
}

// GetUserByCredentials reports a failed match as an authentication error,
// never as not found.
func (s *userService) GetUserByCredentials(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if !validators.IsValidString(username, password) {
		return models.User{}, app.NewInvalidInputError(app.MsgValidStringNotInput)
	}

	user, found, err := s.userRepository.GetByCredentials(ctx, username, password)
	if err != nil {
		logFailure(ctx, "*userService.GetUserByCredentials", err)
		return models.User{}, err
	}
	if !found {
		log.Info().Str("func", "*userService.GetUserByCredentials").Str("username", username).Msg("invalid credentials")
		return models.User{}, app.NewAuthenticationError(app.MsgInvalidCredentials)
	}

	return user, nil
}

// AddNewUser validates user, rejects a taken username or email and persists
// the user.
func (s *userService) AddNewUser(ctx context.Context, user models.User) (models.User, error) {
	if !validators.IsValidObject(user, "id") {
		return models.User{}, app.NewInvalidInputError(app.MsgValidObjectNotInput)
	}

	available, err := s.IsUsernameAvailable(ctx, user.Username)
	if err != nil {
		return models.User{}, err
	}
	if !available {
		return models.User{}, app.NewResourceConflictError(app.MsgUsernameAlreadyExists)
	}

	available, err = s.IsEmailAvailable(ctx, user.Email)
	if err != nil {
		return models.User{}, err
	}
	if !available {
		return models.User{}, app.NewResourceConflictError(app.MsgEmailAlreadyInUse)
	}

	saved, err := s.userRepository.Save(ctx, user)
	if err != nil {
		logFailure(ctx, "*userService.AddNewUser", err)
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().Str("func", "*userService.AddNewUser").Int64("user_id", saved.ID).Msg("user registered")
	return saved, nil
}

func (s *userService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	return s.isAvailable(ctx, "username", username)
}

func (s *userService) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	return s.isAvailable(ctx, "email", email)
}

func (s *userService) isAvailable(ctx context.Context, key, value string) (bool, error) {
	if !validators.IsValidString(value) {
		return false, app.NewInvalidInputError(app.MsgValidStringNotInput)
	}

	taken, err := s.userRepository.ExistsByUniqueKey(ctx, key, value)
	if err != nil {
		logFailure(ctx, "*userService.isAvailable", err)
		return false, err
	}

	return !taken, nil
}

// UpdateUser overwrites the mutable fields of an existing user. The
// username is fixed; the email may change as long as no other user has it.
func (s *userService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if !validators.IsValidObject(user, "id") || !validators.IsValidID(user.ID) {
		return models.User{}, app.NewInvalidInputError(app.MsgInvalidUserUpdate)
	}

	if err := authorizeOwner(ctx, "*userService.UpdateUser", user.ID); err != nil {
		return models.User{}, err
	}

	existing, found, err := s.userRepository.GetByID(ctx, user.ID)
	if err != nil {
		logFailure(ctx, "*userService.UpdateUser", err)
		return models.User{}, err
	}
	if !found {
		return models.User{}, app.NewResourceNotFoundError(app.MsgUserNotFoundUpdate)
	}

	if existing.Username != user.Username {
		return models.User{}, app.NewResourceConflictError(app.MsgUsernameImmutable)
	}

	if existing.Email != user.Email {
		available, err := s.IsEmailAvailable(ctx, user.Email)
		if err != nil {
			return models.User{}, err
		}
		if !available {
			return models.User{}, app.NewResourceConflictError(app.MsgEmailAlreadyTaken)
		}
	}

	updated, err := s.userRepository.Update(ctx, user)
	if err != nil {
		logFailure(ctx, "*userService.UpdateUser", err)
		return models.User{}, err
	}

	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, payload map[string]any) (bool, error) {
	id, err := payloadID(payload)
	if err != nil {
		return false, err
	}

	if err := authorizeOwner(ctx, "*userService.DeleteUser", id); err != nil {
		return false, err
	}

	_, found, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		logFailure(ctx, "*userService.DeleteUser", err)
		return false, err
	}
	if !found {
		return false, app.NewResourceNotFoundError(app.MsgUserNotFoundDelete)
	}

	deleted, err := s.userRepository.DeleteByID(ctx, id)
	if err != nil {
		logFailure(ctx, "*userService.DeleteUser", err)
		return false, err
	}

	logger.FromContext(ctx).Info().Str("func", "*userService.DeleteUser").Int64("user_id", id).Msg("user deleted")
	return deleted, nil
}
