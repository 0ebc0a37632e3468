package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mayank7tyagi/FitJourney-App/models"
	"github.com/mayank7tyagi/FitJourney-App/utils"
)

type AuthService struct {
	db     *gorm.DB
	secret []byte
	mailer *utils.Mailer
}

// NewAuthService takes the signing secret explicitly; mailer may be nil when
// SES is not configured, which disables the password reset mail flow.
func NewAuthService(db *gorm.DB, secret []byte, mailer *utils.Mailer) *AuthService {
	return &AuthService{db: db, secret: secret, mailer: mailer}
}

func (s *AuthService) Register(ctx context.Context, name, email, password, img string, age int) (string, *models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return "", nil, utils.NewConflictError("Email is already in use.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, utils.NewInternalError(err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return "", nil, utils.NewInternalError(err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Img:      img,
		Age:      age,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// two concurrent signups can both pass the existence check; the
		// unique index on email decides the loser
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, utils.NewConflictError("Email is already in use.")
		}
		return "", nil, utils.NewInternalError(err)
	}

	token, err := utils.GenerateJWT(s.secret, user.ID)
	if err != nil {
		return "", nil, utils.NewInternalError(err)
	}

	return token, &user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, utils.NewNotFoundError("User not found")
		}
		return "", nil, utils.NewInternalError(err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, utils.NewForbiddenError("Incorrect password")
	}

	token, err := utils.GenerateJWT(s.secret, user.ID)
	if err != nil {
		return "", nil, utils.NewInternalError(err)
	}

	return token, &user, nil
}

// ForgotPassword mails a short-lived reset code. An unknown email is treated
// as success so the endpoint cannot be used to probe for accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return utils.NewInternalError(err)
	}

	if s.mailer == nil {
		logrus.Warn("password reset requested but SES mailer is not configured")
		return utils.NewInternalError(errors.New("mailer not configured"))
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return utils.NewInternalError(err)
	}

	if err := s.mailer.SendResetEmail(ctx, user.Email, token); err != nil {
		return utils.NewInternalError(err)
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("reset_token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewValidationError("Invalid or expired token")
		}
		return utils.NewInternalError(err)
	}
	if time.Now().After(user.ResetTokenExp) {
		return utils.NewValidationError("Invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.NewInternalError(err)
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return utils.NewInternalError(err)
	}
	return nil
}
