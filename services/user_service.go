package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mayank7tyagi/FitJourney-App/models"
	"github.com/mayank7tyagi/FitJourney-App/utils"
)

type UserService struct {
	db       *gorm.DB
	uploader *utils.S3Uploader
}

// NewUserService takes a nil uploader when S3 is not configured; avatar
// uploads then fail with a server error instead of panicking.
func NewUserService(db *gorm.DB, uploader *utils.S3Uploader) *UserService {
	return &UserService{db: db, uploader: uploader}
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("User not found")
		}
		return nil, utils.NewInternalError(err)
	}
	return &user, nil
}

// UpdateAvatar uploads the image to S3 and stores its URL on the user.
func (s *UserService) UpdateAvatar(ctx context.Context, userID uint, imageBase64 string) (string, error) {
	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if s.uploader == nil {
		return "", utils.NewInternalError(errors.New("S3 uploader not configured"))
	}

	url, err := s.uploader.UploadBase64Image(ctx, imageBase64, user.Email)
	if err != nil {
		return "", utils.NewInternalError(err)
	}

	user.Img = url
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return "", utils.NewInternalError(err)
	}
	return url, nil
}
