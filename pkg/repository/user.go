package repository

import (
	"context"

	"github.com/google/uuid"

	"droscher.com/Foodgram/pkg/model"
)

func (r *Repository) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User

	if result := r.DB.WithContext(ctx).First(&user, userID); result.Error != nil {
		return nil, translate(result.Error)
	}

	return &user, nil
}

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, translate(result.Error)
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, username string, email string, firstName string, lastName string) (*model.User, error) {
	user := model.User{
		UUID:      uuid.New(),
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, translate(result.Error)
	}

	return &user, nil
}
