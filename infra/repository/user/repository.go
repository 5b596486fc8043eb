package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hamzaimran/bitpro/pkg/dto"
	"github.com/hamzaimran/bitpro/pkg/repository/user"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a GORM-backed user repository.
func New(db *gorm.DB) user.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.UserCreate) error {
	return r.db.WithContext(ctx).Create(&User{
		ID:        create.ID,
		FirstName: create.FirstName,
		LastName:  create.LastName,
		Email:     create.Email,
		Phone:     create.Phone,
		Easypaisa: create.Easypaisa,
		Role:      create.Role,
		Password:  create.Password,
		IsActive:  create.IsActive,
	}).Error
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ListByRole(ctx context.Context, role string) ([]*dto.UserRead, error) {
	var users []User
	if err := r.db.WithContext(ctx).Where("role = ?", role).Find(&users).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.UserRead, 0, len(users))
	for i := range users {
		result = append(result, mapModelToDTO(&users[i]))
	}
	return result, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, uu *dto.UserUpdate) error {
	updates := make(map[string]interface{})
	if uu.Password != nil {
		updates["password"] = *uu.Password
	}
	if uu.IsActive != nil {
		updates["is_active"] = *uu.IsActive
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) ListWithActivity(ctx context.Context) ([]*dto.UserActivity, error) {
	var rows []dto.UserActivity
	err := r.db.WithContext(ctx).Model(&User{}).
		Select(`users.id, users.first_name, users.last_name, users.email,
			users.phone, users.role, users.is_active,
			COUNT(CASE WHEN t.type = 'deposit' THEN 1 END) AS deposits,
			COUNT(CASE WHEN t.type = 'withdrawal' THEN 1 END) AS withdrawals,
			COALESCE(SUM(CASE WHEN t.type = 'deposit' THEN t.amount ELSE 0 END), 0) AS deposits_amount,
			COALESCE(SUM(CASE WHEN t.type = 'withdrawal' THEN t.amount ELSE 0 END), 0) AS withdrawals_amount`).
		Joins("LEFT JOIN transactions t ON t.user_id = users.id").
		Group("users.id").
		Order("users.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.UserActivity, 0, len(rows))
	for i := range rows {
		result = append(result, &rows[i])
	}
	return result, nil
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Phone:          u.Phone,
		Easypaisa:      u.Easypaisa,
		Role:           u.Role,
		HashedPassword: u.Password,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
