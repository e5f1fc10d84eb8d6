package repo

import (
	"kanban-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

type UserRepoInterface interface {
	Create(user *models.User) error
	List() ([]models.User, error)
	Get(id uuid.UUID) (*models.User, error)
	Update(id uuid.UUID, fields map[string]any) (*models.User, error)
	Delete(id uuid.UUID) error
}

func NewUserRepository(db *gorm.DB) UserRepoInterface {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(user *models.User) error {
	user.ID = uuid.New()
	return r.db.Create(user).Error
}

func (r *UserRepo) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Find(&users).Error
	return users, err
}

func (r *UserRepo) Get(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, firstOrNotFound(err, "User")
	}
	return &user, nil
}

func (r *UserRepo) Update(id uuid.UUID, fields map[string]any) (*models.User, error) {
	if _, err := r.Get(id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		err := r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.Get(id)
}

// Delete removes the user together with their assignee links and board
// memberships. Authored comments, attachments and owned boards keep an
// optional reference and are left in place.
func (r *UserRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.TaskAssignee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.BoardMember{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.User{}).Error
	})
}
