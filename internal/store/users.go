package store

import (
	"errors"

	"github.com/notely-dev/notely/internal/models"
	"gorm.io/gorm"
)

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) FindAll() ([]models.User, error) {
	var users []models.User

	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (s *GormUserStore) FindByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmailAndPassword backs the login check. Both fields are compared
// exactly, password in plaintext.
func (s *GormUserStore) FindByEmailAndPassword(email, password string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ? AND password = ?", email, password).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *GormUserStore) Save(user *models.User) error {
	return s.db.Save(user).Error
}

// DeleteByID is idempotent; deleting an absent row is not an error.
func (s *GormUserStore) DeleteByID(id uint) error {
	return s.db.Delete(&models.User{}, id).Error
}
