package store

import (
	"errors"

	"github.com/notely-dev/notely/internal/models"
	"gorm.io/gorm"
)

type GormNoteStore struct {
	db *gorm.DB
}

func NewGormNoteStore(db *gorm.DB) *GormNoteStore {
	return &GormNoteStore{db: db}
}

func (s *GormNoteStore) FindAll() ([]models.Note, error) {
	var notes []models.Note

	if err := s.db.Find(&notes).Error; err != nil {
		return nil, err
	}

	return notes, nil
}

func (s *GormNoteStore) FindByID(id uint) (*models.Note, error) {
	var note models.Note

	if err := s.db.First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &note, nil
}

func (s *GormNoteStore) FindByUserEmail(userEmail string) ([]models.Note, error) {
	var notes []models.Note

	if err := s.db.Where("user_email = ?", userEmail).Find(&notes).Error; err != nil {
		return nil, err
	}

	return notes, nil
}

func (s *GormNoteStore) FindByUserEmailAndType(userEmail, noteType string) ([]models.Note, error) {
	var notes []models.Note

	if err := s.db.Where("user_email = ? AND type = ?", userEmail, noteType).Find(&notes).Error; err != nil {
		return nil, err
	}

	return notes, nil
}

func (s *GormNoteStore) FindByType(noteType string) ([]models.Note, error) {
	var notes []models.Note

	if err := s.db.Where("type = ?", noteType).Find(&notes).Error; err != nil {
		return nil, err
	}

	return notes, nil
}

func (s *GormNoteStore) Save(note *models.Note) error {
	return s.db.Save(note).Error
}

// DeleteByID is idempotent; deleting an absent row is not an error.
func (s *GormNoteStore) DeleteByID(id uint) error {
	return s.db.Delete(&models.Note{}, id).Error
}
