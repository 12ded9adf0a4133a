package store

import (
	"errors"

	"github.com/notely-dev/notely/internal/models"
)

// ErrNotFound is returned by single-row lookups when no row matches.
var ErrNotFound = errors.New("record not found")

type (
	UserStore interface {
		FindAll() ([]models.User, error)
		FindByID(id uint) (*models.User, error)
		FindByEmailAndPassword(email, password string) (*models.User, error)
		Save(user *models.User) error
		DeleteByID(id uint) error
	}

	NoteStore interface {
		FindAll() ([]models.Note, error)
		FindByID(id uint) (*models.Note, error)
		FindByUserEmail(userEmail string) ([]models.Note, error)
		FindByUserEmailAndType(userEmail, noteType string) ([]models.Note, error)
		FindByType(noteType string) ([]models.Note, error)
		Save(note *models.Note) error
		DeleteByID(id uint) error
	}
)
