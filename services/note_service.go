package services

import (
	"errors"
	"time"

	"ntreal/notes/database"
	"ntreal/notes/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteServiceInterface interface {
	CreateNote(db *database.Database, userID uuid.UUID, content string) (models.Note, error)
	GetOwnedNote(db *database.Database, id string, userID uuid.UUID) (models.Note, error)
	SaveNote(db *database.Database, id string, userID uuid.UUID, content string) (models.Note, error)
	MoveNote(db *database.Database, id string, userID uuid.UUID) (models.Note, error)
	DeleteNote(db *database.Database, id string, userID uuid.UUID) error
	ListNotes(db *database.Database, userID uuid.UUID, inHistory bool) ([]models.Note, error)
	ClearHistory(db *database.Database, userID uuid.UUID) error
}

type NoteService struct{}

// normalizeContent substitutes the default body for empty input. Applied on
// every write so a blank note is never stored.
func normalizeContent(content string) string {
	if content == "" {
		return models.DefaultContent
	}
	return content
}

// GetOwnedNote loads a note by id and owner. A note that exists under a
// different owner is reported exactly like a missing one, so a caller can
// never learn that a foreign id is in use. A malformed id behaves like an
// unknown one.
func (s *NoteService) GetOwnedNote(db *database.Database, id string, userID uuid.UUID) (models.Note, error) {
	noteID, err := uuid.Parse(id)
	if err != nil {
		return models.Note{}, ErrNoteNotFound
	}

	var note models.Note
	if err := db.DB.First(&note, "id = ? AND user_id = ?", noteID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, err
	}
	return note, nil
}

func (s *NoteService) CreateNote(db *database.Database, userID uuid.UUID, content string) (models.Note, error) {
	note := models.Note{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   normalizeContent(content),
		InHistory: false,
		EditDate:  time.Now().UTC(),
	}

	if err := db.DB.Create(&note).Error; err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *NoteService) SaveNote(db *database.Database, id string, userID uuid.UUID, content string) (models.Note, error) {
	note, err := s.GetOwnedNote(db, id, userID)
	if err != nil {
		return models.Note{}, err
	}

	note.Content = normalizeContent(content)
	note.EditDate = time.Now().UTC()

	if err := db.DB.Model(&note).Select("content", "edit_date").Updates(map[string]interface{}{
		"content":   note.Content,
		"edit_date": note.EditDate,
	}).Error; err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// MoveNote toggles a note between the active list and the history. The edit
// date is left alone; moving is not a content write.
func (s *NoteService) MoveNote(db *database.Database, id string, userID uuid.UUID) (models.Note, error) {
	note, err := s.GetOwnedNote(db, id, userID)
	if err != nil {
		return models.Note{}, err
	}

	note.InHistory = !note.InHistory
	if err := db.DB.Model(&note).Update("in_history", note.InHistory).Error; err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *NoteService) DeleteNote(db *database.Database, id string, userID uuid.UUID) error {
	note, err := s.GetOwnedNote(db, id, userID)
	if err != nil {
		return err
	}

	// Deleting an id that is already gone is a no-op at the store boundary.
	return db.DB.Delete(&models.Note{}, "id = ?", note.ID).Error
}

func (s *NoteService) ListNotes(db *database.Database, userID uuid.UUID, inHistory bool) ([]models.Note, error) {
	var notes []models.Note
	if err := db.DB.Where("user_id = ? AND in_history = ?", userID, inHistory).
		Order("edit_date DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *NoteService) ClearHistory(db *database.Database, userID uuid.UUID) error {
	return db.DB.Where("user_id = ? AND in_history = ?", userID, true).
		Delete(&models.Note{}).Error
}

// NewNoteService creates a new instance of NoteService
func NewNoteService() NoteServiceInterface {
	return &NoteService{}
}

var NoteServiceInstance NoteServiceInterface = NewNoteService()
