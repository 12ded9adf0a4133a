package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notely-dev/notely/internal/models"
	"github.com/notely-dev/notely/internal/store"
	"github.com/notely-dev/notely/internal/validation"
)

type NoteHandler struct {
	notes store.NoteStore
}

func NewNoteHandler(notes store.NoteStore) *NoteHandler {
	return &NoteHandler{notes: notes}
}

type CreateNoteRequest struct {
	UserEmail      string  `json:"userEmail"`
	Type           string  `json:"type"`
	Text           *string `json:"text"`
	Frequency      *string `json:"frequency"`
	AttachmentName *string `json:"attachmentName"`
	AttachmentType *string `json:"attachmentType"`
	AttachmentData *string `json:"attachmentData"`
}

// Pointer fields distinguish an absent key from an empty value.
type UpdateNoteRequest struct {
	Type           *string `json:"type"`
	Text           *string `json:"text"`
	Frequency      *string `json:"frequency"`
	AttachmentName *string `json:"attachmentName"`
	AttachmentType *string `json:"attachmentType"`
	AttachmentData *string `json:"attachmentData"`
}

func (h *NoteHandler) List(ctx *gin.Context) {
	notes, err := h.notes.FindAll()

	if err != nil {
		log.Printf("Failed to list notes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}

	ctx.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	note, err := h.notes.FindByID(id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.Status(http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch note %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, note)
}

func (h *NoteHandler) ListByUser(ctx *gin.Context) {
	notes, err := h.notes.FindByUserEmail(ctx.Param("email"))

	if err != nil {
		log.Printf("Failed to list notes by user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}

	ctx.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) ListByUserAndType(ctx *gin.Context) {
	notes, err := h.notes.FindByUserEmailAndType(ctx.Param("email"), ctx.Param("type"))

	if err != nil {
		log.Printf("Failed to list notes by user and type: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}

	ctx.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) ListByType(ctx *gin.Context) {
	notes, err := h.notes.FindByType(ctx.Param("type"))

	if err != nil {
		log.Printf("Failed to list notes by type: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}

	ctx.JSON(http.StatusOK, notes)
}

// Create validates the payload, stamps the creation timestamp and defaults
// the frequency to "never" when absent.
func (h *NoteHandler) Create(ctx *gin.Context) {
	var req CreateNoteRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := validation.ValidateNote(req.Type, req.Frequency, req.Text); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note := models.NewNote(req.UserEmail, req.Type)

	if req.Text != nil {
		note.Text = *req.Text
	}
	if req.Frequency != nil {
		note.Frequency = *req.Frequency
	}
	if req.AttachmentName != nil {
		note.AttachmentName = *req.AttachmentName
	}
	if req.AttachmentType != nil {
		note.AttachmentType = *req.AttachmentType
	}
	if req.AttachmentData != nil {
		note.AttachmentData = *req.AttachmentData
	}

	if err := h.notes.Save(&note); err != nil {
		log.Printf("Failed to create note: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, note)
}

// Update merges the supplied fields onto the stored row, validates the merged
// result and saves it. A validation failure aborts the whole update; nothing
// is written. The creation timestamp is never touched.
func (h *NoteHandler) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	var req UpdateNoteRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	note, err := h.notes.FindByID(id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.Status(http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch note %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	noteType := note.Type
	if req.Type != nil {
		noteType = *req.Type
	}

	frequency := note.Frequency
	if req.Frequency != nil {
		frequency = *req.Frequency
	}

	text := note.Text
	if req.Text != nil {
		text = *req.Text
	}

	if err := validation.ValidateNote(noteType, &frequency, &text); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note.Type = noteType
	note.Frequency = frequency
	note.Text = text

	if req.AttachmentName != nil {
		note.AttachmentName = *req.AttachmentName
	}
	if req.AttachmentType != nil {
		note.AttachmentType = *req.AttachmentType
	}
	if req.AttachmentData != nil {
		note.AttachmentData = *req.AttachmentData
	}

	if err := h.notes.Save(note); err != nil {
		log.Printf("Failed to update note %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, note)
}

// Delete answers 204 whether or not the row existed.
func (h *NoteHandler) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	if err := h.notes.DeleteByID(id); err != nil {
		log.Printf("Failed to delete note %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
