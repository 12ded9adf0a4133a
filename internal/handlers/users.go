package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/notely-dev/notely/internal/models"
	"github.com/notely-dev/notely/internal/store"
	"github.com/notely-dev/notely/internal/validation"
)

type UserHandler struct {
	users store.UserStore
}

func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Pointer fields distinguish an absent key from an empty value.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}

	return uint(id), true
}

func (h *UserHandler) List(ctx *gin.Context) {
	users, err := h.users.FindAll()

	if err != nil {
		log.Printf("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if users == nil {
		users = []models.User{}
	}

	ctx.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	user, err := h.users.FindByID(id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.Status(http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch user %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// Create persists the payload as supplied; the only field the server owns is
// the identifier.
func (h *UserHandler) Create(ctx *gin.Context) {
	var req CreateUserRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}

	if err := h.users.Save(&user); err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// Update overwrites name, email and password only when the payload carries a
// non-empty value; everything else on the row is preserved.
func (h *UserHandler) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	var req UpdateUserRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.users.FindByID(id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.Status(http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch user %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != "" {
		user.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		user.Password = *req.Password
	}

	if err := h.users.Save(user); err != nil {
		log.Printf("Failed to update user %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// Delete answers 204 whether or not the row existed.
func (h *UserHandler) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)

	if !ok {
		return
	}

	if err := h.users.DeleteByID(id); err != nil {
		log.Printf("Failed to delete user %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Login matches email and password exactly. The failure message deliberately
// does not say which of the two was wrong.
func (h *UserHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.users.FindByEmailAndPassword(req.Email, req.Password)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid email or password",
			})
			return
		}
		log.Printf("Failed to look up login: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"role":    user.Role,
	})
}

// CreateAdmin gates the elevated creation path behind the stronger password
// policy and forces the role to "admin".
func (h *UserHandler) CreateAdmin(ctx *gin.Context) {
	var req CreateUserRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := validation.ValidateAdminPassword(req.Password); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     "admin",
	}

	if err := h.users.Save(&user); err != nil {
		log.Printf("Failed to create admin: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin created successfully",
		"user":    user,
	})
}
