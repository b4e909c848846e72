package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AndradeRafael41/EducaGamfy/database"
	"github.com/AndradeRafael41/EducaGamfy/middleware"
	"github.com/AndradeRafael41/EducaGamfy/models"
	"github.com/AndradeRafael41/EducaGamfy/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,maxlen=100"`
	Email    string `json:"email" validate:"required,email,maxlen=255"`
	Password string `json:"password" validate:"required,pwdmin"`
	Role     string `json:"role" validate:"required,role"`
	ClassID  *uint  `json:"class_id,omitempty"`
}

// RegisterHandler creates a user plus its student or teacher row in one
// transaction.
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	role, _ := models.ParseRole(req.Role)

	db := database.DB

	var existing models.User
	if err := db.Where("LOWER(email) = ?", req.Email).First(&existing).Error; err == nil {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Email already registered"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.WriteServerError(w, "register", err)
		return
	}

	if req.ClassID != nil {
		var class models.Class
		if err := db.First(&class, *req.ClassID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Class not found"})
				return
			}
			utils.WriteServerError(w, "register", err)
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteServerError(w, "register", err)
		return
	}

	newUser := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		switch role {
		case models.RoleStudent:
			return tx.Create(&models.Student{ID: newUser.ID, ClassID: req.ClassID, Level: 1}).Error
		case models.RoleTeacher:
			return tx.Create(&models.Teacher{ID: newUser.ID}).Error
		}
		return nil
	})
	if err != nil {
		utils.WriteServerError(w, "register", err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Registered",
		Data: map[string]interface{}{
			"id":    newUser.ID,
			"name":  newUser.Name,
			"email": newUser.Email,
			"role":  newUser.Role,
		},
	})
}
