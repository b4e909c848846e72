package students

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AndradeRafael41/EducaGamfy/database"
	"github.com/AndradeRafael41/EducaGamfy/models"
	"github.com/AndradeRafael41/EducaGamfy/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func pathValue(r *http.Request, key string) string {
	return mux.Vars(r)[key]
}

// GET /api/v1/students?userId=
func GetStudentHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "The userId parameter is required"})
		return
	}
	userID64, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid userId"})
		return
	}
	userID := uint(userID64)

	if !canActFor(r, userID) {
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Not authorized"})
		return
	}

	var student models.Student
	err = database.DB.Preload("User").Preload("Class").First(&student, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Student not found"})
			return
		}
		utils.WriteServerError(w, "students", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"student": student}})
}

// GET /api/v1/students/badges?userId=
func ListBadgesHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("userId")
	userID64, err := strconv.ParseUint(raw, 10, 32)
	if raw == "" || err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "The userId parameter is required"})
		return
	}
	userID := uint(userID64)

	if !canActFor(r, userID) {
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Not authorized"})
		return
	}

	var badges []models.StudentBadge
	if err := database.DB.Preload("Badge").Where("student_id = ?", userID).Find(&badges).Error; err != nil {
		utils.WriteServerError(w, "badges", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"badges": badges}})
}

// GET /api/v1/students/notifications (token-derived user)
func ListNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Not authenticated"})
		return
	}

	var notifications []models.Notification
	err := database.DB.Where("user_id = ?", userID).Order("sent_at DESC").Find(&notifications).Error
	if err != nil {
		utils.WriteServerError(w, "notifications", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"notifications": notifications}})
}

// PUT /api/v1/students/notifications/{id}/read
func MarkNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Not authenticated"})
		return
	}
	id, err := strconv.ParseUint(pathValue(r, "id"), 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid notification id"})
		return
	}

	res := database.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", uint(id), userID).
		Update("read", true)
	if res.Error != nil {
		utils.WriteServerError(w, "notifications", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Notification not found"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true})
}
