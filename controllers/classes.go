package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AndradeRafael41/EducaGamfy/database"
	"github.com/AndradeRafael41/EducaGamfy/models"
	"github.com/AndradeRafael41/EducaGamfy/utils"

	"gorm.io/gorm"
)

// parseUintParam reads a required numeric query parameter.
func parseUintParam(r *http.Request, name string) (uint, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// GET /api/v1/classes?teacherId=
func ListClassesHandler(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := parseUintParam(r, "teacherId")
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "The teacherId parameter is required"})
		return
	}

	var classes []models.Class
	if err := database.DB.Where("teacher_id = ?", teacherID).Find(&classes).Error; err != nil {
		utils.WriteServerError(w, "classes", err)
		return
	}
	if len(classes) == 0 {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "No records found"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"classes": classes}})
}

// GET /api/v1/class?classId=
func GetClassHandler(w http.ResponseWriter, r *http.Request) {
	classID, ok := parseUintParam(r, "classId")
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "The classId parameter is required"})
		return
	}

	var class models.Class
	if err := database.DB.First(&class, classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "No records found"})
			return
		}
		utils.WriteServerError(w, "classes", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"class": class}})
}
