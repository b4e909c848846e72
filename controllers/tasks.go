package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AndradeRafael41/EducaGamfy/database"
	"github.com/AndradeRafael41/EducaGamfy/models"
	"github.com/AndradeRafael41/EducaGamfy/utils"

	"gorm.io/gorm"
)

// POST /api/v1/tasks
// Multipart form: taskId?, title, description, maxPoints, teacherId, classId, dueDate?, file?
//
// Without taskId a row is created first so the upload path can be keyed by the
// generated id; the row is then updated with the file's public URL. A failure
// between the two steps leaves a task without a link, which the caller retries
// with taskId set.
func CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	callerID, _ := utils.GetUserID(r)

	if err := r.ParseMultipartForm(utils.MaxUploadBytes + 1<<20); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid form data"})
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	description := strings.TrimSpace(r.FormValue("description"))
	maxPoints, _ := strconv.Atoi(r.FormValue("maxPoints"))
	teacherID, _ := strconv.ParseUint(r.FormValue("teacherId"), 10, 32)
	classID, _ := strconv.ParseUint(r.FormValue("classId"), 10, 32)
	taskIDRaw := strings.TrimSpace(r.FormValue("taskId"))

	if title == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "The title field is required"})
		return
	}
	if maxPoints <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "maxPoints must be greater than zero"})
		return
	}
	if uint(teacherID) != callerID {
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Not authorized"})
		return
	}

	db := database.DB

	var task models.Task
	if taskIDRaw == "" {
		if classID == 0 {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "The classId field is required"})
			return
		}
		task = models.Task{
			TeacherID:   uint(teacherID),
			ClassID:     uint(classID),
			Title:       title,
			Description: description,
			MaxPoints:   maxPoints,
		}
		if due := strings.TrimSpace(r.FormValue("dueDate")); due != "" {
			if t, err := time.Parse(time.RFC3339, due); err == nil {
				task.DueDate = &t
			}
		}
		if err := db.Create(&task).Error; err != nil {
			utils.WriteServerError(w, "tasks", err)
			return
		}
	} else {
		id, err := strconv.ParseUint(taskIDRaw, 10, 32)
		if err != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid taskId"})
			return
		}
		if err := db.First(&task, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Task not found"})
				return
			}
			utils.WriteServerError(w, "tasks", err)
			return
		}
		if task.TeacherID != callerID {
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Not authorized"})
			return
		}
	}

	var fileURL *string
	file, handler, err := r.FormFile("file")
	if err == nil && handler != nil {
		defer file.Close()

		if handler.Size > utils.MaxUploadBytes {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "File larger than 10MB"})
			return
		}
		contentType, sniffErr := utils.SniffContentType(file, handler.Header.Get("Content-Type"))
		if sniffErr != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Could not read file"})
			return
		}
		if !utils.AllowedUploadType(contentType) {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "File type not allowed"})
			return
		}

		key := utils.TaskObjectKey(task.ID, handler.Filename)
		if err := utils.UploadToBucket(r.Context(), key, file, contentType); err != nil {
			utils.WriteServerError(w, "tasks", err)
			return
		}
		fileURL = utils.StringPtr(utils.PublicURL(key))
	}

	updates := map[string]interface{}{
		"title":       title,
		"description": description,
		"max_points":  maxPoints,
	}
	if fileURL != nil {
		updates["link"] = *fileURL
	}
	if err := db.Model(&task).Updates(updates).Error; err != nil {
		utils.WriteServerError(w, "tasks", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"task": task}})
}

// GET /api/v1/tasks/student?classId=
func StudentTasksHandler(w http.ResponseWriter, r *http.Request) {
	classID, ok := parseUintParam(r, "classId")
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "The classId parameter is required"})
		return
	}

	var tasks []models.Task
	if err := database.DB.Where("class_id = ?", classID).Find(&tasks).Error; err != nil {
		utils.WriteServerError(w, "tasks", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"tasks": tasks}})
}

// GET /api/v1/tasks/teacher?classId=&teacherId=
func TeacherClassTasksHandler(w http.ResponseWriter, r *http.Request) {
	classID, ok := parseUintParam(r, "classId")
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "The classId parameter is required"})
		return
	}
	teacherID, ok := parseUintParam(r, "teacherId")
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "The teacherId parameter is required"})
		return
	}

	var tasks []models.Task
	err := database.DB.Where("class_id = ? AND teacher_id = ?", classID, teacherID).Find(&tasks).Error
	if err != nil {
		utils.WriteServerError(w, "tasks", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"tasks": tasks}})
}
