package students

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AndradeRafael41/EducaGamfy/database"
	"github.com/AndradeRafael41/EducaGamfy/models"
	"github.com/AndradeRafael41/EducaGamfy/utils"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// canActFor reports whether the caller may read or write data for studentID:
// the student themself, or any teacher.
func canActFor(r *http.Request, studentID uint) bool {
	callerID, ok := utils.GetUserID(r)
	if !ok {
		return false
	}
	return callerID == studentID || utils.IsTeacher(r)
}

// GET /api/v1/task-submissions?studentId=
func ListSubmissionsHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("studentId")
	if raw == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "The studentId parameter is required"})
		return
	}
	studentID64, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid studentId"})
		return
	}
	studentID := uint(studentID64)

	if !canActFor(r, studentID) {
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Not authorized"})
		return
	}

	// An empty list is a valid result, not an error.
	var submissions []models.TaskSubmission
	if err := database.DB.Where("student_id = ?", studentID).Find(&submissions).Error; err != nil {
		utils.WriteServerError(w, "submissions", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"submissions": submissions}})
}

// POST /api/v1/task-submissions
// Multipart form: taskId, studentId, file? OR link?
//
// The (task_id, student_id) unique index plus the conditional update below
// keep the operation safe under concurrent submits: losers of either race get
// a Conflict, never a duplicate row.
func CreateSubmissionHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(utils.MaxUploadBytes + 1<<20); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid form data"})
		return
	}

	taskID64, errTask := strconv.ParseUint(r.FormValue("taskId"), 10, 32)
	studentID64, errStudent := strconv.ParseUint(r.FormValue("studentId"), 10, 32)
	if errTask != nil || errStudent != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "taskId and studentId are required"})
		return
	}
	taskID := uint(taskID64)
	studentID := uint(studentID64)

	if !canActFor(r, studentID) {
		utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Not authorized"})
		return
	}

	db := database.DB

	var task models.Task
	if err := db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Task not found"})
			return
		}
		utils.WriteServerError(w, "submissions", err)
		return
	}

	// Everything is validated before any write or upload happens.
	fileURL := utils.StringPtr(strings.TrimSpace(r.FormValue("link")))

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

		key := utils.SubmissionObjectKey(taskID, studentID, handler.Filename)
		if err := utils.UploadToBucket(r.Context(), key, file, contentType); err != nil {
			utils.WriteServerError(w, "submissions", err)
			return
		}
		fileURL = utils.StringPtr(utils.PublicURL(key))
	}

	now := time.Now()

	var existing models.TaskSubmission
	err = db.Where("task_id = ? AND student_id = ?", taskID, studentID).First(&existing).Error
	switch {
	case err == nil:
		if existing.Status == models.StatusSubmitted {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Submission already made, resubmission not allowed"})
			return
		}
		// Conditional update: only flips a row that is still pending, so a
		// concurrent submit that won the race turns this one into a Conflict.
		res := db.Model(&models.TaskSubmission{}).
			Where("id = ? AND status = ?", existing.ID, models.StatusPending).
			Updates(map[string]interface{}{
				"link":         fileURL,
				"status":       models.StatusSubmitted,
				"submitted_at": now,
			})
		if res.Error != nil {
			utils.WriteServerError(w, "submissions", res.Error)
			return
		}
		if res.RowsAffected == 0 {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Submission already made, resubmission not allowed"})
			return
		}
		existing.Link = fileURL
		existing.Status = models.StatusSubmitted
		existing.SubmittedAt = &now
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"submission": existing}})

	case errors.Is(err, gorm.ErrRecordNotFound):
		submission := models.TaskSubmission{
			TaskID:      taskID,
			StudentID:   studentID,
			Points:      0,
			Status:      models.StatusSubmitted,
			SubmittedAt: &now,
			Link:        fileURL,
		}
		if err := db.Create(&submission).Error; err != nil {
			if isDuplicateKey(err) {
				utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Submission already made, resubmission not allowed"})
				return
			}
			utils.WriteServerError(w, "submissions", err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"submission": submission}})

	default:
		utils.WriteServerError(w, "submissions", err)
	}
}

// isDuplicateKey detects a violation of the (task_id, student_id) unique
// index, which means a concurrent request created the row first.
func isDuplicateKey(err error) bool {
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
