package teachers

import (
	"errors"
	"net/http"
	"time"

	"github.com/AndradeRafael41/EducaGamfy/database"
	"github.com/AndradeRafael41/EducaGamfy/middleware"
	"github.com/AndradeRafael41/EducaGamfy/models"
	"github.com/AndradeRafael41/EducaGamfy/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GET /api/v1/teacher/tasks (token-derived teacher)
//
// Returns the teacher's tasks with every submission nested, each joined with
// the submitting student's account, so the grading screen renders from a
// single response.
func TeacherTasksHandler(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Not authenticated"})
		return
	}

	var tasks []models.Task
	err := database.DB.Preload("Class").
		Preload("Submissions").
		Preload("Submissions.Student").
		Preload("Submissions.Student.User").
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		utils.WriteServerError(w, "tasks", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"tasks": tasks}})
}

type GradeRequest struct {
	SubmissionID uint `json:"submissionId"`
	Points       int  `json:"points"`
}

var errNotTaskOwner = errors.New("not task owner")

// PUT /api/v1/teacher/tasks (token-derived teacher)
//
// Grades a submission. Points are clamped to the task's max_points and the
// delta against any previous grade is applied to the student's balance, so
// regrading never double-counts. Level and badges are recomputed from the
// new total inside the same transaction.
func GradeSubmissionHandler(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Not authenticated"})
		return
	}

	var req GradeRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.SubmissionID == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "submissionId is required"})
		return
	}

	var graded models.TaskSubmission

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var submission models.TaskSubmission
		if err := submissionForGrading(tx, req.SubmissionID, &submission).Error; err != nil {
			return err
		}
		var task models.Task
		if err := tx.First(&task, submission.TaskID).Error; err != nil {
			return err
		}
		if task.TeacherID != teacherID {
			return errNotTaskOwner
		}

		awarded := utils.CapPoints(req.Points, task.MaxPoints)
		delta := awarded - submission.Points

		if err := tx.Model(&models.TaskSubmission{}).
			Where("id = ?", submission.ID).
			Update("points", awarded).Error; err != nil {
			return err
		}

		var student models.Student
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&student, submission.StudentID).Error; err != nil {
			return err
		}

		previousLevel := student.Level
		total := student.TotalPoints + delta
		if total < 0 {
			total = 0
		}
		level, progress := utils.LevelForPoints(total)
		if err := tx.Model(&student).Updates(map[string]interface{}{
			"total_points":   total,
			"level":          level,
			"level_progress": progress,
		}).Error; err != nil {
			return err
		}

		if level > previousLevel {
			if err := awardBadges(tx, student.ID, previousLevel, level); err != nil {
				return err
			}
		}

		if delta != 0 {
			notif := models.Notification{
				UserID:  student.ID,
				Message: "Your submission was graded",
				SentAt:  time.Now(),
			}
			if err := tx.Create(&notif).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Task").
			Preload("Student").
			Preload("Student.User").
			First(&graded, submission.ID).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Submission not found"})
		case errors.Is(err, errNotTaskOwner):
			utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Not authorized"})
		default:
			utils.WriteServerError(w, "tasks", err)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Submission graded", Data: map[string]interface{}{"submission": graded}})
}

// submissionForGrading reads the submission row under an exclusive lock.
// Concurrent grade calls for the same submission serialize here, so the
// points delta is always computed against a committed value.
func submissionForGrading(tx *gorm.DB, id uint, dst *models.TaskSubmission) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(dst, id)
}

// awardBadges grants every badge defined for a level in (fromLevel, toLevel].
// Existing grants are skipped so regrading across the same boundary is safe.
func awardBadges(tx *gorm.DB, studentID uint, fromLevel, toLevel int) error {
	var badges []models.Badge
	if err := tx.Where("level > ? AND level <= ?", fromLevel, toLevel).Find(&badges).Error; err != nil {
		return err
	}
	for _, badge := range badges {
		grant := models.StudentBadge{StudentID: studentID, BadgeID: badge.ID, EarnedAt: time.Now()}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&grant).Error; err != nil {
			return err
		}
		notif := models.Notification{
			UserID:  studentID,
			Message: "Badge earned: " + badge.Name,
			SentAt:  time.Now(),
		}
		if err := tx.Create(&notif).Error; err != nil {
			return err
		}
	}
	return nil
}
