package students

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

type RedeemRequest struct {
	RewardID uint `json:"rewardId"`
}

var errInsufficientPoints = errors.New("insufficient points")

// POST /api/v1/students/redeem (token-derived student)
//
// Redemption is a ledger write: the student's balance is debited and a
// redemption row recorded in the same transaction, with the student row
// locked so two concurrent redemptions cannot both pass the balance check.
func RedeemRewardHandler(w http.ResponseWriter, r *http.Request) {
	studentID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Not authenticated"})
		return
	}

	var req RedeemRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.RewardID == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "rewardId is required"})
		return
	}

	var redemption models.RewardRedemption

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var reward models.Reward
		if err := tx.First(&reward, req.RewardID).Error; err != nil {
			return err
		}

		var student models.Student
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&student, studentID).Error; err != nil {
			return err
		}
		if student.TotalPoints < reward.CostPoints {
			return errInsufficientPoints
		}

		remaining := student.TotalPoints - reward.CostPoints
		level, progress := utils.LevelForPoints(remaining)
		if err := tx.Model(&student).Updates(map[string]interface{}{
			"total_points":   remaining,
			"level":          level,
			"level_progress": progress,
		}).Error; err != nil {
			return err
		}

		redemption = models.RewardRedemption{
			RewardID:    reward.ID,
			StudentID:   studentID,
			PointsSpent: reward.CostPoints,
			Reference:   utils.GenerateRedemptionRef(studentID),
			RedeemedAt:  time.Now(),
		}
		if err := tx.Create(&redemption).Error; err != nil {
			return err
		}

		return tx.Create(&models.Notification{
			UserID:  studentID,
			Message: "Reward redeemed: " + reward.Name,
			SentAt:  time.Now(),
		}).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Reward not found"})
		case errors.Is(err, errInsufficientPoints):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Insufficient points"})
		default:
			utils.WriteServerError(w, "rewards", err)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"redemption": redemption}})
}

// GET /api/v1/students/redemptions (token-derived student)
func ListRedemptionsHandler(w http.ResponseWriter, r *http.Request) {
	studentID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Not authenticated"})
		return
	}

	var redemptions []models.RewardRedemption
	err := database.DB.Preload("Reward").
		Where("student_id = ?", studentID).
		Order("redeemed_at DESC").
		Find(&redemptions).Error
	if err != nil {
		utils.WriteServerError(w, "rewards", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"redemptions": redemptions}})
}
