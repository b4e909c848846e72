package teachers

import (
	"net/http"
	"strconv"

	"github.com/AndradeRafael41/EducaGamfy/database"
	"github.com/AndradeRafael41/EducaGamfy/middleware"
	"github.com/AndradeRafael41/EducaGamfy/models"
	"github.com/AndradeRafael41/EducaGamfy/utils"
)

type CreateRewardRequest struct {
	Name        string  `json:"name" validate:"required,maxlen=150"`
	Description *string `json:"description"`
	CostPoints  int     `json:"costPoints"`
}

// POST /api/v1/rewards (teacher only, token-derived owner)
func CreateRewardHandler(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Not authenticated"})
		return
	}

	var req CreateRewardRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.CostPoints <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "costPoints must be positive"})
		return
	}

	reward := models.Reward{
		TeacherID:   teacherID,
		Name:        req.Name,
		Description: req.Description,
		CostPoints:  req.CostPoints,
	}
	if err := database.DB.Create(&reward).Error; err != nil {
		utils.WriteServerError(w, "rewards", err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "Reward created", Data: map[string]interface{}{"reward": reward}})
}

// GET /api/v1/rewards?teacherId= lists the catalog, optionally scoped to one
// teacher. Empty catalogs are a success with an empty list.
func ListRewardsHandler(w http.ResponseWriter, r *http.Request) {
	query := database.DB.Order("created_at DESC")
	if raw := r.URL.Query().Get("teacherId"); raw != "" {
		teacherID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || teacherID == 0 {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid teacherId"})
			return
		}
		query = query.Where("teacher_id = ?", uint(teacherID))
	}

	var rewards []models.Reward
	if err := query.Find(&rewards).Error; err != nil {
		utils.WriteServerError(w, "rewards", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Data: map[string]interface{}{"rewards": rewards}})
}
