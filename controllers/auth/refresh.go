package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AndradeRafael41/EducaGamfy/database"
	"github.com/AndradeRafael41/EducaGamfy/models"
	"github.com/AndradeRafael41/EducaGamfy/utils"
)

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshHandler exchanges a valid refresh token for a new access token and a
// rotated refresh token.
func RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}
	if req.RefreshToken == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "refresh_token is required"})
		return
	}

	rt, err := utils.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid refresh token"})
		return
	}

	// The role claim comes from the user row, not the old token.
	var user models.User
	if err := database.DB.First(&user, rt.UserID).Error; err != nil {
		utils.WriteServerError(w, "refresh", err)
		return
	}

	// Rotate: revoke the old token before issuing the replacement.
	if err := database.DB.Model(rt).Update("revoked", true).Error; err != nil {
		utils.WriteServerError(w, "refresh", err)
		return
	}
	newRefresh, err := utils.GenerateRefreshToken(rt.UserID)
	if err != nil {
		utils.WriteServerError(w, "refresh", err)
		return
	}
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role, accessTokenTTL)
	if err != nil {
		utils.WriteServerError(w, "refresh", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"access_token":  accessToken,
			"access_expire": time.Now().Add(accessTokenTTL).UTC().Format(time.RFC3339),
			"refresh_token": newRefresh,
		},
	})
}
