package models

import "time"

type Reward struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TeacherID   uint      `gorm:"index;not null" json:"teacher_id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CostPoints  int       `gorm:"not null" json:"cost_points"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Reward) TableName() string {
	return "rewards"
}

// RewardRedemption is the ledger entry written when a student spends points.
// PointsSpent records the reward cost at redemption time so later catalog
// edits do not rewrite history.
type RewardRedemption struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RewardID    uint      `gorm:"index;not null" json:"reward_id"`
	StudentID   uint      `gorm:"index;not null" json:"student_id"`
	PointsSpent int       `gorm:"not null" json:"points_spent"`
	Reference   string    `gorm:"size:40;uniqueIndex;not null" json:"reference"`
	RedeemedAt  time.Time `json:"redeemed_at"`

	Reward *Reward `gorm:"foreignKey:RewardID" json:"reward,omitempty"`
}

func (RewardRedemption) TableName() string {
	return "reward_redemptions"
}
