package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TrxTypeBuyIn  = "buy-in"
	TrxTypeBuyOut = "buy-out"
)

// RollingRecord is one gaming-session rolling entry. WinLoss is signed
// from the customer's point of view: positive means the customer won.
type RollingRecord struct {
	gorm.Model

	CustomerCode  string    `gorm:"index;size:32" json:"customer_code"`
	TripCode      string    `gorm:"index;size:32" json:"trip_code"`
	AgentCode     string    `gorm:"index;size:32" json:"agent_code"`
	StaffCode     string    `gorm:"index;size:32" json:"staff_code"`
	GameType      string    `gorm:"size:32" json:"game_type"`
	RollingAmount float64   `json:"rolling_amount"`
	WinLoss       float64   `json:"win_loss"`
	RecordedAt    time.Time `gorm:"index" json:"recorded_at"`
	RefID         string    `gorm:"size:64;index" json:"ref_id"`
}

// BuyInOutRecord is one cash movement. Amount is always non-negative;
// the direction is carried by TransactionType.
type BuyInOutRecord struct {
	gorm.Model

	CustomerCode    string    `gorm:"index;size:32" json:"customer_code"`
	TripCode        string    `gorm:"index;size:32" json:"trip_code"`
	AgentCode       string    `gorm:"index;size:32" json:"agent_code"`
	StaffCode       string    `gorm:"index;size:32" json:"staff_code"`
	TransactionType string    `gorm:"size:16" json:"transaction_type"`
	Amount          float64   `json:"amount"`
	RecordedAt      time.Time `gorm:"index" json:"recorded_at"`
	RefID           string    `gorm:"size:64;index" json:"ref_id"`
}
