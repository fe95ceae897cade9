package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TripStatusPlanned   = "planned"
	TripStatusOngoing   = "ongoing"
	TripStatusActive    = "active"
	TripStatusCompleted = "completed"
)

type Trip struct {
	gorm.Model

	TripCode  string    `gorm:"uniqueIndex;size:32" json:"trip_code"`
	Name      string    `gorm:"size:128" json:"name"`
	AgentCode string    `gorm:"index;size:32" json:"agent_code"`
	Status    string    `gorm:"size:16;default:planned" json:"status"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Participants []TripParticipant `gorm:"foreignKey:TripCode;references:TripCode" json:"participants"`
	Expenses     []TripExpense     `gorm:"foreignKey:TripCode;references:TripCode" json:"expenses"`
	Sharing      *TripSharing      `gorm:"foreignKey:TripCode;references:TripCode" json:"sharing,omitempty"`
}

type TripParticipant struct {
	gorm.Model

	TripCode     string `gorm:"index;size:32" json:"trip_code"`
	CustomerCode string `gorm:"index;size:32" json:"customer_code"`
}

type TripExpense struct {
	gorm.Model

	TripCode    string  `gorm:"index;size:32" json:"trip_code"`
	Description string  `gorm:"size:255" json:"description"`
	Amount      float64 `json:"amount"`
}

// TripSharing is the authoritative settlement breakdown for a completed
// trip. When present it supersedes any locally recomputed figures.
type TripSharing struct {
	gorm.Model

	TripCode               string  `gorm:"uniqueIndex;size:32" json:"trip_code"`
	TotalWinLoss           float64 `json:"total_win_loss"`
	TotalExpenses          float64 `json:"total_expenses"`
	TotalRollingCommission float64 `json:"total_rolling_commission"`
	NetCashFlow            float64 `json:"net_cash_flow"`
	CompanyShare           float64 `json:"company_share"`
	AgentShare             float64 `json:"agent_share"`
}
