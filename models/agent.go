package models

import "gorm.io/gorm"

type Agent struct {
	gorm.Model

	AgentCode      string  `gorm:"uniqueIndex;size:32" json:"agent_code"`
	Name           string  `gorm:"size:64" json:"name"`
	SecretKey      string  `gorm:"size:128" json:"secret_key"`
	CommissionRate float64 `json:"commission_rate"`
	IsActive       bool    `gorm:"default:true" json:"is_active"`

	Customers []Customer `gorm:"foreignKey:AgentCode;references:AgentCode" json:"-"`
	Trips     []Trip     `gorm:"foreignKey:AgentCode;references:AgentCode" json:"-"`
}

type Staff struct {
	gorm.Model

	StaffCode string `gorm:"uniqueIndex;size:32" json:"staff_code"`
	Name      string `gorm:"size:64" json:"name"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
}
