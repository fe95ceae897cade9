package models

import "gorm.io/gorm"

// DefaultRollingPercentage is the commission rate applied when a customer
// has no explicit rate set.
const DefaultRollingPercentage = 1.4

type Customer struct {
	gorm.Model

	CustomerCode      string  `gorm:"uniqueIndex;size:32" json:"customer_code"`
	Name              string  `gorm:"size:64" json:"name"`
	AgentCode         string  `gorm:"index;size:32" json:"agent_code"`
	RollingPercentage float64 `json:"rolling_percentage"`
	CreditLimit       float64 `json:"credit_limit"`
	CreditUsed        float64 `json:"credit_used"`
	IsActive          bool    `gorm:"default:true" json:"is_active"`

	RollingRecords  []RollingRecord  `gorm:"foreignKey:CustomerCode;references:CustomerCode" json:"-"`
	BuyInOutRecords []BuyInOutRecord `gorm:"foreignKey:CustomerCode;references:CustomerCode" json:"-"`
}

// EffectiveRollingPercentage returns the customer's commission rate,
// falling back to the house default when unset.
func (c *Customer) EffectiveRollingPercentage() float64 {
	if c.RollingPercentage <= 0 {
		return DefaultRollingPercentage
	}
	return c.RollingPercentage
}
