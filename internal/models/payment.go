package models

// Payment records one subscription purchase attempt. Rows are immutable after
// creation; a failed gateway call rolls the insert back instead of flagging it.
type Payment struct {
	BaseModel
	CardholderName string  `gorm:"not null"`
	Amount         float64 `gorm:"not null"`
	SubMonths      int     `gorm:"not null"`
	BusinessID     string  `gorm:"not null;index"`
	IntentID       string
	Status         string `gorm:"type:varchar(20);default:'created'"`
}

const PaymentStatusCreated = "created"
