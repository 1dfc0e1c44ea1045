package models

// PaymentCategory is a closed set; services validate against it before any
// row is written.
type PaymentCategory string

const (
	PaymentZambian       PaymentCategory = "Zambian"
	PaymentInternational PaymentCategory = "International"
)

// ValidPaymentCategory reports whether c is one of the allowed categories.
func ValidPaymentCategory(c PaymentCategory) bool {
	return c == PaymentZambian || c == PaymentInternational
}

// PaymentMethodModel is one way supporters can send money, shown on the
// support page grouped by category.
type PaymentMethodModel struct {
	Base
	MethodName string          `json:"method_name" gorm:"not null"`
	Details    string          `json:"details"     gorm:"type:text;not null"`
	Category   PaymentCategory `json:"category"    gorm:"not null;index"`
}

func (PaymentMethodModel) TableName() string { return "payment_methods" }
