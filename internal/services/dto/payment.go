package dto

type CreatePaymentRequest struct {
	CardholderName string  `json:"cardholderName" validate:"required"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	BusinessID     string  `json:"business_idbusiness" validate:"required"`
	SubMonths      int     `json:"subMonths" validate:"required,min=1,max=36"`
}

type CreatePaymentResponse struct {
	ClientSecret string `json:"client_secret"`
}

type PaymentResponse struct {
	ID             string  `json:"idpayment"`
	CardholderName string  `json:"cardholderName"`
	Amount         float64 `json:"amount"`
	SubMonths      int     `json:"subMonths"`
	BusinessID     string  `json:"business_idbusiness"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}
