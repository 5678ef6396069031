package dto

// SendReceiptRequest body para POST /api/notifications/send-receipt.
type SendReceiptRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
	Phone         string `json:"phone" validate:"required,max=30"`
}

// SendTestRequest body para POST /api/whatsapp/send-test.
type SendTestRequest struct {
	Phone   string `json:"phone" validate:"required,max=30"`
	Message string `json:"message" validate:"required,max=1000"`
}

// CheckExpiringResponse cantidad de recordatorios encolados.
type CheckExpiringResponse struct {
	Sent int `json:"sent"`
}

// MessengerStatusResponse salud del puente de WhatsApp.
type MessengerStatusResponse struct {
	Enabled   bool   `json:"enabled"`
	Connected bool   `json:"connected"`
	Breaker   string `json:"breaker"`
	Detail    string `json:"detail,omitempty"`
}
