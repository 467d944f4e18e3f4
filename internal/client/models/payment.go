package models

// Payment is a completed or pending payment record from /payments/history.
type Payment struct {
	ID            int     `json:"id"`
	UserID        int     `json:"user_id"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

// MembershipFee is the current membership fee.
type MembershipFee struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PaymentOrder is a gateway order created by the backend. The client hands
// the order id to the payment gateway and reports the result back through
// the verify endpoint.
type PaymentOrder struct {
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	KeyID    string  `json:"razorpay_key_id"`
}

// PaymentProof carries the gateway's confirmation of a completed payment.
type PaymentProof struct {
	PaymentID string  `json:"razorpay_payment_id"`
	OrderID   string  `json:"razorpay_order_id"`
	Signature string  `json:"razorpay_signature"`
	Amount    float64 `json:"amount"`
}

// MembershipReceipt is the response of the membership verify endpoint: the
// freshly issued sabhasad id and the upgraded status.
type MembershipReceipt struct {
	Message    string `json:"message"`
	SabhasadID string `json:"sabhasad_id"`
	Status     string `json:"status"`
}
