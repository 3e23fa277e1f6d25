package payments

// Intent is the slice of a provider charge intent the rest of the app needs:
// the provider id for reconciliation and the client secret the mobile client
// uses to confirm the charge.
type Intent struct {
	ID           string
	ClientSecret string
}

// IntentRequest describes one charge to authorize. Amount is in minor units
// (cents), already multiplied out by the caller.
type IntentRequest struct {
	Amount      int64
	Currency    string
	Description string
	BusinessID  string
}

// Gateway abstracts the payment provider so the payment service can run
// against a recorded fake in tests.
type Gateway interface {
	CreateIntent(req IntentRequest) (*Intent, error)
}
