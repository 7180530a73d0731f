package domain

// DeliveryState is what the delivery guard knows about a provider message id.
type DeliveryState string

const (
	// DeliveryNew means the caller now holds the pending claim and must
	// either complete or release it.
	DeliveryNew DeliveryState = "new"
	// DeliveryPending means another attempt holds the claim and has not
	// finished yet.
	DeliveryPending DeliveryState = "pending"
	// DeliveryDone means the event was already applied.
	DeliveryDone DeliveryState = "done"
)

func (s DeliveryState) String() string { return string(s) }
