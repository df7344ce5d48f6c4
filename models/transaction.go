package models

import "time"

// TransactionAction classifies an audit record.
type TransactionAction string

const (
	ActionCheckout       TransactionAction = "checkout"
	ActionCheckin        TransactionAction = "checkin"
	ActionLocationChange TransactionAction = "location_change"
	ActionQuantityUpdate TransactionAction = "quantity_update"
	ActionCreated        TransactionAction = "created"
	ActionUpdated        TransactionAction = "updated"
	ActionImport         TransactionAction = "import"
)

// Transaction is an append-only audit record of a stock operation. Records
// are never mutated or deleted by normal operation; IDs are time-derived and
// strictly increasing so the log has a stable order.
type Transaction struct {
	ID             int64             `json:"id" bson:"id"`
	Action         TransactionAction `json:"action" bson:"action"`
	PartID         int               `json:"partId" bson:"part_id"`
	PartNumber     string            `json:"partNumber" bson:"part_number"`
	Actor          string            `json:"user,omitempty" bson:"actor,omitempty"`
	QuantityBefore *int              `json:"quantityBefore,omitempty" bson:"quantity_before,omitempty"`
	QuantityAfter  *int              `json:"quantityAfter,omitempty" bson:"quantity_after,omitempty"`
	LocationBefore string            `json:"locationBefore,omitempty" bson:"location_before,omitempty"`
	LocationAfter  string            `json:"locationAfter,omitempty" bson:"location_after,omitempty"`
	Notes          string            `json:"notes,omitempty" bson:"notes,omitempty"`
	Timestamp      time.Time         `json:"timestamp" bson:"timestamp"`
}
