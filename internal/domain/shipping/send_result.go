package shipping

// SendResult aggregates the outcome of one batch submission. The three
// sequences follow the shipments' processing order. Errors holds
// human-readable strings suitable for direct display to the operator.
type SendResult struct {
	// Sent lists the shipment numbers the carrier accepted.
	Sent []string
	// LabelPaths lists the label files materialized during the batch.
	LabelPaths []string
	// Errors lists per-shipment problems; the batch continues past them.
	Errors []string
}

// NewSendResult creates an empty SendResult.
func NewSendResult() *SendResult {
	return &SendResult{
		Sent:       make([]string, 0),
		LabelPaths: make([]string, 0),
		Errors:     make([]string, 0),
	}
}

// HasErrors reports whether any shipment in the batch failed.
func (r *SendResult) HasErrors() bool {
	return len(r.Errors) > 0
}
