package carrier

import "fmt"

// User-facing message templates for the MRW operations. Batch operations
// accumulate these as display strings instead of raising; single-shipment
// operations wrap them in domain errors.
const (
	msgSelectService       = "Select a service or default service in the MRW API"
	msgNoCODPrice          = `Shipment "%s" has no price and is sent cash on delivery`
	msgNotSentError        = "Shipment %s was not sent. %s"
	msgLabelNotAvailable   = `Label "%s" is not available from MRW`
	msgNoTrackingReference = `Shipment "%s" has no MRW tracking reference`
	msgMissingPhone        = `Shipment "%s" has no phone or mobile number`
	msgNoManifest          = "MRW manifest service is not available."
)

// MsgSelectService tells the user no service could be resolved.
func MsgSelectService() string {
	return msgSelectService
}

// MsgNoCODPrice flags a cash on delivery shipment without an amount.
func MsgNoCODPrice(name string) string {
	return fmt.Sprintf(msgNoCODPrice, name)
}

// MsgNotSentError reports a shipment rejection with the carrier's text.
func MsgNotSentError(name, carrierError string) string {
	return fmt.Sprintf(msgNotSentError, name, carrierError)
}

// MsgLabelNotAvailable reports a missing label for a shipment.
func MsgLabelNotAvailable(name string) string {
	return fmt.Sprintf(msgLabelNotAvailable, name)
}

// MsgNoTrackingReference reports a label request for an unsent shipment.
func MsgNoTrackingReference(name string) string {
	return fmt.Sprintf(msgNoTrackingReference, name)
}

// MsgMissingPhone reports a shipment without any usable contact number.
func MsgMissingPhone(name string) string {
	return fmt.Sprintf(msgMissingPhone, name)
}

// MsgNoManifest reports that MRW offers no manifest service.
func MsgNoManifest() string {
	return msgNoManifest
}
