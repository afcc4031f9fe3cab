package appstore

import (
	"strconv"

	iap "github.com/awa/go-iap/appstore"
)

// FromLegacyInApp builds a TransactionRecord from a verifyReceipt in_app
// entry, for callers migrating off the legacy endpoint. Legacy receipts
// carry millisecond timestamps as strings; they are copied into the raw
// payload as-is and interpreted by Parse, so a malformed legacy value fails
// exactly like a malformed decoded payload. The returned record is not yet
// parsed.
func FromLegacyInApp(bundleID string, in iap.InApp) *TransactionRecord {
	raw := make(map[string]interface{})

	setIfNotEmpty(raw, "bundleId", bundleID)
	setIfNotEmpty(raw, "transactionId", in.TransactionID)
	setIfNotEmpty(raw, "originalTransactionId", in.OriginalTransactionID)
	setIfNotEmpty(raw, "webOrderLineItemId", in.WebOrderLineItemID)
	setIfNotEmpty(raw, "productId", in.ProductID)
	setIfNotEmpty(raw, "subscriptionGroupIdentifier", in.SubscriptionGroupIdentifier)
	setIfNotEmpty(raw, "offerIdentifier", in.PromotionalOfferID)
	setIfNotEmpty(raw, "revocationReason", in.CancellationReason)
	setIfNotEmpty(raw, "purchaseDate", in.PurchaseDateMS)
	setIfNotEmpty(raw, "originalPurchaseDate", in.OriginalPurchaseDateMS)
	setIfNotEmpty(raw, "expiresDate", in.ExpiresDateMS)
	setIfNotEmpty(raw, "revocationDate", in.CancellationDateMS)

	// The legacy quantity is a decimal string; an unreadable one is dropped
	// rather than carried into the raw payload as a non-numeric value.
	if len(in.Quantity) > 0 {
		if quantity, err := strconv.ParseInt(in.Quantity, 10, 64); err == nil {
			raw["quantity"] = quantity
		}
	}

	return NewTransactionRecord().SetRawData(raw)
}

func setIfNotEmpty(raw map[string]interface{}, key string, value string) {
	if len(value) > 0 {
		raw[key] = value
	}
}
