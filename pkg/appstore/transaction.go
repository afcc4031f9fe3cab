package appstore

import (
	"time"
)

// TransactionRecord materializes one decoded App Store Server transaction
// payload. The raw payload stays the single source of truth; every typed
// field is a projection derived from it by Parse. Field names follow Apple's
// JWSTransactionDecodedPayload schema and must not be renamed.
//
// The record is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type TransactionRecord struct {
	raw map[string]interface{}

	transactionID               *string
	originalTransactionID       *string
	webOrderLineItemID          *string
	bundleID                    *string
	productID                   *string
	subscriptionGroupIdentifier *string
	appAccountToken             *string
	appTransactionID            *string
	transactionType             *string
	inAppOwnershipType          *string
	revocationReason            *string
	offerType                   *string
	offerIdentifier             *string
	offerDiscountType           *string
	offerPeriod                 *string
	storefront                  *string
	storefrontID                *string
	transactionReason           *string
	currency                    *string
	quantity                    *int64
	price                       *int64
	isUpgraded                  *bool
	purchaseDate                *time.Time
	originalPurchaseDate        *time.Time
	expiresDate                 *time.Time
	signedDate                  *time.Time
	revocationDate              *time.Time
	environment                 Environment
}

// NewTransactionRecord creates an empty record. Assign a payload with
// SetRawData and call Parse before reading typed fields.
func NewTransactionRecord() *TransactionRecord {
	return &TransactionRecord{}
}

// SetRawData replaces the raw payload wholesale. It does not parse; the
// typed fields keep their previous values until Parse or Set runs.
func (r *TransactionRecord) SetRawData(raw map[string]interface{}) *TransactionRecord {
	r.raw = raw
	return r
}

// RawData returns the current raw payload, nil when none was assigned.
func (r *TransactionRecord) RawData() map[string]interface{} {
	return r.raw
}

// Get returns the raw value stored at key, nil when the key or the payload
// itself is absent.
func (r *TransactionRecord) Get(key string) interface{} {
	if r.raw == nil {
		return nil
	}

	return r.raw[key]
}

// Set writes a single raw key and immediately re-derives every typed field,
// not just the one touched, so the typed view can never go stale behind a
// write. The re-derivation walks the full field set on each call; payloads
// are small and writes infrequent, so the cost is acceptable. The raw write
// sticks even when the re-parse fails.
func (r *TransactionRecord) Set(key string, value interface{}) error {
	if r.raw == nil {
		r.raw = make(map[string]interface{})
	}
	r.raw[key] = value

	_, err := r.Parse()
	return err
}

// Has reports whether key is present in the raw payload.
func (r *TransactionRecord) Has(key string) bool {
	if r.raw == nil {
		return false
	}

	_, ok := r.raw[key]
	return ok
}

// Delete removes key from the raw payload. Unlike Set it does NOT re-parse:
// the typed view keeps the previously derived value until the next Parse or
// Set. Callers relying on the typed fields after a Delete must re-parse
// explicitly.
func (r *TransactionRecord) Delete(key string) {
	if r.raw == nil {
		return
	}

	delete(r.raw, key)
}

// Parse derives every typed field from the raw payload and returns the
// record for chaining. All typed state is overwritten on each call, absent
// keys clearing their fields, so parsing an unchanged payload twice is
// idempotent. When no payload was assigned it fails with ErrMissingRawData
// and leaves the typed fields untouched.
func (r *TransactionRecord) Parse() (*TransactionRecord, error) {
	if r.raw == nil {
		return nil, ErrMissingRawData
	}

	r.transactionID = stringValue(r.raw["transactionId"])
	r.originalTransactionID = stringValue(r.raw["originalTransactionId"])
	r.webOrderLineItemID = stringValue(r.raw["webOrderLineItemId"])
	r.bundleID = stringValue(r.raw["bundleId"])
	r.productID = stringValue(r.raw["productId"])
	r.subscriptionGroupIdentifier = stringValue(r.raw["subscriptionGroupIdentifier"])
	r.appAccountToken = stringValue(r.raw["appAccountToken"])
	r.appTransactionID = stringValue(r.raw["appTransactionId"])
	r.transactionType = stringValue(r.raw["type"])
	r.inAppOwnershipType = stringValue(r.raw["inAppOwnershipType"])
	r.revocationReason = stringValue(r.raw["revocationReason"])
	r.offerType = stringValue(r.raw["offerType"])
	r.offerIdentifier = stringValue(r.raw["offerIdentifier"])
	r.offerDiscountType = stringValue(r.raw["offerDiscountType"])
	r.offerPeriod = stringValue(r.raw["offerPeriod"])
	r.storefront = stringValue(r.raw["storefront"])
	r.storefrontID = stringValue(r.raw["storefrontId"])
	r.transactionReason = stringValue(r.raw["transactionReason"])
	r.currency = stringValue(r.raw["currency"])
	r.quantity = int64Value(r.raw["quantity"])
	r.price = int64Value(r.raw["price"])
	r.isUpgraded = boolValue(r.raw["isUpgraded"])

	var err error
	if r.purchaseDate, err = epochMSValue("purchaseDate", r.raw["purchaseDate"]); err != nil {
		return nil, err
	}
	if r.originalPurchaseDate, err = epochMSValue("originalPurchaseDate", r.raw["originalPurchaseDate"]); err != nil {
		return nil, err
	}
	if r.expiresDate, err = epochMSValue("expiresDate", r.raw["expiresDate"]); err != nil {
		return nil, err
	}
	if r.signedDate, err = epochMSValue("signedDate", r.raw["signedDate"]); err != nil {
		return nil, err
	}
	if r.revocationDate, err = epochMSValue("revocationDate", r.raw["revocationDate"]); err != nil {
		return nil, err
	}

	r.environment = environmentFromRaw(r.raw["environment"])

	return r, nil
}

// TransactionID returns the unique identifier of the transaction.
func (r *TransactionRecord) TransactionID() *string {
	return r.transactionID
}

// OriginalTransactionID returns the identifier of the first transaction in
// the subscription chain.
func (r *TransactionRecord) OriginalTransactionID() *string {
	return r.originalTransactionID
}

// WebOrderLineItemID ...
func (r *TransactionRecord) WebOrderLineItemID() *string {
	return r.webOrderLineItemID
}

// BundleID returns the bundle identifier of the app the purchase belongs to.
func (r *TransactionRecord) BundleID() *string {
	return r.bundleID
}

// ProductID returns the store product identifier.
func (r *TransactionRecord) ProductID() *string {
	return r.productID
}

// SubscriptionGroupIdentifier ...
func (r *TransactionRecord) SubscriptionGroupIdentifier() *string {
	return r.subscriptionGroupIdentifier
}

// AppAccountToken returns the UUID the app optionally attaches to associate
// the purchase with one of its own accounts.
func (r *TransactionRecord) AppAccountToken() *string {
	return r.appAccountToken
}

// AppTransactionID ...
func (r *TransactionRecord) AppTransactionID() *string {
	return r.appTransactionID
}

// Type returns the in-app purchase product type.
func (r *TransactionRecord) Type() *string {
	return r.transactionType
}

// InAppOwnershipType describes whether the account owns the purchase or
// shares it through family sharing.
func (r *TransactionRecord) InAppOwnershipType() *string {
	return r.inAppOwnershipType
}

// RevocationReason ...
func (r *TransactionRecord) RevocationReason() *string {
	return r.revocationReason
}

// OfferType ...
func (r *TransactionRecord) OfferType() *string {
	return r.offerType
}

// OfferIdentifier ...
func (r *TransactionRecord) OfferIdentifier() *string {
	return r.offerIdentifier
}

// OfferDiscountType ...
func (r *TransactionRecord) OfferDiscountType() *string {
	return r.offerDiscountType
}

// OfferPeriod ...
func (r *TransactionRecord) OfferPeriod() *string {
	return r.offerPeriod
}

// Storefront returns the country code of the App Store storefront.
func (r *TransactionRecord) Storefront() *string {
	return r.storefront
}

// StorefrontID ...
func (r *TransactionRecord) StorefrontID() *string {
	return r.storefrontID
}

// TransactionReason reports whether the transaction was a purchase or a
// renewal.
func (r *TransactionRecord) TransactionReason() *string {
	return r.transactionReason
}

// Currency returns the ISO 4217 currency code of the price.
func (r *TransactionRecord) Currency() *string {
	return r.currency
}

// Quantity returns the number of consumables purchased.
func (r *TransactionRecord) Quantity() *int64 {
	return r.quantity
}

// Price returns the price in milliunits of the currency.
func (r *TransactionRecord) Price() *int64 {
	return r.price
}

// IsUpgraded ...
func (r *TransactionRecord) IsUpgraded() *bool {
	return r.isUpgraded
}

// PurchaseDate returns the instant the App Store charged the account.
func (r *TransactionRecord) PurchaseDate() *time.Time {
	return r.purchaseDate
}

// OriginalPurchaseDate returns the instant of the original purchase.
func (r *TransactionRecord) OriginalPurchaseDate() *time.Time {
	return r.originalPurchaseDate
}

// ExpiresDate returns the instant the subscription expires or renews.
func (r *TransactionRecord) ExpiresDate() *time.Time {
	return r.expiresDate
}

// SignedDate returns the instant Apple signed the payload.
func (r *TransactionRecord) SignedDate() *time.Time {
	return r.signedDate
}

// RevocationDate ...
func (r *TransactionRecord) RevocationDate() *time.Time {
	return r.revocationDate
}

// Environment returns the classification derived by the last Parse, or the
// value forced through SetEnvironment since then.
func (r *TransactionRecord) Environment() Environment {
	return r.environment
}

// SetEnvironment forces the environment classification, bypassing the
// raw-payload-driven derivation. The override lasts until the next Parse,
// which recomputes it from the raw payload.
func (r *TransactionRecord) SetEnvironment(environment Environment) {
	r.environment = environment
}
