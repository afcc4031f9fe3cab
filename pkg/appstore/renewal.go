package appstore

import (
	"time"
)

// RenewalRecord materializes one decoded App Store Server renewal payload,
// the JWSRenewalInfoDecodedPayload companion of TransactionRecord. It
// follows the same raw-store/derived-view contract: the raw payload is the
// single source of truth, Parse projects it into the typed fields, and Set
// re-derives the full view on every write while Delete does not.
type RenewalRecord struct {
	raw map[string]interface{}

	autoRenewProductID          *string
	autoRenewStatus             *int64
	currency                    *string
	eligibleWinBackOfferIDs     []string
	expirationIntent            *int64
	isInBillingRetryPeriod      *bool
	offerIdentifier             *string
	offerType                   *string
	offerDiscountType           *string
	offerPeriod                 *string
	originalTransactionID       *string
	priceIncreaseStatus         *int64
	productID                   *string
	appAccountToken             *string
	appTransactionID            *string
	renewalPrice                *int64
	gracePeriodExpiresDate      *time.Time
	recentSubscriptionStartDate *time.Time
	renewalDate                 *time.Time
	signedDate                  *time.Time
	environment                 Environment
}

// NewRenewalRecord creates an empty record. Assign a payload with SetRawData
// and call Parse before reading typed fields.
func NewRenewalRecord() *RenewalRecord {
	return &RenewalRecord{}
}

// SetRawData replaces the raw payload wholesale without parsing.
func (r *RenewalRecord) SetRawData(raw map[string]interface{}) *RenewalRecord {
	r.raw = raw
	return r
}

// RawData returns the current raw payload, nil when none was assigned.
func (r *RenewalRecord) RawData() map[string]interface{} {
	return r.raw
}

// Get returns the raw value stored at key, nil when absent.
func (r *RenewalRecord) Get(key string) interface{} {
	if r.raw == nil {
		return nil
	}

	return r.raw[key]
}

// Set writes a single raw key and re-derives the full typed view. The raw
// write sticks even when the re-parse fails.
func (r *RenewalRecord) Set(key string, value interface{}) error {
	if r.raw == nil {
		r.raw = make(map[string]interface{})
	}
	r.raw[key] = value

	_, err := r.Parse()
	return err
}

// Has reports whether key is present in the raw payload.
func (r *RenewalRecord) Has(key string) bool {
	if r.raw == nil {
		return false
	}

	_, ok := r.raw[key]
	return ok
}

// Delete removes key from the raw payload without re-parsing; the typed view
// keeps the previously derived value until the next Parse or Set.
func (r *RenewalRecord) Delete(key string) {
	if r.raw == nil {
		return
	}

	delete(r.raw, key)
}

// Parse derives every typed field from the raw payload and returns the
// record for chaining. It fails with ErrMissingRawData when no payload was
// assigned, leaving the typed fields untouched.
func (r *RenewalRecord) Parse() (*RenewalRecord, error) {
	if r.raw == nil {
		return nil, ErrMissingRawData
	}

	r.autoRenewProductID = stringValue(r.raw["autoRenewProductId"])
	r.autoRenewStatus = int64Value(r.raw["autoRenewStatus"])
	r.currency = stringValue(r.raw["currency"])
	r.eligibleWinBackOfferIDs = stringListValue(r.raw["eligibleWinBackOfferIds"])
	r.expirationIntent = int64Value(r.raw["expirationIntent"])
	r.isInBillingRetryPeriod = boolValue(r.raw["isInBillingRetryPeriod"])
	r.offerIdentifier = stringValue(r.raw["offerIdentifier"])
	r.offerType = stringValue(r.raw["offerType"])
	r.offerDiscountType = stringValue(r.raw["offerDiscountType"])
	r.offerPeriod = stringValue(r.raw["offerPeriod"])
	r.originalTransactionID = stringValue(r.raw["originalTransactionId"])
	r.priceIncreaseStatus = int64Value(r.raw["priceIncreaseStatus"])
	r.productID = stringValue(r.raw["productId"])
	r.appAccountToken = stringValue(r.raw["appAccountToken"])
	r.appTransactionID = stringValue(r.raw["appTransactionId"])
	r.renewalPrice = int64Value(r.raw["renewalPrice"])

	var err error
	if r.gracePeriodExpiresDate, err = epochMSValue("gracePeriodExpiresDate", r.raw["gracePeriodExpiresDate"]); err != nil {
		return nil, err
	}
	if r.recentSubscriptionStartDate, err = epochMSValue("recentSubscriptionStartDate", r.raw["recentSubscriptionStartDate"]); err != nil {
		return nil, err
	}
	if r.renewalDate, err = epochMSValue("renewalDate", r.raw["renewalDate"]); err != nil {
		return nil, err
	}
	if r.signedDate, err = epochMSValue("signedDate", r.raw["signedDate"]); err != nil {
		return nil, err
	}

	r.environment = environmentFromRaw(r.raw["environment"])

	return r, nil
}

// AutoRenewProductID returns the product the subscription renews to.
func (r *RenewalRecord) AutoRenewProductID() *string {
	return r.autoRenewProductID
}

// AutoRenewStatus ...
func (r *RenewalRecord) AutoRenewStatus() *int64 {
	return r.autoRenewStatus
}

// Currency returns the ISO 4217 currency code of the renewal price.
func (r *RenewalRecord) Currency() *string {
	return r.currency
}

// EligibleWinBackOfferIDs returns the win-back offers the account currently
// qualifies for, nil when absent or not a list of strings.
func (r *RenewalRecord) EligibleWinBackOfferIDs() []string {
	return r.eligibleWinBackOfferIDs
}

// ExpirationIntent ...
func (r *RenewalRecord) ExpirationIntent() *int64 {
	return r.expirationIntent
}

// IsInBillingRetryPeriod ...
func (r *RenewalRecord) IsInBillingRetryPeriod() *bool {
	return r.isInBillingRetryPeriod
}

// OfferIdentifier ...
func (r *RenewalRecord) OfferIdentifier() *string {
	return r.offerIdentifier
}

// OfferType ...
func (r *RenewalRecord) OfferType() *string {
	return r.offerType
}

// OfferDiscountType ...
func (r *RenewalRecord) OfferDiscountType() *string {
	return r.offerDiscountType
}

// OfferPeriod ...
func (r *RenewalRecord) OfferPeriod() *string {
	return r.offerPeriod
}

// OriginalTransactionID returns the identifier of the first transaction in
// the subscription chain.
func (r *RenewalRecord) OriginalTransactionID() *string {
	return r.originalTransactionID
}

// PriceIncreaseStatus ...
func (r *RenewalRecord) PriceIncreaseStatus() *int64 {
	return r.priceIncreaseStatus
}

// ProductID returns the store product identifier.
func (r *RenewalRecord) ProductID() *string {
	return r.productID
}

// AppAccountToken ...
func (r *RenewalRecord) AppAccountToken() *string {
	return r.appAccountToken
}

// AppTransactionID ...
func (r *RenewalRecord) AppTransactionID() *string {
	return r.appTransactionID
}

// RenewalPrice returns the renewal price in milliunits of the currency.
func (r *RenewalRecord) RenewalPrice() *int64 {
	return r.renewalPrice
}

// GracePeriodExpiresDate ...
func (r *RenewalRecord) GracePeriodExpiresDate() *time.Time {
	return r.gracePeriodExpiresDate
}

// RecentSubscriptionStartDate ...
func (r *RenewalRecord) RecentSubscriptionStartDate() *time.Time {
	return r.recentSubscriptionStartDate
}

// RenewalDate returns the earliest instant the next renewal can be charged.
func (r *RenewalRecord) RenewalDate() *time.Time {
	return r.renewalDate
}

// SignedDate returns the instant Apple signed the payload.
func (r *RenewalRecord) SignedDate() *time.Time {
	return r.signedDate
}

// Environment returns the classification derived by the last Parse, or the
// value forced through SetEnvironment since then.
func (r *RenewalRecord) Environment() Environment {
	return r.environment
}

// SetEnvironment forces the environment classification until the next Parse.
func (r *RenewalRecord) SetEnvironment(environment Environment) {
	r.environment = environment
}
