package appstore

import (
	"testing"
	"time"

	"github.com/calmisland/go-testify/assert"
)

func sampleRenewalPayload() map[string]interface{} {
	return map[string]interface{}{
		"autoRenewProductId":          "com.calmid.learnandplay.premium",
		"autoRenewStatus":             float64(1),
		"currency":                    "USD",
		"eligibleWinBackOfferIds":     []interface{}{"winback1", "winback2"},
		"expirationIntent":            float64(2),
		"isInBillingRetryPeriod":      true,
		"originalTransactionId":       "2000000100000001",
		"priceIncreaseStatus":         float64(0),
		"productId":                   "com.calmid.learnandplay.premium",
		"renewalPrice":                float64(9990),
		"gracePeriodExpiresDate":      float64(1703000000000),
		"recentSubscriptionStartDate": float64(1690000000000),
		"renewalDate":                 float64(1702600000000),
		"signedDate":                  float64(1700000005000),
		"environment":                 "Production",
	}
}

func TestRenewalRecordParse(t *testing.T) {
	record, err := NewRenewalRecord().SetRawData(sampleRenewalPayload()).Parse()

	assert.NoError(t, err)
	assert.Equal(t, "com.calmid.learnandplay.premium", *record.AutoRenewProductID())
	assert.Equal(t, int64(1), *record.AutoRenewStatus())
	assert.Equal(t, "USD", *record.Currency())
	assert.Equal(t, []string{"winback1", "winback2"}, record.EligibleWinBackOfferIDs())
	assert.Equal(t, int64(2), *record.ExpirationIntent())
	assert.Equal(t, true, *record.IsInBillingRetryPeriod())
	assert.Equal(t, "2000000100000001", *record.OriginalTransactionID())
	assert.Equal(t, int64(0), *record.PriceIncreaseStatus())
	assert.Equal(t, "com.calmid.learnandplay.premium", *record.ProductID())
	assert.Equal(t, int64(9990), *record.RenewalPrice())
	assert.Equal(t, time.UnixMilli(1703000000000).UTC(), *record.GracePeriodExpiresDate())
	assert.Equal(t, time.UnixMilli(1690000000000).UTC(), *record.RecentSubscriptionStartDate())
	assert.Equal(t, time.UnixMilli(1702600000000).UTC(), *record.RenewalDate())
	assert.Equal(t, time.UnixMilli(1700000005000).UTC(), *record.SignedDate())
	assert.Equal(t, EnvironmentProduction, record.Environment())

	assert.Nil(t, record.OfferIdentifier())
	assert.Nil(t, record.OfferType())
	assert.Nil(t, record.AppAccountToken())
}

func TestRenewalRecordParseWithoutRawData(t *testing.T) {
	_, err := NewRenewalRecord().Parse()

	assert.Error(t, err)
	assert.Equal(t, "response must be an array", err.Error())
}

func TestRenewalRecordEnvironmentDefaultsToSandbox(t *testing.T) {
	record, err := NewRenewalRecord().SetRawData(map[string]interface{}{}).Parse()

	assert.NoError(t, err)
	assert.Equal(t, EnvironmentSandbox, record.Environment())
}

func TestRenewalRecordSetAndDeleteAsymmetry(t *testing.T) {
	record := NewRenewalRecord()

	err := record.Set("productId", "com.calmid.learnandplay.premium")
	assert.NoError(t, err)
	assert.Equal(t, "com.calmid.learnandplay.premium", *record.ProductID())

	record.Delete("productId")
	assert.False(t, record.Has("productId"))
	assert.Equal(t, "com.calmid.learnandplay.premium", *record.ProductID())

	_, err = record.Parse()
	assert.NoError(t, err)
	assert.Nil(t, record.ProductID())
}

func TestRenewalRecordWinBackOffersRequireStrings(t *testing.T) {
	record, err := NewRenewalRecord().SetRawData(map[string]interface{}{
		"eligibleWinBackOfferIds": []interface{}{"winback1", 2},
	}).Parse()

	assert.NoError(t, err)
	assert.Nil(t, record.EligibleWinBackOfferIDs())
}

func TestRenewalRecordZeroRenewalDateStaysUnset(t *testing.T) {
	record, err := NewRenewalRecord().SetRawData(map[string]interface{}{
		"renewalDate": float64(0),
	}).Parse()

	assert.NoError(t, err)
	assert.Nil(t, record.RenewalDate())
}
