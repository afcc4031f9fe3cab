package v2

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/prairiewest/store-receipt-validator/internal/helpers"
	"github.com/prairiewest/store-receipt-validator/pkg/appstore"
)

type parseRenewalRequestBody struct {
	Payload     map[string]interface{} `json:"payload"`
	Environment string                 `json:"environment"`
}

type renewalView struct {
	AutoRenewProductID          *string              `json:"autoRenewProductId,omitempty"`
	AutoRenewStatus             *int64               `json:"autoRenewStatus,omitempty"`
	Currency                    *string              `json:"currency,omitempty"`
	EligibleWinBackOfferIDs     []string             `json:"eligibleWinBackOfferIds,omitempty"`
	ExpirationIntent            *int64               `json:"expirationIntent,omitempty"`
	IsInBillingRetryPeriod      *bool                `json:"isInBillingRetryPeriod,omitempty"`
	OfferIdentifier             *string              `json:"offerIdentifier,omitempty"`
	OfferType                   *string              `json:"offerType,omitempty"`
	OfferDiscountType           *string              `json:"offerDiscountType,omitempty"`
	OfferPeriod                 *string              `json:"offerPeriod,omitempty"`
	OriginalTransactionID       *string              `json:"originalTransactionId,omitempty"`
	PriceIncreaseStatus         *int64               `json:"priceIncreaseStatus,omitempty"`
	ProductID                   *string              `json:"productId,omitempty"`
	AppAccountToken             *string              `json:"appAccountToken,omitempty"`
	AppTransactionID            *string              `json:"appTransactionId,omitempty"`
	RenewalPrice                *int64               `json:"renewalPrice,omitempty"`
	GracePeriodExpiresDate      *time.Time           `json:"gracePeriodExpiresDate,omitempty"`
	RecentSubscriptionStartDate *time.Time           `json:"recentSubscriptionStartDate,omitempty"`
	RenewalDate                 *time.Time           `json:"renewalDate,omitempty"`
	SignedDate                  *time.Time           `json:"signedDate,omitempty"`
	Environment                 appstore.Environment `json:"environment"`
}

func newRenewalView(record *appstore.RenewalRecord) *renewalView {
	return &renewalView{
		AutoRenewProductID:          record.AutoRenewProductID(),
		AutoRenewStatus:             record.AutoRenewStatus(),
		Currency:                    record.Currency(),
		EligibleWinBackOfferIDs:     record.EligibleWinBackOfferIDs(),
		ExpirationIntent:            record.ExpirationIntent(),
		IsInBillingRetryPeriod:      record.IsInBillingRetryPeriod(),
		OfferIdentifier:             record.OfferIdentifier(),
		OfferType:                   record.OfferType(),
		OfferDiscountType:           record.OfferDiscountType(),
		OfferPeriod:                 record.OfferPeriod(),
		OriginalTransactionID:       record.OriginalTransactionID(),
		PriceIncreaseStatus:         record.PriceIncreaseStatus(),
		ProductID:                   record.ProductID(),
		AppAccountToken:             record.AppAccountToken(),
		AppTransactionID:            record.AppTransactionID(),
		RenewalPrice:                record.RenewalPrice(),
		GracePeriodExpiresDate:      record.GracePeriodExpiresDate(),
		RecentSubscriptionStartDate: record.RecentSubscriptionStartDate(),
		RenewalDate:                 record.RenewalDate(),
		SignedDate:                  record.SignedDate(),
		Environment:                 record.Environment(),
	}
}

// ParseRenewal handles decoded renewal payload parse requests.
func ParseRenewal(c echo.Context) error {
	reqBody := new(parseRenewalRequestBody)
	err := c.Bind(reqBody)

	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad request body"})
	}

	record, err := appstore.NewRenewalRecord().SetRawData(reqBody.Payload).Parse()

	if err != nil {
		if validationErr, ok := err.(*appstore.ValidationError); ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": validationErr.Message})
		}
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}

	if len(reqBody.Environment) > 0 {
		record.SetEnvironment(appstore.Environment(reqBody.Environment))
	}

	contextLogger := log.WithFields(log.Fields{
		"method":                "ParseRenewal",
		"originalTransactionID": strValue(record.OriginalTransactionID()),
	})

	helpers.LogFormat(contextLogger, "parsed renewal info for product [%s] in environment [%s]", strValue(record.ProductID()), record.Environment())

	return c.JSON(http.StatusOK, newRenewalView(record))
}
