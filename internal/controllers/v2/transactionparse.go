package v2

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/prairiewest/store-receipt-validator/internal/helpers"
	"github.com/prairiewest/store-receipt-validator/pkg/appstore"
)

type parseTransactionRequestBody struct {
	Payload     map[string]interface{} `json:"payload"`
	Environment string                 `json:"environment"`
}

type transactionView struct {
	TransactionID               *string              `json:"transactionId,omitempty"`
	OriginalTransactionID       *string              `json:"originalTransactionId,omitempty"`
	WebOrderLineItemID          *string              `json:"webOrderLineItemId,omitempty"`
	BundleID                    *string              `json:"bundleId,omitempty"`
	ProductID                   *string              `json:"productId,omitempty"`
	SubscriptionGroupIdentifier *string              `json:"subscriptionGroupIdentifier,omitempty"`
	AppAccountToken             *string              `json:"appAccountToken,omitempty"`
	AppTransactionID            *string              `json:"appTransactionId,omitempty"`
	Type                        *string              `json:"type,omitempty"`
	InAppOwnershipType          *string              `json:"inAppOwnershipType,omitempty"`
	RevocationReason            *string              `json:"revocationReason,omitempty"`
	OfferType                   *string              `json:"offerType,omitempty"`
	OfferIdentifier             *string              `json:"offerIdentifier,omitempty"`
	OfferDiscountType           *string              `json:"offerDiscountType,omitempty"`
	OfferPeriod                 *string              `json:"offerPeriod,omitempty"`
	Storefront                  *string              `json:"storefront,omitempty"`
	StorefrontID                *string              `json:"storefrontId,omitempty"`
	TransactionReason           *string              `json:"transactionReason,omitempty"`
	Currency                    *string              `json:"currency,omitempty"`
	Quantity                    *int64               `json:"quantity,omitempty"`
	Price                       *int64               `json:"price,omitempty"`
	IsUpgraded                  *bool                `json:"isUpgraded,omitempty"`
	PurchaseDate                *time.Time           `json:"purchaseDate,omitempty"`
	OriginalPurchaseDate        *time.Time           `json:"originalPurchaseDate,omitempty"`
	ExpiresDate                 *time.Time           `json:"expiresDate,omitempty"`
	SignedDate                  *time.Time           `json:"signedDate,omitempty"`
	RevocationDate              *time.Time           `json:"revocationDate,omitempty"`
	Environment                 appstore.Environment `json:"environment"`
}

func newTransactionView(record *appstore.TransactionRecord) *transactionView {
	return &transactionView{
		TransactionID:               record.TransactionID(),
		OriginalTransactionID:       record.OriginalTransactionID(),
		WebOrderLineItemID:          record.WebOrderLineItemID(),
		BundleID:                    record.BundleID(),
		ProductID:                   record.ProductID(),
		SubscriptionGroupIdentifier: record.SubscriptionGroupIdentifier(),
		AppAccountToken:             record.AppAccountToken(),
		AppTransactionID:            record.AppTransactionID(),
		Type:                        record.Type(),
		InAppOwnershipType:          record.InAppOwnershipType(),
		RevocationReason:            record.RevocationReason(),
		OfferType:                   record.OfferType(),
		OfferIdentifier:             record.OfferIdentifier(),
		OfferDiscountType:           record.OfferDiscountType(),
		OfferPeriod:                 record.OfferPeriod(),
		Storefront:                  record.Storefront(),
		StorefrontID:                record.StorefrontID(),
		TransactionReason:           record.TransactionReason(),
		Currency:                    record.Currency(),
		Quantity:                    record.Quantity(),
		Price:                       record.Price(),
		IsUpgraded:                  record.IsUpgraded(),
		PurchaseDate:                record.PurchaseDate(),
		OriginalPurchaseDate:        record.OriginalPurchaseDate(),
		ExpiresDate:                 record.ExpiresDate(),
		SignedDate:                  record.SignedDate(),
		RevocationDate:              record.RevocationDate(),
		Environment:                 record.Environment(),
	}
}

// ParseTransaction handles decoded transaction payload parse requests.
func ParseTransaction(c echo.Context) error {
	reqBody := new(parseTransactionRequestBody)
	err := c.Bind(reqBody)

	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad request body"})
	}

	record, err := appstore.NewTransactionRecord().SetRawData(reqBody.Payload).Parse()

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
		"method":        "ParseTransaction",
		"transactionID": strValue(record.TransactionID()),
	})

	helpers.LogFormat(contextLogger, "parsed transaction [%s] for bundle [%s] in environment [%s]", strValue(record.TransactionID()), strValue(record.BundleID()), record.Environment())

	return c.JSON(http.StatusOK, newTransactionView(record))
}

func strValue(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
