package v2

import (
	"net/http"

	iap "github.com/awa/go-iap/appstore"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/prairiewest/store-receipt-validator/internal/helpers"
	"github.com/prairiewest/store-receipt-validator/pkg/appstore"
)

// legacyReceiptResponse reads only the parts of a verifyReceipt response the
// handler needs. go-iap's IAPResponse cannot be bound here: its numeric
// envelope fields (app_item_id, version_external_identifier) marshal as
// strings but reject string tokens on unmarshal, so any round-tripped body
// would fail to decode. The purchase entries themselves are plain strings
// and stay typed as iap.InApp.
type legacyReceiptResponse struct {
	Environment       string        `json:"environment"`
	Receipt           legacyReceipt `json:"receipt"`
	LatestReceiptInfo []iap.InApp   `json:"latest_receipt_info"`
}

type legacyReceipt struct {
	BundleID string      `json:"bundle_id"`
	InApp    []iap.InApp `json:"in_app"`
}

type parseLegacyReceiptRequestBody struct {
	TransactionID string                `json:"transactionId"`
	Response      legacyReceiptResponse `json:"response"`
}

// findInAppWithTransactionID attempts to find a purchase entry with a
// specific transaction ID, preferring latest_receipt_info over in_app.
func findInAppWithTransactionID(resp *legacyReceiptResponse, transactionID string) *iap.InApp {
	for _, inApp := range resp.LatestReceiptInfo {
		if inApp.TransactionID == transactionID {
			return &inApp
		}
	}

	for _, inApp := range resp.Receipt.InApp {
		if inApp.TransactionID == transactionID {
			return &inApp
		}
	}

	return nil
}

// ParseLegacyReceipt converts one in_app entry of a verifyReceipt response
// into the decoded-payload shape and returns its typed view.
func ParseLegacyReceipt(c echo.Context) error {
	reqBody := new(parseLegacyReceiptRequestBody)
	err := c.Bind(reqBody)

	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad request body"})
	}

	if len(reqBody.TransactionID) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "transactionId is required"})
	}

	contextLogger := log.WithFields(log.Fields{
		"method":        "ParseLegacyReceipt",
		"transactionID": reqBody.TransactionID,
	})

	inApp := findInAppWithTransactionID(&reqBody.Response, reqBody.TransactionID)

	if inApp == nil {
		helpers.LogFormat(contextLogger, "unable to find transaction [%s] in legacy receipt", reqBody.TransactionID)
		return c.JSON(http.StatusNotFound, echo.Map{"error": "transaction not found in receipt"})
	}

	record := appstore.FromLegacyInApp(reqBody.Response.Receipt.BundleID, *inApp)

	// The environment rides on the response envelope, not the entry; writing
	// it through Set also runs the parse.
	if len(reqBody.Response.Environment) > 0 {
		err = record.Set("environment", reqBody.Response.Environment)
	} else {
		_, err = record.Parse()
	}

	if err != nil {
		if validationErr, ok := err.(*appstore.ValidationError); ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": validationErr.Message})
		}
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}

	helpers.LogFormat(contextLogger, "converted legacy transaction [%s] for bundle [%s]", reqBody.TransactionID, reqBody.Response.Receipt.BundleID)

	return c.JSON(http.StatusOK, newTransactionView(record))
}
