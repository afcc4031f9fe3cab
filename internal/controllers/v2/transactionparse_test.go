package v2

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/calmisland/go-testify/assert"
	"github.com/labstack/echo/v4"
)

func performRequest(handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func TestParseTransaction(t *testing.T) {
	body := `{
		"payload": {
			"transactionId": "2000000123456789",
			"bundleId": "com.calmid.learnandplay",
			"productId": "com.calmid.learnandplay.premium",
			"price": 4990,
			"currency": "USD",
			"purchaseDate": 1700000000000,
			"environment": "Production"
		}
	}`

	rec := performRequest(ParseTransaction, body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var view map[string]interface{}
	err := json.Unmarshal(rec.Body.Bytes(), &view)
	assert.NoError(t, err)

	assert.Equal(t, "2000000123456789", view["transactionId"])
	assert.Equal(t, "com.calmid.learnandplay", view["bundleId"])
	assert.Equal(t, float64(4990), view["price"])
	assert.Equal(t, "Production", view["environment"])
	assert.Equal(t, "2023-11-14T22:13:20Z", view["purchaseDate"])

	// Absent fields are omitted from the view entirely.
	_, present := view["revocationReason"]
	assert.False(t, present)
}

func TestParseTransactionMissingPayload(t *testing.T) {
	rec := performRequest(ParseTransaction, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "response must be an array", resp["error"])
}

func TestParseTransactionMalformedTimestamp(t *testing.T) {
	body := `{"payload": {"purchaseDate": "not-a-timestamp"}}`

	rec := performRequest(ParseTransaction, body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestParseTransactionEnvironmentOverride(t *testing.T) {
	body := `{"payload": {"transactionId": "2000000123456789"}, "environment": "Production"}`

	rec := performRequest(ParseTransaction, body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var view map[string]interface{}
	err := json.Unmarshal(rec.Body.Bytes(), &view)
	assert.NoError(t, err)
	assert.Equal(t, "Production", view["environment"])
}

func TestParseRenewal(t *testing.T) {
	body := `{
		"payload": {
			"autoRenewProductId": "com.calmid.learnandplay.premium",
			"autoRenewStatus": 1,
			"renewalPrice": 9990,
			"renewalDate": 1702600000000
		}
	}`

	rec := performRequest(ParseRenewal, body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var view map[string]interface{}
	err := json.Unmarshal(rec.Body.Bytes(), &view)
	assert.NoError(t, err)

	assert.Equal(t, "com.calmid.learnandplay.premium", view["autoRenewProductId"])
	assert.Equal(t, float64(1), view["autoRenewStatus"])
	assert.Equal(t, float64(9990), view["renewalPrice"])
	assert.Equal(t, "Sandbox", view["environment"])
}

func TestParseRenewalMissingPayload(t *testing.T) {
	rec := performRequest(ParseRenewal, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServerInfo(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := ServerInfo(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "store-receipt-validator", resp["service"])
}
