package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tanvi183/zap-shift-server/controllers"
	"github.com/Tanvi183/zap-shift-server/models"
	"github.com/Tanvi183/zap-shift-server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- mock implementing services.PaymentService ----

type mockPaymentSvc struct {
	url           string
	createErr     *services.ServiceError
	confirmation  *models.PaymentConfirmation
	confirmErr    *services.ServiceError
	gotSessionID  string
	confirmCalled bool
}

func (m *mockPaymentSvc) CreateCheckoutSession(_ context.Context, _ *models.CreateCheckoutSessionRequest) (string, *services.ServiceError) {
	return m.url, m.createErr
}
func (m *mockPaymentSvc) ConfirmPayment(_ context.Context, sessionID string) (*models.PaymentConfirmation, *services.ServiceError) {
	m.confirmCalled = true
	m.gotSessionID = sessionID
	return m.confirmation, m.confirmErr
}

func setupPaymentRouter(svc services.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := controllers.NewPaymentController(svc)

	r.POST("/create-checkout-session", c.CreateCheckoutSession)
	r.PATCH("/payment-success", c.PaymentSuccess)
	return r
}

// ---- tests ----

func TestCreateCheckoutSession_ReturnsURL(t *testing.T) {
	svc := &mockPaymentSvc{url: "https://checkout.stripe.com/c/pay/cs_1"}
	r := setupPaymentRouter(svc)

	body, _ := json.Marshal(models.CreateCheckoutSessionRequest{
		Cost:        15,
		ParcelName:  "Box",
		ParcelID:    primitive.NewObjectID().Hex(),
		SenderEmail: "a@b.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, svc.url, resp["url"])
}

func TestCreateCheckoutSession_InvalidBody(t *testing.T) {
	r := setupPaymentRouter(&mockPaymentSvc{})

	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCheckoutSession_ProviderFailure(t *testing.T) {
	svc := &mockPaymentSvc{createErr: &services.ServiceError{StatusCode: 502, Message: "Failed to create checkout session"}}
	r := setupPaymentRouter(svc)

	body, _ := json.Marshal(models.CreateCheckoutSessionRequest{
		Cost:        15,
		ParcelName:  "Box",
		ParcelID:    primitive.NewObjectID().Hex(),
		SenderEmail: "a@b.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestPaymentSuccess_PassesSessionID(t *testing.T) {
	svc := &mockPaymentSvc{confirmation: &models.PaymentConfirmation{
		Success:       true,
		Message:       services.MsgProcessed,
		TrackingID:    "PRCL-20260828-ABCDEF",
		TransactionID: "pi_1",
	}}
	r := setupPaymentRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/payment-success?session_id=cs_1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cs_1", svc.gotSessionID)

	var resp models.PaymentConfirmation
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "pi_1", resp.TransactionID)
	assert.Equal(t, "PRCL-20260828-ABCDEF", resp.TrackingID)
}

func TestPaymentSuccess_FailureOutcomeIsHTTP200(t *testing.T) {
	svc := &mockPaymentSvc{confirmation: &models.PaymentConfirmation{
		Success: false,
		Message: services.MsgNotPaid,
	}}
	r := setupPaymentRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/payment-success?session_id=cs_1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), services.MsgNotPaid)
}

func TestPaymentSuccess_MissingSessionIDStillReachesService(t *testing.T) {
	svc := &mockPaymentSvc{confirmation: &models.PaymentConfirmation{
		Success: false,
		Message: services.MsgNoSession,
	}}
	r := setupPaymentRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/payment-success", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.confirmCalled)
	assert.Empty(t, svc.gotSessionID)
	assert.Contains(t, w.Body.String(), services.MsgNoSession)
}

func TestPaymentSuccess_ServerError(t *testing.T) {
	svc := &mockPaymentSvc{confirmErr: &services.ServiceError{StatusCode: 500, Message: services.MsgServerError}}
	r := setupPaymentRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/payment-success?session_id=cs_1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), services.MsgServerError)
}
