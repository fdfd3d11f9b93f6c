package routes

import (
	"github.com/Tanvi183/zap-shift-server/controllers"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the parcel and payment routes.
func RegisterRoutes(r *gin.Engine, pc *controllers.ParcelController, payc *controllers.PaymentController) {
	// parcel related api
	r.GET("/parcels", pc.ListParcels)
	r.GET("/parcels/:id", pc.GetParcel)
	r.POST("/parcels", pc.CreateParcel)
	r.DELETE("/parcels/:id", pc.DeleteParcel)

	// payment related apis (Stripe)
	r.POST("/create-checkout-session", payc.CreateCheckoutSession)
	r.PATCH("/payment-success", payc.PaymentSuccess)
}
