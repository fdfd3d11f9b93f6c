package controllers

import (
	"net/http"

	"github.com/Tanvi183/zap-shift-server/models"
	"github.com/Tanvi183/zap-shift-server/services"
	"github.com/gin-gonic/gin"
)

// ParcelController handles HTTP requests for parcel CRUD.
type ParcelController struct {
	parcelService services.ParcelService
}

// NewParcelController creates a new ParcelController.
func NewParcelController(svc services.ParcelService) *ParcelController {
	return &ParcelController{parcelService: svc}
}

// ListParcels handles GET /parcels?email=
func (pc *ParcelController) ListParcels(ctx *gin.Context) {
	email := ctx.Query("email")

	parcels, svcErr := pc.parcelService.ListParcels(ctx.Request.Context(), email)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, parcels)
}

// GetParcel handles GET /parcels/:id
func (pc *ParcelController) GetParcel(ctx *gin.Context) {
	parcel, svcErr := pc.parcelService.GetParcel(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, parcel)
}

// CreateParcel handles POST /parcels
func (pc *ParcelController) CreateParcel(ctx *gin.Context) {
	var req models.CreateParcelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	id, svcErr := pc.parcelService.CreateParcel(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// DeleteParcel handles DELETE /parcels/:id
func (pc *ParcelController) DeleteParcel(ctx *gin.Context) {
	deleted, svcErr := pc.parcelService.DeleteParcel(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
