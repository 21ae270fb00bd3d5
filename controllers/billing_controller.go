package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

// BillingController exposes food ordering and the two-phase checkout.
type BillingController struct {
	Registry *services.RegistryService
}

func NewBillingController(registry *services.RegistryService) *BillingController {
	return &BillingController{Registry: registry}
}

type foodOrderRequest struct {
	Meal   models.MealKind `json:"meal"`
	People int             `json:"people"`
}

// OrderFood handles POST /api/rooms/:number/food-orders.
func (bc *BillingController) OrderFood(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}

	var req foodOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	record, err := bc.Registry.AddFoodCharge(number, req.Meal, req.People)
	switch {
	case errors.Is(err, services.ErrUnknownMeal):
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("unknown meal %q", req.Meal))
	case errors.Is(err, services.ErrRoomVacant):
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room %d is vacant or does not exist", number))
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusOK, record)
	}
}

// GetBill handles GET /api/rooms/:number/bill, the checkout preview. The
// record is untouched; committing is a separate call.
func (bc *BillingController) GetBill(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}

	bill, err := bc.Registry.PreviewCheckout(number)
	if errors.Is(err, services.ErrRoomVacant) {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room %d is vacant or does not exist", number))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

// CheckoutRoom handles POST /api/rooms/:number/checkout, the commit step.
func (bc *BillingController) CheckoutRoom(c *gin.Context) {
	number, ok := roomNumberParam(c)
	if !ok {
		return
	}

	bill, err := bc.Registry.ConfirmCheckout(number)
	if errors.Is(err, services.ErrRoomVacant) {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room %d is vacant or does not exist", number))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}
