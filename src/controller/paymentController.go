package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"purefarm/src/middleware"
	"purefarm/src/models"
	"purefarm/src/service"
)

type PaymentController struct {
	Payments *service.PaymentService
	Orders   *service.OrderService
}

//create a gateway payment order for the cart total
func (ct *PaymentController) CreateOrder(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := ct.Payments.CreateOrder(c.Request.Context(), input.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

//verify the gateway signature and record the purchase
func (ct *PaymentController) Verify(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	var input struct {
		GatewayOrderID   string             `json:"gateway_order_id" binding:"required"`
		GatewayPaymentID string             `json:"gateway_payment_id" binding:"required"`
		GatewaySignature string             `json:"gateway_signature" binding:"required"`
		UserName         string             `json:"user_name" binding:"required"`
		UserEmail        string             `json:"user_email" binding:"required,email"`
		Phone            string             `json:"phone"`
		Items            []models.OrderItem `json:"items" binding:"required,min=1"`
		TotalAmount      float64            `json:"total_amount" binding:"required,gt=0"`
		Location         string             `json:"location"`
		Address          string             `json:"address"`
		City             string             `json:"city"`
		State            string             `json:"state"`
		Zip              string             `json:"zip"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := ct.Orders.Checkout(userID, service.CheckoutInput{
		GatewayOrderID:   input.GatewayOrderID,
		GatewayPaymentID: input.GatewayPaymentID,
		GatewaySignature: input.GatewaySignature,
		UserName:         input.UserName,
		UserEmail:        input.UserEmail,
		Phone:            input.Phone,
		Items:            input.Items,
		TotalAmount:      input.TotalAmount,
		Location:         input.Location,
		Address:          input.Address,
		City:             input.City,
		State:            input.State,
		Zip:              input.Zip,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order_id": order.ID})
}
