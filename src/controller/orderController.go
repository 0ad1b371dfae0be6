package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"purefarm/src/middleware"
	"purefarm/src/service"
)

type OrderController struct {
	Orders *service.OrderService
}

func (ct *OrderController) Mine(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	orders, err := ct.Orders.OrdersByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

//order confirmation lookup by gateway payment id
func (ct *OrderController) ByPayment(c *gin.Context) {
	order, err := ct.Orders.OrderByPaymentID(c.Param("paymentID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

//one order line with its subscription and schedule
func (ct *OrderController) ItemDetail(c *gin.Context) {
	detail, err := ct.Orders.ItemDetail(c.Param("orderID"), c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

//orders containing products the caller sells
func (ct *OrderController) ForMyProducts(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	orders, err := ct.Orders.OrdersByProductCreator(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (ct *OrderController) All(c *gin.Context) {
	orders, err := ct.Orders.AllOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (ct *OrderController) Revenue(c *gin.Context) {
	total, err := ct.Orders.TotalRevenue()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_amount": total})
}
