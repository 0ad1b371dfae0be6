package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"purefarm/src/middleware"
	"purefarm/src/models"
	"purefarm/src/service"
)

type CartController struct {
	Cart *service.CartService
}

//cart contents plus the derived total and unit count
func (ct *CartController) List(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	items, err := ct.Cart.Items(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": service.CartTotal(items),
		"count": service.CartCount(items),
	})
}

func (ct *CartController) Add(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	var input struct {
		ProductID    string                     `json:"product_id" binding:"required"`
		Name         string                     `json:"name" binding:"required"`
		Price        float64                    `json:"price" binding:"required,gt=0"`
		Image        string                     `json:"image"`
		Quantity     int                        `json:"quantity" binding:"required,gte=1"`
		Subscription *models.SubscriptionWindow `json:"subscription"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := ct.Cart.AddItem(userID, service.AddCartInput{
		ProductID:    input.ProductID,
		Name:         input.Name,
		Price:        input.Price,
		Image:        input.Image,
		Quantity:     input.Quantity,
		Subscription: input.Subscription,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (ct *CartController) UpdateQuantity(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	var input struct {
		Quantity int `json:"quantity" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ct.Cart.UpdateQuantity(userID, c.Param("id"), input.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quantity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ct *CartController) Remove(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	if err := ct.Cart.RemoveItem(userID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ct *CartController) Clear(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	if err := ct.Cart.ClearCart(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
