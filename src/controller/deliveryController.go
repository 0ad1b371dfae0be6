package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"purefarm/src/models"
	"purefarm/src/service"
)

type DeliveryController struct {
	Deliveries *service.DeliveryService
}

func (ct *DeliveryController) List(c *gin.Context) {
	deliveries, err := ct.Deliveries.ListDeliveries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deliveries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deliveries": deliveries})
}

//delivery detail scoped by delivery, product and buyer ids
func (ct *DeliveryController) Detail(c *gin.Context) {
	view, err := ct.Deliveries.DeliveryByIDs(
		c.Param("id"),
		c.Query("product_id"),
		c.Query("user_id"),
	)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"delivery": view})
}

//set the status of one scheduled day
func (ct *DeliveryController) UpdateDay(c *gin.Context) {
	var input struct {
		Date   string `json:"date" binding:"required"`
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := models.ParseCalendarDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	status := models.DeliveryStatus(input.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	delivery, err := ct.Deliveries.UpdateDayStatus(c.Param("id"), date, status)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"delivery": delivery})
}

//set all remaining undelivered days from today onward
func (ct *DeliveryController) UpdateFuture(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.DeliveryStatus(input.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	delivery, err := ct.Deliveries.UpdateFutureStatus(c.Param("id"), status)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"delivery": delivery})
}

//re-expand the window, filling gaps without touching recorded days
func (ct *DeliveryController) Refresh(c *gin.Context) {
	delivery, err := ct.Deliveries.RefreshSchedule(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"delivery": delivery})
}
