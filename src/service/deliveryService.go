package service

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"purefarm/src/models"
)

type DeliveryService struct {
	DB     *gorm.DB
	Logger *logrus.Logger
}

//DeliveryView is a delivery row joined with the buyer contact and product
//fields the dashboard shows.
type DeliveryView struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	UserID   string `json:"user_id"`
	Quantity int    `json:"quantity"`
	Customer struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
	} `json:"customer"`
	Product struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Image       string  `json:"image"`
		Description string  `json:"description,omitempty"`
		Price       float64 `json:"price"`
	} `json:"product"`
	Subscription struct {
		Start models.CalendarDate `json:"start"`
		End   models.CalendarDate `json:"end"`
	} `json:"subscription"`
	Days          models.DeliveryDays   `json:"deliverystatus"`
	Status        models.DeliveryStatus `json:"status"`
	OverallStatus models.DeliveryStatus `json:"overall_status"`
}

//ListDeliveries returns all delivery rows with their order and product
//context attached.
func (s *DeliveryService) ListDeliveries() ([]DeliveryView, error) {
	var deliveries []models.Delivery
	if err := s.DB.Order("created_at DESC").Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return s.assemble(deliveries)
}

//DeliveryByIDs looks up one delivery scoped to its product and buyer.
func (s *DeliveryService) DeliveryByIDs(deliveryID, productID, userID string) (*DeliveryView, error) {
	var delivery models.Delivery
	err := s.DB.Where("id = ? AND product_id = ? AND user_id = ?", deliveryID, productID, userID).
		First(&delivery).Error
	if err != nil {
		return nil, err
	}
	views, err := s.assemble([]models.Delivery{delivery})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *DeliveryService) assemble(deliveries []models.Delivery) ([]DeliveryView, error) {
	orderIDs := make([]string, 0, len(deliveries))
	productIDs := make([]string, 0, len(deliveries))
	for _, d := range deliveries {
		orderIDs = append(orderIDs, d.OrderID)
		productIDs = append(productIDs, d.ProductID)
	}

	orders := make(map[string]models.Order)
	if len(orderIDs) > 0 {
		var rows []models.Order
		if err := s.DB.Where("id IN ?", orderIDs).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, o := range rows {
			orders[o.ID] = o
		}
	}

	products := make(map[string]models.Product)
	if len(productIDs) > 0 {
		var rows []models.Product
		if err := s.DB.Unscoped().Where("id IN ?", productIDs).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, p := range rows {
			products[p.ID] = p
		}
	}

	views := make([]DeliveryView, 0, len(deliveries))
	for _, d := range deliveries {
		var v DeliveryView
		v.ID = d.ID
		v.OrderID = d.OrderID
		v.UserID = d.UserID
		v.Quantity = d.Quantity
		if o, ok := orders[d.OrderID]; ok {
			v.Customer.Name = o.UserName
			v.Customer.Address = o.Address
			v.Customer.Phone = o.Phone
		}
		if p, ok := products[d.ProductID]; ok {
			v.Product.ID = p.ID
			v.Product.Name = p.Name
			v.Product.Image = p.Image
			v.Product.Description = p.Description
			v.Product.Price = p.Price
		}
		v.Subscription.Start = d.FromDate
		v.Subscription.End = d.ToDate
		v.Days = d.Days
		v.Status = d.Status
		v.OverallStatus = OverallStatus(d.Days)
		views = append(views, v)
	}
	return views, nil
}

//UpdateDayStatus sets the status of one schedule entry by date key and
//re-derives the coarse status. Other days, including ones already marked
//delivered, are untouched.
func (s *DeliveryService) UpdateDayStatus(deliveryID string, date models.CalendarDate, status models.DeliveryStatus) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := s.DB.Where("id = ?", deliveryID).First(&delivery).Error; err != nil {
		return nil, err
	}

	delivery.Days = SetDayStatus(delivery.Days, date, status)
	delivery.Status = OverallStatus(delivery.Days)

	err := s.DB.Model(&delivery).Updates(map[string]interface{}{
		"deliverystatus": delivery.Days,
		"status":         delivery.Status,
	}).Error
	if err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{
		"delivery_id": deliveryID,
		"date":        date.String(),
		"status":      status,
	}).Info("Updated delivery day status")

	return &delivery, nil
}

//UpdateFutureStatus applies a status to today's and later undelivered days.
func (s *DeliveryService) UpdateFutureStatus(deliveryID string, status models.DeliveryStatus) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := s.DB.Where("id = ?", deliveryID).First(&delivery).Error; err != nil {
		return nil, err
	}

	delivery.Days = SetFutureStatus(delivery.Days, models.Today(), status)
	delivery.Status = OverallStatus(delivery.Days)

	err := s.DB.Model(&delivery).Updates(map[string]interface{}{
		"deliverystatus": delivery.Days,
		"status":         delivery.Status,
	}).Error
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

//RefreshSchedule re-expands a delivery's window, keeping every recorded
//day as-is and filling in only dates that are missing. Used when a window
//is extended after the fact.
func (s *DeliveryService) RefreshSchedule(deliveryID string) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := s.DB.Where("id = ?", deliveryID).First(&delivery).Error; err != nil {
		return nil, err
	}

	window := models.SubscriptionWindow{From: delivery.FromDate, To: delivery.ToDate}
	delivery.Days = MergeSchedule(delivery.Days, window, models.StatusScheduled)
	delivery.Status = OverallStatus(delivery.Days)

	err := s.DB.Model(&delivery).Updates(map[string]interface{}{
		"deliverystatus": delivery.Days,
		"status":         delivery.Status,
	}).Error
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}
