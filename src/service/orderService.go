package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"purefarm/src/models"
)

var ErrInvalidSignature = errors.New("invalid payment signature")

type OrderService struct {
	DB       *gorm.DB
	Payments *PaymentService
	Email    *EmailService
	Logger   *logrus.Logger
}

type CheckoutInput struct {
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
	UserName         string
	UserEmail        string
	Phone            string
	Items            []models.OrderItem
	TotalAmount      float64
	Location         string
	Address          string
	City             string
	State            string
	Zip              string
}

//Checkout verifies the gateway signature and records the purchase. Order
//insert, delivery rows and cart clear commit or roll back together, so a
//failure partway through cannot leave an order without its deliveries.
//The confirmation email goes out after commit and is best-effort.
func (s *OrderService) Checkout(userID string, input CheckoutInput) (*models.Order, error) {
	if !s.Payments.VerifySignature(input.GatewayOrderID, input.GatewayPaymentID, input.GatewaySignature) {
		return nil, ErrInvalidSignature
	}

	//expand each subscribed line into its per-day schedule
	items := make(models.OrderItems, len(input.Items))
	for i, item := range input.Items {
		if item.Subscription != nil {
			item.DeliveryStatus = ExpandWindow(*item.Subscription, models.StatusScheduled)
		}
		items[i] = item
	}

	order := models.Order{
		ID:               uuid.NewString(),
		UserID:           userID,
		UserName:         input.UserName,
		UserEmail:        input.UserEmail,
		Phone:            input.Phone,
		Items:            items,
		TotalAmount:      input.TotalAmount,
		GatewayOrderID:   input.GatewayOrderID,
		GatewayPaymentID: input.GatewayPaymentID,
		GatewaySignature: input.GatewaySignature,
		Location:         input.Location,
		Address:          input.Address,
		City:             input.City,
		State:            input.State,
		Zip:              input.Zip,
		Status:           models.OrderPaid,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range items {
			if item.Subscription == nil {
				continue
			}
			delivery := models.Delivery{
				ID:        uuid.NewString(),
				OrderID:   order.ID,
				ProductID: item.ProductID,
				UserID:    userID,
				Quantity:  item.Quantity,
				FromDate:  item.Subscription.From,
				ToDate:    item.Subscription.To,
				Days:      item.DeliveryStatus,
				Status:    models.StatusPending,
			}
			if err := tx.Create(&delivery).Error; err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	go func() {
		if err := s.Email.SendOrderConfirmation(order.UserEmail, order.UserName, order.GatewayPaymentID); err != nil {
			s.Logger.WithError(err).Warn("Failed to send order confirmation email")
		}
	}()

	s.Logger.WithFields(logrus.Fields{
		"order_id":   order.ID,
		"payment_id": order.GatewayPaymentID,
		"total":      order.TotalAmount,
	}).Info("Recorded paid order")

	return &order, nil
}

func (s *OrderService) OrderByPaymentID(paymentID string) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Where("gateway_payment_id = ?", paymentID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) OrdersByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) AllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

//OrdersByProductCreator returns orders containing at least one product the
//given farmer or supplier owns.
func (s *OrderService) OrdersByProductCreator(userID string) ([]models.Order, error) {
	var products []models.Product
	if err := s.DB.Select("id").Where("user_id = ?", userID).Find(&products).Error; err != nil {
		return nil, err
	}
	owned := make(map[string]bool, len(products))
	for _, p := range products {
		owned[p.ID] = true
	}

	orders, err := s.AllOrders()
	if err != nil {
		return nil, err
	}

	var relevant []models.Order
	for _, order := range orders {
		for _, item := range order.Items {
			if owned[item.ProductID] {
				relevant = append(relevant, order)
				break
			}
		}
	}
	return relevant, nil
}

//TotalRevenue sums total_amount across all orders.
func (s *OrderService) TotalRevenue() (float64, error) {
	var total float64
	err := s.DB.Model(&models.Order{}).Select("COALESCE(SUM(total_amount), 0)").Scan(&total).Error
	return total, err
}

//OrderItemDetail is one order line with its parent order's contact fields,
//looked up for the order confirmation page.
type OrderItemDetail struct {
	Order models.Order     `json:"order"`
	Item  models.OrderItem `json:"item"`
}

func (s *OrderService) ItemDetail(orderID, productID string) (*OrderItemDetail, error) {
	var order models.Order
	if err := s.DB.Where("id = ?", orderID).First(&order).Error; err != nil {
		return nil, err
	}
	for _, item := range order.Items {
		if item.ProductID == productID {
			return &OrderItemDetail{Order: order, Item: item}, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
