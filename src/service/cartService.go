package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"purefarm/src/models"
)

type CartService struct {
	DB *gorm.DB
}

type AddCartInput struct {
	ProductID    string
	Name         string
	Price        float64
	Image        string
	Quantity     int
	Subscription *models.SubscriptionWindow
}

//AddItem puts a product in the user's cart, bumping the quantity when the
//product is already there.
func (s *CartService) AddItem(userID string, input AddCartInput) (*models.CartItem, error) {
	if input.Quantity < 1 {
		input.Quantity = 1
	}

	var existing models.CartItem
	err := s.DB.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&existing).Error
	if err == nil {
		existing.Quantity += input.Quantity
		if err := s.DB.Model(&existing).Update("quantity", existing.Quantity).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := models.CartItem{
		ID:           uuid.NewString(),
		UserID:       userID,
		ProductID:    input.ProductID,
		Name:         input.Name,
		Price:        input.Price,
		Image:        input.Image,
		Quantity:     input.Quantity,
		Subscription: input.Subscription,
	}
	if err := s.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

//UpdateQuantity sets a line's quantity, never below one.
func (s *CartService) UpdateQuantity(userID, itemID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	return s.DB.Model(&models.CartItem{}).
		Where("user_id = ? AND id = ?", userID, itemID).
		Update("quantity", quantity).Error
}

func (s *CartService) RemoveItem(userID, itemID string) error {
	return s.DB.Where("user_id = ? AND id = ?", userID, itemID).Delete(&models.CartItem{}).Error
}

func (s *CartService) ClearCart(userID string) error {
	return s.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

func (s *CartService) Items(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CartService) Total(userID string) (float64, error) {
	items, err := s.Items(userID)
	if err != nil {
		return 0, err
	}
	return CartTotal(items), nil
}

func (s *CartService) Count(userID string) (int, error) {
	items, err := s.Items(userID)
	if err != nil {
		return 0, err
	}
	return CartCount(items), nil
}
