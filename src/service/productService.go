package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"purefarm/src/models"
)

var ErrNotOwner = errors.New("product belongs to another user")

type ProductService struct {
	DB        *gorm.DB
	UploadDir string
}

type ProductInput struct {
	Name        string
	Price       float64
	Description string
	Quantity    int
	Unit        string
	Features    models.Features
	Image       string
	CategoryID  string
}

func (s *ProductService) AddProduct(userID string, input ProductInput) (*models.Product, error) {
	product := models.Product{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		Features:    input.Features,
		Image:       input.Image,
		CategoryID:  input.CategoryID,
	}
	if err := s.DB.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) UpdateProduct(userID string, role models.Role, productID string, input ProductInput) (*models.Product, error) {
	product, err := s.ProductByID(productID)
	if err != nil {
		return nil, err
	}
	if product.UserID != userID && role != models.RoleAdmin {
		return nil, ErrNotOwner
	}

	updates := map[string]interface{}{
		"name":        input.Name,
		"price":       input.Price,
		"description": input.Description,
		"quantity":    input.Quantity,
		"unit":        input.Unit,
		"features":    input.Features,
		"category_id": input.CategoryID,
	}
	if input.Image != "" {
		updates["image"] = input.Image
	}
	if err := s.DB.Model(product).Updates(updates).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(userID string, role models.Role, productID string) error {
	product, err := s.ProductByID(productID)
	if err != nil {
		return err
	}
	if product.UserID != userID && role != models.RoleAdmin {
		return ErrNotOwner
	}
	return s.DB.Delete(product).Error
}

func (s *ProductService) AllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) ProductsByOwner(userID string) ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) ProductByID(productID string) (*models.Product, error) {
	var product models.Product
	if err := s.DB.Where("id = ?", productID).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

//SaveImage stores an uploaded product image under the upload dir with a
//unique name and returns the public path.
func (s *ProductService) SaveImage(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", errors.New("no file provided")
	}

	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload dir: %w", err)
	}

	name := uuid.NewString() + "-" + filepath.Base(file.Filename)
	dst := filepath.Join(s.UploadDir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return "/uploads/" + name, nil
}

//categories

func (s *ProductService) AddCategory(name string) (*models.Category, error) {
	category := models.Category{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := s.DB.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *ProductService) AllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

//CategoryByID falls back to "Other" when the category is gone, the
//storefront still has products pointing at deleted categories.
func (s *ProductService) CategoryByID(categoryID string) *models.Category {
	var category models.Category
	if err := s.DB.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return &models.Category{ID: categoryID, Name: "Other"}
	}
	return &category
}
