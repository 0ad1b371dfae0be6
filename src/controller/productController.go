package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"purefarm/src/middleware"
	"purefarm/src/models"
	"purefarm/src/service"
)

type ProductController struct {
	Products *service.ProductService
}

type productInput struct {
	Name        string          `json:"name" binding:"required"`
	Price       float64         `json:"price" binding:"required,gt=0"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity" binding:"gte=0"`
	Unit        string          `json:"unit"`
	Features    models.Features `json:"features"`
	Image       string          `json:"image"`
	CategoryID  string          `json:"category_id"`
}

func (in productInput) toService() service.ProductInput {
	return service.ProductInput{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Features:    in.Features,
		Image:       in.Image,
		CategoryID:  in.CategoryID,
	}
}

func (ct *ProductController) List(c *gin.Context) {
	products, err := ct.Products.AllProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (ct *ProductController) Get(c *gin.Context) {
	product, err := ct.Products.ProductByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (ct *ProductController) Mine(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	products, err := ct.Products.ProductsByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (ct *ProductController) Create(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := ct.Products.AddProduct(userID, input.toService())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (ct *ProductController) Update(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)
	role, _ := middleware.RoleFrom(c)

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := ct.Products.UpdateProduct(userID, role, c.Param("id"), input.toService())
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (ct *ProductController) Delete(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)
	role, _ := middleware.RoleFrom(c)

	if err := ct.Products.DeleteProduct(userID, role, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

//multipart product image upload
func (ct *ProductController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	url, err := ct.Products.SaveImage(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

func (ct *ProductController) ListCategories(c *gin.Context) {
	categories, err := ct.Products.AllCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (ct *ProductController) GetCategory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"category": ct.Products.CategoryByID(c.Param("id"))})
}

func (ct *ProductController) CreateCategory(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	category, err := ct.Products.AddCategory(input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}
