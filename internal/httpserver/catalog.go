package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jewelstore/internal/domain"
	productrepo "jewelstore/internal/repository/product"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func pageParams(c *gin.Context) (limit, offset int) {
	limit = intQuery(c, "limit", defaultPageSize)
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	offset = intQuery(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func listProductsHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pageParams(c)
		page, err := svc.ListProducts(c.Request.Context(), productrepo.ListFilter{
			CategoryID: c.Query("categoryId"),
			Search:     c.Query("q"),
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func getProductHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.GetProductBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

func listCategoriesHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.ListCategories(c.Request.Context())
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

func listCategoryProductsHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pageParams(c)
		page, err := svc.ListProductsByCategorySlug(c.Request.Context(), c.Param("slug"), limit, offset)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

type productRequest struct {
	CategoryID  string   `json:"categoryId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Stock       int      `json:"stock"`
	Sizes       []string `json:"sizes"`
	Images      []string `json:"images"`
}

func (r productRequest) toDomain(id string) domain.Product {
	return domain.Product{
		ID:          id,
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Sizes:       r.Sizes,
		Images:      r.Images,
	}
}

func createProductHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		product, err := svc.CreateProduct(c.Request.Context(), req.toDomain(""))
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"product": product})
	}
}

func updateProductHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		product, err := svc.UpdateProduct(c.Request.Context(), req.toDomain(c.Param("id")))
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

func deleteProductHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type categoryRequest struct {
	Name string `json:"name"`
}

func createCategoryHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		category, err := svc.CreateCategory(c.Request.Context(), domain.Category{Name: req.Name})
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"category": category})
	}
}

func updateCategoryHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}
		category, err := svc.UpdateCategory(c.Request.Context(), domain.Category{ID: c.Param("id"), Name: req.Name})
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"category": category})
	}
}

func deleteCategoryHandler(svc CatalogService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
