package controllers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"bike-shop/models"
	"bike-shop/services"
	"bike-shop/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const msgListFailed = "Server error while fetching items"

type ItemService interface {
	List(ctx context.Context, search string) ([]models.Item, error)
	Get(ctx context.Context, id int) (*models.Item, error)
	Create(ctx context.Context, req models.CreateItemRequest) (*models.Item, error)
	Update(ctx context.Context, id int, req models.UpdateItemRequest) (*models.Item, error)
	SetImage(ctx context.Context, id int, image string) (*models.Item, error)
	Delete(ctx context.Context, id int) error
}

type ImageStore interface {
	Store(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}

type ItemController struct {
	items  ItemService
	images ImageStore
}

func NewItemController(items ItemService, images ImageStore) *ItemController {
	return &ItemController{items: items, images: images}
}

// GetAllItems godoc
// @Summary List items
// @Description List every item, or those whose name or type contains the search term (case-insensitive)
// @Tags Items
// @Produce json
// @Param search query string false "Substring of name or type"
// @Success 200 {array} models.Item
// @Failure 500 {object} models.ErrorResponse
// @Router /items [get]
func (ctrl *ItemController) GetAllItems(c *gin.Context) {
	search := c.Query("search")

	items, err := ctrl.items.List(c.Request.Context(), search)
	if err != nil {
		log.WithError(err).WithField("search", search).Error("Failed to list items")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: msgListFailed,
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetItemByID godoc
// @Summary Get item by ID
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Response{data=models.Item}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /items/{id} [get]
func (ctrl *ItemController) GetItemByID(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := ctrl.items.Get(c.Request.Context(), id)
	if err != nil {
		respondItemError(c, err, "Failed to get item")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item retrieved",
		Data:    item,
	})
}

// CreateItem godoc
// @Summary Create item
// @Tags Admin - Items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateItemRequest true "Item"
// @Success 201 {object} models.Response{data=models.Item}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/items [post]
func (ctrl *ItemController) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.items.Create(c.Request.Context(), req)
	if err != nil {
		respondItemError(c, err, "Failed to create item")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Item created successfully",
		Data:    item,
	})
}

// UpdateItem godoc
// @Summary Update item
// @Description Partial update; omitted fields are kept
// @Tags Admin - Items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body models.UpdateItemRequest true "Fields to change"
// @Success 200 {object} models.Response{data=models.Item}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/items/{id} [patch]
func (ctrl *ItemController) UpdateItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.items.Update(c.Request.Context(), id, req)
	if err != nil {
		respondItemError(c, err, "Failed to update item")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item updated successfully",
		Data:    item,
	})
}

// DeleteItem godoc
// @Summary Delete item
// @Tags Admin - Items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/items/{id} [delete]
func (ctrl *ItemController) DeleteItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	if err := ctrl.items.Delete(c.Request.Context(), id); err != nil {
		respondItemError(c, err, "Failed to delete item")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item deleted successfully",
	})
}

// UploadItemImage godoc
// @Summary Upload item image
// @Description Stores the image on cloudinary (local disk when unavailable) and points the item at it
// @Tags Admin - Items
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Item ID"
// @Param image formData file true "Item image"
// @Success 200 {object} models.Response{data=models.Item}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/items/{id}/image [post]
func (ctrl *ItemController) UploadItemImage(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Image file is required",
		})
		return
	}

	ctx := c.Request.Context()
	if _, err := ctrl.items.Get(ctx, id); err != nil {
		respondItemError(c, err, "Failed to get item")
		return
	}

	url, err := ctrl.images.Store(ctx, file)
	if err != nil {
		if errors.Is(err, utils.ErrFileTooLarge) || errors.Is(err, utils.ErrInvalidImage) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}
		log.WithError(err).WithField("item_id", id).Error("Failed to store item image")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to upload image",
		})
		return
	}

	item, err := ctrl.items.SetImage(ctx, id, url)
	if err != nil {
		respondItemError(c, err, "Failed to update item image")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item image updated",
		Data:    item,
	})
}

func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid item ID",
		})
		return 0, false
	}
	return id, true
}

// respondItemError maps service errors to responses. Unexpected errors are
// logged and answered with the generic message only.
func respondItemError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Item not found"})
	case errors.Is(err, services.ErrItemExists):
		c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: "Item with this ID already exists"})
	case errors.Is(err, services.ErrInvalidItem):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Name, type and image are required and price must not be negative"})
	default:
		log.WithError(err).Error(message)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: message})
	}
}
