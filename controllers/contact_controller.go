package controllers

import (
	"errors"
	"net/http"

	"bike-shop/models"
	"bike-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"
)

type ContactSubmitter interface {
	Submit(req models.ContactRequest) error
}

type ContactController struct {
	contact ContactSubmitter
}

func NewContactController(contact ContactSubmitter) *ContactController {
	return &ContactController{contact: contact}
}

// Submit godoc
// @Summary Send a contact message
// @Description Forward a storefront enquiry to the shop inbox. Form posts are redirected back to the storefront.
// @Tags Contact
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body models.ContactRequest true "Contact Request"
// @Success 202 {object} models.Response
// @Success 303
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /contact [post]
func (ctrl *ContactController) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.contact.Submit(req); err != nil {
		if errors.Is(err, services.ErrContactUnavailable) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Success: false,
				Message: "Contact form is not available",
			})
			return
		}
		log.WithError(err).Error("Failed to forward contact message")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to send message",
		})
		return
	}

	if c.ContentType() == binding.MIMEPOSTForm {
		c.Redirect(http.StatusSeeOther, "/?sent=1#contact")
		return
	}

	c.JSON(http.StatusAccepted, models.Response{
		Success: true,
		Message: "Message sent",
	})
}
