package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolioapi/internal/service"
)

const (
	contactSuccessMessage    = "Thank you for your message! I will get back to you soon."
	newsletterSuccessMessage = "Successfully subscribed to newsletter!"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type newsletterRequest struct {
	Email string `json:"email"`
}

// SubmitContact 保存联系表单
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req, service.ErrInvalidBody.Error()) {
		return
	}

	_, err := a.contacts.Submit(c.Request.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			respondError(c, http.StatusBadRequest, validationErr.Message)
			return
		}
		a.internalError(c, "Failed to submit message", err)
		return
	}

	if a.metrics != nil {
		a.metrics.ContactMessages.Inc()
	}
	c.JSON(http.StatusOK, gin.H{"message": contactSuccessMessage, "success": true})
}

// SubscribeNewsletter 订阅邮件通讯，重复订阅同样返回成功
func (a *API) SubscribeNewsletter(c *gin.Context) {
	var req newsletterRequest
	if !bindJSON(c, &req, service.ErrInvalidBody.Error()) {
		return
	}

	outcome, err := a.newsletter.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			respondError(c, http.StatusBadRequest, validationErr.Message)
			return
		}
		a.internalError(c, "Failed to subscribe", err)
		return
	}

	a.logger.InfoContext(c.Request.Context(), "newsletter subscribe", "outcome", string(outcome))
	if a.metrics != nil {
		a.metrics.NewsletterSubscribers.WithLabelValues(string(outcome)).Inc()
	}
	c.JSON(http.StatusOK, gin.H{"message": newsletterSuccessMessage, "success": true})
}
