package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bizhub-backend/internal/models"
	"bizhub-backend/internal/service"
)

type SocialHandler struct {
	socialService *service.SocialService
}

func NewSocialHandler(socialService *service.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

func (h *SocialHandler) Compose(c *gin.Context) {
	var post models.SocialPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post.CompanyID = companyID(c)
	if err := h.socialService.Compose(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

func (h *SocialHandler) List(c *gin.Context) {
	posts, err := h.socialService.GetByCompany(companyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

type schedulePostRequest struct {
	At time.Time `json:"at" binding:"required"`
}

func (h *SocialHandler) Schedule(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	var req schedulePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scheduled, err := h.socialService.Schedule(post.ID, req.At)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrPostNotSchedulable) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": scheduled})
}

func (h *SocialHandler) PublishNow(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	published, err := h.socialService.PublishNow(c.Request.Context(), post.ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": published})
}

func (h *SocialHandler) Delete(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	if err := h.socialService.Delete(post.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}

func (h *SocialHandler) loadPost(c *gin.Context) (*models.SocialPost, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return nil, false
	}

	post, err := h.socialService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return nil, false
	}
	if post.CompanyID != companyID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "post belongs to another company"})
		return nil, false
	}

	return post, true
}
