package handler

import (
	"net/http"

	"supportcenter/internal/logger"
	"supportcenter/internal/middleware"
	"supportcenter/internal/service"
	"supportcenter/pkg/response"

	"github.com/gin-gonic/gin"
)

type FAQHandler struct {
	faqService service.FAQService
	log        logger.Recorder
}

func NewFAQHandler(faqService service.FAQService, log logger.Recorder) *FAQHandler {
	return &FAQHandler{faqService: faqService, log: log}
}

// RegisterRoutes mounts /faqs. Writes require the user-id header.
func (h *FAQHandler) RegisterRoutes(router *gin.RouterGroup) {
	faqs := router.Group("/faqs")
	{
		faqs.GET("", h.ListFAQs)
		faqs.GET("/search", h.SearchFAQs)
		faqs.GET("/category/:category", h.ListByCategory)
		faqs.GET("/:id", h.GetFAQ)
		faqs.POST("", middleware.RequireUserID(), h.CreateFAQ)
		faqs.PUT("/:id", middleware.RequireUserID(), h.UpdateFAQ)
		faqs.DELETE("/:id", middleware.RequireUserID(), h.DeleteFAQ)
	}
}

// @Summary      List FAQs
// @Description  Newest first.
// @Tags         faqs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.FAQResponse}
// @Router       /api/v1/faqs [get]
func (h *FAQHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.faqService.ListFAQs(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, faqs))
}

// @Summary      Get FAQ by ID
// @Tags         faqs
// @Produce      json
// @Param        id   path      string  true  "FAQ ID"
// @Success      200  {object}  response.Response{data=service.FAQResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/v1/faqs/{id} [get]
func (h *FAQHandler) GetFAQ(c *gin.Context) {
	faq, err := h.faqService.GetFAQ(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if faq == nil {
		notFound(c, "FAQ")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, faq))
}

// @Summary      List FAQs in a category
// @Tags         faqs
// @Produce      json
// @Param        category  path      string  true  "Category"
// @Success      200       {object}  response.Response{data=[]service.FAQResponse}
// @Router       /api/v1/faqs/category/{category} [get]
func (h *FAQHandler) ListByCategory(c *gin.Context) {
	faqs, err := h.faqService.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, faqs))
}

// SearchFAQs matches the keyword literally in question or answer
// @Summary      Search FAQs
// @Tags         faqs
// @Produce      json
// @Param        keyword  query     string  true  "Substring to look for"
// @Success      200      {object}  response.Response{data=[]service.FAQResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/v1/faqs/search [get]
func (h *FAQHandler) SearchFAQs(c *gin.Context) {
	faqs, err := h.faqService.SearchFAQs(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, faqs))
}

// @Summary      Create FAQ
// @Description  created_by defaults to the user-id header.
// @Tags         faqs
// @Accept       json
// @Produce      json
// @Param        user-id  header    string                    true  "Acting user ID"
// @Param        payload  body      service.CreateFAQRequest  true  "FAQ"
// @Success      201      {object}  response.Response{data=service.FAQResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/v1/faqs [post]
func (h *FAQHandler) CreateFAQ(c *gin.Context) {
	var req service.CreateFAQRequest
	if !bindJSON(c, &req) {
		return
	}

	faq, err := h.faqService.CreateFAQ(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.SuccessMessage(http.StatusCreated, "FAQ created", faq))
}

// @Summary      Update FAQ
// @Tags         faqs
// @Accept       json
// @Produce      json
// @Param        user-id  header    string                    true  "Acting user ID"
// @Param        id       path      string                    true  "FAQ ID"
// @Param        payload  body      service.UpdateFAQRequest  true  "FAQ fields"
// @Success      200      {object}  response.Response{data=service.FAQResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/v1/faqs/{id} [put]
func (h *FAQHandler) UpdateFAQ(c *gin.Context) {
	var req service.UpdateFAQRequest
	if !bindJSON(c, &req) {
		return
	}

	faq, err := h.faqService.UpdateFAQ(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "FAQ updated", faq))
}

// @Summary      Delete FAQ
// @Tags         faqs
// @Produce      json
// @Param        user-id  header    string  true  "Acting user ID"
// @Param        id       path      string  true  "FAQ ID"
// @Success      200      {object}  response.Response
// @Router       /api/v1/faqs/{id} [delete]
func (h *FAQHandler) DeleteFAQ(c *gin.Context) {
	if err := h.faqService.DeleteFAQ(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "FAQ deleted", nil))
}
