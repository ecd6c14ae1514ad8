package product

import (
	"github.com/gin-gonic/gin"

	"tifo_back_end/internal/services"
	"tifo_back_end/internal/utils"
)

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, categories)
}

func (h *Handler) GetCategory(c *gin.Context) {
	cat, err := h.Categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, cat)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req services.CategoryRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	cat, err := h.Categories.Create(c.Request.Context(), req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, cat)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var req services.CategoryRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	cat, err := h.Categories.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, cat)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.Categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OKMessage(c, nil, "Catégorie supprimée")
}
