package product

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tifo_back_end/internal/apperrors"
	"tifo_back_end/internal/services"
	"tifo_back_end/internal/utils"
)

type Handler struct {
	Products   *services.ProductService
	Categories *services.CategoryService
	Storage    *services.Storage
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	params := services.ListProductsParams{
		Page:       page,
		Limit:      limit,
		CategoryID: c.Query("category"),
		Query:      c.Query("q"),
		Sort:       c.Query("sort"),
		Order:      c.Query("order"),
		// seul le back office voit les produits désactivés
		IncludeInactive: c.Query("include_inactive") == "true" && c.GetString("role") != "",
	}

	products, total, err := h.Products.List(c.Request.Context(), params)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.Paged(c, products, utils.NewPagination(params.Page, params.Limit, total))
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, p)
}

func (h *Handler) GetBySlug(c *gin.Context) {
	p, err := h.Products.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, p)
}

func (h *Handler) Featured(c *gin.Context) {
	products, err := h.Products.Featured(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, products)
}

func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.Fail(c, apperrors.BadRequest("paramètre 'q' manquant"))
		return
	}

	products, err := h.Products.Search(c.Request.Context(), query)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, products)
}

func (h *Handler) Create(c *gin.Context) {
	var req services.CreateProductRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	p, err := h.Products.Create(c.Request.Context(), req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, p)
}

func (h *Handler) Update(c *gin.Context) {
	var req services.UpdateProductRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	p, err := h.Products.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, p)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.Products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OKMessage(c, nil, "Produit supprimé")
}
