package v1

import (
	"net/http"

	"github.com/budgetcopain/backend/internal/httputil"
	"github.com/budgetcopain/backend/internal/models"
	"github.com/budgetcopain/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed.
//
// Categories cannot be deleted, only deactivated. Transactions keep
// referencing them by ID.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCategories)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = co.Store.Category(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Get categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
// @Param			active	query	bool	false	"Only return categories with this active state"
func (co Controller) GetCategories(c *gin.Context) {
	var filter struct {
		Active bool `form:"active"`
	}
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{Error: &s})
		return
	}

	categories := co.Store.Categories()

	if c.Request.URL.Query().Has("active") {
		filtered := make([]models.Category, 0, len(categories))
		for _, category := range categories {
			if category.IsActive == filter.Active {
				filtered = append(filtered, category)
			}
		}
		categories = filtered
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category, err := co.Store.Category(uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Create category
// @Description	Creates a new custom category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category, err := co.Store.AddCategory(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		Update category
// @Description	Updates an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		store.CategoryPatch	true	"Category"
// @Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	var patch store.CategoryPatch
	err = httputil.BindData(c, &patch)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	category, err := co.Store.UpdateCategory(uri.ID, patch)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}
