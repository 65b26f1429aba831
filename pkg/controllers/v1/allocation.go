package v1

import (
	"fmt"
	"net/http"

	"github.com/alocar/backend/pkg/httputil"
	"github.com/alocar/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterAllocationRoutes registers the routes for allocations with
// the RouterGroup that is passed.
func (co Controller) RegisterAllocationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsAllocationList)
		r.GET("", co.GetAllocations)
		r.POST("", co.CreateAllocations)
	}

	// Preview
	{
		r.OPTIONS("/preview", co.OptionsAllocationPreview)
		r.GET("/preview", co.GetAllocationPreview)
	}

	// Allocation with ID
	{
		r.OPTIONS("/:id", co.OptionsAllocationDetail)
		r.GET("/:id", co.GetAllocation)
		r.DELETE("/:id", co.DeleteAllocation)
		r.GET("/:id/distribution", co.GetAllocationDistribution)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func (co Controller) OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [options]
func (co Controller) OptionsAllocationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Store.GetAllocation(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations/preview [options]
func (co Controller) OptionsAllocationPreview(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Preview allocation
// @Description	Splits an income across the current accounts by their CAP without recording anything. If the CAP of all accounts does not sum to 100%, the allocated total differs from the income.
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	AllocationPreviewResponse
// @Failure		400		{object}	AllocationPreviewResponse
// @Failure		500		{object}	AllocationPreviewResponse
// @Param			income	query		string	true	"The income to split, e.g. 4250.75"
// @Router			/v1/allocations/preview [get]
func (co Controller) GetAllocationPreview(c *gin.Context) {
	var query AllocationPreviewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s := httputil.BindingError(err).Error()
		c.JSON(http.StatusBadRequest, AllocationPreviewResponse{
			Error: &s,
		})
		return
	}

	income, err := decimal.NewFromString(query.Income)
	if err != nil {
		s := fmt.Sprintf("income: %q is not a valid number", query.Income)
		c.JSON(http.StatusBadRequest, AllocationPreviewResponse{
			Error: &s,
		})
		return
	}

	err = models.AllocationCreate{Income: income}.Validate()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationPreviewResponse{
			Error: &s,
		})
		return
	}

	accounts, err := co.Store.ListAccounts(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationPreviewResponse{
			Error: &s,
		})
		return
	}

	data := co.newAllocationPreview(income, accounts)
	c.JSON(http.StatusOK, AllocationPreviewResponse{Data: &data})
}

// @Summary		Create allocations
// @Description	Records incomes and distributes each across all accounts according to their current CAP. The response code is the highest response code number that a single allocation creation would have caused. If it is not equal to 201, at least one allocation has an error.
// @Tags			Allocations
// @Produce		json
// @Success		201			{object}	AllocationCreateResponse
// @Failure		400			{object}	AllocationCreateResponse
// @Failure		500			{object}	AllocationCreateResponse
// @Param			allocations	body		[]AllocationEditable	true	"Allocations"
// @Router			/v1/allocations [post]
func (co Controller) CreateAllocations(c *gin.Context) {
	var editables []AllocationEditable
	err := httputil.BindData(c, &editables)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationCreateResponse{
			Error: &s,
		})
		return
	}

	// The response http status code
	status := http.StatusCreated

	var r AllocationCreateResponse
	for _, editable := range editables {
		create := editable.model()

		err := create.Validate()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		allocation, err := co.Store.CreateAllocation(c.Request.Context(), create)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := co.newAllocation(c, allocation)
		r.Data = append(r.Data, AllocationResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List allocations
// @Description	Returns a list of allocations, newest first
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	AllocationListResponse
// @Failure		400		{object}	AllocationListResponse
// @Failure		500		{object}	AllocationListResponse
// @Param			month	query		string	false	"Only allocations recorded in this month, formatted as YYYY-MM"
// @Param			offset	query		uint	false	"The offset of the first Allocation returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of Allocations to return. Defaults to 50."
// @Router			/v1/allocations [get]
func (co Controller) GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.BindingError(err).Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{
			Error: &s,
		})
		return
	}

	setFields := httputil.GetURLFields(c.Request.URL, filter)

	var (
		allocations []models.Allocation
		err         error
	)

	if filter.Month.IsZero() {
		allocations, err = co.Store.ListAllocations(c.Request.Context())
	} else {
		month := filter.Month.In(co.Format.Location())
		allocations, err = co.Store.ListAllocationsBetween(c.Request.Context(), month.Start(), month.End())
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &s,
		})
		return
	}

	page, pagination := paginate(allocations, filter.Offset, filter.Limit, setFields)

	data := make([]Allocation, 0, len(page))
	for _, allocation := range page {
		data = append(data, co.newAllocation(c, allocation))
	}

	c.JSON(http.StatusOK, AllocationListResponse{
		Data:       data,
		Pagination: &pagination,
	})
}

// @Summary		Get allocation
// @Description	Returns a specific allocation with its shares
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	AllocationResponse
// @Failure		404	{object}	AllocationResponse
// @Failure		500	{object}	AllocationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [get]
func (co Controller) GetAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	allocation, err := co.Store.GetAllocation(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	data := co.newAllocation(c, allocation)
	c.JSON(http.StatusOK, AllocationResponse{Data: &data})
}

// @Summary		Get allocation distribution
// @Description	Returns the shares of an allocation together with the accounts they were routed to
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	DistributionResponse
// @Failure		400	{object}	DistributionResponse
// @Failure		404	{object}	DistributionResponse
// @Failure		500	{object}	DistributionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id}/distribution [get]
func (co Controller) GetAllocationDistribution(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DistributionResponse{
			Error: &s,
		})
		return
	}

	// Verify that the allocation exists
	_, err = co.Store.GetAllocation(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DistributionResponse{
			Error: &s,
		})
		return
	}

	shares, err := co.Store.ListAccountAllocations(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DistributionResponse{
			Error: &s,
		})
		return
	}

	data := make([]Distribution, 0, len(shares))
	for _, share := range shares {
		data = append(data, Distribution{
			Share:          co.newShare(share),
			AccountName:    share.Account.Name,
			AccountDeleted: share.Account.DeletedAt.Valid,
		})
	}

	c.JSON(http.StatusOK, DistributionResponse{Data: data})
}

// @Summary		Delete allocation
// @Description	Deletes an allocation together with its shares
// @Tags			Allocations
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id} [delete]
func (co Controller) DeleteAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	allocation := models.Allocation{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}
	err = co.Store.SoftDelete(c.Request.Context(), allocation)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
