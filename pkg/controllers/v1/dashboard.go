package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/alocar/backend/pkg/httputil"
	"github.com/alocar/backend/pkg/view"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsDashboard)
	r.GET("", co.GetDashboard)
}

type DashboardFormatted struct {
	TotalIncome    string `json:"totalIncome" example:"R$ 15.000,00"`         // Sum of all incomes as currency
	MonthlyIncome  string `json:"monthlyIncome" example:"R$ 4.250,75"`        // Sum of the incomes of the month as currency
	TotalCAP       string `json:"totalCap" example:"100,0%"`                  // Sum of all CAPs as percentage
	TotalTAP       string `json:"totalTap" example:"100,0%"`                  // Sum of all TAPs as percentage
	LastAllocation string `json:"lastAllocation" example:"17/01/2024, 14:05"` // Time of the most recent allocation, "-" if there is none
}

type DashboardLinks struct {
	Accounts       string `json:"accounts" example:"https://example.com/api/v1/accounts"`                              // Accounts the dashboard is computed from
	Allocations    string `json:"allocations" example:"https://example.com/api/v1/allocations?month=2024-01"`          // Allocations of the month
	LastAllocation string `json:"lastAllocation" example:"https://example.com/api/v1/allocations/902cd93c-3724-4e46-8540-d014131282fc"` // The most recent allocation, empty if there is none
}

// Dashboard is the API v1 representation of the dashboard.
type Dashboard struct {
	view.Dashboard
	Formatted DashboardFormatted `json:"formatted"`
	Links     DashboardLinks     `json:"links"`
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                              // The dashboard
	Error *string    `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

func (co Controller) newDashboard(c *gin.Context, d view.Dashboard) Dashboard {
	url := httputil.BaseURL(c)

	formatted := DashboardFormatted{
		TotalIncome:    co.Format.Currency(d.TotalIncome),
		MonthlyIncome:  co.Format.Currency(d.MonthlyIncome),
		TotalCAP:       co.Format.Percentage(d.TotalCAP),
		TotalTAP:       co.Format.Percentage(d.TotalTAP),
		LastAllocation: co.Format.DateTime(lastAllocationTime(d)),
	}

	links := DashboardLinks{
		Accounts:    url + "/v1/accounts",
		Allocations: fmt.Sprintf("%s/v1/allocations?month=%s", url, d.Month),
	}

	if d.LastAllocation != nil {
		links.LastAllocation = fmt.Sprintf("%s/v1/allocations/%s", url, d.LastAllocation.ID)
	}

	return Dashboard{
		Dashboard: d,
		Formatted: formatted,
		Links:     links,
	}
}

func lastAllocationTime(d view.Dashboard) (t time.Time) {
	if d.LastAllocation != nil {
		t = d.LastAllocation.CreatedAt
	}
	return
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func (co Controller) OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the totals of all accounts and allocations and whether the CAPs of all accounts add up to 100%
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	// Recompute so that the current month is correct even if nothing
	// was written since the month changed
	data := co.newDashboard(c, co.Dashboard.Refresh())
	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
