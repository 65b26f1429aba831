// Package v1 implements the handlers of the v1 API.
package v1

import (
	"github.com/alocar/backend/pkg/format"
	"github.com/alocar/backend/pkg/store"
	"github.com/alocar/backend/pkg/view"
	"github.com/gin-gonic/gin"
)

// Controller holds everything the handlers need to serve requests.
type Controller struct {
	Store     *store.Store
	Dashboard *view.Watcher
	Format    format.Formatter
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterRootRoutes(r)
	co.RegisterAccountRoutes(r.Group("/accounts"))
	co.RegisterAllocationRoutes(r.Group("/allocations"))
	co.RegisterDashboardRoutes(r.Group("/dashboard"))
}
