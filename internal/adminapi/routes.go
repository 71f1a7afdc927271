package adminapi

// InitRouter registers all admin endpoints. Must be called after
// webserver.Init.
func InitRouter() {
	registerProductRoutes()
	registerSellerRoutes()
	registerOrderRoutes()
	registerCategoryRoutes()
	registerMetricsRoutes()
	registerContentRoutes()
}
