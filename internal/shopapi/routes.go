package shopapi

import (
	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
)

// InitRouter registers the storefront endpoints. Must be called after
// webserver.Init.
func InitRouter() {
	// public
	webserver.PubPOST("/auth/login", login)
	webserver.PubGET("/products", listProducts)
	webserver.PubGET("/categories", listCategories)
	webserver.PubGET("/market-rates", listMarketRates)
	webserver.PubGET("/weather", getWeather)
	webserver.PubGET("/blog", listBlogPosts)
	webserver.PubGET("/blog/:slug", getBlogPost)
	webserver.PubGET("/faqs", listFaqs)
	webserver.PubGET("/testimonials", listTestimonials)

	// authenticated buyers and sellers
	webserver.ApiPOST("/orders", createOrder)
	webserver.ApiGET("/user/orders", listUserOrders)
	webserver.ApiGET("/user/orders/:id", getUserOrder)

	// seller self-service
	webserver.ApiGET("/seller/products", listSellerProducts)
	webserver.ApiPOST("/seller/products", createSellerProduct)
	webserver.ApiPATCH("/seller/products/:id", updateSellerProduct)
}
