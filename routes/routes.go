package routes

import (
	"net/http"

	"pawmart/auth"
	"pawmart/cart"
	"pawmart/catalog"
	"pawmart/filedrop"
	"pawmart/middleware"
	"pawmart/orders"
	"pawmart/pay"
	"pawmart/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/signup", rateLimiter.Limit(auth.Signup))
	router.POST("/login", rateLimiter.Limit(auth.Login))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/allproducts", catalog.GetAllProducts)
	router.GET("/newcollections", catalog.GetNewCollections)
	router.GET("/popularproducts", catalog.GetPopularProducts)
	router.POST("/addproduct", catalog.AddProduct)
	router.POST("/removeproduct", catalog.RemoveProduct)
}

func AddCartRoutes(router *httprouter.Router) {
	router.POST("/addtocart", middleware.Authenticate(cart.AddToCart))
	router.POST("/removefromcart", middleware.Authenticate(cart.RemoveFromCart))
	router.POST("/getcart", middleware.Authenticate(cart.GetCart))
}

func AddOrderRoutes(router *httprouter.Router) {
	router.POST("/orders/create_order", middleware.Authenticate(orders.CreateOrder))
	router.GET("/orders/all", orders.GetAllOrders)
	router.PUT("/orders/:id/status", orders.UpdateOrderStatus)
	router.GET("/orders/invoice/:id", orders.PrintInvoice)
}

func AddPayRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, payService *pay.PaymentService) {
	router.POST("/create_order", rateLimiter.Limit(payService.CreateOrder))
	router.POST("/verify_payment", rateLimiter.Limit(payService.VerifyPayment))
}

func AddUploadRoutes(router *httprouter.Router, uploader *filedrop.Uploader) {
	router.POST("/upload", uploader.Upload)
	router.ServeFiles("/images/*filepath", http.Dir(uploader.Dir))
}

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, payService *pay.PaymentService, uploader *filedrop.Uploader) {
	AddAuthRoutes(router, rateLimiter)
	AddCatalogRoutes(router)
	AddCartRoutes(router)
	AddOrderRoutes(router)
	AddPayRoutes(router, rateLimiter, payService)
	AddUploadRoutes(router, uploader)
}
