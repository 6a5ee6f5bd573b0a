package routes

import (
	"net/http"

	"gulffloat/auth"
	"gulffloat/booking"
	"gulffloat/cart"
	"gulffloat/catalog"
	"gulffloat/checkout"
	"gulffloat/contact"
	"gulffloat/middleware"
	"gulffloat/ratelim"
	"gulffloat/waiver"
	"gulffloat/webhook"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/waiverpic/*filepath", http.Dir("static/waiverpic"))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/api/services", catalog.GetServices)
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	// Registered through the wildcard: httprouter rejects a static
	// "create" segment next to ":cartid" in the same method tree.
	router.POST("/api/cart/:cartid", rl.Limit(cart.CreateCart))
	router.GET("/api/cart/:cartid", cart.GetCart)
	router.POST("/api/cart/:cartid/add", rl.Limit(cart.AddItem))
	router.DELETE("/api/cart/:cartid/item/:index", rl.Limit(cart.RemoveItem))
	router.PUT("/api/cart/:cartid/customer", rl.Limit(cart.SetCustomer))
	router.POST("/api/cart/:cartid/checkout", rl.Limit(checkout.Checkout))
}

func AddBookingRoutes(router *httprouter.Router) {
	router.GET("/api/bookings", booking.GetBookings)
	router.GET("/api/bookings/:id", booking.GetBooking)
	router.GET("/api/bookings/:id/receipt", booking.PrintReceipt)
	router.GET("/api/ws/bookings", middleware.Authenticate(booking.HandleWS))
}

func AddPaymentRoutes(router *httprouter.Router) {
	router.GET("/api/payments/checkout/status/:sessionid", webhook.CheckoutStatus)
	router.POST("/api/webhook/stripe", webhook.HandleStripe)
	router.POST("/api/webhook/paypal", webhook.HandlePayPal)
}

func AddWaiverRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/waivers/submit", rl.Limit(waiver.SubmitWaiver))
	router.GET("/api/waivers", waiver.GetWaivers)
	router.GET("/api/waivers/:id", waiver.GetWaiver)
	router.GET("/api/waivers/:id/pdf", waiver.PrintWaiver)
}

func AddContactRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/contact", rl.Limit(contact.SubmitContact))
	router.GET("/api/contacts", middleware.Authenticate(contact.GetContacts))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(auth.Login))
}
