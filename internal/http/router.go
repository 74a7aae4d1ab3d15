package api

import (
	stdhttp "net/http"

	"staybook/internal/auth"
	"staybook/internal/authz"
	intconfig "staybook/internal/config"
	"staybook/internal/http/handlers"
	"staybook/internal/http/middleware"
	"staybook/internal/utils"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the full route table with the middleware chain.
func NewRouter(env intconfig.Env, tm auth.TokenManager) *gin.Engine {
	handlers.RegisterValidations()
	handlers.Configure(env, tm)

	enforcer := authz.NewEnforcer()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(),
		middleware.Auth(tm),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.Warnf("failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/api/health", handlers.Health)
	r.GET("/api/db-check", handlers.DBCheck)

	v1 := r.Group("/api/v1")

	accommodations := v1.Group("/accommodations")
	{
		accommodations.GET("", handlers.ListAccommodations)
		accommodations.GET("/:id", handlers.GetAccommodation)
		accommodations.GET("/:id/room-types", handlers.ListRoomTypes)
		accommodations.GET("/:id/room-packages", handlers.ListRoomPackages)
		accommodations.GET("/:id/available-room-packages", handlers.ListAvailableRoomPackages)
	}

	users := v1.Group("/users")
	{
		users.POST("/sign-up", handlers.SignUp)
		users.POST("/login", handlers.Login)

		authed := users.Group("", middleware.RequireAuth())
		authed.POST("/logout", handlers.Logout)
		authed.GET("/me", handlers.GetProfile)
		authed.PUT("/me", handlers.UpdateProfile)
		authed.POST("/change-password", handlers.ChangePassword)
	}

	wishlists := v1.Group("/wishlists", middleware.RequireAuth())
	{
		wishlists.POST("/create", handlers.CreateWishlist)
		wishlists.GET("/:id", handlers.GetWishlist)
		wishlists.PUT("/:id", handlers.RenameWishlist)
		wishlists.DELETE("/:id", handlers.DeleteWishlist)
		wishlists.POST("/:id/add/:accommodation_id", handlers.AddWishlistAccommodation)
		wishlists.DELETE("/:id/remove/:accommodation_id", handlers.RemoveWishlistAccommodation)
	}

	bookings := v1.Group("/bookings")
	{
		bookings.POST("", handlers.CreateBooking)
		bookings.GET("/:id", handlers.GetBooking)
		bookings.POST("/:id/cancel-request", handlers.RequestBookingCancellation)
		bookings.GET("/:id/confirmation.pdf", handlers.GetBookingConfirmation)
		bookings.POST("/:id/payments", handlers.CreatePayment)
		bookings.GET("/:id/payments", handlers.ListBookingPayments)

		staffOnly := bookings.Group("", middleware.RequireStaff(enforcer))
		staffOnly.POST("/:id/approve", handlers.ApproveBooking)
		staffOnly.POST("/:id/deny", handlers.DenyBooking)
		staffOnly.POST("/:id/cancel", handlers.CancelBooking)
	}

	payments := v1.Group("/payments", middleware.RequireStaff(enforcer))
	{
		payments.PUT("/:id/status", handlers.UpdatePaymentStatus)
		payments.GET("/:id/settlement", handlers.GetPaymentSettlement)
		payments.PUT("/:id/settlement", handlers.UpdatePaymentSettlement)
	}

	staff := v1.Group("/staff", middleware.RequireStaff(enforcer))
	{
		staff.GET("/cities", handlers.ListCities)
		staff.POST("/cities", handlers.CreateCity)
		staff.PUT("/cities/:id", handlers.RenameCity)
		staff.DELETE("/cities/:id", handlers.DeleteCity)

		staff.GET("/amenities", handlers.ListAmenities)
		staff.POST("/amenities", handlers.CreateAmenity)
		staff.PUT("/amenities/:id", handlers.UpdateAmenity)
		staff.DELETE("/amenities/:id", handlers.DeleteAmenity)

		staff.POST("/accommodations", handlers.CreateAccommodation)
		staff.PUT("/accommodations/:id", handlers.UpdateAccommodation)
		staff.DELETE("/accommodations/:id", handlers.DeleteAccommodation)
		staff.PUT("/accommodations/:id/amenities", handlers.SetAccommodationAmenities)
		staff.POST("/accommodations/:id/room-types", handlers.CreateRoomType)

		staff.PUT("/room-types/:id", handlers.UpdateRoomType)
		staff.DELETE("/room-types/:id", handlers.DeleteRoomType)
		staff.PUT("/room-types/:id/beds", handlers.UpsertBedConfiguration)
		staff.POST("/room-types/:id/packages", handlers.CreatePackage)

		staff.PUT("/packages/:id/active", handlers.SetPackageActive)
		staff.PUT("/packages/:id/weekday-prices", handlers.UpsertWeekdayPrice)
		staff.PUT("/packages/:id/calendar", handlers.UpsertPackageCalendar)

		staff.GET("/bookings", handlers.ListBookings)
	}

	return r
}
