package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking-api/controllers"
	"hotel-booking-api/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the route tree. Catalog reads are
// public, catalog writes need staff, booking routes need authentication.
func SetupRouter(
	ac *controllers.AuthController,
	bc *controllers.BookingController,
	avc *controllers.AvailabilityController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthRequired(jwtSecret)
	staffOnly := middleware.StaffOnly()

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", controllers.GetRoomTypes)
			roomTypes.GET("/:id", controllers.GetRoomType)
			roomTypes.GET("/:id/availability", avc.RoomTypeAvailability)
			roomTypes.POST("", authRequired, staffOnly, controllers.CreateRoomType)
			roomTypes.PUT("/:id", authRequired, staffOnly, controllers.UpdateRoomType)
			roomTypes.DELETE("/:id", authRequired, staffOnly, controllers.DeleteRoomType)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.GET("/:id", controllers.GetRoom)
			rooms.GET("/:id/availability", avc.RoomAvailability)
			rooms.POST("", authRequired, staffOnly, controllers.CreateRoom)
			rooms.PUT("/:id", authRequired, staffOnly, controllers.UpdateRoom)
			rooms.PATCH("/:id", authRequired, staffOnly, controllers.UpdateRoom)
			rooms.DELETE("/:id", authRequired, staffOnly, controllers.DeleteRoom)
		}

		amenities := api.Group("/amenities")
		{
			amenities.GET("", controllers.GetAmenities)
			amenities.GET("/:id", controllers.GetAmenity)
			amenities.POST("", authRequired, staffOnly, controllers.CreateAmenity)
			amenities.PUT("/:id", authRequired, staffOnly, controllers.UpdateAmenity)
			amenities.DELETE("/:id", authRequired, staffOnly, controllers.DeleteAmenity)
		}

		bookings := api.Group("/bookings", authRequired)
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBooking)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.POST("/:id/cancel", bc.CancelBooking)
			bookings.PATCH("/:id/status", staffOnly, bc.UpdateBookingStatus)
			bookings.DELETE("/:id", staffOnly, bc.DeleteBooking)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", controllers.GetReviews)
			reviews.GET("/:id", controllers.GetReview)
			reviews.POST("", controllers.CreateReview)
			reviews.PUT("/:id", controllers.UpdateReview)
			reviews.DELETE("/:id", controllers.DeleteReview)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", controllers.CreateContactMessage)
			contact.GET("", authRequired, staffOnly, controllers.GetContactMessages)
		}
	}

	return r
}
