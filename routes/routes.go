package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-frontdesk/config"
	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
)

// SetupRouter wires the controllers into the API surface.
func SetupRouter(rc *controllers.RoomController, bc *controllers.BillingController) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := config.CorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.BookRoom)
			rooms.GET("/:number", rc.GetRoom)
			rooms.GET("/:number/status", rc.GetRoomStatus)
			rooms.PATCH("/:number", rc.UpdateRoom)
			rooms.POST("/:number/food-orders", bc.OrderFood)
			rooms.GET("/:number/bill", bc.GetBill)
			rooms.POST("/:number/checkout", bc.CheckoutRoom)
		}
	}

	return r
}
