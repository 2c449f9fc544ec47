package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservas/controllers"
	"hotel-reservas/middleware"
)

// SetupRouter wires the room, customer and reservation endpoints.
func SetupRouter(
	rc *controllers.RoomController,
	cc *controllers.CustomerController,
	resc *controllers.ReservationController,
	origins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Quartos
	r.GET("/quartos", rc.GetRooms)
	r.GET("/quartos_vagos", rc.GetVacantRooms)
	r.POST("/quartos", rc.CreateRoom)
	r.PUT("/quartos", rc.UpdateRoom)
	r.DELETE("/quartos", rc.DeleteRoom)

	// Clientes (PUT answers with and without the trailing slash)
	r.GET("/clientes", cc.GetCustomers)
	r.POST("/clientes", cc.CreateCustomer)
	r.PUT("/clientes/", cc.UpdateCustomer)
	r.PUT("/clientes", cc.UpdateCustomer)
	r.DELETE("/clientes", cc.DeleteCustomer)

	// Reservas
	r.GET("/reservas", resc.GetReservations)
	r.POST("/reservas", resc.CreateReservation)
	r.PUT("/reservas", resc.UpdateReservation)
	r.DELETE("/reservas", resc.DeleteReservation)

	return r
}
