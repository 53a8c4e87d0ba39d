package api

import (
	"reveste/service"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all user and bet routes registered.
// Route names mirror the public API this service replaces, including the
// localized filter segments.
func NewRouter(userService service.UserService, betService service.BetService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	users := &userHandler{service: userService}
	bets := &betHandler{service: betService}

	apiGroup := r.Group("/api")

	userGroup := apiGroup.Group("/users")
	userGroup.GET("", users.list)
	userGroup.POST("", users.create)
	userGroup.GET("/:id", users.get)
	userGroup.PUT("/:id", users.update)
	userGroup.DELETE("/:id", users.delete)
	userGroup.GET("/ByName/:name", users.searchByName)

	betGroup := apiGroup.Group("/bets")
	betGroup.GET("", bets.list)
	betGroup.POST("", bets.create)
	betGroup.GET("/:id", bets.get)
	betGroup.PUT("/:id", bets.update)
	betGroup.DELETE("/:id", bets.delete)
	betGroup.GET("/ByUsuario/:id", bets.byOwner)
	betGroup.GET("/ValorMaiorQue/:valor", bets.amountGreaterThan)
	betGroup.GET("/ByData/:data", bets.byDate)

	return r
}
