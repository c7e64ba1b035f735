package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	RegisterUser(c *ginext.Context)
	LoginUser(c *ginext.Context)
	AddUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	BookSlot(c *ginext.Context)
	ListBookings(c *ginext.Context)
	CreateCommunity(c *ginext.Context)
	ListCommunities(c *ginext.Context)
	AddSport(c *ginext.Context)
	ListSports(c *ginext.Context)
	Health(c *ginext.Context)
}

type Options struct {
	// MetricsPath is where metricsHandler is mounted. Empty disables it.
	MetricsPath    string
	MetricsHandler http.Handler
}

func InitRouter(mode string, h Handler, opts Options, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Users
	users := router.Group("/user")
	{
		users.POST("/register", h.RegisterUser)
		users.POST("/login", h.LoginUser)
		users.POST("/add", h.AddUser)
		users.GET("", h.ListUsers)
	}

	// Bookings
	router.POST("/booking", h.BookSlot)
	router.GET("/booking", h.ListBookings)

	// Communities
	router.POST("/community", h.CreateCommunity)
	router.GET("/community", h.ListCommunities)

	// Sports
	router.POST("/sport", h.AddSport)
	router.GET("/sport", h.ListSports)

	router.GET("/health", h.Health)

	if opts.MetricsPath != "" && opts.MetricsHandler != nil {
		router.GET(opts.MetricsPath, gin.WrapH(opts.MetricsHandler))
	}

	return router
}
