package handler

import (
	"shortlink-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers 路由所需的全部处理器
type Handlers struct {
	Links  *LinkHandler
	Auth   *AuthHandler
	Health gin.HandlerFunc
}

// RegisterRoutes 注册路由
// /api 下的变更接口只做可选认证，未认证由 Service 返回 Unauthorized
func RegisterRoutes(router *gin.Engine, h Handlers, authenticate gin.HandlerFunc) {
	router.GET("/health", h.Health)
	router.GET("/:code", h.Links.Redirect)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/register", h.Auth.Register)
	}

	api := router.Group("/api")
	api.Use(authenticate)
	{
		api.GET("/links", h.Links.ListLinks)
		api.POST("/links", h.Links.CreateLink)
		api.PUT("/links/:id", h.Links.UpdateLink)
		api.DELETE("/links/:id", h.Links.DeleteLink)
	}

	account := api.Group("")
	account.Use(middleware.RequireAuth())
	{
		account.GET("/links/suggest", h.Links.SuggestShortCode)
		account.GET("/me", h.Auth.GetCurrentUser)
		account.POST("/logout", h.Auth.Logout)
	}
}
