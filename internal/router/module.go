package router

import "github.com/gin-gonic/gin"

// Module registers one aggregate's routes on the /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
