package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SJ-Slasher/FMS/docs"
)

const swaggerDocPath = "/docs/swagger.yaml"

// SetupSwagger serves the API description and a Swagger UI that reads it.
func SetupSwagger(r *gin.Engine) {
	r.GET(swaggerDocPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", docs.Swagger)
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(swaggerDocPath)))
}
