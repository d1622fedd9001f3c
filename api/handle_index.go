package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiName = "AI Research Tool API"

func handleIndex(conf Configuration) func(c *gin.Context) {
	version := conf.AppVersion
	if version == "" {
		version = "1.0.0"
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "online",
			"name":    apiName,
			"version": version,
		})
	}
}
