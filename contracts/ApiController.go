package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	SetCellAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	GetGridAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
}
