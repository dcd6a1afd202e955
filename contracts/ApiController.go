package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	SetCellAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	ClearCellAction(c *gin.Context)
	GetSizeAction(c *gin.Context)
	PrintValuesAction(c *gin.Context)
	PrintTextsAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
}
