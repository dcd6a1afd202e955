package main

import (
	"github.com/gin-gonic/gin"

	"spreadsheetEngine/contracts"
	"spreadsheetEngine/sheet"
)

type ServiceContainer struct {
	Sheet             contracts.SheetInterface
	Serializer        contracts.CellSerializer
	WebhookDispatcher contracts.WebhookDispatcher
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer() ServiceContainer {
	container := ServiceContainer{}

	container.Sheet = sheet.NewSheet()
	container.Serializer = NewCellJsonSerializer()
	container.WebhookDispatcher = NewWebhookDispatcher(container.Serializer)
	container.ApiController = NewApiController(container.Sheet, container.Serializer, container.WebhookDispatcher)

	container.Router = SetupRouter(container.ApiController)

	return container
}
