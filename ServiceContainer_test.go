package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"spreadsheetEngine/sheet"
)

func TestBuildServiceContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serviceContainer := BuildServiceContainer()

	// check sheet engine
	assert.NotNil(t, serviceContainer.Sheet)
	assert.IsType(t, &sheet.Sheet{}, serviceContainer.Sheet)

	// check serializer
	assert.NotNil(t, serviceContainer.Serializer)
	assert.IsType(t, &CellJsonSerializer{}, serviceContainer.Serializer)

	// check webhook dispatcher
	assert.NotNil(t, serviceContainer.WebhookDispatcher)
	assert.IsType(t, &WebhookDispatcher{}, serviceContainer.WebhookDispatcher)

	webhookDispatcher := serviceContainer.WebhookDispatcher.(*WebhookDispatcher)
	assert.Equal(t, serviceContainer.Serializer, webhookDispatcher.serializer)

	// check api controller
	assert.NotNil(t, serviceContainer.ApiController)
	assert.IsType(t, &ApiController{}, serviceContainer.ApiController)

	apiController := serviceContainer.ApiController.(*ApiController)
	assert.Equal(t, serviceContainer.Sheet, apiController.Sheet)
	assert.Equal(t, serviceContainer.Serializer, apiController.Serializer)
	assert.Equal(t, serviceContainer.WebhookDispatcher, apiController.WebhookDispatcher)

	// check router
	assert.NotNil(t, serviceContainer.Router)
	assert.IsType(t, &gin.Engine{}, serviceContainer.Router)

	routes := serviceContainer.Router.Routes()
	assert.NotNil(t, routes)
	// 7 api routes + health check
	assert.GreaterOrEqual(t, len(routes), 8)
}
