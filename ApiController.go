package main

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"spreadsheetEngine/contracts"
)

// ApiController exposes the engine over HTTP. The engine itself is
// single-threaded; one mutex serializes all sheet access.
type ApiController struct {
	Sheet             contracts.SheetInterface
	Serializer        contracts.CellSerializer
	WebhookDispatcher contracts.WebhookDispatcher

	mutex sync.Mutex
}

type CellEndpointParams struct {
	CellId string `uri:"cell_id" binding:"required"`
}

type SetCellRequest struct {
	Text string `json:"text"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url"`
}

func NewApiController(
	sheet contracts.SheetInterface,
	serializer contracts.CellSerializer,
	webhookDispatcher contracts.WebhookDispatcher,
) *ApiController {
	return &ApiController{
		Sheet:             sheet,
		Serializer:        serializer,
		WebhookDispatcher: webhookDispatcher,
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pos, ok := contracts.PositionFromString(params.CellId)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": contracts.InvalidPositionError.Error()})
		return
	}

	api.mutex.Lock()
	err = api.Sheet.SetCell(pos, request.Text)
	api.mutex.Unlock()

	if errors.Is(err, contracts.FormulaSyntaxError) || errors.Is(err, contracts.CircularDependencyError) {
		c.JSON(http.StatusUnprocessableEntity, &contracts.CellPayload{
			CellId: pos.String(),
			Text:   request.Text,
			Value:  err.Error(),
		})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	api.renderCell(c, http.StatusCreated, pos)
	api.notifySubscribers()
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pos, ok := contracts.PositionFromString(params.CellId)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": contracts.InvalidPositionError.Error()})
		return
	}

	api.renderCell(c, http.StatusOK, pos)
}

func (api *ApiController) ClearCellAction(c *gin.Context) {
	params := CellEndpointParams{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pos, ok := contracts.PositionFromString(params.CellId)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": contracts.InvalidPositionError.Error()})
		return
	}

	api.mutex.Lock()
	err := api.Sheet.ClearCell(pos)
	api.mutex.Unlock()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
	api.notifySubscribers()
}

func (api *ApiController) GetSizeAction(c *gin.Context) {
	api.mutex.Lock()
	size := api.Sheet.GetPrintableSize()
	api.mutex.Unlock()

	c.JSON(http.StatusOK, size)
}

func (api *ApiController) PrintValuesAction(c *gin.Context) {
	api.printSheet(c, api.Sheet.PrintValues)
}

func (api *ApiController) PrintTextsAction(c *gin.Context) {
	api.printSheet(c, api.Sheet.PrintTexts)
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pos, ok := contracts.PositionFromString(params.CellId)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": contracts.InvalidPositionError.Error()})
		return
	}

	// an empty webhook_url drops the subscription
	api.WebhookDispatcher.SetWebhookUrl(pos.String(), request.WebhookUrl)
	c.Status(http.StatusNoContent)
}

func (api *ApiController) renderCell(c *gin.Context, status int, pos contracts.Position) {
	api.mutex.Lock()
	payload, err := api.cellPayload(pos)
	api.mutex.Unlock()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if payload == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": contracts.CellNotFoundError.Error()})
		return
	}

	data, err := api.Serializer.Marshal(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(status, "application/json; charset=utf-8", data)
}

// cellPayload must run under the mutex: reading a formula value may fill
// caches inside the engine.
func (api *ApiController) cellPayload(pos contracts.Position) (*contracts.CellPayload, error) {
	cell, err := api.Sheet.GetCell(pos)
	if err != nil || cell == nil {
		return nil, err
	}

	return &contracts.CellPayload{
		CellId: pos.String(),
		Text:   cell.GetText(),
		Value:  cell.GetValue().String(),
	}, nil
}

func (api *ApiController) printSheet(c *gin.Context, print func(out io.Writer) error) {
	var builder strings.Builder

	api.mutex.Lock()
	err := print(&builder)
	api.mutex.Unlock()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.String(http.StatusOK, builder.String())
}

func (api *ApiController) notifySubscribers() {
	subscribed := api.WebhookDispatcher.SubscribedCells()
	if len(subscribed) == 0 {
		return
	}

	payloads := make([]*contracts.CellPayload, 0, len(subscribed))

	api.mutex.Lock()
	for _, cellId := range subscribed {
		pos, ok := contracts.PositionFromString(cellId)
		if !ok {
			continue
		}
		payload, err := api.cellPayload(pos)
		if err != nil || payload == nil {
			continue
		}
		payloads = append(payloads, payload)
	}
	api.mutex.Unlock()

	if len(payloads) > 0 {
		api.WebhookDispatcher.Notify(payloads)
	}
}
