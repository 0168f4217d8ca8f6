package main

import (
	"errors"
	"net/http"

	"gridsheet/contracts"

	"github.com/gin-gonic/gin"
)

type ApiController struct {
	Grid     *Grid
	Store    contracts.GridStore
	Notifier contracts.ChangeNotifier
	Codec    contracts.RefCodec
}

type CellEndpointParams struct {
	CellId string `uri:"cell_id" binding:"required"`
}

type SetCellRequest struct {
	Input string `json:"input"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required"`
}

type CellResponse struct {
	Ref      string `json:"ref"`
	Input    string `json:"input"`
	Display  string `json:"display"`
	HasError bool   `json:"has_error"`
}

type GridResponse struct {
	Rows  int            `json:"rows"`
	Cols  int            `json:"cols"`
	Cells []CellResponse `json:"cells"`
}

func NewApiController(grid *Grid, store contracts.GridStore, notifier contracts.ChangeNotifier, codec contracts.RefCodec) *ApiController {
	return &ApiController{
		Grid:     grid,
		Store:    store,
		Notifier: notifier,
		Codec:    codec,
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	row, col, label, err := api.cellParams(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	request := SetCellRequest{}
	if err = c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	cell, updates, err := api.Grid.ApplyEdit(row, col, request.Input)
	if errors.Is(err, contracts.CellOutOfBoundsError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if saveErr := api.Store.SaveCell(label, request.Input); saveErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": saveErr.Error()})
		return
	}

	api.Notifier.Notify(updates)

	response := makeCellResponse(label, cell)
	if err != nil {
		// formula errors still store the input; the cell surfaces the
		// error sentinel
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	row, col, label, err := api.cellParams(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	cell, err := api.Grid.Cell(row, col)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, makeCellResponse(label, cell))
}

func (api *ApiController) GetGridAction(c *gin.Context) {
	snapshot := api.Grid.Snapshot()

	response := GridResponse{
		Rows:  api.Grid.Rows(),
		Cols:  api.Grid.Cols(),
		Cells: make([]CellResponse, 0),
	}

	for row := range snapshot {
		for col := range snapshot[row] {
			if snapshot[row][col].Input == "" {
				continue
			}
			response.Cells = append(response.Cells, makeCellResponse(api.Codec.Encode(row, col), snapshot[row][col]))
		}
	}

	c.JSON(http.StatusOK, response)
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	row, col, _, err := api.cellParams(c)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	request := SubscribeRequest{}
	if err = c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if _, err = api.Grid.Cell(row, col); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	api.Notifier.Subscribe(api.Codec.Encode(row, col), request.WebhookUrl)
	c.Status(http.StatusNoContent)
}

// cellParams binds the :cell_id uri segment and decodes it. The returned
// label is the canonical uppercase form of whatever the client sent.
func (api *ApiController) cellParams(c *gin.Context) (row int, col int, label string, err error) {
	params := CellEndpointParams{}
	if err = c.ShouldBindUri(&params); err != nil {
		return
	}

	row, col, err = api.Codec.Decode(params.CellId)
	if err != nil {
		return
	}

	label = api.Codec.Encode(row, col)
	return
}

func makeCellResponse(label string, cell contracts.Cell) CellResponse {
	return CellResponse{
		Ref:      label,
		Input:    cell.Input,
		Display:  cell.Display,
		HasError: cell.HasError,
	}
}
