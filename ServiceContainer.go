package main

import (
	"gridsheet/contracts"

	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	Database   *bbolt.DB
	Evaluator  contracts.FormulaEvaluator
	Grid       *Grid
	Store      contracts.GridStore
	Notifier   contracts.ChangeNotifier
	Controller contracts.ApiController
	Router     *gin.Engine
}

func BuildServiceContainer(databasePath string, rows int, cols int) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(databasePath, 0600, nil)
	if err != nil {
		return
	}

	codec := NewRefCodec()
	container.Evaluator = NewFormulaEvaluator(codec)
	container.Grid = NewGrid(rows, cols, container.Evaluator)
	container.Store = NewBoltGridStore(container.Database, NewCellBinarySerializer())
	container.Notifier = NewWebhookNotifier(codec)
	container.Controller = NewApiController(container.Grid, container.Store, container.Notifier, codec)
	container.Router = SetupRouter(container.Controller)

	err = loadGridFromStore(container.Grid, container.Store, codec)
	return
}

// loadGridFromStore rehydrates persisted inputs and recomputes once for the
// whole batch. Labels outside the configured dimensions are skipped so a
// grid can shrink between restarts without failing to start.
func loadGridFromStore(grid *Grid, store contracts.GridStore, codec contracts.RefCodec) error {
	inputs, err := store.LoadAll()
	if err != nil {
		return err
	}

	for label, input := range inputs {
		row, col, decodeErr := codec.Decode(label)
		if decodeErr != nil {
			continue
		}
		_ = grid.SetInput(row, col, input)
	}

	grid.Recompute()
	return nil
}
