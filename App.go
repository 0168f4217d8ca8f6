package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

const ListenPort = ":8080"

const DefaultGridRows = 100
const DefaultGridCols = 26

func RunApp() error {
	gin.SetMode(gin.ReleaseMode)

	rows, cols := gridDimensionsFromEnv()
	serviceContainer, err := BuildServiceContainer(os.Getenv("DATABASE_FILEPATH"), rows, cols)

	if err == nil {
		serviceContainer.Notifier.Start()
		defer serviceContainer.Notifier.Close()
		defer serviceContainer.Database.Close()

		err = http.ListenAndServe(ListenPort, serviceContainer.Router)
	}

	return err
}

func gridDimensionsFromEnv() (rows int, cols int) {
	rows = DefaultGridRows
	cols = DefaultGridCols

	if parsed, err := strconv.Atoi(os.Getenv("GRID_ROWS")); err == nil && parsed > 0 {
		rows = parsed
	}
	if parsed, err := strconv.Atoi(os.Getenv("GRID_COLS")); err == nil && parsed > 0 {
		cols = parsed
	}

	return
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
