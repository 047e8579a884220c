package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/bjo163/showjumps-crm/internal/pipeline"
	"github.com/bjo163/showjumps-crm/internal/webserver"
)

func registerPipelineRoutes() {
	webserver.ApiGET("/crm/pipeline", getPipelineBoard)
	webserver.ApiGET("/crm/pipeline/summary", getPipelineSummary)
}

func getPipelineBoard(c echo.Context) error {
	return ok(c, pipeline.Board(getStore(c)))
}

func getPipelineSummary(c echo.Context) error {
	return ok(c, pipeline.Summarize(getStore(c).Deals()))
}
