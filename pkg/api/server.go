package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/travigo/stationboard/pkg/api/routes"
	"github.com/travigo/stationboard/pkg/stations"
)

func NewApp(directory stations.Directory, service routes.StationQuerier) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StationsRouter(group.Group("/stations"), directory)
	routes.PredictionsRouter(group.Group("/predictions"), directory, service)

	return webApp
}

func SetupServer(listen string, directory stations.Directory, service routes.StationQuerier) error {
	return NewApp(directory, service).Listen(listen)
}
