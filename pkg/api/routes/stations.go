package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/travigo/stationboard/pkg/stations"
)

type station struct {
	Name  string    `json:"name"`
	Stops [2]string `json:"stops"`
}

func StationsRouter(router fiber.Router, directory stations.Directory) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listStations(c, directory)
	})
}

func listStations(c *fiber.Ctx, directory stations.Directory) error {
	stationList := []station{}

	for _, name := range directory.Names() {
		stopA, stopB, err := directory.Resolve(name)
		if err != nil {
			return err
		}

		stationList = append(stationList, station{Name: name, Stops: [2]string{stopA, stopB}})
	}

	return c.JSON(fiber.Map{
		"stations": stationList,
	})
}
