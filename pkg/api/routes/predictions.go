package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"

	"github.com/travigo/stationboard/pkg/stationquery"
	"github.com/travigo/stationboard/pkg/stations"
)

type StationQuerier interface {
	Query(ctx context.Context, stationName string) (stationquery.Record, error)
}

type DirectionPredictions struct {
	Direction string   `groups:"basic" json:"direction"`
	StopID    string   `groups:"detailed" json:"stop_id"`
	Arrivals  []string `groups:"basic" json:"arrivals"`
}

type StationPredictions struct {
	Station    string                  `groups:"basic" json:"station"`
	Record     string                  `groups:"basic" json:"record"`
	Directions []*DirectionPredictions `groups:"basic" json:"directions"`
	QueryTime  time.Time               `groups:"detailed" json:"query_time"`
}

var errorStatus = map[string]int{
	stationquery.CodeUnknownStation:      fiber.StatusNotFound,
	stationquery.CodeUpstreamUnavailable: fiber.StatusGatewayTimeout,
	stationquery.CodeUpstreamError:       fiber.StatusBadGateway,
	stationquery.CodeMalformedResponse:   fiber.StatusBadGateway,
	stationquery.CodeInternal:            fiber.StatusInternalServerError,
}

func PredictionsRouter(router fiber.Router, directory stations.Directory, service StationQuerier) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getPredictions(c, directory, service)
	})
}

func getPredictions(c *fiber.Ctx, directory stations.Directory, service StationQuerier) error {
	stationName := c.Query("station")
	if stationName == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "A station must be given",
		})
	}

	queryTime := time.Now()

	record, err := service.Query(c.UserContext(), stationName)
	if err != nil {
		code := stationquery.ErrorCode(err)

		c.SendStatus(errorStatus[code])
		return c.JSON(fiber.Map{
			"error": err.Error(),
			"code":  code,
		})
	}

	stopA, stopB, _ := directory.Resolve(stationName)

	predictions := StationPredictions{
		Station: stationName,
		Record:  record.String(),
		Directions: []*DirectionPredictions{
			{Direction: "A", StopID: stopA, Arrivals: slotStrings(record.DirectionA())},
			{Direction: "B", StopID: stopB, Arrivals: slotStrings(record.DirectionB())},
		},
		QueryTime: queryTime,
	}

	groups := []string{"basic"}
	if c.QueryBool("detailed") {
		groups = append(groups, "detailed")
	}

	predictionsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, predictions)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce StationPredictions",
		})
	}

	return c.JSON(predictionsReduced)
}

func slotStrings(slots [stationquery.SlotsPerDirection]stationquery.Slot) []string {
	values := make([]string, len(slots))
	for i, slot := range slots {
		values[i] = slot.String()
	}
	return values
}
