package stationquery

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

type Directory interface {
	Resolve(name string) (string, string, error)
}

type Predictor interface {
	Predict(ctx context.Context, stopID string) ([]int, error)
}

type Service struct {
	Directory Directory
	Predictor Predictor
}

func NewService(directory Directory, predictor Predictor) *Service {
	return &Service{
		Directory: directory,
		Predictor: predictor,
	}
}

// Query builds the record for one station. Both directions are fetched
// concurrently; if either fails the whole query fails and no record is built.
func (s *Service) Query(ctx context.Context, stationName string) (Record, error) {
	startTime := time.Now()

	stopA, stopB, err := s.Directory.Resolve(stationName)
	if err != nil {
		return Record{}, err
	}

	stops := [2]string{stopA, stopB}
	var directions [2][]int

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	for i, stopID := range stops {
		i, stopID := i, stopID
		p.Go(func(ctx context.Context) error {
			minutes, err := s.Predictor.Predict(ctx, stopID)
			if err != nil {
				return err
			}

			directions[i] = minutes
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return Record{}, err
	}

	var record Record
	a := pad(directions[0])
	b := pad(directions[1])
	copy(record[:SlotsPerDirection], a[:])
	copy(record[SlotsPerDirection:], b[:])

	log.Debug().
		Str("station", stationName).
		Str("record", record.String()).
		Str("latency", time.Since(startTime).String()).
		Msg("Station query")

	return record, nil
}
