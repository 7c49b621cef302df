package display

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travigo/stationboard/pkg/stationquery"
)

func TestRender(t *testing.T) {
	record, err := stationquery.ParseRecord("3,6,9,2,N/A,N/A")
	require.NoError(t, err)

	expected := "KENDALL/MIT\n" +
		"NORTHBOUND      SOUTHBOUND\n" +
		"3 MINS          2 MINS\n" +
		"6 MINS          N/A\n" +
		"9 MINS          N/A\n"

	assert.Equal(t, expected, Render("KENDALL/MIT", record))
}

type fetcherFunc func(ctx context.Context, stationName string) (stationquery.Record, error)

func (f fetcherFunc) Fetch(ctx context.Context, stationName string) (stationquery.Record, error) {
	return f(ctx, stationName)
}

func TestBoardRefresh(t *testing.T) {
	t.Run("failure shows every slot as missing", func(t *testing.T) {
		var out bytes.Buffer
		board := &Board{
			StationName: "KENDALL/MIT",
			Out:         &out,
			Fetcher: fetcherFunc(func(ctx context.Context, stationName string) (stationquery.Record, error) {
				return stationquery.Record{}, errors.New("connection refused")
			}),
		}

		require.NoError(t, board.Refresh(context.Background()))
		assert.Equal(t, Render("KENDALL/MIT", stationquery.Record{}), out.String())
		assert.NotContains(t, out.String(), "MINS")
	})

	t.Run("run polls until cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		calls := 0
		var out bytes.Buffer
		board := &Board{
			StationName: "CENTRAL SQUARE",
			Interval:    time.Millisecond,
			Out:         &out,
			Fetcher: fetcherFunc(func(ctx context.Context, stationName string) (stationquery.Record, error) {
				assert.Equal(t, "CENTRAL SQUARE", stationName)

				calls++
				if calls == 3 {
					cancel()
				}
				return stationquery.Record{}, nil
			}),
		}

		require.NoError(t, board.Run(ctx))
		assert.Equal(t, 3, calls)
	})
}
