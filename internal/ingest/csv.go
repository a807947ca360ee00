// Package ingest loads tick data into the engine, either from a CSV file
// of historical prints or from a synthetic generator, and hands back a
// plain []tickengine.Tick ready for TickEngine.RunBacktest.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Udaynanda/backtester/internal/bookcore"
	"github.com/Udaynanda/backtester/internal/tickengine"
)

// csvHeader is the exact column order a valid file must start with.
var csvHeader = []string{"symbol", "timestamp", "price", "volume", "side"}

// LoadCSV reads a tick file in symbol,timestamp,price,volume,side format.
// Prices are parsed with decimal.Decimal and scaled into bookcore.Price's
// fixed-point representation, matching the original parser's truncating
// cast: any digits beyond PriceScale's four decimal places are dropped,
// never rejected. Rows that fail to parse as a valid row at all (bad
// timestamp, unparseable price, negative volume, unknown side) are
// skipped rather than aborting the whole load; the count of skipped rows
// is logged at Warn once the file is fully read.
func LoadCSV(path string, log *zap.Logger) ([]tickengine.Tick, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // a row with the wrong column count is skipped by parseRow
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: read header: %w", err)
	}
	if !headerMatches(header) {
		return nil, fmt.Errorf("ingest: unexpected header %v, want %v", header, csvHeader)
	}

	var ticks []tickengine.Tick
	skipped := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: read row: %w", err)
		}

		tick, ok := parseRow(row)
		if !ok {
			skipped++
			continue
		}
		ticks = append(ticks, tick)
	}

	if skipped > 0 && log != nil {
		log.Warn("skipped malformed csv rows", zap.Int("skipped", skipped), zap.String("path", path))
	}
	return ticks, nil
}

func headerMatches(got []string) bool {
	if len(got) != len(csvHeader) {
		return false
	}
	for i, h := range csvHeader {
		if got[i] != h {
			return false
		}
	}
	return true
}

func parseRow(row []string) (tickengine.Tick, bool) {
	if len(row) != 5 {
		return tickengine.Tick{}, false
	}

	ts, err := strconv.ParseUint(row[1], 10, 64)
	if err != nil {
		return tickengine.Tick{}, false
	}

	price, err := decimal.NewFromString(row[2])
	if err != nil {
		return tickengine.Tick{}, false
	}
	scaled := price.Mul(decimal.NewFromInt(bookcore.PriceScale))

	volume, err := strconv.ParseInt(row[3], 10, 64)
	if err != nil || volume < 0 {
		return tickengine.Tick{}, false
	}

	side, ok := parseSide(row[4])
	if !ok {
		return tickengine.Tick{}, false
	}

	return tickengine.Tick{
		Symbol:    row[0],
		Timestamp: bookcore.Timestamp(ts),
		Price:     bookcore.Price(scaled.IntPart()),
		Volume:    bookcore.Quantity(volume),
		Side:      side,
	}, true
}

func parseSide(s string) (bookcore.Side, bool) {
	switch s {
	case "BUY", "buy", "B", "b":
		return bookcore.Buy, true
	case "SELL", "sell", "S", "s":
		return bookcore.Sell, true
	default:
		return 0, false
	}
}
