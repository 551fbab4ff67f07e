package generator

import (
	"encoding/csv"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"marketgen/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}

func parseFloat(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("parse float %q: %v", s, err)
	}
	return v
}

func TestOrderbookGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "btcusdt_orderbook.csv")
	start := time.UnixMilli(1700000000000)
	g := NewOrderbookGenerator(rand.New(rand.NewSource(1)))

	rows, err := g.Generate("BTCUSDT", start, time.Minute, path)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if rows != 600 {
		t.Fatalf("expected 600 rows for one minute at 100ms, got %d", rows)
	}

	records := readCSV(t, path)
	if len(records) != 601 {
		t.Fatalf("expected header plus 600 rows, got %d", len(records))
	}
	for i, col := range models.OrderbookColumns {
		if records[0][i] != col {
			t.Fatalf("header mismatch at %d: %s != %s", i, records[0][i], col)
		}
	}

	prevTs := int64(0)
	for i, rec := range records[1:] {
		ts, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			t.Fatalf("row %d: bad timestamp %q: %v", i, rec[0], err)
		}
		if i == 0 {
			if ts != start.UnixMilli() {
				t.Fatalf("first timestamp %d != start %d", ts, start.UnixMilli())
			}
		} else if ts != prevTs+100 {
			t.Fatalf("row %d: timestamp gap %d, want 100", i, ts-prevTs)
		}
		prevTs = ts

		if rec[1] != "BTCUSDT" {
			t.Fatalf("row %d: unexpected symbol %q", i, rec[1])
		}

		bid1 := parseFloat(t, rec[2])
		bid2 := parseFloat(t, rec[4])
		bid3 := parseFloat(t, rec[6])
		ask1 := parseFloat(t, rec[8])
		ask2 := parseFloat(t, rec[10])
		ask3 := parseFloat(t, rec[12])

		if ask1 <= bid1 {
			t.Fatalf("row %d: spread not positive: bid1=%v ask1=%v", i, bid1, ask1)
		}
		if !(bid1 > bid2 && bid2 > bid3) {
			t.Fatalf("row %d: bid levels not descending: %v %v %v", i, bid1, bid2, bid3)
		}
		if !(ask1 < ask2 && ask2 < ask3) {
			t.Fatalf("row %d: ask levels not ascending: %v %v %v", i, ask1, ask2, ask3)
		}
		// Mid stays in [40000, 60000]; best levels sit at most spread/2
		// (2.5) away, deeper levels 2 further, plus rounding slack.
		if bid3 < 40000-5 || ask3 > 60000+5 {
			t.Fatalf("row %d: price outside walk bounds: bid3=%v ask3=%v", i, bid3, ask3)
		}

		for _, qi := range []int{3, 5, 7, 9, 11, 13} {
			q := parseFloat(t, rec[qi])
			if q <= 0 {
				t.Fatalf("row %d: non-positive quantity in column %d: %v", i, qi, q)
			}
			if models.FormatQty(q) != rec[qi] {
				t.Fatalf("row %d: quantity %q does not round-trip", i, rec[qi])
			}
		}
		if models.FormatPrice(bid1) != rec[2] {
			t.Fatalf("row %d: price %q does not round-trip", i, rec[2])
		}
	}
}

func TestOrderbookGenerateDeterministic(t *testing.T) {
	dir := t.TempDir()
	start := time.UnixMilli(1700000000000)

	pathA := filepath.Join(dir, "a.csv")
	pathB := filepath.Join(dir, "b.csv")

	if _, err := NewOrderbookGenerator(rand.New(rand.NewSource(7))).Generate("BTCUSDT", start, 10*time.Second, pathA); err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}
	if _, err := NewOrderbookGenerator(rand.New(rand.NewSource(7))).Generate("BTCUSDT", start, 10*time.Second, pathB); err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}

	a, err := os.ReadFile(pathA)
	if err != nil {
		t.Fatalf("read a: %v", err)
	}
	b, err := os.ReadFile(pathB)
	if err != nil {
		t.Fatalf("read b: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("same seed produced different output")
	}
}

func TestOrderbookGenerateBadPath(t *testing.T) {
	g := NewOrderbookGenerator(rand.New(rand.NewSource(1)))
	if _, err := g.Generate("BTCUSDT", time.Now(), time.Second, filepath.Join(t.TempDir(), "missing", "out.csv")); err == nil {
		t.Fatalf("expected error for unwritable path")
	}
}
