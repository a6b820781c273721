// Command fixtures narrows a full fixture dataset to a few cities and writes
// the subset. Useful for small demo databases that still join consistently.
package main

import (
	"flag"
	"strings"

	"github.com/sud2610/set-u-free-sub000/fixtures"
	"github.com/sud2610/set-u-free-sub000/utils"

	"go.uber.org/zap"
)

func main() {
	in := flag.String("in", "fixtures.json", "path to the full dataset")
	out := flag.String("out", "fixtures.subset.json", "path to write the subset")
	cities := flag.String("cities", "", "comma-separated list of city names to keep")
	flag.Parse()

	logger := utils.GetLogger()

	if *cities == "" {
		logger.Fatal("The -cities flag is required")
	}
	var keep []string
	for _, c := range strings.Split(*cities, ",") {
		if c = strings.TrimSpace(c); c != "" {
			keep = append(keep, c)
		}
	}

	ds, err := fixtures.Load(*in)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}

	subset := fixtures.FilterByCities(ds, keep)
	if err := fixtures.Save(*out, subset); err != nil {
		logger.Fatal("Failed to write subset", zap.Error(err))
	}

	logger.Info("Wrote fixture subset",
		zap.String("out", *out),
		zap.Strings("cities", keep),
		zap.Int("users", len(subset.Users)),
		zap.Int("providers", len(subset.Providers)),
		zap.Int("services", len(subset.Services)),
		zap.Int("bookings", len(subset.Bookings)),
		zap.Int("reviews", len(subset.Reviews)),
	)
}
