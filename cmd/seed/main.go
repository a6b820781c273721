// Command seed loads a fixture dataset into MongoDB. Intended for demo
// environments; -wipe drops the target collections first.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/sud2610/set-u-free-sub000/config"
	"github.com/sud2610/set-u-free-sub000/database"
	"github.com/sud2610/set-u-free-sub000/fixtures"
	"github.com/sud2610/set-u-free-sub000/utils"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "fixtures.json", "path to the fixture dataset")
	wipe := flag.Bool("wipe", false, "drop the target collections before seeding")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	database.InitDB()

	ds, err := fixtures.Load(*file)
	if err != nil {
		logger.Fatal("Failed to load fixtures", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := database.DB()
	collections := []string{"users", "providers", "services", "bookings", "reviews", "cities", "categories"}

	if *wipe {
		for _, name := range collections {
			if err := db.Collection(name).Drop(ctx); err != nil {
				logger.Fatal("Failed to drop collection", zap.String("collection", name), zap.Error(err))
			}
		}
		logger.Info("Dropped collections", zap.Strings("collections", collections))
	}

	insert := func(name string, docs []any) {
		if len(docs) == 0 {
			return
		}
		if _, err := db.Collection(name).InsertMany(ctx, docs); err != nil {
			logger.Fatal("Failed to seed collection", zap.String("collection", name), zap.Error(err))
		}
		logger.Info("Seeded collection", zap.String("collection", name), zap.Int("count", len(docs)))
	}

	insert("users", asAny(ds.Users))
	insert("providers", asAny(ds.Providers))
	insert("services", asAny(ds.Services))
	insert("bookings", asAny(ds.Bookings))
	insert("reviews", asAny(ds.Reviews))
	insert("cities", asAny(ds.Cities))
	insert("categories", asAny(ds.Categories))

	logger.Info("Seeding complete")
}

func asAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}
