package provider

import (
	"testing"

	"github.com/sud2610/set-u-free-sub000/models"

	"github.com/stretchr/testify/assert"
)

func TestAggregateRating(t *testing.T) {
	t.Run("empty yields zero values", func(t *testing.T) {
		rating, count := AggregateRating(nil)
		assert.Zero(t, rating)
		assert.Zero(t, count)
	})

	t.Run("average rounds to one decimal", func(t *testing.T) {
		rating, count := AggregateRating([]models.Review{
			{Rating: 5}, {Rating: 4}, {Rating: 4},
		})
		assert.Equal(t, 4.3, rating)
		assert.Equal(t, 3, count)
	})

	t.Run("single review", func(t *testing.T) {
		rating, count := AggregateRating([]models.Review{{Rating: 2}})
		assert.Equal(t, 2.0, rating)
		assert.Equal(t, 1, count)
	})
}
