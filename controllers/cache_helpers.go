package controllers

import (
	"context"

	"Predictor/cache"
)

const leaderboardCacheTTLSeconds = 60

func invalidateLeaderboardCache() {
	_ = cache.DeleteByPrefix(context.Background(), "leaderboard:")
}
