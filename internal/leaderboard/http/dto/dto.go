// Package dto provides the response bodies of the /api/leaderboard endpoints.
package dto

import (
	leaderboardDomain "github.com/allisson/quiz/internal/leaderboard/domain"
)

// EntryResponse is one ranked player.
type EntryResponse struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	GamesPlayed int64  `json:"gamesPlayed"`
	TotalScore  int64  `json:"totalScore"`
	Category    string `json:"category,omitempty"`
}

// LeaderboardResponse wraps a ranking.
type LeaderboardResponse struct {
	Data []EntryResponse `json:"data"`
}

// MapEntriesToResponse ranks entries in the order given, starting at 1.
func MapEntriesToResponse(entries []*leaderboardDomain.Entry) LeaderboardResponse {
	data := make([]EntryResponse, 0, len(entries))
	for i, e := range entries {
		data = append(data, EntryResponse{
			Rank:        i + 1,
			UserID:      e.UserID.String(),
			Username:    e.Username,
			GamesPlayed: e.GamesPlayed,
			TotalScore:  e.TotalScore,
			Category:    e.Category,
		})
	}
	return LeaderboardResponse{Data: data}
}

// UserStatsResponse is the body of GET /api/leaderboard/user/stats.
type UserStatsResponse struct {
	UserID       string  `json:"userId"`
	Username     string  `json:"username"`
	GamesPlayed  int64   `json:"gamesPlayed"`
	TotalScore   int64   `json:"totalScore"`
	AverageScore float64 `json:"averageScore"`
}

// MapUserStatsToResponse converts domain statistics.
func MapUserStatsToResponse(stats *leaderboardDomain.UserStats) UserStatsResponse {
	return UserStatsResponse{
		UserID:       stats.UserID.String(),
		Username:     stats.Username,
		GamesPlayed:  stats.GamesPlayed,
		TotalScore:   stats.TotalScore,
		AverageScore: stats.AverageScore,
	}
}

// CategoryStatsResponse counts finished sessions in one category.
type CategoryStatsResponse struct {
	Category    string `json:"category"`
	GamesPlayed int64  `json:"gamesPlayed"`
}

// ListCategoryStatsResponse wraps the per-category counts.
type ListCategoryStatsResponse struct {
	Data []CategoryStatsResponse `json:"data"`
}

// MapCategoryStatsToListResponse converts domain category counts.
func MapCategoryStatsToListResponse(stats []*leaderboardDomain.CategoryStats) ListCategoryStatsResponse {
	data := make([]CategoryStatsResponse, 0, len(stats))
	for _, s := range stats {
		data = append(data, CategoryStatsResponse{Category: s.Category, GamesPlayed: s.GamesPlayed})
	}
	return ListCategoryStatsResponse{Data: data}
}
