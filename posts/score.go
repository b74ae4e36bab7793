package posts

import (
	"math"
	"sort"
	"time"

	"travelhub/models"
)

// engagement counts likes, comments (with their replies) and shares.
func engagement(p models.Post) float64 {
	score := float64(len(p.Likes)) + float64(p.Shares)
	for _, c := range p.Comments {
		score += 2 + float64(len(c.Replies))*2
	}
	return score
}

// TrendingScore weights engagement against age so a fresh post with
// modest traction outranks a stale one with more. Gravity of 1.5 over
// age in hours, same shape as the classic HN ranking.
func TrendingScore(p models.Post, now time.Time) float64 {
	ageHours := now.Sub(p.CreatedAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	return engagement(p) / math.Pow(ageHours+2, 1.5)
}

// sortPosts orders in place. Ties fall back to newest-first, then to
// post id so the order is stable across runs.
func sortPosts(posts []models.Post, sortBy string, now time.Time) {
	less := func(i, j int) bool {
		return newerOrByID(posts[i], posts[j])
	}
	switch sortBy {
	case "popular":
		less = func(i, j int) bool {
			li, lj := len(posts[i].Likes), len(posts[j].Likes)
			if li != lj {
				return li > lj
			}
			return newerOrByID(posts[i], posts[j])
		}
	case "trending":
		less = func(i, j int) bool {
			si, sj := TrendingScore(posts[i], now), TrendingScore(posts[j], now)
			if si != sj {
				return si > sj
			}
			return newerOrByID(posts[i], posts[j])
		}
	}
	sort.SliceStable(posts, less)
}

func newerOrByID(a, b models.Post) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.PostID < b.PostID
}

func paginate(posts []models.Post, page, limit int) []models.Post {
	start := (page - 1) * limit
	if start >= len(posts) {
		return []models.Post{}
	}
	end := start + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[start:end]
}
