package prefs

import "travelhub/models"

// FilterPolicy decides what happens to posts tagged with something
// the viewer marked not interested.
type FilterPolicy int

const (
	// PolicyDeprioritize keeps such posts but ranks them last;
	// interested-tag matches rank first.
	PolicyDeprioritize FilterPolicy = iota
	// PolicyExclude drops them entirely.
	PolicyExclude
)

func PolicyFromString(s string) FilterPolicy {
	if s == "exclude" {
		return PolicyExclude
	}
	return PolicyDeprioritize
}

// FilterPosts is a pure function shaping a candidate feed by the
// viewer's preferences. Posts the viewer reported are always removed.
func FilterPosts(posts []models.Post, p models.Prefs, policy FilterPolicy) []models.Post {
	interested := toSet(p.InterestedTags)
	notInterested := toSet(p.NotInterestedTags)
	reported := make(map[string]bool, len(p.ReportedPosts))
	for _, r := range p.ReportedPosts {
		reported[r.PostID] = true
	}

	boosted := []models.Post{}
	neutral := []models.Post{}
	demoted := []models.Post{}

	for _, post := range posts {
		if reported[post.PostID] {
			continue
		}
		switch {
		case intersects(post.Tags, notInterested):
			if policy == PolicyExclude {
				continue
			}
			demoted = append(demoted, post)
		case intersects(post.Tags, interested):
			boosted = append(boosted, post)
		default:
			neutral = append(neutral, post)
		}
	}

	out := make([]models.Post, 0, len(boosted)+len(neutral)+len(demoted))
	out = append(out, boosted...)
	out = append(out, neutral...)
	out = append(out, demoted...)
	return out
}

func toSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return set
}

func intersects(tags []string, set map[string]bool) bool {
	for _, t := range tags {
		if set[t] {
			return true
		}
	}
	return false
}
