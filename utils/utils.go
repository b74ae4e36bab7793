package utils

import (
	"strings"

	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

// NormalizeTags lowercases, trims and deduplicates a tag list,
// preserving first-seen order.
func NormalizeTags(input []string) []string {
	tags := []string{}
	seen := make(map[string]bool)
	for _, t := range input {
		tag := strings.ToLower(strings.TrimSpace(t))
		if tag == "" || seen[tag] {
			continue
		}
		tags = append(tags, tag)
		seen[tag] = true
	}
	return tags
}

// SplitTags takes a comma-separated string and returns a cleaned []string.
func SplitTags(input string) []string {
	if input == "" {
		return []string{}
	}
	return NormalizeTags(strings.Split(input, ","))
}

func Contains(slice []string, value string) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}
