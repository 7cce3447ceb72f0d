package services

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/codeshack/internal/client/models"
)

// Form limits.
const (
	MinTitleLen       = 10
	MaxTitleLen       = 200
	MinDescriptionLen = 20
	MaxDescriptionLen = 5000
	MaxTags           = 5
	MinAnswerLen      = 20
	MaxAnswerLen      = 10000
	MaxCommentLen     = 2000
	MaxSpacePostLen   = 3000
	MinPasswordLen    = 6
)

// KnownTags are the tags a doubt may be filed under.
var KnownTags = []string{
	"javascript", "react", "nextjs", "nodejs", "python", "java", "go",
	"dsa", "algorithms", "datastructures", "html", "css", "typescript",
	"database", "sql", "mongodb", "git", "backend", "frontend", "fullstack",
	"devops", "career",
}

var tagCategories = []struct {
	name string
	tags []string
}{
	{"Tech", []string{"react", "reactjs", "vue", "angular", "svelte"}},
	{"Programming", []string{"dsa", "algorithms", "datastructures", "python", "java", "javascript"}},
	{"Development", []string{"nextjs", "nodejs", "backend", "frontend", "fullstack"}},
}

// TagCategory groups a tag for the trending list. Matching is by substring,
// so "reactjs-hooks" is Tech.
func TagCategory(tag string) string {
	lower := strings.ToLower(tag)
	for _, c := range tagCategories {
		for _, t := range c.tags {
			if strings.Contains(lower, t) {
				return c.name
			}
		}
	}
	return "General"
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// NormalizeTags lowercases, trims and de-duplicates tags, keeping order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ValidateDoubt checks a new doubt and returns it trimmed and normalised.
// Checks run in form order so the first failing field is reported.
func ValidateDoubt(d models.NewDoubt) (models.NewDoubt, error) {
	title := strings.TrimSpace(d.Title)
	desc := strings.TrimSpace(d.Description)
	tags := NormalizeTags(d.Tags)

	switch {
	case title == "":
		return d, invalid("title", "Please enter a title for your doubt")
	case runeLen(title) < MinTitleLen:
		return d, invalid("title", "Title must be at least 10 characters")
	case runeLen(title) > MaxTitleLen:
		return d, invalid("title", "Title cannot exceed 200 characters")
	case desc == "":
		return d, invalid("description", "Please enter a description for your doubt")
	case runeLen(desc) < MinDescriptionLen:
		return d, invalid("description", "Description must be at least 20 characters")
	case runeLen(desc) > MaxDescriptionLen:
		return d, invalid("description", "Description cannot exceed 5000 characters")
	case len(tags) == 0:
		return d, invalid("tags", "Please select at least one tag")
	case len(tags) > MaxTags:
		return d, invalid("tags", "You can select up to 5 tags")
	}
	for _, t := range tags {
		if !slices.Contains(KnownTags, t) {
			return d, invalid("tags", "Unknown tag: "+t)
		}
	}
	return models.NewDoubt{Title: title, Description: desc, Tags: tags}, nil
}

// ValidateAnswer returns the trimmed answer content.
func ValidateAnswer(content string) (string, error) {
	c := strings.TrimSpace(content)
	switch {
	case c == "":
		return "", invalid("content", "Please enter your answer")
	case runeLen(c) < MinAnswerLen:
		return "", invalid("content", "Answer must be at least 20 characters")
	case runeLen(c) > MaxAnswerLen:
		return "", invalid("content", "Answer cannot exceed 10000 characters")
	}
	return c, nil
}

func ValidateComment(content string) (string, error) {
	c := strings.TrimSpace(content)
	switch {
	case c == "":
		return "", invalid("content", "Please enter a comment")
	case runeLen(c) > MaxCommentLen:
		return "", invalid("content", "Comment cannot exceed 2000 characters")
	}
	return c, nil
}

func ValidateReply(content string) (string, error) {
	c := strings.TrimSpace(content)
	switch {
	case c == "":
		return "", invalid("content", "Please enter your reply")
	case runeLen(c) > MaxCommentLen:
		return "", invalid("content", "Reply cannot exceed 2000 characters")
	}
	return c, nil
}

func ValidateSpacePost(content string) (string, error) {
	c := strings.TrimSpace(content)
	switch {
	case c == "":
		return "", invalid("content", "Post content cannot be empty")
	case runeLen(c) > MaxSpacePostLen:
		return "", invalid("content", "Post content cannot exceed 3000 characters")
	}
	return c, nil
}

func ValidatePassword(field, password string) error {
	if len(password) < MinPasswordLen {
		return invalid(field, "Password must be at least 6 characters")
	}
	return nil
}
