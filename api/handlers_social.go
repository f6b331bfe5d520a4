package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/howaiconnects/seogate/generation"
	"github.com/howaiconnects/seogate/hootsuite"
	"github.com/howaiconnects/seogate/prompts"
)

var supportedPlatforms = map[string]bool{
	"linkedin":  true,
	"twitter":   true,
	"facebook":  true,
	"instagram": true,
}

// SocialPostsRequest is the social-post generation input.
type SocialPostsRequest struct {
	ContentSummary string   `json:"content_summary"`
	TargetKeywords []string `json:"target_keywords,omitempty"`
	Platforms      []string `json:"platforms"`
	BrandVoice     string   `json:"brand_voice,omitempty"`
	AutoSchedule   bool     `json:"auto_schedule,omitempty"`
	ScheduleTime   string   `json:"schedule_time,omitempty"`
	MediaURLs      []string `json:"media_urls,omitempty"`
}

func (s *Server) handleGenerateSocialPosts(w http.ResponseWriter, r *http.Request) {
	const stage = "Social post generation"

	var req SocialPostsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, validationErr(stage, "invalid request body: %v", err))
		return
	}

	req.ContentSummary = strings.TrimSpace(req.ContentSummary)
	if req.ContentSummary == "" {
		writeError(w, validationErr(stage, "content_summary is required"))
		return
	}
	platforms := make([]string, 0, len(req.Platforms))
	for _, p := range req.Platforms {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if !supportedPlatforms[p] {
			writeError(w, validationErr(stage, "unsupported platform: %s", p))
			return
		}
		platforms = append(platforms, p)
	}
	if len(platforms) == 0 {
		writeError(w, validationErr(stage, "at least one platform is required"))
		return
	}
	if req.BrandVoice == "" {
		req.BrandVoice = "professional"
	}

	ctx := r.Context()
	prompt := s.resolver.Resolve(ctx, "social_media_generation", prompts.Variables{
		"content_summary": req.ContentSummary,
		"target_keywords": req.TargetKeywords,
		"platforms":       platforms,
		"brand_voice":     req.BrandVoice,
	}, "")

	result, err := s.generator.Generate(ctx, generation.TierStandard, generation.GenerateOptions{
		Prompt:      prompt,
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	if err != nil {
		writeError(w, upstreamErr(stage, err))
		return
	}

	posts := splitPlatformPosts(result.Content, platforms)

	scheduled := make([]*hootsuite.Receipt, 0)
	if req.AutoSchedule && s.hootsuite.Configured() {
		scheduleAt := time.Now().Add(time.Hour)
		if req.ScheduleTime != "" {
			parsed, perr := time.Parse(time.RFC3339, req.ScheduleTime)
			if perr != nil {
				writeError(w, validationErr(stage, "invalid schedule_time: %v", perr))
				return
			}
			scheduleAt = parsed
		}
		for platform, content := range posts {
			receipt, serr := s.hootsuite.SchedulePost(ctx, hootsuite.PostRequest{
				Platform:     platform,
				Content:      content,
				ScheduleTime: scheduleAt,
				MediaURLs:    req.MediaURLs,
			})
			if serr != nil {
				writeError(w, upstreamErr(stage, serr))
				return
			}
			scheduled = append(scheduled, receipt)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":                true,
		"generated_posts":        posts,
		"scheduled_posts":        scheduled,
		"hashtag_suggestions":    extractHashtags(result.Content),
		"engagement_predictions": map[string]any{},
	})
}

// splitPlatformPosts sections generated text by platform. A line mentioning a
// requested platform name starts that platform's section; text before the
// first header is attributed to every requested platform.
func splitPlatformPosts(content string, platforms []string) map[string]string {
	posts := make(map[string]string, len(platforms))
	sections := make(map[string][]string)
	current := ""
	var preamble []string

	for _, line := range strings.Split(content, "\n") {
		lower := strings.ToLower(line)
		matched := ""
		for _, p := range platforms {
			if strings.Contains(lower, p) && len(strings.TrimSpace(line)) < 60 {
				matched = p
				break
			}
		}
		if matched != "" {
			current = matched
			continue
		}
		if current == "" {
			preamble = append(preamble, line)
			continue
		}
		sections[current] = append(sections[current], line)
	}

	for _, p := range platforms {
		if lines, ok := sections[p]; ok {
			posts[p] = strings.TrimSpace(strings.Join(lines, "\n"))
		} else {
			posts[p] = strings.TrimSpace(strings.Join(preamble, "\n"))
		}
	}
	return posts
}

// extractHashtags collects distinct #tags from generated text, in order of
// first appearance.
func extractHashtags(content string) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, field := range strings.Fields(content) {
		if !strings.HasPrefix(field, "#") || len(field) < 2 {
			continue
		}
		tag := strings.TrimRight(field, ".,;:!?)")
		if len(tag) < 2 || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
