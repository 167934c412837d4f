package models

import (
	"fmt"
	"strings"
	"time"
)

// TrainingSections are the ordered tabs of the ambassador creation flow.
var TrainingSections = []string{"identity", "values", "audience", "voice"}

const previewMaxChars = 120

// AmbassadorProfile holds the training form state for one session. Nothing
// here is transmitted anywhere on completion; the profile only drives the
// live preview and the optional character-creation call.
type AmbassadorProfile struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID uint      `gorm:"not null;uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name               string `json:"name"`
	BrandStory         string `gorm:"type:text" json:"brand_story"`
	PrimaryFocus       string `json:"primary_focus"`
	ContentKeywords    string `json:"content_keywords"`
	UniqueTrait        string `json:"unique_trait"`
	Personality        string `json:"personality"`
	TargetAudience     string `json:"target_audience"`
	AudienceChallenges string `gorm:"type:text" json:"audience_challenges"`
	DesiredFeeling     string `json:"desired_feeling"`
	ExamplePhrases     string `gorm:"type:text" json:"example_phrases"`
	AvoidedPhrases     string `gorm:"type:text" json:"avoided_phrases"`
	CTAStyle           string `json:"cta_style"`

	// Selection order is preserved for display but carries no meaning.
	SelectedValues []string       `gorm:"serializer:json" json:"selected_values"`
	SelectedThemes []string       `gorm:"serializer:json" json:"selected_themes"`
	ToneSliders    map[string]int `gorm:"serializer:json" json:"tone_sliders"`

	Section   int  `json:"section"`
	Completed bool `json:"completed"`
}

// PreviewSummary derives the live preview text. First matching rule wins.
func (p *AmbassadorProfile) PreviewSummary() string {
	story := strings.TrimSpace(p.BrandStory)
	if story != "" {
		runes := []rune(story)
		if len(runes) > previewMaxChars {
			return string(runes[:previewMaxChars]) + "..."
		}
		return story
	}

	focus := strings.TrimSpace(p.PrimaryFocus)
	keywords := splitKeywords(p.ContentKeywords)
	if focus != "" && len(keywords) > 0 {
		if len(keywords) > 3 {
			keywords = keywords[:3]
		}
		return fmt.Sprintf("Focused on %s, with expertise in %s.",
			strings.ToLower(focus), strings.Join(keywords, ", "))
	}

	if focus != "" {
		return fmt.Sprintf("A %s ambassador dedicated to inspiring and engaging audiences.",
			strings.ToLower(focus))
	}

	if len(p.SelectedValues) > 0 {
		values := p.SelectedValues
		if len(values) > 2 {
			values = values[:2]
		}
		lowered := make([]string, len(values))
		for i, v := range values {
			lowered[i] = strings.ToLower(v)
		}
		return fmt.Sprintf("Driven by %s, creating meaningful connections.",
			strings.Join(lowered, " and "))
	}

	return ""
}

// PreviewVisible reports whether the preview card should render at all.
func (p *AmbassadorProfile) PreviewVisible() bool {
	return strings.TrimSpace(p.Name) != "" || p.PreviewSummary() != ""
}

// ToggleValue adds the value to the selection, or removes it if already
// selected. Order of the remaining entries is preserved.
func (p *AmbassadorProfile) ToggleValue(value string) {
	p.SelectedValues = toggleTag(p.SelectedValues, value)
}

func (p *AmbassadorProfile) ToggleTheme(theme string) {
	p.SelectedThemes = toggleTag(p.SelectedThemes, theme)
}

func toggleTag(selected []string, tag string) []string {
	for i, existing := range selected {
		if existing == tag {
			return append(selected[:i:i], selected[i+1:]...)
		}
	}
	return append(selected, tag)
}

// SetTone stores one slider value, clamped to [0,100].
func (p *AmbassadorProfile) SetTone(key string, value int) {
	if p.ToneSliders == nil {
		p.ToneSliders = map[string]int{}
	}
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	p.ToneSliders[key] = value
}

// NextSection advances one tab; no-op on the last section.
func (p *AmbassadorProfile) NextSection() {
	if p.Section < len(TrainingSections)-1 {
		p.Section++
	}
}

// PreviousSection moves back one tab; no-op on the first section.
func (p *AmbassadorProfile) PreviousSection() {
	if p.Section > 0 {
		p.Section--
	}
}

// SkipSection advances one tab, except on the final section where skipping
// completes the whole flow. Returns true when the flow completed.
func (p *AmbassadorProfile) SkipSection() bool {
	if p.Section >= len(TrainingSections)-1 {
		p.Completed = true
		return true
	}
	p.Section++
	return false
}

// SectionName returns the current tab id.
func (p *AmbassadorProfile) SectionName() string {
	if p.Section < 0 || p.Section >= len(TrainingSections) {
		return TrainingSections[0]
	}
	return TrainingSections[p.Section]
}

func splitKeywords(raw string) []string {
	var keywords []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}
