package ai

import (
	"fmt"
	"strings"

	"curator/internal/domain"
)

const inboxSystemPrompt = `You are a personal content curator. You triage saved links for a single user by judging two independent axes:

1. Quality: is this content substantive, accurate and well made, independent of who is reading it?
2. Relevance: does this content matter to THIS user, given their stated profile?

Combine both axes into a single score from 0 to 100, where 0 means "discard without reading" and 100 means "drop everything and consume this now". Low quality caps the score regardless of relevance, and low relevance caps the score regardless of quality.

Also propose a corrected, cleaned-up title (fix clickbait, encoding artifacts and ALL CAPS, keep the original language), a one-sentence verdict explaining the score, a short factual summary, and 3 to 5 lowercase topic tags.

Respond with ONLY a JSON object, no markdown fences, in exactly this shape:
{"correctedTitle": string, "score": number, "verdict": string, "summary": string, "suggestedTags": [string]}`

const vaultSystemPrompt = `You are a personal knowledge archivist. The user has decided to keep this content permanently; do not judge whether it is worth keeping.

Produce a corrected, cleaned-up title (fix clickbait, encoding artifacts and ALL CAPS, keep the original language), a thorough summary that captures the key points well enough to be useful years later, 3 to 5 lowercase topic tags, and the single best category for filing this content. Prefer one of the user's existing categories when it fits; otherwise propose one short new category name.

Respond with ONLY a JSON object, no markdown fences, in exactly this shape:
{"correctedTitle": string, "summary": string, "suggestedTags": [string], "suggestedCategoryName": string}`

func buildInboxPrompts(res *domain.Resource, prefs *domain.UserPreference, extraContent string) (system, user string) {
	var b strings.Builder
	writeUserProfile(&b, prefs)
	writeResourceBlock(&b, res)
	writeExtraContent(&b, extraContent)
	b.WriteString("Score this content for the user and respond with the JSON object.\n")
	return inboxSystemPrompt, b.String()
}

func buildVaultPrompts(res *domain.Resource, prefs *domain.UserPreference, existingCategories []string, extraContent string) (system, user string) {
	var b strings.Builder
	writeUserProfile(&b, prefs)

	b.WriteString("## Existing categories\n")
	if len(existingCategories) == 0 {
		b.WriteString("The user has no categories yet.\n")
	} else {
		for _, name := range existingCategories {
			b.WriteString("- " + name + "\n")
		}
	}
	b.WriteString("\n")

	writeResourceBlock(&b, res)
	writeExtraContent(&b, extraContent)
	b.WriteString("Archive this content for the user and respond with the JSON object.\n")
	return vaultSystemPrompt, b.String()
}

func writeUserProfile(b *strings.Builder, prefs *domain.UserPreference) {
	b.WriteString("## User profile\n")
	if prefs == nil {
		b.WriteString("The user has not described themselves. Assume a curious generalist with broad interests.\n\n")
		return
	}
	writeProfileLine(b, "Professional context", prefs.ProfessionalContext)
	writeProfileLine(b, "Learning goals", prefs.LearningGoals)
	writeProfileLine(b, "Hobbies and interests", prefs.Hobbies)
	writeProfileLine(b, "Topics to avoid", prefs.TopicsToAvoid)
	b.WriteString("\n")
}

func writeProfileLine(b *strings.Builder, label string, value *string) {
	v := "not specified"
	if value != nil && strings.TrimSpace(*value) != "" {
		v = strings.TrimSpace(*value)
	}
	fmt.Fprintf(b, "%s: %s\n", label, v)
}

func writeResourceBlock(b *strings.Builder, res *domain.Resource) {
	b.WriteString("## Content metadata\n")
	fmt.Fprintf(b, "Title: %s\n", res.Title)
	fmt.Fprintf(b, "URL: %s\n", res.URL)
	if res.Description != nil && strings.TrimSpace(*res.Description) != "" {
		fmt.Fprintf(b, "Description: %s\n", *res.Description)
	}

	switch res.Kind {
	case domain.KindVideo:
		b.WriteString("Content type: YouTube video\n")
		if v := res.Video; v != nil {
			if v.ChannelName != "" {
				fmt.Fprintf(b, "Channel: %s\n", v.ChannelName)
			}
			if v.Duration != nil {
				fmt.Fprintf(b, "Duration: %s\n", v.Duration.String())
			}
			if v.ViewCount > 0 {
				fmt.Fprintf(b, "Views: %d\n", v.ViewCount)
			}
		}
	case domain.KindArticle:
		b.WriteString("Content type: article or web page\n")
		if a := res.Article; a != nil {
			if a.SiteName != "" {
				fmt.Fprintf(b, "Site: %s\n", a.SiteName)
			}
			if a.Author != "" {
				fmt.Fprintf(b, "Author: %s\n", a.Author)
			}
			if a.ReadingTimeMinutes > 0 {
				fmt.Fprintf(b, "Estimated reading time: %d min\n", a.ReadingTimeMinutes)
			}
		}
	}
	b.WriteString("\n")
}

func writeExtraContent(b *strings.Builder, extraContent string) {
	extraContent = strings.TrimSpace(extraContent)
	if extraContent == "" {
		return
	}
	b.WriteString("## Content\n")
	b.WriteString(extraContent)
	b.WriteString("\n\n")
}
