package discord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"calpages/internal/adapters/view"
)

const (
	embedColor         = 0x5865F2
	embedColorDisabled = 0x99AAB5

	// Discord limits.
	maxEmbeds           = 10
	maxEmbedTitle       = 256
	maxEmbedDescription = 4096
	maxEmbedsTotal      = 6000

	ellipsis = "…"
)

// BuildGroupEmbeds renders one embed per group, at most ten. membersLabel
// formats the membership badge. The combined text of all embeds stays within
// Discord's per-message limit; cards and groups past it are cut with "…".
func BuildGroupEmbeds(p view.Page, membersLabel func(count int) string) []*discordgo.MessageEmbed {
	groups := p.Groups
	if len(groups) > maxEmbeds {
		groups = groups[:maxEmbeds]
	}
	budget := maxEmbedsTotal
	embeds := make([]*discordgo.MessageEmbed, 0, len(groups))
	for _, g := range groups {
		title := truncate(g.Name, maxEmbedTitle)
		var footer string
		if g.ShowBadge {
			footer = membersLabel(g.MembershipCount)
		}
		// Stop when not even an ellipsis fits after the title and footer.
		fixed := textLen(title) + textLen(footer)
		if fixed+textLen(ellipsis) > budget {
			if len(embeds) > 0 {
				last := embeds[len(embeds)-1]
				last.Description = appendEllipsis(last.Description, budget+textLen(last.Description))
			}
			break
		}

		description := groupDescription(p.Labels, g.Cards, min(maxEmbedDescription, budget-fixed))
		budget -= fixed + textLen(description)

		embed := &discordgo.MessageEmbed{
			Title:       title,
			URL:         g.ProfileURL,
			Description: description,
			Color:       embedColor,
		}
		if g.Image != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: g.Image}
		}
		if footer != "" {
			embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
		}
		if allDisabled(g.Cards) {
			embed.Color = embedColorDisabled
		}
		embeds = append(embeds, embed)
	}
	return embeds
}

// FormatCard is one line of a group embed, e.g.
// "**[Intro](https://cal.example.com/alice/intro)** 15 mins · One-on-One".
func FormatCard(labels view.Labels, c view.Card) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("**[%s](%s)** %s · %s", c.Title, c.BookingURL, c.LengthLabel, c.SchedulingLabel))
	if c.Hidden {
		b.WriteString(" · _" + labels.Hidden + "_")
	}
	if c.Disabled {
		b.WriteString(" · ⚠️ " + labels.Disabled)
	}
	return b.String()
}

// groupDescription joins card lines, keeping the result within limit
// characters.
func groupDescription(labels view.Labels, cards []view.Card, limit int) string {
	var b strings.Builder
	n := 0
	for i, c := range cards {
		line := FormatCard(labels, c)
		sep := 0
		if i > 0 {
			sep = 1
		}
		if n+sep+textLen(line) > limit-textLen(ellipsis) {
			b.WriteString(ellipsis)
			break
		}
		if sep > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
		n += sep + textLen(line)
	}
	return b.String()
}

// appendEllipsis marks s as cut, keeping it within limit characters.
func appendEllipsis(s string, limit int) string {
	if strings.HasSuffix(s, ellipsis) {
		return s
	}
	if textLen(s)+textLen(ellipsis) <= limit {
		return s + ellipsis
	}
	return truncate(s, limit)
}

// truncate shortens s to at most limit characters, ending with "…" when cut.
func truncate(s string, limit int) string {
	if textLen(s) <= limit {
		return s
	}
	if limit < textLen(ellipsis) {
		return ""
	}
	runes := []rune(s)
	return string(runes[:limit-textLen(ellipsis)]) + ellipsis
}

func textLen(s string) int { return utf8.RuneCountInString(s) }

func allDisabled(cards []view.Card) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards {
		if !c.Disabled {
			return false
		}
	}
	return true
}
