package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m4ster-slave/profilegen/internal/models"
)

// Report is the complete, immutable input to one composition pass. The
// clock is injected so that composing the same Report twice yields
// byte-identical output.
type Report struct {
	Languages   []models.LanguageShare
	Stats       models.StatsSummary
	Events      []models.ActivityEvent
	Followers   int
	Stars       int
	Caption     string
	GeneratedAt time.Time
}

// DefaultCaption is used when Report.Caption is empty.
const DefaultCaption = "You’re coding at the bar ~ Im drunk at the office"

const (
	badgeOffset   = 4
	badgeMinWidth = 20

	barWidth           = 20
	languageNameWidth  = 12
	barAndPercentWidth = 26 // "[██...██] 100.0%"
	languageLineWidth  = languageNameWidth + barAndPercentWidth
	artColumn          = 50

	maxActivityRows = 5
	ruleWidth       = 60
)

// Compose assembles the final document: warning header with the figure
// interleaved against the badge stack, caption, languages with the small
// art trailing the bottom rows, stats table, activity log, closing note.
//
// Empty sections keep their surrounding structure; composition itself
// never fails.
func Compose(r Report) string {
	var b strings.Builder

	b.WriteString("> [!WARNING]\n> ```\n")
	writeHeader(&b, r.Followers, r.Stars)
	b.WriteString("> ```\n")

	caption := r.Caption
	if caption == "" {
		caption = DefaultCaption
	}
	fmt.Fprintf(&b, "> <p>%s</p>\n\n", caption)
	b.WriteString("---\n\n")

	writeLanguages(&b, r.Languages)

	b.WriteString("#### 📊 Stats\n```\n")
	b.WriteString(StatsTable(r.Stats))
	b.WriteString("\n```\n\n")

	writeActivity(&b, r.Events, r.GeneratedAt)

	b.WriteString("> [!NOTE]\n")
	b.WriteString(`> <p align="center">This README is <b>auto-generated</b> with Go and Actions - Credits to the original creator is <a href="https://github.com/vxfemboy/vxfemboy/">@vxfemboy</a></p>`)

	return b.String()
}

// writeHeader zips the figure against a vertical badge stack. Badges
// start badgeOffset rows down; either column may run out before the
// other, the remaining rows keep their alignment.
func writeHeader(b *strings.Builder, followers, stars int) {
	headerLines := strings.Split(figure, "\n")

	badges := Badge("Followers", strconv.Itoa(followers), badgeMinWidth) +
		"\n\n" +
		Badge("Stars", strconv.Itoa(stars), badgeMinWidth)
	badgeLines := strings.Split(badges, "\n")

	// The figure column is padded to half the widest figure line's byte
	// length. The halving is arbitrary visual tuning for the multibyte
	// art block, kept as-is for layout parity.
	maxHeaderWidth := 0
	for _, l := range headerLines {
		if len(l) > maxHeaderWidth {
			maxHeaderWidth = len(l)
		}
	}
	maxHeaderWidth /= 2

	rows := len(headerLines)
	if n := len(badgeLines) + badgeOffset; n > rows {
		rows = n
	}

	for i := 0; i < rows; i++ {
		var header, badge string
		if i < len(headerLines) {
			header = headerLines[i]
		}
		if i >= badgeOffset && i-badgeOffset < len(badgeLines) {
			badge = badgeLines[i-badgeOffset]
		}
		fmt.Fprintf(b, "> %-*s %s\n", maxHeaderWidth+2, header, badge)
	}
}

// writeLanguages emits one bar row per language. The bottom
// min(len(smallArt), len(languages)) rows are padded to a fixed line
// width and suffixed with one small-art line right-aligned at artColumn;
// with fewer languages than art lines, the bottom of the art block wins.
func writeLanguages(b *strings.Builder, langs []models.LanguageShare) {
	b.WriteString("#### 🛠️ Languages\n```css\n")

	artStart := len(langs) - len(smallArt)
	for i, l := range langs {
		line := fmt.Sprintf("%-*s %s %.1f%%", languageNameWidth, l.Name, Bar(l.Percent, barWidth), l.Percent)
		if i >= artStart {
			fmt.Fprintf(b, "%-*s %*s\n", languageLineWidth, line, artColumn, smallArt[i-artStart])
		} else {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	b.WriteString("```\n\n")
}

func writeActivity(b *strings.Builder, events []models.ActivityEvent, generatedAt time.Time) {
	rule := strings.Repeat("-", ruleWidth)

	b.WriteString("#### 🔥 Activity\n```\n")
	b.WriteString(rule)
	b.WriteByte('\n')

	n := len(events)
	if n > maxActivityRows {
		n = maxActivityRows
	}
	for _, e := range events[:n] {
		b.WriteString(ActivityRow(e))
		b.WriteByte('\n')
	}

	b.WriteString(rule)
	b.WriteString("\n\n")
	fmt.Fprintf(b, "Last updated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString("```\n\n")
}
