// Package ui renders settings and live status in the terminal.
package ui

import (
	"fmt"
	"strings"

	"analogtv/frontend"
	"analogtv/tuner"

	"github.com/charmbracelet/lipgloss"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

// RenderPlan draws a card describing the resolved tuning plan.
func RenderPlan(title string, p tuner.Plan) string {
	rows := []string{
		titleStyle.Render(title),
		row("Frequency", fmt.Sprintf("%.3f MHz", float64(p.FrequencyHz)/1e6)),
		row("Signal", requested(p.Signal.String(), p.Settings.SignalType().String())),
		row("Lines", fmt.Sprintf("%d @ %.3f fps", p.Timing.Lines, p.Timing.FrameRate)),
		row("Colour", fmt.Sprintf("%s %.6f MHz", p.Timing.Colour, p.Timing.Subcarrier/1e6)),
	}
	if p.Sound == nil {
		rows = append(rows, row("Sound", "none"))
	} else {
		primary, secondary := p.Sound.Frequencies(float64(p.FrequencyHz))
		rows = append(rows,
			row("SIF", requested(p.Sound.Standard.String(), p.Settings.SifStandard().String())),
			row("System", fmt.Sprintf("%s %s", p.Sound.System, p.Sound.Stereo)),
			row("Sound", fmt.Sprintf("%.4f MHz %s", primary/1e6, p.Sound.Primary.Modulation)),
		)
		if p.Sound.Secondary != nil {
			rows = append(rows, row("Sound 2", fmt.Sprintf("%.4f MHz %s", secondary/1e6, p.Sound.Secondary.Modulation)))
		}
	}
	if p.PositiveVideo() {
		rows = append(rows, row("Video", "positive modulation"))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func requested(resolved, asked string) string {
	if resolved == asked {
		return resolved
	}
	return fmt.Sprintf("%s (from %s)", resolved, asked)
}

// RenderEnumerants lists every signal type and SIF standard with its HAL value.
func RenderEnumerants() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Signal types") + "\n")
	for _, s := range frontend.SignalTypes() {
		b.WriteString(row(s.String(), fmt.Sprintf("%#x", int(s))) + "\n")
	}
	b.WriteString("\n" + titleStyle.Render("SIF standards") + "\n")
	for _, s := range frontend.SifStandards() {
		b.WriteString(row(s.String(), fmt.Sprintf("%#x", int(s))) + "\n")
	}
	return b.String()
}
