package tui

import "github.com/charmbracelet/lipgloss"

const logo = `
 ██╗████████╗ █████╗ ██████╗ ███████╗
 ██║╚══██╔══╝██╔══██╗██╔══██╗██╔════╝
 ██║   ██║   ███████║██████╔╝███████╗
 ██║   ██║   ██╔══██║██╔══██╗╚════██║
 ██║   ██║   ██║  ██║██████╔╝███████║
 ╚═╝   ╚═╝   ╚═╝  ╚═╝╚═════╝ ╚══════╝
`

// renderWelcome is the banner shown above an empty draft.
func (a *App) renderWelcome() string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		styleLogo.Render(logo),
		styleSubtitle.Render("Interactive guides from your content"),
		styleSubtitle.Render("\n/paste a file or /content some text to get started"),
	)
}

// centerVertically places content in the middle of the screen.
func (a *App) centerVertically(content string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}
