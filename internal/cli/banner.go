package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// PrintVersion renders the --version banner.
func PrintVersion(appName, version, repo string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["repo"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Printf("[%s] Builds acrostic puzzles from a quote and an attribution", appName)
	logger.Print("", "version", version)
	logger.Print("")
	logger.Print("use --help to see available options")
	logger.Print("")
	logger.Print("Find out more at", "repo", repo)
}

// Usage prints the subcommand summary, shown on bad/missing arguments.
func Usage(appName string) {
	log.Print(appName + " global {quotes|dict|trie|site|turtle}")
	log.Print(appName + " puzzle {quote|letters|answers|chat} <ids...>")
	log.Print(appName + " serve")
}
