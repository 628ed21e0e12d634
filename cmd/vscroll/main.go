package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/vscroll/internal/exporter"
	"github.com/nikbrunner/vscroll/internal/importer"
	"github.com/nikbrunner/vscroll/internal/log"
	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/nikbrunner/vscroll/internal/picker"
	"github.com/nikbrunner/vscroll/internal/report"
	"github.com/nikbrunner/vscroll/internal/search"
	"github.com/nikbrunner/vscroll/internal/storage"
	"github.com/nikbrunner/vscroll/internal/tui"
	"github.com/nikbrunner/vscroll/internal/window"
)

func main() {
	if path := os.Getenv("VSCROLL_LOG"); path != "" {
		if err := log.EnableFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		log.SetLevel(slog.LevelDebug)
		defer log.Disable()
	}

	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "seed":
			var count int
			if len(os.Args) >= 3 {
				n, err := strconv.Atoi(os.Args[2])
				if err != nil || n <= 0 {
					fmt.Fprintf(os.Stderr, "Usage: vscroll seed [count]\n")
					os.Exit(1)
				}
				count = n
			}
			runSeed(count)
			return
		case "window":
			if len(os.Args) < 4 {
				fmt.Fprintf(os.Stderr, "Usage: vscroll window <scrollTop> <viewportHeight>\n")
				os.Exit(1)
			}
			scrollTop, err1 := strconv.Atoi(os.Args[2])
			height, err2 := strconv.Atoi(os.Args[3])
			if err := errors.Join(err1, err2); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing arguments: %v\n", err)
				os.Exit(1)
			}
			runWindow(scrollTop, height)
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: vscroll import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			// Export with optional path
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI(0)
}

func printHelp() {
	help := `vscroll - virtual list over a large user dataset

Usage:
  vscroll                         Open the virtual list
  vscroll <query>                 Fuzzy search users → select → open the list at that row
                                  (an exact user ID opens its row directly)
  vscroll seed [count]            Generate fake users (default: seedCount from config)
  vscroll window <top> <height>   Print the rows materialized for a scroll position
  vscroll export [path]           Export an HTML snapshot of the first window
  vscroll import <file>           Merge users from an HTML snapshot
  vscroll help                    Show this help

TUI Keybindings:
  Navigation:
    j/k         Scroll one line down/up
    ctrl+d/u    Half page down/up
    space/b     Page down/up
    gg/G        Jump to top/bottom
    wheel       Scroll three lines

  Actions:
    :           Jump to row number
    Y           Copy the top row to clipboard

  Other:
    ?           Toggle hints
    q           Quit

Data Storage:
  ~/.config/vscroll/config.json
  ~/.config/vscroll/users.db      (source: "sqlite")
  ~/.config/vscroll/users.json    (source: "json")

Set VSCROLL_LOG=<file> to write debug logs.
`
	fmt.Print(help)
}

// openBackend loads the config and opens the configured backend.
func openBackend() (*storage.Config, storage.Backend) {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}

	cfg, err := storage.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dir, err := storage.DefaultDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting data directory: %v\n", err)
		os.Exit(1)
	}

	backend, err := storage.OpenBackend(cfg, dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s storage: %v\n", cfg.Source, err)
		os.Exit(1)
	}
	log.Debug("backend opened", "source", cfg.Source, "dir", dir)
	return cfg, backend
}

// listConfig builds the window configuration for count rows.
func listConfig(cfg *storage.Config, count int) window.Config {
	listCfg, err := window.NewConfig(count,
		window.WithItemHeight(cfg.ItemHeight),
		window.WithTolerance(cfg.ToleranceOrDefault()),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
		os.Exit(1)
	}
	return listCfg
}

// countRows returns the number of stored users, exiting when there are none.
func countRows(backend storage.Backend) int {
	count, err := backend.Count()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error counting users: %v\n", err)
		os.Exit(1)
	}
	if count == 0 {
		fmt.Println("No users yet. Run 'vscroll seed' first.")
		os.Exit(0)
	}
	return count
}

// runTUI runs the full interactive list with initialIndex at the top.
func runTUI(initialIndex int) {
	cfg, backend := openBackend()
	defer backend.Close()

	listCfg := listConfig(cfg, countRows(backend))

	app, err := tui.NewApp(tui.AppParams{
		Source:       backend,
		Config:       listCfg,
		InitialIndex: initialIndex,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating list: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
	finalModel.(tui.App).Close()
}

// runQuickSearch performs a fuzzy search and opens the list at the chosen user.
func runQuickSearch(query string) {
	_, backend := openBackend()
	dataset, err := backend.Load()
	backend.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading users: %v\n", err)
		os.Exit(1)
	}

	// An exact user ID opens the list at that row without searching
	if index := dataset.IndexOf(query); index >= 0 {
		runTUI(index)
		return
	}

	// Search
	results := search.FuzzySearchUsers(dataset, query)

	if len(results) == 0 {
		fmt.Printf("No users found for '%s'\n", query)
		os.Exit(0)
	}

	var selected *search.SearchResult

	if len(results) == 1 {
		// Single result - select it directly
		selected = &results[0]
	} else {
		// Multiple results - show picker
		p := picker.New(results, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.Selected()
	}

	if selected == nil {
		os.Exit(0)
	}

	runTUI(selected.Index)
}

// runSeed replaces the stored users with count generated ones.
func runSeed(count int) {
	cfg, backend := openBackend()
	defer backend.Close()

	if count == 0 {
		count = cfg.SeedCount
	}
	if count <= 0 {
		fmt.Fprintf(os.Stderr, "Error seeding users: count must be a positive number, got %d\n", count)
		os.Exit(1)
	}

	start := time.Now()
	dataset := &model.Dataset{Users: model.GenerateUsers(count, uint64(start.UnixNano()))}
	if err := backend.Save(dataset); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving users: %v\n", err)
		os.Exit(1)
	}

	log.Info("seeded", "count", count, "elapsed", time.Since(start))
	fmt.Printf("Seeded %d users into %s\n", count, backend.Path())
}

// runWindow prints the rows materialized for one scroll position. With no
// stored users the configured seed count stands in for the item count.
func runWindow(scrollTop, viewportHeight int) {
	cfg, backend := openBackend()
	count, err := backend.Count()
	backend.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error counting users: %v\n", err)
		os.Exit(1)
	}
	if count == 0 {
		count = cfg.SeedCount
	}

	listCfg := listConfig(cfg, count)
	vp := window.ViewportState{ScrollTop: max(scrollTop, 0), Height: max(viewportHeight, 0)}
	fmt.Print(report.Window(listCfg, vp))
}

// runImport handles the import subcommand.
func runImport(filePath string) {
	_, backend := openBackend()
	defer backend.Close()

	dataset, err := backend.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading users: %v\n", err)
		os.Exit(1)
	}

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	snapshot, err := importer.ParseSnapshot(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	added, skipped := dataset.ImportMerge(snapshot.Users())

	if err := backend.Save(dataset); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving users: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d users into %s", added, backend.Path())
	if skipped > 0 {
		fmt.Printf(" (%d duplicates skipped)", skipped)
	}
	fmt.Println()
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	// Determine output path
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	_, backend := openBackend()
	dataset, err := backend.Load()
	backend.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading users: %v\n", err)
		os.Exit(1)
	}
	if dataset.Len() == 0 {
		fmt.Println("No users yet. Run 'vscroll seed' first.")
		os.Exit(0)
	}

	opts := exporter.DefaultOptions()
	frame, err := exporter.Snapshot(dataset.Len(), dataset.At, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering snapshot: %v\n", err)
		os.Exit(1)
	}

	// Write to file
	html := exporter.ExportHTML(frame, opts.ItemHeight)
	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported rows %d-%d of %d to %s\n",
		frame.Range.Start, frame.Range.End, dataset.Len(), outputPath)
}
