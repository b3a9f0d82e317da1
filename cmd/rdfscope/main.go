// cmd/rdfscope/main.go
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rdfscope/internal/graph"
	"rdfscope/internal/ui"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "rdfscope [file]",
	Short: "Explore an RDF dataset with live SPARQL queries",
	Long: `rdfscope opens a full-screen terminal session with a SPARQL query pane and a
live result pane. The optional argument is a Turtle file loaded into an
in-memory triple store before the session starts.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging to debug.log")
}

func run(cmd *cobra.Command, args []string) error {
	if debug {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		// stray writes to stderr would bleed into the alternate screen
		log.SetOutput(io.Discard)
	}

	store, err := graph.NewStore()
	if err != nil {
		return err
	}
	defer store.Close()

	// a load failure is fatal: the session must not start over a partially
	// initialized store
	if len(args) == 1 {
		if err := loadDataset(store, args[0]); err != nil {
			return err
		}
	}

	p := tea.NewProgram(ui.NewModel(store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}

// loadDataset resolves path, derives the file:// base identifier and feeds
// the file to the store as Turtle.
func loadDataset(store *graph.Store, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	f, err := os.Open(abs)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	if err := store.Load(f, "file://"+abs, graph.Turtle); err != nil {
		return fmt.Errorf("load %s: %w", abs, err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
