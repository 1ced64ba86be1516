package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rfenaux/agentdeck/graph"
	"github.com/rfenaux/agentdeck/internal/config"
	"github.com/rfenaux/agentdeck/internal/paths"
	"github.com/rfenaux/agentdeck/internal/ui"
	"github.com/rfenaux/agentdeck/task"
)

func loadConfig() (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	return config.Load(cwd)
}

func openTaskStore() (*task.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, nil, err
	}

	store, err := task.Open(dataDir)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

func openEngine() (*graph.Engine, *task.Store, *config.Config, error) {
	store, cfg, err := openTaskStore()
	if err != nil {
		return nil, nil, nil, err
	}
	return graph.New(store), store, cfg, nil
}

func taskLogHighlighter(store *task.Store) (func(string) string, error) {
	index, err := store.IDIndex()
	if err != nil {
		return nil, err
	}
	return logHighlighter(index.PrefixLengths(), ui.HighlightID), nil
}

func logHighlighter(prefixLengths map[string]int, highlight func(string, int) string) func(string) string {
	return func(id string) string {
		if id == "" {
			return id
		}
		return highlight(id, ui.PrefixLength(prefixLengths, id))
	}
}

// resolveTaskID resolves a full ID or unique prefix against the store.
func resolveTaskID(store *task.Store, id string) (string, error) {
	index, err := store.IDIndex()
	if err != nil {
		return "", err
	}
	return index.Resolve(id)
}

func encodeJSONToStdout(value any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func parseIDList(value string) []string {
	if value == "" {
		return nil
	}

	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
