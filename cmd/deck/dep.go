package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rfenaux/agentdeck/graph"
)

var depCmd = &cobra.Command{
	Use:   "dep",
	Short: "Manage task dependencies",
}

// dep add
var depAddCmd = &cobra.Command{
	Use:   "add <task-id> <blocker-id>",
	Short: "Mark a task as blocked by another task",
	Args:  cobra.ExactArgs(2),
	RunE:  runDepAdd,
}

// dep remove
var depRemoveCmd = &cobra.Command{
	Use:   "remove <task-id> <blocker-id>",
	Short: "Remove a blocker from a task",
	Aliases: []string{
		"rm",
	},
	Args: cobra.ExactArgs(2),
	RunE: runDepRemove,
}

// dep tree
var depTreeCmd = &cobra.Command{
	Use:   "tree <id>",
	Short: "Show the dependent tree rooted at a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runDepTree,
}

// dep chain
var depChainCmd = &cobra.Command{
	Use:   "chain <id>",
	Short: "Show every task transitively blocking a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runDepChain,
}

var depChainDependents bool

// dep impact
var depImpactCmd = &cobra.Command{
	Use:   "impact",
	Short: "Rank tasks by how many tasks they block",
	Args:  cobra.NoArgs,
	RunE:  runDepImpact,
}

var (
	depImpactMin  int
	depImpactJSON bool
)

// dep info
var depInfoCmd = &cobra.Command{
	Use:   "info [id]",
	Short: "Show blocker and dependent details for tasks",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDepInfo,
}

var depInfoJSON bool

// dep prune
var depPruneCmd = &cobra.Command{
	Use:   "prune <id>",
	Short: "Remove blocker IDs that no longer resolve to any task",
	Args:  cobra.ExactArgs(1),
	RunE:  runDepPrune,
}

func init() {
	rootCmd.AddCommand(depCmd)
	depCmd.AddCommand(depAddCmd, depRemoveCmd, depTreeCmd, depChainCmd, depImpactCmd, depInfoCmd, depPruneCmd)

	// dep chain flags
	depChainCmd.Flags().BoolVar(&depChainDependents, "dependents", false, "Walk dependents instead of blockers")

	// dep impact flags
	depImpactCmd.Flags().IntVar(&depImpactMin, "min", 0, "Minimum dependent count (0 = config default)")
	depImpactCmd.Flags().BoolVar(&depImpactJSON, "json", false, "Output as JSON")

	// dep info flags
	depInfoCmd.Flags().BoolVar(&depInfoJSON, "json", false, "Output as JSON")
}

func runDepAdd(cmd *cobra.Command, args []string) error {
	engine, store, _, err := openEngine()
	if err != nil {
		return err
	}

	taskID, err := resolveTaskID(store, args[0])
	if err != nil {
		return err
	}
	blockerID, err := resolveTaskID(store, args[1])
	if err != nil {
		return err
	}

	outcome, err := engine.AddBlocker(taskID, blockerID)
	if err != nil {
		return err
	}

	highlight, err := taskLogHighlighter(store)
	if err != nil {
		return err
	}

	if outcome == graph.AlreadyBlocked {
		fmt.Printf("Task %s is already blocked by %s\n", highlight(taskID), highlight(blockerID))
		return nil
	}
	fmt.Printf("Added blocker: %s is blocked by %s\n", highlight(taskID), highlight(blockerID))
	return nil
}

func runDepRemove(cmd *cobra.Command, args []string) error {
	engine, store, _, err := openEngine()
	if err != nil {
		return err
	}

	taskID, err := resolveTaskID(store, args[0])
	if err != nil {
		return err
	}
	// The blocker may no longer exist; fall back to the raw argument so
	// stale edges stay removable.
	blockerID, err := resolveTaskID(store, args[1])
	if err != nil {
		blockerID = args[1]
	}

	outcome, err := engine.RemoveBlocker(taskID, blockerID)
	if err != nil {
		return err
	}

	highlight, err := taskLogHighlighter(store)
	if err != nil {
		return err
	}

	if outcome == graph.NoSuchEdge {
		fmt.Printf("Task %s is not blocked by %s\n", highlight(taskID), blockerID)
		return nil
	}
	fmt.Printf("Removed blocker %s from task %s\n", blockerID, highlight(taskID))
	return nil
}

func runDepTree(cmd *cobra.Command, args []string) error {
	engine, store, _, err := openEngine()
	if err != nil {
		return err
	}

	id, err := resolveTaskID(store, args[0])
	if err != nil {
		return err
	}

	tree, err := engine.DependencyTree(id)
	if err != nil {
		return err
	}

	fmt.Print(tree)
	return nil
}

func runDepChain(cmd *cobra.Command, args []string) error {
	engine, store, _, err := openEngine()
	if err != nil {
		return err
	}

	id, err := resolveTaskID(store, args[0])
	if err != nil {
		return err
	}

	var chain []string
	if depChainDependents {
		chain, err = engine.DependentChain(id)
	} else {
		chain, err = engine.BlockingChain(id)
	}
	if err != nil {
		return err
	}

	if len(chain) == 0 {
		if depChainDependents {
			fmt.Println("No dependents.")
		} else {
			fmt.Println("No blockers.")
		}
		return nil
	}

	highlight, err := taskLogHighlighter(store)
	if err != nil {
		return err
	}
	for _, chainID := range chain {
		fmt.Println(highlight(chainID))
	}
	return nil
}

func runDepImpact(cmd *cobra.Command, args []string) error {
	engine, store, cfg, err := openEngine()
	if err != nil {
		return err
	}

	min := depImpactMin
	if !cmd.Flags().Changed("min") && cfg.List.ImpactThreshold > 0 {
		min = cfg.List.ImpactThreshold
	}

	entries, err := engine.HighImpactBlockers(min)
	if err != nil {
		return err
	}

	if depImpactJSON {
		return encodeJSONToStdout(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No high-impact blockers found.")
		return nil
	}

	highlight, err := taskLogHighlighter(store)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Printf("%s blocks %d tasks\n", highlight(entry.ID), entry.Dependents)
	}
	return nil
}

func runDepInfo(cmd *cobra.Command, args []string) error {
	engine, store, _, err := openEngine()
	if err != nil {
		return err
	}

	info, err := engine.AllDependencyInfo()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		id, err := resolveTaskID(store, args[0])
		if err != nil {
			return err
		}
		entry, ok := info[id]
		if !ok {
			return fmt.Errorf("no active task with id %s", id)
		}
		if depInfoJSON {
			return encodeJSONToStdout(entry)
		}
		highlight, err := taskLogHighlighter(store)
		if err != nil {
			return err
		}
		printDepInfo(entry, highlight)
		return nil
	}

	ordered := make([]graph.DependencyInfo, 0, len(info))
	for _, entry := range info {
		ordered = append(ordered, entry)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].TaskID < ordered[j].TaskID
	})

	if depInfoJSON {
		return encodeJSONToStdout(ordered)
	}

	highlight, err := taskLogHighlighter(store)
	if err != nil {
		return err
	}
	for i, entry := range ordered {
		if i > 0 {
			fmt.Println()
		}
		printDepInfo(entry, highlight)
	}
	return nil
}

func printDepInfo(entry graph.DependencyInfo, highlight func(string) string) {
	fmt.Printf("Task %s\n", highlight(entry.TaskID))
	fmt.Printf("  Blocked:    %t\n", entry.IsBlocked)
	fmt.Printf("  Blockers:   %s\n", formatIDList(entry.Blockers, highlight))
	fmt.Printf("  Dependents: %s\n", formatIDList(entry.Dependents, highlight))
}

func formatIDList(ids []string, highlight func(string) string) string {
	if len(ids) == 0 {
		return "-"
	}
	highlighted := make([]string, 0, len(ids))
	for _, id := range ids {
		highlighted = append(highlighted, highlight(id))
	}
	return strings.Join(highlighted, ", ")
}

func runDepPrune(cmd *cobra.Command, args []string) error {
	engine, store, _, err := openEngine()
	if err != nil {
		return err
	}

	id, err := resolveTaskID(store, args[0])
	if err != nil {
		return err
	}

	pruned, err := engine.PruneStaleBlockers(id)
	if err != nil {
		return err
	}

	highlight, err := taskLogHighlighter(store)
	if err != nil {
		return err
	}

	if len(pruned) == 0 {
		fmt.Printf("No stale blockers on task %s\n", highlight(id))
		return nil
	}
	fmt.Printf("Pruned %d stale blockers from task %s: %s\n", len(pruned), highlight(id), strings.Join(pruned, ", "))
	return nil
}
