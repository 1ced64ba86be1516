package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rfenaux/agentdeck/graph"
	"github.com/rfenaux/agentdeck/task"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

// task create
var taskCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskCreate,
}

var (
	taskCreatePriority    int
	taskCreateDescription string
	taskCreateActive      bool
	taskCreateBlockers    []string
)

// task update
var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>...",
	Short: "Update one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskUpdate,
}

var (
	taskUpdateTitle       string
	taskUpdateDescription string
	taskUpdateStatus      string
	taskUpdatePriority    int
)

// task pause
var taskPauseCmd = &cobra.Command{
	Use:   "pause <id>...",
	Short: "Pause one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskPause,
}

// task resume
var taskResumeCmd = &cobra.Command{
	Use:   "resume <id>...",
	Short: "Mark one or more tasks as active",
	Aliases: []string{
		"start",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runTaskResume,
}

// task complete
var taskCompleteCmd = &cobra.Command{
	Use:   "complete <id>...",
	Short: "Mark one or more tasks as completed and unblock their dependents",
	Aliases: []string{
		"done",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runTaskComplete,
}

// task cancel
var taskCancelCmd = &cobra.Command{
	Use:   "cancel <id>...",
	Short: "Cancel one or more tasks and unblock their dependents",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskCancel,
}

var taskCancelReason string

// task show
var taskShowCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskShow,
}

var taskShowJSON bool

// task list
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runTaskList,
}

var (
	taskListStatus   string
	taskListPriority int
	taskListIDs      string
	taskListTitle    string
	taskListAll      bool
	taskListJSON     bool
)

// task ready
var taskReadyCmd = &cobra.Command{
	Use:   "ready",
	Short: "List paused tasks with no unresolved blockers",
	RunE:  runTaskReady,
}

var (
	taskReadyLimit int
	taskReadyJSON  bool
)

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskCreateCmd, taskUpdateCmd, taskPauseCmd, taskResumeCmd, taskCompleteCmd,
		taskCancelCmd, taskShowCmd, taskListCmd, taskReadyCmd)
	addDescriptionFlagAliases(taskCreateCmd, taskUpdateCmd)

	// task create flags
	taskCreateCmd.Flags().IntVarP(&taskCreatePriority, "priority", "p", task.PriorityMedium, "Priority (0=critical, 1=high, 2=medium, 3=low, 4=backlog)")
	taskCreateCmd.Flags().StringVarP(&taskCreateDescription, "description", "d", "", "Description")
	taskCreateCmd.Flags().BoolVar(&taskCreateActive, "active", false, "Start the task immediately instead of paused")
	taskCreateCmd.Flags().StringArrayVar(&taskCreateBlockers, "blocker", nil, "Blocker task ID or unique prefix (repeatable)")

	// task update flags
	taskUpdateCmd.Flags().StringVar(&taskUpdateTitle, "title", "", "New title")
	taskUpdateCmd.Flags().StringVarP(&taskUpdateDescription, "description", "d", "", "New description")
	taskUpdateCmd.Flags().StringVar(&taskUpdateStatus, "status", "", "New status (active, paused, blocked, completed, cancelled)")
	taskUpdateCmd.Flags().IntVar(&taskUpdatePriority, "priority", 0, "New priority (0-4)")

	// task cancel flags
	taskCancelCmd.Flags().StringVar(&taskCancelReason, "reason", "", "Reason for cancellation")

	// task show flags
	taskShowCmd.Flags().BoolVar(&taskShowJSON, "json", false, "Output as JSON")

	// task list flags
	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "Filter by status")
	taskListCmd.Flags().IntVar(&taskListPriority, "priority", -1, "Filter by priority (0-4)")
	taskListCmd.Flags().StringVar(&taskListIDs, "id", "", "Filter by IDs (comma-separated)")
	taskListCmd.Flags().StringVar(&taskListTitle, "title", "", "Filter by title substring")
	taskListCmd.Flags().BoolVarP(&taskListAll, "all", "a", false, "Include completed and cancelled tasks")
	taskListCmd.Flags().BoolVar(&taskListJSON, "json", false, "Output as JSON")

	// task ready flags
	taskReadyCmd.Flags().IntVar(&taskReadyLimit, "limit", 0, "Maximum number of tasks to show (0 = config default)")
	taskReadyCmd.Flags().BoolVar(&taskReadyJSON, "json", false, "Output as JSON")
}

func taskCreatePriorityValue(cmd *cobra.Command) *int {
	if cmd.Flags().Changed("priority") {
		return task.PriorityPtr(taskCreatePriority)
	}
	return nil
}

func runTaskCreate(cmd *cobra.Command, args []string) error {
	store, _, err := openTaskStore()
	if err != nil {
		return err
	}

	status := task.StatusPaused
	if taskCreateActive {
		status = task.StatusActive
	}

	created, err := store.Create(args[0], task.CreateOptions{
		Status:      status,
		Priority:    taskCreatePriorityValue(cmd),
		Description: taskCreateDescription,
		Blockers:    taskCreateBlockers,
	})
	if err != nil {
		return err
	}

	highlight, err := taskLogHighlighter(store)
	if err != nil {
		return err
	}
	fmt.Printf("Created task %s: %s\n", highlight(created.ID), created.Title)
	if created.Status == task.StatusBlocked {
		fmt.Printf("Task starts blocked (%d blockers)\n", len(created.Blockers))
	}
	return nil
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	store, _, err := openTaskStore()
	if err != nil {
		return err
	}

	opts := task.UpdateOptions{}
	if cmd.Flags().Changed("title") {
		opts.Title = &taskUpdateTitle
	}
	if cmd.Flags().Changed("description") {
		opts.Description = &taskUpdateDescription
	}
	if cmd.Flags().Changed("status") {
		status := task.Status(taskUpdateStatus)
		opts.Status = &status
	}
	if cmd.Flags().Changed("priority") {
		opts.Priority = &taskUpdatePriority
	}

	if opts.Title == nil && opts.Description == nil && opts.Status == nil && opts.Priority == nil {
		return fmt.Errorf("at least one update flag is required")
	}

	updated, err := store.Update(args, opts)
	if err != nil {
		return err
	}

	return printTaskActionResults(store, "Updated", updated)
}

func runTaskPause(cmd *cobra.Command, args []string) error {
	return runTaskAction("Paused", func(store *task.Store) ([]task.Task, error) {
		return store.Pause(args)
	})
}

func runTaskResume(cmd *cobra.Command, args []string) error {
	return runTaskAction("Resumed", func(store *task.Store) ([]task.Task, error) {
		return store.Resume(args)
	})
}

func runTaskComplete(cmd *cobra.Command, args []string) error {
	return runTaskTerminalAction("Completed", func(store *task.Store) ([]task.Task, error) {
		return store.Complete(args)
	})
}

func runTaskCancel(cmd *cobra.Command, args []string) error {
	return runTaskTerminalAction("Cancelled", func(store *task.Store) ([]task.Task, error) {
		return store.Cancel(args, taskCancelReason)
	})
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	store, _, err := openTaskStore()
	if err != nil {
		return err
	}

	tasks, err := store.Show(args)
	if err != nil {
		return err
	}

	if taskShowJSON {
		return encodeJSONToStdout(tasks)
	}

	highlight, err := taskLogHighlighter(store)
	if err != nil {
		return err
	}
	for i, t := range tasks {
		if i > 0 {
			fmt.Println("---")
		}
		printTaskDetail(t, highlight)
	}
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	store, _, err := openTaskStore()
	if err != nil {
		return err
	}

	filter := task.ListFilter{
		TitleSubstring:  taskListTitle,
		IncludeTerminal: taskListAll,
	}
	if taskListStatus != "" {
		status := task.Status(taskListStatus)
		filter.Status = &status
	}
	if cmd.Flags().Changed("priority") {
		if err := task.ValidatePriority(taskListPriority); err != nil {
			return err
		}
		filter.Priority = &taskListPriority
	}
	filter.IDs = parseIDList(taskListIDs)

	tasks, err := store.List(filter)
	if err != nil {
		return err
	}

	if taskListJSON {
		return encodeJSONToStdout(tasks)
	}

	index, err := store.IDIndex()
	if err != nil {
		return err
	}
	printTaskTable(tasks, index.PrefixLengths(), time.Now())
	return nil
}

func runTaskReady(cmd *cobra.Command, args []string) error {
	store, cfg, err := openTaskStore()
	if err != nil {
		return err
	}

	limit := taskReadyLimit
	if !cmd.Flags().Changed("limit") && cfg.List.ReadyLimit > 0 {
		limit = cfg.List.ReadyLimit
	}

	tasks, err := store.Ready(limit)
	if err != nil {
		return err
	}

	if taskReadyJSON {
		return encodeJSONToStdout(tasks)
	}

	if len(tasks) == 0 {
		fmt.Println("No ready tasks found.")
		return nil
	}

	index, err := store.IDIndex()
	if err != nil {
		return err
	}
	printTaskTable(tasks, index.PrefixLengths(), time.Now())
	return nil
}

func runTaskAction(verb string, action func(*task.Store) ([]task.Task, error)) error {
	store, _, err := openTaskStore()
	if err != nil {
		return err
	}

	items, err := action(store)
	if err != nil {
		return err
	}

	return printTaskActionResults(store, verb, items)
}

// runTaskTerminalAction applies a terminal status change and then removes
// the finished tasks from their dependents' blocker lists.
func runTaskTerminalAction(verb string, action func(*task.Store) ([]task.Task, error)) error {
	store, _, err := openTaskStore()
	if err != nil {
		return err
	}

	items, err := action(store)
	if err != nil {
		return err
	}

	if err := printTaskActionResults(store, verb, items); err != nil {
		return err
	}

	engine := graph.New(store)
	highlight, err := taskLogHighlighter(store)
	if err != nil {
		return err
	}

	for _, item := range items {
		results, err := engine.UnblockDependents(item.ID)
		if err != nil {
			return err
		}
		for _, result := range results {
			if result.Unblocked {
				fmt.Printf("Unblocked task %s\n", highlight(result.ID))
			}
		}
	}
	return nil
}

func printTaskActionResults(store *task.Store, verb string, items []task.Task) error {
	highlight, err := taskLogHighlighter(store)
	if err != nil {
		return err
	}

	for _, item := range items {
		fmt.Printf("%s task %s: %s\n", verb, highlight(item.ID), item.Title)
	}
	return nil
}
