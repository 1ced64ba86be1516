package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rfenaux/agentdeck/internal/ui"
	"github.com/rfenaux/agentdeck/task"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []task.Task, prefixLengths map[string]int, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, prefixLengths, ui.HighlightID, now))
}

func formatTaskTable(tasks []task.Task, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "STATUS", "AGE", "DURATION", "BLOCKERS", "TITLE"}, len(tasks))

	if prefixLengths == nil {
		prefixLengths = taskIDPrefixLengths(tasks)
	}

	for _, t := range tasks {
		title := ui.TruncateTableCell(t.Title)
		highlighted := highlight(t.ID, ui.PrefixLength(prefixLengths, t.ID))
		row := []string{
			highlighted,
			priorityShort(t.Priority),
			ui.StyleStatus(string(t.Status)),
			formatTaskAge(t, now),
			formatTaskDuration(t, now),
			blockerCount(t),
			title,
		}
		builder.AddRow(row)
	}

	return builder.String()
}

func taskIDPrefixLengths(tasks []task.Task) map[string]int {
	index := task.NewIDIndex(tasks)
	return index.PrefixLengths()
}

func formatTaskAge(item task.Task, now time.Time) string {
	age, ok := task.AgeData(item, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(age)
}

func formatTaskDuration(item task.Task, now time.Time) string {
	duration, ok := task.DurationData(item, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(duration)
}

func blockerCount(item task.Task) string {
	if len(item.Blockers) == 0 {
		return "-"
	}
	return ui.StyleCount(strconv.Itoa(len(item.Blockers)))
}

// priorityShort returns a short representation of priority.
func priorityShort(p int) string {
	return "P" + strconv.Itoa(p)
}
