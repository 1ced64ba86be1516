package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rfenaux/agentdeck/internal/markdown"
	"github.com/rfenaux/agentdeck/internal/ui"
	"github.com/rfenaux/agentdeck/task"
)

const taskDetailLineWidth = 80

// printTaskDetail prints detailed information about a task.
func printTaskDetail(t task.Task, highlight func(string) string) {
	fmt.Printf("%s       %s\n", ui.StyleLabel("ID:"), highlight(t.ID))
	fmt.Printf("%s    %s\n", ui.StyleLabel("Title:"), t.Title)
	fmt.Printf("%s   %s\n", ui.StyleLabel("Status:"), ui.StyleStatus(string(t.Status)))
	fmt.Printf("%s %s (%d)\n", ui.StyleLabel("Priority:"), task.PriorityName(t.Priority), t.Priority)
	fmt.Printf("%s  %s (%s)\n", ui.StyleLabel("Created:"), t.CreatedAt.Format("2006-01-02 15:04:05"), ui.FormatTimeAgo(t.CreatedAt, time.Now()))
	fmt.Printf("%s  %s\n", ui.StyleLabel("Updated:"), t.UpdatedAt.Format("2006-01-02 15:04:05"))

	if t.StartedAt != nil {
		fmt.Printf("%s  %s\n", ui.StyleLabel("Started:"), t.StartedAt.Format("2006-01-02 15:04:05"))
	}
	if t.CompletedAt != nil {
		fmt.Printf("%s %s\n", ui.StyleLabel("Completed:"), t.CompletedAt.Format("2006-01-02 15:04:05"))
	}
	if t.CancelledAt != nil {
		fmt.Printf("%s %s\n", ui.StyleLabel("Cancelled:"), t.CancelledAt.Format("2006-01-02 15:04:05"))
	}
	if t.CancelReason != "" {
		fmt.Printf("%s %s\n", ui.StyleLabel("Cancel Reason:"), ui.ReflowParagraphs(t.CancelReason, taskDetailLineWidth))
	}

	if len(t.Blockers) > 0 {
		highlighted := make([]string, 0, len(t.Blockers))
		for _, blockerID := range t.Blockers {
			highlighted = append(highlighted, highlight(blockerID))
		}
		fmt.Printf("%s %s\n", ui.StyleLabel("Blockers:"), strings.Join(highlighted, ", "))
	}

	if t.Description != "" {
		fmt.Printf("\n%s\n%s\n", ui.StyleLabel("Description:"), formatTaskDescription(t.Description))
	}
}

func formatTaskDescription(value string) string {
	rendered := markdown.SafeRender(taskDetailLineWidth, 2, []byte(value))
	if strings.TrimSpace(string(rendered)) == "" {
		return "-"
	}
	return strings.TrimRight(string(rendered), "\n")
}
