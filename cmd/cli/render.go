package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/limaJavier/semplanner/pkg/schedule"
)

var (
	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6BCB77"))
	emptyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5B8DEF"))
)

// renderPlacement lists the schedules obtained after placing a course, numbered from 1
func renderPlacement(id catalog.CourseID, schedules []schedule.Schedule) string {
	var builder strings.Builder

	count := fmt.Sprintf("Found %v schedule(s) for %v:", len(schedules), id)
	if len(schedules) == 0 {
		builder.WriteString(emptyStyle.Render(count))
	} else {
		builder.WriteString(countStyle.Render(count))
	}
	builder.WriteString("\n")

	for i, result := range schedules {
		builder.WriteString(headerStyle.Render(fmt.Sprintf("Schedule %v:", i+1)))
		builder.WriteString("\n")
		builder.WriteString(result.String())
	}
	return builder.String()
}

func renderFailure(index int, result schedule.Schedule) string {
	return fmt.Sprintf("%v\n%v", emptyStyle.Render(fmt.Sprintf("Schedule %v does not satisfy its requirements:", index+1)), result)
}
