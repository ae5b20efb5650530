package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/limaJavier/semplanner/pkg/schedule"
	"github.com/samber/lo"
)

// scheduleItem wraps a schedule for the list display
type scheduleItem struct {
	index    int
	schedule schedule.Schedule
}

func (i scheduleItem) Title() string { return fmt.Sprintf("Schedule %v", i.index+1) }
func (i scheduleItem) Description() string {
	semesters := lo.FilterMap(i.schedule.Semesters(), func(semester schedule.Semester, _ int) (string, bool) {
		if semester.Len() == 0 {
			return "", false
		}
		courses := lo.Map(semester.Courses(), func(id catalog.CourseID, _ int) string { return id.String() })
		return fmt.Sprintf("%v: %v", semester.Time(), strings.Join(courses, ", ")), true
	})
	return strings.Join(semesters, " | ")
}
func (i scheduleItem) FilterValue() string { return i.schedule.String() }

type pickerModel struct {
	list   list.Model
	picked *scheduleItem
}

func newPicker(schedules []schedule.Schedule) pickerModel {
	items := lo.Map(schedules, func(result schedule.Schedule, i int) list.Item {
		return scheduleItem{index: i, schedule: result}
	})

	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(0)
	scheduleList := list.New(items, delegate, 0, 0)
	scheduleList.Title = "Select a Schedule"
	scheduleList.SetShowStatusBar(false)
	scheduleList.SetFilteringEnabled(true)

	return pickerModel{list: scheduleList}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		// Keys belong to the filter while it is being typed
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(scheduleItem); ok {
				m.picked = &item
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}

// pickSchedule lets the user choose one of the schedules. It reports false when the picker is left without a choice
func pickSchedule(schedules []schedule.Schedule) (schedule.Schedule, bool, error) {
	if len(schedules) == 0 {
		return schedule.Schedule{}, false, nil
	}

	final, err := tea.NewProgram(newPicker(schedules), tea.WithAltScreen()).Run()
	if err != nil {
		return schedule.Schedule{}, false, err
	}

	picker := final.(pickerModel)
	if picker.picked == nil {
		return schedule.Schedule{}, false, nil
	}
	return picker.picked.schedule, true, nil
}
