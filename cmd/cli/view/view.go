package view

import (
	"encoding/json"
	"strconv"

	"github.com/linecard/userwriter/pkg/convention/user"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	keyStyle   = lipgloss.NewStyle().Bold(true).Width(9)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type StoredView struct {
	user.Stored
	Table string `json:"table"`
}

func (s StoredView) Json() (string, error) {
	j, err := json.Marshal(s)
	return string(j), err
}

func (s StoredView) Render() string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		row("table", s.Table),
		row("user_id", s.UserID),
		row("name", s.Name),
		row("age", strconv.Itoa(int(s.Age))),
	))
}

func row(key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(key), valueStyle.Render(value))
}
