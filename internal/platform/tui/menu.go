package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
)

// screenMode selects what the model draws and where keys go.
type screenMode int

const (
	modeGame screenMode = iota
	modeMenu
	modeSettings
)

// menuAction is what selecting a menu item does.
type menuAction int

const (
	actionResume menuAction = iota
	actionNewGame
	actionSettings
	actionQuit
	actionSpeed
	actionEasing
	actionBack
)

// menuItem is one selectable row.
type menuItem struct {
	title  string
	action menuAction
}

// menuList is a vertical list with a cursor.
type menuList struct {
	title  string
	items  []menuItem
	cursor int
}

func newMainMenu(title string) menuList {
	return menuList{
		title: title,
		items: []menuItem{
			{title: "Resume", action: actionResume},
			{title: "New game", action: actionNewGame},
			{title: "Settings", action: actionSettings},
			{title: "Quit", action: actionQuit},
		},
	}
}

func newSettingsMenu() menuList {
	return menuList{
		title: "Settings",
		items: []menuItem{
			{title: "Speed", action: actionSpeed},
			{title: "Easing", action: actionEasing},
			{title: "Back", action: actionBack},
		},
	}
}

// move shifts the cursor, stopping at either end.
func (l *menuList) move(delta int) {
	l.cursor = core.Clamp(l.cursor+delta, 0, len(l.items)-1)
}

func (l menuList) selected() menuItem {
	return l.items[l.cursor]
}

// activeList returns the list shown in the current mode.
func (m *Model) activeList() *menuList {
	if m.mode == modeSettings {
		return &m.settings
	}
	return &m.menu
}

// setMode switches screens. The help bar differs per screen, so the layout
// is recomputed.
func (m *Model) setMode(mode screenMode) {
	if mode != modeGame && m.mode == modeGame {
		m.queue.Reset()
		m.logger.Debug("menu opened")
	}
	if mode == modeSettings {
		m.settings.cursor = 0
	}
	m.mode = mode
	m.layout()
}

// handleMenuKey drives the menu and settings screens. The game does not
// advance while either is open.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.activeList()

	switch {
	case key.Matches(msg, m.keys.Up):
		list.move(-1)
	case key.Matches(msg, m.keys.Down):
		list.move(1)
	case key.Matches(msg, m.keys.Menu):
		if m.mode == modeSettings {
			m.setMode(modeMenu)
		} else {
			m.setMode(modeGame)
		}
	case key.Matches(msg, m.keys.Select):
		return m.selectItem(list.selected())
	}
	return m, nil
}

func (m Model) selectItem(item menuItem) (tea.Model, tea.Cmd) {
	switch item.action {
	case actionResume:
		m.setMode(modeGame)

	case actionNewGame:
		snap := m.game.Snapshot()
		m.game.NewGame()
		m.logger.Info("new game", "score", snap.Score, "moves", snap.Moves, "max_tile", snap.MaxTile)
		m.lastState = m.game.State().State
		m.setMode(modeGame)

	case actionSettings:
		m.setMode(modeSettings)

	case actionQuit:
		return m.quit()

	case actionSpeed:
		m.config.AnimDuration = config.DurationForSpeed(nextSpeed(m.speedName()))
		m.applyAnimation()

	case actionEasing:
		if m.config.Easing == core.EasingEaseOut {
			m.config.Easing = core.EasingLinear
		} else {
			m.config.Easing = core.EasingEaseOut
		}
		m.applyAnimation()

	case actionBack:
		m.setMode(modeMenu)
	}
	return m, nil
}

// applyAnimation hands the animation settings to the game. The move in
// flight keeps its timing.
func (m *Model) applyAnimation() {
	m.game.SetAnimation(m.config.AnimDuration, m.config.Easing)
	m.logger.Info("settings changed",
		"speed", m.speedName(),
		"anim", m.config.AnimDuration,
		"easing", m.config.Easing,
	)
}

// speedName names the preset matching the current duration, or "custom".
func (m Model) speedName() string {
	for _, name := range config.SpeedNames() {
		if config.DurationForSpeed(config.SpeedPreset(name)) == m.config.AnimDuration {
			return name
		}
	}
	return "custom"
}

// nextSpeed cycles through the presets. A custom duration starts the cycle.
func nextSpeed(current string) config.SpeedPreset {
	names := config.SpeedNames()
	for i, name := range names {
		if name == current {
			return config.SpeedPreset(names[(i+1)%len(names)])
		}
	}
	return config.SpeedPreset(names[0])
}

// itemLabel returns the text shown for an item, including its current value.
func (m Model) itemLabel(item menuItem) string {
	switch item.action {
	case actionSpeed:
		return fmt.Sprintf("%s: %s", item.title, m.speedName())
	case actionEasing:
		return fmt.Sprintf("%s: %s", item.title, m.config.Easing)
	}
	return item.title
}

// renderMenu draws the active list as a panel centered on the screen.
func (m Model) renderMenu(dst *core.Screen) {
	dst.Clear()
	list := m.activeList()

	width := 0
	for _, item := range list.items {
		width = max(width, utf8.RuneCountInString(m.itemLabel(item)))
	}

	lines := []string{list.title, ""}
	for i, item := range list.items {
		prefix := "  "
		if i == list.cursor {
			prefix = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%-*s", prefix, width, m.itemLabel(item)))
	}

	cx, cy := dst.Bounds().Center()
	box := dst.DrawPanel(cx, cy, core.ColorGray, lines...)

	cursorLine := lines[2+list.cursor]
	dst.DrawTextColor(cx-utf8.RuneCountInString(cursorLine)/2, box.Y+3+list.cursor, cursorLine, core.ColorTile2048)

	if m.mode == modeMenu {
		snap := m.game.Snapshot()
		dst.DrawTextCentered(box.Bottom(), fmt.Sprintf("Score %d  Best %d", snap.Score, snap.MaxTile))
	}
}
