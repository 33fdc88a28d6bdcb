package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/forgotten-kingdom/internal/handlers"
	"github.com/jwebster45206/forgotten-kingdom/pkg/character"
)

// uiMode is the screen the console is showing.
type uiMode int

const (
	modeScene uiMode = iota
	modeMap
	modeDialogue
	modeNPCPick
	modeSheet
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	choiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("173"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// ConsoleUI is the BubbleTea model that runs the UI.
type ConsoleUI struct {
	api      *apiClient
	viewport viewport.Model
	ready    bool
	width    int
	height   int

	mode      uiMode
	sessionID string
	scene     *handlers.SceneView
	mapView   *handlers.MapView
	dialogue  *handlers.DialogueView
	sheet     *character.Sheet
	npcs      []handlers.NPCSummary
	nearby    []handlers.NPCSummary

	notice string // transient message line (gate failures, copy confirmations)
	err    error
}

type sceneMsg struct {
	view *handlers.SceneView
	err  error
}

type mapMsg struct {
	view *handlers.MapView
	err  error
}

type dialogueMsg struct {
	view *handlers.DialogueView
	err  error
}

type sheetMsg struct {
	sheet *character.Sheet
	err   error
}

func NewConsoleUI(api *apiClient, view *handlers.SceneView, npcs []handlers.NPCSummary) *ConsoleUI {
	return &ConsoleUI{
		api:       api,
		scene:     view,
		npcs:      npcs,
		sessionID: view.State.ID.String(),
	}
}

func (ui *ConsoleUI) Init() tea.Cmd {
	return nil
}

func (ui *ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.width = msg.Width
		ui.height = msg.Height
		if !ui.ready {
			ui.viewport = viewport.New(msg.Width, msg.Height-2)
			ui.ready = true
		} else {
			ui.viewport.Width = msg.Width
			ui.viewport.Height = msg.Height - 2
		}
		ui.refresh()
		return ui, nil

	case tea.KeyMsg:
		return ui.handleKey(msg)

	case sceneMsg:
		ui.applyErr(msg.err)
		if msg.view != nil {
			ui.scene = msg.view
			ui.mode = modeScene
		}
		ui.refresh()
		return ui, nil

	case mapMsg:
		ui.applyErr(msg.err)
		if msg.view != nil {
			ui.mapView = msg.view
			ui.mode = modeMap
		}
		ui.refresh()
		return ui, nil

	case dialogueMsg:
		ui.applyErr(msg.err)
		if msg.view != nil {
			if msg.view.Ended {
				// Conversation over; back to the scene.
				ui.dialogue = nil
				ui.mode = modeScene
				ui.notice = msg.view.NPCName + ": " + msg.view.Line
			} else {
				ui.dialogue = msg.view
				ui.mode = modeDialogue
			}
		}
		ui.refresh()
		return ui, nil

	case sheetMsg:
		ui.applyErr(msg.err)
		if msg.sheet != nil {
			ui.sheet = msg.sheet
			ui.mode = modeSheet
		}
		ui.refresh()
		return ui, nil
	}

	var cmd tea.Cmd
	ui.viewport, cmd = ui.viewport.Update(msg)
	return ui, cmd
}

// applyErr turns a 422 gate failure into a notice and anything else
// into the error line.
func (ui *ConsoleUI) applyErr(err error) {
	ui.notice = ""
	ui.err = nil
	if err == nil {
		return
	}
	if apiErr, ok := err.(*apiError); ok && apiErr.requirementNotMet() {
		ui.notice = apiErr.message
		return
	}
	ui.err = err
}

func (ui *ConsoleUI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return ui, tea.Quit

	case "esc":
		if ui.mode != modeScene {
			ui.mode = modeScene
			ui.notice = ""
			ui.refresh()
		}
		return ui, nil

	case "m":
		if ui.mode == modeScene {
			return ui, ui.loadMap()
		}
		return ui, nil

	case "t":
		if ui.mode == modeScene {
			ui.nearby = ui.npcsNearby()
			if len(ui.nearby) == 0 {
				ui.notice = "There is no one here to talk to."
				ui.refresh()
				return ui, nil
			}
			if len(ui.nearby) == 1 {
				return ui, ui.startTalk(ui.nearby[0].ID)
			}
			ui.mode = modeNPCPick
			ui.refresh()
		}
		return ui, nil

	case "c":
		if ui.mode == modeScene {
			return ui, ui.loadSheet()
		}
		return ui, nil

	case "y":
		if err := clipboard.WriteAll(ui.sessionID); err == nil {
			ui.notice = "Session ID copied to clipboard"
		} else {
			ui.notice = "Clipboard unavailable"
		}
		ui.refresh()
		return ui, nil
	}

	if index, ok := numberKey(key); ok {
		return ui.handleNumber(index)
	}

	var cmd tea.Cmd
	ui.viewport, cmd = ui.viewport.Update(msg)
	return ui, cmd
}

func numberKey(key string) (int, bool) {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '1'), true
	}
	return 0, false
}

func (ui *ConsoleUI) handleNumber(index int) (tea.Model, tea.Cmd) {
	switch ui.mode {
	case modeScene:
		if ui.scene == nil || index >= len(ui.scene.Choices) {
			return ui, nil
		}
		return ui, ui.choose(index)

	case modeMap:
		if ui.mapView == nil || index >= len(ui.mapView.Destinations) {
			return ui, nil
		}
		dest := ui.mapView.Destinations[index]
		if dest.Locked {
			ui.notice = dest.Reason
			ui.refresh()
			return ui, nil
		}
		return ui, ui.travel(dest.LocationID)

	case modeDialogue:
		if ui.dialogue == nil || index >= len(ui.dialogue.Options) {
			return ui, nil
		}
		return ui, ui.talkOption(ui.dialogue.NPCID, ui.dialogue.SectionID, index)

	case modeNPCPick:
		if index >= len(ui.nearby) {
			return ui, nil
		}
		return ui, ui.startTalk(ui.nearby[index].ID)
	}
	return ui, nil
}

// npcsNearby filters the NPC roster to the character's location.
func (ui *ConsoleUI) npcsNearby() []handlers.NPCSummary {
	if ui.scene == nil {
		return nil
	}
	location := ui.scene.State.CurrentLocationID
	var nearby []handlers.NPCSummary
	for _, n := range ui.npcs {
		if n.Location == "" || n.Location == location {
			nearby = append(nearby, n)
		}
	}
	return nearby
}

func (ui *ConsoleUI) choose(index int) tea.Cmd {
	return func() tea.Msg {
		raw, err := ui.api.choose(ui.sessionID, index)
		if err != nil {
			return sceneMsg{err: err}
		}
		// A choose can answer with either a scene or the map.
		if strings.Contains(string(raw), `"destinations"`) {
			var view handlers.MapView
			if err := json.Unmarshal(raw, &view); err != nil {
				return sceneMsg{err: err}
			}
			return mapMsg{view: &view}
		}
		var view handlers.SceneView
		if err := json.Unmarshal(raw, &view); err != nil {
			return sceneMsg{err: err}
		}
		return sceneMsg{view: &view}
	}
}

func (ui *ConsoleUI) loadMap() tea.Cmd {
	return func() tea.Msg {
		view, err := ui.api.getMap(ui.sessionID)
		return mapMsg{view: view, err: err}
	}
}

func (ui *ConsoleUI) travel(locationID string) tea.Cmd {
	return func() tea.Msg {
		view, err := ui.api.travel(ui.sessionID, locationID)
		return sceneMsg{view: view, err: err}
	}
}

func (ui *ConsoleUI) startTalk(npcID string) tea.Cmd {
	return func() tea.Msg {
		view, err := ui.api.talk(ui.sessionID, npcID)
		return dialogueMsg{view: view, err: err}
	}
}

func (ui *ConsoleUI) talkOption(npcID, sectionID string, index int) tea.Cmd {
	return func() tea.Msg {
		view, err := ui.api.talkOption(ui.sessionID, npcID, sectionID, index)
		return dialogueMsg{view: view, err: err}
	}
}

func (ui *ConsoleUI) loadSheet() tea.Cmd {
	return func() tea.Msg {
		sheet, err := ui.api.sheet(ui.sessionID)
		return sheetMsg{sheet: sheet, err: err}
	}
}

func (ui *ConsoleUI) refresh() {
	if !ui.ready {
		return
	}
	ui.viewport.SetContent(ui.renderContent())
	ui.viewport.GotoTop()
}

func (ui *ConsoleUI) renderContent() string {
	width := ui.width - 2
	if width < 20 {
		width = 20
	}

	var b strings.Builder

	switch ui.mode {
	case modeScene:
		if ui.scene == nil {
			break
		}
		b.WriteString(titleStyle.Render(ui.scene.Title) + "\n\n")
		b.WriteString(wordwrap.String(ui.scene.Description, width) + "\n\n")
		if ui.scene.Check != nil {
			outcome := fmt.Sprintf("[%s check: %s (%d vs %d)]",
				ui.scene.Check.Skill, ui.scene.Check.Outcome, ui.scene.Check.Level, ui.scene.Check.Threshold)
			b.WriteString(noticeStyle.Render(outcome) + "\n\n")
		}
		for _, c := range ui.scene.Choices {
			line := fmt.Sprintf("%d. %s", c.Index+1, c.Text)
			if c.Available {
				b.WriteString(choiceStyle.Render(line) + "\n")
			} else {
				b.WriteString(lockedStyle.Render(line+" ("+c.Reason+")") + "\n")
			}
		}

	case modeMap:
		if ui.mapView == nil {
			break
		}
		b.WriteString(titleStyle.Render("World Map") + "\n\n")
		for i, d := range ui.mapView.Destinations {
			line := fmt.Sprintf("%d. %s %s", i+1, d.Icon, d.Name)
			if d.Locked {
				b.WriteString(lockedStyle.Render(line+" ("+d.Reason+")") + "\n")
			} else {
				b.WriteString(choiceStyle.Render(line) + "\n")
			}
		}
		b.WriteString("\n" + statusStyle.Render("esc to return"))

	case modeDialogue:
		if ui.dialogue == nil {
			break
		}
		b.WriteString(titleStyle.Render(ui.dialogue.NPCName) + "\n\n")
		b.WriteString(wordwrap.String(ui.dialogue.Line, width) + "\n\n")
		for _, o := range ui.dialogue.Options {
			line := fmt.Sprintf("%d. %s", o.Index+1, o.Text)
			if o.Available {
				b.WriteString(choiceStyle.Render(line) + "\n")
			} else {
				b.WriteString(lockedStyle.Render(line+" ("+o.Reason+")") + "\n")
			}
		}
		b.WriteString("\n" + statusStyle.Render("esc to walk away"))

	case modeNPCPick:
		b.WriteString(titleStyle.Render("Talk to whom?") + "\n\n")
		for i, n := range ui.nearby {
			b.WriteString(choiceStyle.Render(fmt.Sprintf("%d. %s", i+1, n.Name)) + "\n")
		}
		b.WriteString("\n" + statusStyle.Render("esc to cancel"))

	case modeSheet:
		if ui.sheet == nil {
			break
		}
		b.WriteString(titleStyle.Render(ui.sheet.Name) + "\n\n")
		b.WriteString(fmt.Sprintf("%s, level %d\n", ui.sheet.ClassName, ui.sheet.Level))
		b.WriteString(fmt.Sprintf("XP %d / %d   HP %d   AC %d   Skill points: %d\n\n",
			ui.sheet.Experience, ui.sheet.NextLevelAt, ui.sheet.HP, ui.sheet.AC, ui.sheet.SkillPoints))
		if len(ui.sheet.Skills) > 0 {
			b.WriteString("Skills:\n")
			for skill, level := range ui.sheet.Skills {
				b.WriteString(fmt.Sprintf("  %s: %d\n", skill, level))
			}
		}
		if len(ui.sheet.Inventory) > 0 {
			b.WriteString("\nInventory:\n")
			for _, item := range ui.sheet.Inventory {
				b.WriteString(fmt.Sprintf("  %s x%d\n", item.Name, item.Quantity))
			}
		}
		b.WriteString("\n" + statusStyle.Render("esc to return"))
	}

	return b.String()
}

func (ui *ConsoleUI) View() string {
	if !ui.ready {
		return "Loading..."
	}

	status := "1-9 select | m map | t talk | c character | y copy id | q quit"
	if ui.err != nil {
		status = "Error: " + ui.err.Error()
	} else if ui.notice != "" {
		status = ui.notice
	}

	return ui.viewport.View() + "\n" + statusStyle.Render(status)
}
