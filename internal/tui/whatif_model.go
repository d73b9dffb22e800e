package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/footprint"
)

// WhatIfState represents the current state of the what-if TUI.
type WhatIfState int

const (
	// WhatIfStateEditing indicates the user is editing fields.
	WhatIfStateEditing WhatIfState = iota
	// WhatIfStateQuitting indicates the application is exiting.
	WhatIfStateQuitting
)

// FieldRow is one editable household field in the what-if TUI.
type FieldRow struct {
	Field         footprint.Field
	OriginalValue string
	CurrentValue  string
}

// Changed reports whether the row differs from the baseline household.
func (r FieldRow) Changed() bool {
	return r.CurrentValue != r.OriginalValue
}

// RecalculateFunc computes a what-if result for base with overrides applied.
type RecalculateFunc func(ctx context.Context, base footprint.Household, overrides map[string]string) (*engine.WhatIfResult, error)

// whatIfRecalculateMsg is sent when recalculation completes.
type whatIfRecalculateMsg struct {
	result *engine.WhatIfResult
	err    error
}

// Default dimensions for the what-if model.
const (
	whatIfDefaultWidth  = 80
	whatIfDefaultHeight = 30
)

// WhatIfModel is the Bubble Tea model for interactive what-if editing.
type WhatIfModel struct {
	ctx  context.Context
	base footprint.Household
	opts RenderOptions

	rows       []FieldRow
	focusedRow int
	editMode   bool
	editBuffer string

	result *engine.WhatIfResult

	state   WhatIfState
	loading bool
	err     error

	width  int
	height int

	recalculateFn RecalculateFunc
}

// NewWhatIfModel creates a what-if editor for base. initial, when non-nil, is
// shown until the first recalculation.
func NewWhatIfModel(
	ctx context.Context,
	base footprint.Household,
	initial *engine.WhatIfResult,
	opts RenderOptions,
	recalculateFn RecalculateFunc,
) *WhatIfModel {
	m := &WhatIfModel{
		ctx:           ctx,
		base:          base,
		opts:          opts,
		result:        initial,
		state:         WhatIfStateEditing,
		width:         whatIfDefaultWidth,
		height:        whatIfDefaultHeight,
		recalculateFn: recalculateFn,
	}
	m.initializeRows()
	return m
}

func (m *WhatIfModel) initializeRows() {
	fields := footprint.Fields()
	m.rows = make([]FieldRow, 0, len(fields))
	for _, f := range fields {
		v := f.Get(m.base)
		m.rows = append(m.rows, FieldRow{Field: f, OriginalValue: v, CurrentValue: v})
	}
}

// Init initializes the model.
func (m *WhatIfModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *WhatIfModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case whatIfRecalculateMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil && msg.result != nil {
			m.result = msg.result
		}
		return m, nil

	case tea.KeyMsg:
		if m.editMode {
			return m.handleEditModeKey(msg)
		}
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

//nolint:exhaustive // Only handling relevant key types for navigation.
func (m *WhatIfModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = WhatIfStateQuitting
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = WhatIfStateQuitting
			return m, tea.Quit
		case "k":
			m.moveFocus(-1)
		case "j":
			m.moveFocus(1)
		case "r":
			return m, m.reset()
		}
		return m, nil

	case tea.KeyUp:
		m.moveFocus(-1)
		return m, nil

	case tea.KeyDown:
		m.moveFocus(1)
		return m, nil

	case tea.KeyLeft:
		return m, m.cycleChoice(-1)

	case tea.KeyRight:
		return m, m.cycleChoice(1)

	case tea.KeyEnter:
		if m.focusedRow < len(m.rows) {
			if len(m.rows[m.focusedRow].Field.Choices) > 0 {
				return m, m.cycleChoice(1)
			}
			m.editMode = true
			m.editBuffer = m.rows[m.focusedRow].CurrentValue
		}
		return m, nil
	}

	return m, nil
}

//nolint:exhaustive // Only handling relevant key types for text editing.
func (m *WhatIfModel) handleEditModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.rows[m.focusedRow].CurrentValue = m.editBuffer
		m.editMode = false
		return m, m.triggerRecalculation()

	case tea.KeyEsc:
		m.editMode = false
		m.editBuffer = ""
		return m, nil

	case tea.KeyBackspace:
		runes := []rune(m.editBuffer)
		if len(runes) > 0 {
			m.editBuffer = string(runes[:len(runes)-1])
		}
		return m, nil

	case tea.KeyRunes, tea.KeySpace:
		m.editBuffer += string(msg.Runes)
		return m, nil
	}

	return m, nil
}

func (m *WhatIfModel) moveFocus(step int) {
	next := m.focusedRow + step
	if next >= 0 && next < len(m.rows) {
		m.focusedRow = next
	}
}

// cycleChoice moves a choice field to its previous or next option.
func (m *WhatIfModel) cycleChoice(step int) tea.Cmd {
	if m.focusedRow >= len(m.rows) {
		return nil
	}
	row := &m.rows[m.focusedRow]
	choices := row.Field.Choices
	if len(choices) == 0 {
		return nil
	}

	idx := -1
	for i, c := range choices {
		if c == row.CurrentValue {
			idx = i
			break
		}
	}
	idx = (idx + step + len(choices)) % len(choices)
	row.CurrentValue = choices[idx]
	return m.triggerRecalculation()
}

func (m *WhatIfModel) reset() tea.Cmd {
	for i := range m.rows {
		m.rows[i].CurrentValue = m.rows[i].OriginalValue
	}
	m.err = nil
	return m.triggerRecalculation()
}

// triggerRecalculation returns a command that recomputes the result off the UI loop.
func (m *WhatIfModel) triggerRecalculation() tea.Cmd {
	if m.recalculateFn == nil {
		return nil
	}
	m.loading = true

	// Capture values so the command does not read model fields concurrently.
	ctx := m.ctx
	base := m.base
	overrides := m.GetOverrides()
	recalculateFn := m.recalculateFn

	return func() tea.Msg {
		result, err := recalculateFn(ctx, base, overrides)
		return whatIfRecalculateMsg{result: result, err: err}
	}
}

// View renders the current view.
func (m *WhatIfModel) View() string {
	if m.state == WhatIfStateQuitting {
		return ""
	}

	var output string
	output += RenderWhatIfHeader(m.base.Name, m.factorTable())
	output += "\n\n"

	if m.loading {
		output += RenderLoadingIndicator()
	} else if m.result != nil && m.result.Baseline != nil && m.result.Modified != nil {
		output += RenderFootprintComparison(m.result.Baseline.MonthlyTotal, m.result.Modified.MonthlyTotal, m.opts)
		output += "\n\n"
		output += RenderCategoryDeltas(m.result.Deltas, m.opts)
	}
	output += "\n"

	if m.err != nil {
		output += ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n"
	}

	if m.editMode && m.focusedRow < len(m.rows) {
		rowsCopy := make([]FieldRow, len(m.rows))
		copy(rowsCopy, m.rows)
		rowsCopy[m.focusedRow].CurrentValue = m.editBuffer + "▌"
		output += RenderFieldTable(rowsCopy, m.focusedRow, true)
	} else {
		output += RenderFieldTable(m.rows, m.focusedRow, false)
	}

	output += "\n"
	output += RenderWhatIfHelp()
	return output
}

func (m *WhatIfModel) factorTable() string {
	if m.result != nil && m.result.Baseline != nil {
		return m.result.Baseline.FactorTable
	}
	return "-"
}

// GetOverrides returns the changed fields keyed by dotted path.
func (m *WhatIfModel) GetOverrides() map[string]string {
	overrides := make(map[string]string)
	for _, row := range m.rows {
		if row.Changed() {
			overrides[row.Field.Path] = row.CurrentValue
		}
	}
	return overrides
}

// Result returns the latest what-if result, or nil before the first calculation.
func (m *WhatIfModel) Result() *engine.WhatIfResult {
	return m.result
}

// Err returns the error of the latest recalculation, if any.
func (m *WhatIfModel) Err() error {
	return m.err
}
