package controller

import (
	"fmt"
	"tokentrack/internal/tui/design"
	"tokentrack/internal/tui/model"
	"tokentrack/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel wraps the model to handle updates and views
type AppModel struct {
	model *model.Model
	// start is the first Loading attempt when the machine was already
	// started before the program was built.
	start tea.Cmd
}

// NewAppModel creates a new app wrapper
func NewAppModel(m *model.Model) AppModel {
	return AppModel{model: m}
}

// Init implements tea.Model. It starts the first Loading attempt alongside
// the model's long-running commands.
func (a AppModel) Init() tea.Cmd {
	start := a.start
	if start == nil {
		var err error
		start, err = a.model.Machine.Start()
		if err != nil {
			LogError(err, "Failed to start")
			return a.model.Init()
		}
	}
	return tea.Batch(a.model.Init(), start)
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := Update(msg, a.model)
	a.model = updatedModel
	return a, cmd
}

// View implements tea.Model. A panic while rendering moves the machine to
// the Error state instead of tearing down the terminal.
func (a AppModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic while rendering %s screen: %v", a.model.Machine.State(), r)
			recordFault(a.model, err)
			out = design.TextErrorStyle.Render(err.Error())
		}
	}()
	return view.Render(a.model)
}

// Model returns the wrapped UI model.
func (a AppModel) Model() *model.Model {
	return a.model
}
