package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type onboardingModel struct {
	nameInput  textinput.Model
	submitting bool
	errMsg     string
}

func newOnboardingModel() onboardingModel {
	name := textinput.New()
	name.Placeholder = "How should we call you?"
	name.Width = 40
	name.CharLimit = 60
	name.Focus()
	return onboardingModel{nameInput: name}
}

func (m onboardingModel) View(pal palette) string {
	out := pal.titleBar().Render("Welcome to DayKeeper") + "\n\n"
	out += "One line a day keeps the blur away.\n\n"
	out += "Your name : [ " + m.nameInput.View() + " ]\n"
	if m.submitting {
		out += "\nSaving...\n"
	}
	if m.errMsg != "" {
		out += "\n" + pal.errorText().Render("Error: "+m.errMsg) + "\n"
	}
	return renderPage("DAYKEEPER · FIRST RUN", out, "enter: continue │ esc: skip")
}
