package tui

import "github.com/charmbracelet/bubbles/spinner"

type splashModel struct {
	spinner spinner.Model
}

func newSplashModel() splashModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return splashModel{spinner: s}
}

func (m splashModel) View() string {
	return m.spinner.View() + " Checking where to take you..."
}
