package tui

import (
	"github.com/MKhiriev/go-day-keeper/internal/app"
)

type failureModel struct {
	message string
}

func (m failureModel) View(pal palette) string {
	out := pal.errorText().Render("Something went wrong") + "\n\n"
	out += m.message + "\n\n"
	out += helpStyle.Render(app.MsgRetryHint)
	return renderPage("DAYKEEPER", out, "r: retry │ q: quit")
}
