package tui

type browserModel struct {
	destination string
	status      string
}

// View renders the browser handoff screen. A terminal cannot embed the remote
// page, so the destination is surfaced for the user to open, with a clipboard
// shortcut.
func (m browserModel) View(pal palette) string {
	out := "Today's content lives elsewhere.\n\n"
	out += "Open this link in your browser:\n\n"
	out += "  " + pal.titleBar().Render(m.destination) + "\n"
	if m.status != "" {
		out += "\n" + pal.statusText().Render(m.status) + "\n"
	}
	return renderPage("DAYKEEPER", out, "c: copy link │ q: quit")
}
