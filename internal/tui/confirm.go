// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// confirmModel asks for delete consent. When the appointment was ever
// persisted with its e-mail notification enabled, the wording switches to
// cancel-and-archive because a notification may already be on its way.
type confirmModel struct {
	archive bool

	// cancelEditor discards the editor session when the user declines.
	// Set when the editor was opened solely for this deletion.
	cancelEditor bool
}

func (m confirmModel) View() string {
	question := "Termin löschen?"
	if m.archive {
		question = "Termin absagen & archivieren?"
	}
	content := question + "\n\n"
	content += "y ja    n nein"
	return overlayBoxStyle.Render(content)
}
