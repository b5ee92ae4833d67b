// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	refresh   key.Binding
	contacts  key.Binding
	newInline key.Binding
	save      key.Binding
	search    key.Binding
	copyMail  key.Binding
	copyPhone key.Binding
	prevMonth key.Binding
	nextMonth key.Binding
	today     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	contacts:  key.NewBinding(key.WithKeys("c")),
	newInline: key.NewBinding(key.WithKeys("ctrl+n")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	search:    key.NewBinding(key.WithKeys("/")),
	copyMail:  key.NewBinding(key.WithKeys("m")),
	copyPhone: key.NewBinding(key.WithKeys("p")),
	prevMonth: key.NewBinding(key.WithKeys("[", "pgup")),
	nextMonth: key.NewBinding(key.WithKeys("]", "pgdown")),
	today:     key.NewBinding(key.WithKeys("t")),
	yes:       key.NewBinding(key.WithKeys("y", "j")),
	no:        key.NewBinding(key.WithKeys("n")),
}
