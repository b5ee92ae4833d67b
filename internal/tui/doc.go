// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the planner client.
//
// It renders a month calendar with the selected day's appointments, the
// appointment editor, and the contact book as bubbletea models. All state
// transitions and persistence go through the schedule service; the models
// here only translate key presses into service calls and render the result.
package tui
