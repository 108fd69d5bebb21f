// Package clipboard writes text to the system clipboard
package clipboard

import (
	sysclip "github.com/atotto/clipboard"
)

// Writer copies text somewhere the user can paste it from
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard
type System struct{}

// WriteAll copies text to the system clipboard
func (System) WriteAll(text string) error {
	return sysclip.WriteAll(text)
}

// Unsupported reports whether the platform has no usable clipboard tool
func Unsupported() bool {
	return sysclip.Unsupported
}

// Memory keeps the last written text. It is used where no system
// clipboard is available and in tests.
type Memory struct {
	Text   string
	Writes int
	Err    error
}

// WriteAll records text, or returns Err if set
func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	m.Writes++
	return nil
}
