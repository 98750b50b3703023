package mock

import "context"

// Converter implements audio conversion for tests.
type Converter struct {
	Out string
	Err error

	Called     bool
	SourcePath string
}

func (m *Converter) Convert(ctx context.Context, sourcePath string) (string, error) {
	m.Called = true
	m.SourcePath = sourcePath
	if m.Err != nil {
		return "", m.Err
	}
	return m.Out, nil
}

// CommandRunner implements command execution for tests.
type CommandRunner struct {
	Out string
	Err error

	Calls [][]string
}

func (m *CommandRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	call := append([]string{name}, args...)
	m.Calls = append(m.Calls, call)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Out, nil
}
