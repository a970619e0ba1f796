//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizdrill/internal/cli"
)

const workspaceConfig = `version: 1
banks:
  - locale: de
    path: "banks/de.yml"
    choices: 2
default_locale: de
quiz:
  mode: flat
  questions: 2
`

const workspaceBank = `- id: q1
  question: "Der Fuchs ist ein Allesfresser."
  answers: ["Ja", "Nein"]
  correctIndex: 0
  explanation: "Füchse fressen Kleinsäuger, Insekten und Früchte."
  category: wildbiologie
- id: q2
  question: "Rehwild wirft jedes Jahr das Geweih ab."
  answers: ["Ja", "Nein"]
  correctIndex: 0
  explanation: "Rehböcke werfen das Gehörn jährlich ab."
  category: wildbiologie
- id: q3
  question: "Die Schonzeit gilt für alle Wildarten gleich."
  answers: ["Ja", "Nein"]
  correctIndex: 1
  explanation: "Schonzeiten sind je Wildart geregelt."
  category: jagdrecht
`

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "quizdrill" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

// aWorkspaceWithValidConfig scaffolds a workspace and chdirs into it.
func (s *featureState) aWorkspaceWithValidConfig() error {
	return s.setupWorkspace(workspaceBank)
}

// aWorkspaceWithBrokenBank scaffolds a workspace whose bank fails validation.
func (s *featureState) aWorkspaceWithBrokenBank() error {
	broken := strings.Replace(workspaceBank, "correctIndex: 0", "correctIndex: 9", 1)
	return s.setupWorkspace(broken)
}

func (s *featureState) setupWorkspace(bankYAML string) error {
	dir, err := os.MkdirTemp("", "quizdrill-cucumber-")
	if err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	s.workspaceDir = dir

	bankDir := filepath.Join(dir, "banks")
	if err := os.MkdirAll(bankDir, 0o755); err != nil {
		return fmt.Errorf("create banks dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(bankDir, "de.yml"), []byte(bankYAML), 0o644); err != nil {
		return fmt.Errorf("write bank: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".quizdrill.yml"), []byte(workspaceConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("enter workspace: %w", err)
	}
	return nil
}
