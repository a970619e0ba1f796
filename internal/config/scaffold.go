package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1

banks:
  - locale: de
    path: "banks/de.yml"
    choices: 2

default_locale: de

quiz:
  mode: flat
  questions: 10
  shuffle_answers: false

ui:
  mode: auto
`

// defaultBank carries as many sample questions as the default quiz length so
// a scaffolded workspace validates and plays without edits.
const defaultBank = `- id: sample-1
  question: "Der Dachs ist ein Einzelgänger."
  answers: ["Ja", "Nein"]
  correctIndex: 1
  explanation: "Dachse leben in Familienverbänden."
  category: wildbiologie
- id: sample-2
  question: "Rehwild gehört zu den Wiederkäuern."
  answers: ["Ja", "Nein"]
  correctIndex: 0
  explanation: "Rehwild ist ein Wiederkäuer mit mehrkammerigem Magen."
  category: wildbiologie
- id: sample-3
  question: "Der Fuchs ist ein reiner Fleischfresser."
  answers: ["Ja", "Nein"]
  correctIndex: 1
  explanation: "Füchse fressen auch Früchte und Insekten."
  category: wildbiologie
- id: sample-4
  question: "Rehböcke werfen ihr Gehörn jährlich ab."
  answers: ["Ja", "Nein"]
  correctIndex: 0
  explanation: "Der Abwurf erfolgt im Herbst, der Neuschub im Winter."
  category: wildbiologie
- id: sample-5
  question: "Die Schonzeit gilt für alle Wildarten gleich."
  answers: ["Ja", "Nein"]
  correctIndex: 1
  explanation: "Schonzeiten sind je Wildart gesetzlich geregelt."
  category: jagdrecht
- id: sample-6
  question: "Wildbret unterliegt der Fleischhygieneverordnung."
  answers: ["Ja", "Nein"]
  correctIndex: 0
  explanation: "Wildbret ist Lebensmittel und entsprechend geregelt."
  category: jagdrecht
- id: sample-7
  question: "Ein Jagdschein ist bundesweit gültig."
  answers: ["Ja", "Nein"]
  correctIndex: 0
  explanation: "Der Jagdschein gilt im gesamten Bundesgebiet."
  category: jagdrecht
- id: sample-8
  question: "Schrotschüsse sind auf Schalenwild erlaubt."
  answers: ["Ja", "Nein"]
  correctIndex: 1
  explanation: "Auf Schalenwild ist der Büchsenschuss vorgeschrieben."
  category: waffenkunde
- id: sample-9
  question: "Der Drilling hat drei Läufe."
  answers: ["Ja", "Nein"]
  correctIndex: 0
  explanation: "Ein Drilling kombiniert drei Läufe in einer Waffe."
  category: waffenkunde
- id: sample-10
  question: "Vorstehhunde zeigen gefundenes Wild durch Vorstehen an."
  answers: ["Ja", "Nein"]
  correctIndex: 0
  explanation: "Das Vorstehen ist das namensgebende Verhalten dieser Rassen."
  category: hundewesen
`

// Scaffold writes a starter config and sample bank into dir. Existing files
// are left untouched and reported as an error.
func Scaffold(dir string) (string, error) {
	configPath := filepath.Join(dir, ".quizdrill.yml")
	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config already exists at %s", configPath)
	}
	bankDir := filepath.Join(dir, "banks")
	if err := os.MkdirAll(bankDir, 0o755); err != nil {
		return "", fmt.Errorf("create banks dir: %w", err)
	}
	bankPath := filepath.Join(bankDir, "de.yml")
	if _, err := os.Stat(bankPath); err != nil {
		if err := os.WriteFile(bankPath, []byte(defaultBank), 0o644); err != nil {
			return "", fmt.Errorf("write sample bank: %w", err)
		}
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return configPath, nil
}
