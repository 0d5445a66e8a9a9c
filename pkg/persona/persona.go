// Package persona assembles the base system prompt for the VERA wrapper.
package persona

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSystemPrompt is the built-in VERA persona used when the model
// directory carries no persona files.
const DefaultSystemPrompt = "You are VERA, a helpful conversational assistant. " +
	"Answer clearly and concisely, and say so when you do not know something."

// Persona describes one PERSONA.md file found next to the model artifacts.
type Persona struct {
	Name        string
	Description string
	Instruction string
	FilePath    string
}

// personaFrontMatter mirrors the YAML front matter in PERSONA.md.
type personaFrontMatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// LoadFromDir walks the model directory and returns all PERSONA.md entries,
// sorted by name. A missing directory yields no personas and no error; the
// harness never validates the model path.
func LoadFromDir(dir string) ([]*Persona, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, nil
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, nil
	}

	var personas []*Persona
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(d.Name(), "PERSONA.md") {
			p, err := ParseFile(path)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			personas = append(personas, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(personas, func(i, j int) bool {
		return strings.ToLower(personas[i].Name) < strings.ToLower(personas[j].Name)
	})

	return personas, nil
}

// ParseFile reads a PERSONA.md file and extracts its metadata and body.
func ParseFile(path string) (*Persona, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fm, body, err := parseFrontMatter(content)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(fm.Name) == "" {
		return nil, fmt.Errorf("missing front matter name")
	}

	return &Persona{
		Name:        strings.TrimSpace(fm.Name),
		Description: strings.TrimSpace(fm.Description),
		Instruction: strings.TrimSpace(body),
		FilePath:    path,
	}, nil
}

// BuildSystemPrompt concatenates the default prompt with persona instructions
// into the single system turn that seeds every transcript.
func BuildSystemPrompt(personas []*Persona) string {
	var sb strings.Builder
	sb.WriteString(DefaultSystemPrompt)

	for _, p := range personas {
		if p == nil || p.Instruction == "" {
			continue
		}
		sb.WriteString("\n\n")
		sb.WriteString(p.Instruction)
	}

	return strings.TrimSpace(sb.String())
}

// parseFrontMatter splits content into YAML front matter and body.
func parseFrontMatter(content []byte) (personaFrontMatter, string, error) {
	lines := strings.Split(string(content), "\n")
	if len(lines) < 3 || strings.TrimSpace(lines[0]) != "---" {
		return personaFrontMatter{}, "", fmt.Errorf("missing YAML front matter")
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return personaFrontMatter{}, "", fmt.Errorf("unterminated YAML front matter")
	}

	fmText := strings.Join(lines[1:end], "\n")
	var fm personaFrontMatter
	if err := yaml.Unmarshal([]byte(fmText), &fm); err != nil {
		return personaFrontMatter{}, "", err
	}

	body := strings.Join(lines[end+1:], "\n")
	return fm, body, nil
}
