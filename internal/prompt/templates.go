package prompt

import (
	"errors"
	"strings"
)

var ErrTemplateNotFound = errors.New("template not found")

type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Template    string   `json:"template"`
	Variables   []string `json:"variables"`
	Description string   `json:"description"`
}

var templates = []Template{
	{
		ID:          "greeting",
		Name:        "Initial Greeting",
		Category:    "conversation-flow",
		Template:    "Halo! Saya AI Assistant {{service_name}}. Ada yang bisa saya bantu hari ini?",
		Variables:   []string{"service_name"},
		Description: "Sapaan awal untuk memulai percakapan",
	},
	{
		ID:          "clarification",
		Name:        "Request Clarification",
		Category:    "conversation-flow",
		Template:    "Maaf, saya perlu klarifikasi lebih lanjut tentang {{topic}}. Bisakah Anda jelaskan lebih detail mengenai {{specific_aspect}}?",
		Variables:   []string{"topic", "specific_aspect"},
		Description: "Meminta klarifikasi ketika informasi tidak jelas",
	},
	{
		ID:          "escalation",
		Name:        "Escalate to Human",
		Category:    "escalation",
		Template:    "Terima kasih atas kesabaran Anda. Saya akan menghubungkan Anda dengan specialist kami sekarang untuk penanganan yang lebih baik.",
		Variables:   []string{},
		Description: "Eskalasi ke customer service manusia",
	},
	{
		ID:          "confirmation",
		Name:        "Confirm Information",
		Category:    "conversation-flow",
		Template:    "Baik, saya konfirmasi bahwa {{information}}. Apakah ini sudah benar?",
		Variables:   []string{"information"},
		Description: "Konfirmasi informasi yang diberikan pengguna",
	},
	{
		ID:          "solution-provided",
		Name:        "Solution Provided",
		Category:    "resolution",
		Template:    "Saya sudah {{action}}. Apakah ada hal lain yang bisa saya bantu?",
		Variables:   []string{"action"},
		Description: "Konfirmasi setelah memberikan solusi",
	},
}

// Templates returns all prompt templates.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

func TemplateByID(id string) (Template, error) {
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, ErrTemplateNotFound
}

func TemplatesByCategory(category string) []Template {
	out := []Template{}
	for _, t := range templates {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Render replaces every {{key}} with its value. Placeholders without a value are left intact.
func Render(t Template, variables map[string]string) string {
	result := t.Template
	for key, value := range variables {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}
