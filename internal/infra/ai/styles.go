package ai

import "strings"

// DefaultEditPrompt is used when the caller gives neither a prompt nor a style.
const DefaultEditPrompt = "Modern Scandinavian interior design with bright colors, natural light, minimalist furniture, and cozy atmosphere."

var stylePrompts = map[string]string{
	"modern":       "Modern minimalist interior design. Clean lines, neutral color palette (whites, grays, soft beiges), contemporary furniture, excellent natural and artificial lighting, uncluttered space, refined decor. Keep the room structure but make it look sleek and professional.",
	"scandinavian": "Scandinavian interior design. Light wood elements, warm textiles, natural light, hygge atmosphere, cozy seating areas, plants, warm white color palette, functional minimalism. Make it feel warm and inviting while maintaining simplicity.",
	"industrial":   "Industrial modern interior design. Exposed brick or concrete elements, metal fixtures, vintage-industrial furniture, exposed lighting, large windows with natural light, earthy color palette. Keep raw materials visible but add contemporary touches.",
	"classic":      "Contemporary classic interior design. Elegant furniture pieces, refined color palette (cream, navy, gold accents), good lighting, timeless design elements, mix of traditional and modern styles. Sophisticated and balanced aesthetic.",
	"luxury":       "Luxury minimalist interior design. Premium materials, high-end furniture, sophisticated color scheme, excellent lighting design, spacious feel, subtle elegant decor. Make it look like a luxury apartment with minimal, refined style.",
}

// EditPrompt picks the explicit prompt, then a named style, then the default.
func EditPrompt(prompt, style string) string {
	if p := strings.TrimSpace(prompt); p != "" {
		return p
	}
	if p, ok := stylePrompts[strings.ToLower(strings.TrimSpace(style))]; ok {
		return p
	}
	return DefaultEditPrompt
}

func Styles() []string {
	return []string{"modern", "scandinavian", "industrial", "classic", "luxury"}
}
