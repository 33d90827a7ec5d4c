package catalog

import "strings"

// Default image URL templates per shape
const (
	CharacterImageTemplate = "https://rickandmortyapi.com/api/character/avatar/{id}.jpeg"
	SpeciesImageTemplate   = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/dream-world/{id}.svg"
)

// DefaultImageTemplate returns the image template matching the shape
func DefaultImageTemplate(shape Shape) string {
	if shape == ShapeSpecies {
		return SpeciesImageTemplate
	}
	return CharacterImageTemplate
}

// ImageURL fills the {id} placeholder of template
func ImageURL(template, id string) string {
	if template == "" || id == "" {
		return ""
	}
	return strings.ReplaceAll(template, "{id}", id)
}
