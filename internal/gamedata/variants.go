package gamedata

// Variant is one junction layout: the passage on each wall plus the art that
// illustrates it. Slot values are action tags ("stairs_down", "stairs_up",
// "door", "hall"); they are validated by the navigator, not here.
type Variant struct {
	Left   string `json:"left"`
	Center string `json:"center"`
	Right  string `json:"right"`
	Image  string `json:"image"`
}

// LoadVariants loads the embedded junction variants.
func LoadVariants() ([]Variant, error) {
	return Load[[]Variant]("variations.json")
}

// LoadVariantsFile loads junction variants from a JSON file on disk.
func LoadVariantsFile(path string) ([]Variant, error) {
	return LoadFile[[]Variant](path)
}
