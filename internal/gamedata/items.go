package gamedata

// ItemDef defines an item loaded from items.yaml.
type ItemDef struct {
	ID          string `yaml:"id"`          // Unique identifier (e.g., "sword")
	Name        string `yaml:"name"`        // Display name (e.g., "Sword")
	Kind        string `yaml:"kind"`        // weapon, armor, potion or key
	Value       int    `yaml:"value"`       // Attack bonus, defense bonus or heal amount
	Description string `yaml:"description"` // Flavor text shown in the inventory
}

// ItemsFile represents the structure of items.yaml.
type ItemsFile struct {
	Items []ItemDef `yaml:"items"`
}

// LoadItems loads item definitions from the embedded items.yaml file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.yaml")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
