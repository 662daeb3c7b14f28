package model

// Assignment selects how room types are chosen.
type Assignment string

const (
	AssignmentGenetic Assignment = "genetic"
	AssignmentGreedy  Assignment = "greedy"
)

// DefaultScale is the world size of one schema cell.
const DefaultScale = 10.0

// GeneticSettings holds the room-type optimizer parameters.
type GeneticSettings struct {
	Generations    int     `yaml:"generations" json:"generations"`
	PopulationSize int     `yaml:"population_size" json:"population_size"`
	MutationRate   float64 `yaml:"mutation_rate" json:"mutation_rate"`
	MutationArea   float64 `yaml:"mutation_area" json:"mutation_area"`
}

// CatalogSettings points at the furniture and room catalog files.
type CatalogSettings struct {
	Furniture string `yaml:"furniture" json:"furniture"`
	Rooms     string `yaml:"rooms" json:"rooms"`
}

// OutputSettings controls which artifacts a furnish run writes.
type OutputSettings struct {
	Dir    string `yaml:"dir" json:"dir"`
	PDF    bool   `yaml:"pdf" json:"pdf"`
	Cards  bool   `yaml:"cards" json:"cards"`
	DXF    bool   `yaml:"dxf" json:"dxf"`
	XLSX   bool   `yaml:"xlsx" json:"xlsx"`
	Report bool   `yaml:"report" json:"report"`
}

// AppConfig holds the pipeline settings read from roomcraft.yaml.
type AppConfig struct {
	Scale      float64         `yaml:"scale" json:"scale"`
	Assignment Assignment      `yaml:"assignment" json:"assignment"`
	Genetic    GeneticSettings `yaml:"genetic" json:"genetic"`
	Catalog    CatalogSettings `yaml:"catalog" json:"catalog"`
	Output     OutputSettings  `yaml:"output" json:"output"`
}

// DefaultAppConfig returns the settings used when no config file exists.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Scale:      DefaultScale,
		Assignment: AssignmentGenetic,
		Genetic: GeneticSettings{
			Generations:    4000,
			PopulationSize: 10,
			MutationRate:   0.3,
			MutationArea:   0.3,
		},
		Catalog: CatalogSettings{
			Furniture: "furniture.json",
			Rooms:     "rooms.json",
		},
		Output: OutputSettings{
			Dir:    "out",
			PDF:    true,
			Cards:  true,
			DXF:    true,
			XLSX:   true,
			Report: true,
		},
	}
}

// Normalize fills zero values with defaults so partial config files work.
func (c *AppConfig) Normalize() {
	d := DefaultAppConfig()
	if c.Scale <= 0 {
		c.Scale = d.Scale
	}
	if c.Assignment == "" {
		c.Assignment = d.Assignment
	}
	if c.Genetic.Generations <= 0 {
		c.Genetic.Generations = d.Genetic.Generations
	}
	if c.Genetic.PopulationSize <= 0 {
		c.Genetic.PopulationSize = d.Genetic.PopulationSize
	}
	if c.Catalog.Furniture == "" {
		c.Catalog.Furniture = d.Catalog.Furniture
	}
	if c.Catalog.Rooms == "" {
		c.Catalog.Rooms = d.Catalog.Rooms
	}
	if c.Output.Dir == "" {
		c.Output.Dir = d.Output.Dir
	}
}
