package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// seedFile is the on-disk shape of a seed inventory.
type seedFile struct {
	Products []Product `yaml:"products"`
}

// LoadSeed reads a YAML seed inventory from path.
func LoadSeed(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes YAML seed data. Products without an ID are rejected;
// everything else is taken as-is.
func ParseSeed(data []byte) ([]Product, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	for i, p := range f.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("seed product %d has no id", i)
		}
	}
	return f.Products, nil
}

// DefaultSeed returns the built-in demo inventory used when no seed file is
// configured.
func DefaultSeed() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "HP EliteBook 840 G5 - Core i7",
			Price:       45000,
			Category:    CategoryElectronics,
			Condition:   ConditionUsed,
			Status:      StatusAvailable,
			Stock:       2,
			Location:    "Egerton Main Campus",
			Description: "Perfect for students. 16GB RAM, 512GB SSD. Very clean and well maintained. Battery lasts 4+ hours.",
			SellerPhone: "254712345678",
			Featured:    true,
		},
		{
			ID:          "2",
			Name:        "Study Desk & Swivel Chair",
			Price:       8500,
			Category:    CategoryFurniture,
			Condition:   ConditionUsed,
			Status:      StatusAvailable,
			Stock:       1,
			Location:    "Njoro Town",
			Description: "Selling as I am moving out. Very sturdy wooden desk and a comfortable adjustable chair.",
			SellerPhone: "254722334455",
			Featured:    true,
		},
		{
			ID:          "3",
			Name:        "Mountain Bike - 21 Speed",
			Price:       12000,
			Category:    CategoryOther,
			Condition:   ConditionUsed,
			Status:      StatusAvailable,
			Stock:       1,
			Location:    "Egerton Gate",
			Description: "Great for commuting around campus. New tires recently fitted. Smooth shifting.",
			SellerPhone: "254733445566",
			Featured:    true,
		},
		{
			ID:          "4",
			Name:        "Samsung 32\" LED Smart TV",
			Price:       15500,
			Category:    CategoryElectronics,
			Condition:   ConditionUsed,
			Status:      StatusAvailable,
			Stock:       1,
			Location:    "Nakuru CBD",
			Description: "Slightly used, works perfectly. YouTube and Netflix pre-installed.",
			SellerPhone: "254700000000",
		},
	}
}
