package catalog

// FallbackProducts is the embedded catalog served when the remote sheet is
// unreachable or returns a malformed payload. It keeps the storefront usable
// with a minimal, known-good selection.
func FallbackProducts() []Product {
	return []Product{
		{
			ID:            "hammer-001",
			Name:          "Martillo de Carpintero",
			Category:      "herramientas",
			AllCategories: []string{"herramientas", "construccion"},
			Featured:      true,
			Price:         899.99,
			Stock:         25,
			Image:         "/assets/img/hammer.svg",
			Description:   "Martillo profesional con cabeza de acero forjado y mango ergonómico",
			Code:          "MRT-001",
			Active:        true,
		},
		{
			ID:            "screwdriver-002",
			Name:          "Juego de Destornilladores",
			Category:      "herramientas",
			AllCategories: []string{"herramientas", "electricos"},
			Featured:      true,
			Price:         1299.99,
			Stock:         18,
			Image:         "/assets/img/screwdriver.svg",
			Description:   "Set de 6 destornilladores de precisión con puntas intercambiables",
			Code:          "DST-002",
			Active:        true,
		},
		{
			ID:            "drill-003",
			Name:          "Taladro Eléctrico 12V",
			Category:      "electricos",
			AllCategories: []string{"electricos", "herramientas"},
			Featured:      true,
			Price:         3499.99,
			Stock:         12,
			Image:         "/assets/img/drill.svg",
			Description:   "Taladro inalámbrico con batería de litio y 2 velocidades",
			Code:          "TLD-003",
			Active:        true,
		},
	}
}
