package render

// Examples are the documented template variables with sample values.
var Examples = map[string]string{
	"nombre":   "Carlos Mendoza",
	"placa":    "PCU6322",
	"vehiculo": "Haval H6 2024",
	"fase":     "Recepción",
	"fecha":    "20 de Diciembre, 2025",
	"hora":     "14:30",
	"orden":    "OT-2025-MANT-014",
	"tecnico":  "Juan Técnico",
	"taller":   "Ambacar Service",
}

// Preview renders body with the example values, overridden by values.
func Preview(body string, values map[string]string) string {
	ctx := make(map[string]string, len(Examples)+len(values))
	for k, v := range Examples {
		ctx[k] = v
	}

	idx := Index(values)
	for k, v := range idx {
		ctx[k] = v
	}

	return Render(body, ctx)
}
