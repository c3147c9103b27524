package builder

import (
	"github.com/google/uuid"

	"bizhub-backend/internal/models"
)

// Templates is the built-in template catalog. Entries are read-only; creating
// a page from one clones its sections with fresh ids so two pages never share
// section identity.
var Templates = []models.PageTemplate{
	{
		ID:        "restaurant-modern",
		Name:      "Restaurante Moderno",
		Category:  "restaurant",
		Thumbnail: "/templates/restaurant-modern.jpg",
		Features: []string{
			"Menú digital interactivo",
			"Sistema de reservas en línea",
			"Galería de platos",
			"Testimonios de clientes",
			"Integración con redes sociales",
			"Mapa de ubicación",
		},
		DefaultTheme: models.Theme{
			PrimaryColor:   "#D4B996",
			SecondaryColor: "#594545",
			FontFamily:     "sans",
			HeaderStyle:    "hero",
			FooterStyle:    "detailed",
		},
		DefaultSections: []models.Section{
			{
				ID:      "hero-1",
				Type:    models.SectionHero,
				Visible: true,
				Order:   0,
				Content: models.SectionContent{
					Title:       "Bienvenidos a nuestro restaurante",
					Description: "Una experiencia culinaria única que deleitará tus sentidos",
				},
			},
			{
				ID:      "features-1",
				Type:    models.SectionFeatures,
				Visible: true,
				Order:   1,
				Content: models.SectionContent{
					Features: []models.Feature{
						{Title: "Cocina de autor", Description: "Platos únicos y creativos"},
						{Title: "Ingredientes locales", Description: "De la granja a la mesa"},
						{Title: "Ambiente acogedor", Description: "Diseño moderno y cálido"},
					},
				},
			},
		},
	},
	{
		ID:        "retail-boutique",
		Name:      "Boutique Elegante",
		Category:  "retail",
		Thumbnail: "/templates/retail-boutique.jpg",
		Features: []string{
			"Catálogo de productos",
			"Carrito de compras",
			"Galería de fotos",
			"Newsletter",
			"Filtros de búsqueda",
			"Reseñas de productos",
		},
		DefaultTheme: models.Theme{
			PrimaryColor:   "#DFD3C3",
			SecondaryColor: "#596E79",
			FontFamily:     "serif",
			HeaderStyle:    "minimal",
			FooterStyle:    "simple",
		},
		DefaultSections: []models.Section{
			{
				ID:      "hero-1",
				Type:    models.SectionHero,
				Visible: true,
				Order:   0,
				Content: models.SectionContent{
					Title:       "Moda exclusiva para ti",
					Description: "Descubre nuestra nueva colección",
				},
			},
		},
	},
	{
		ID:        "professional-services",
		Name:      "Servicios Profesionales",
		Category:  "services",
		Thumbnail: "/templates/professional-services.jpg",
		Features: []string{
			"Portafolio de servicios",
			"Formulario de contacto",
			"Calendario de citas",
			"Blog integrado",
			"Testimonios de clientes",
			"Equipo profesional",
		},
		DefaultTheme: models.Theme{
			PrimaryColor:   "#2C3E50",
			SecondaryColor: "#E74C3C",
			FontFamily:     "sans",
			HeaderStyle:    "standard",
			FooterStyle:    "detailed",
		},
		DefaultSections: []models.Section{
			{
				ID:      "hero-1",
				Type:    models.SectionHero,
				Visible: true,
				Order:   0,
				Content: models.SectionContent{
					Title:       "Soluciones profesionales a tu medida",
					Description: "Expertos en hacer crecer tu negocio",
				},
			},
		},
	},
	{
		ID:        "tech-startup",
		Name:      "Startup Tecnológica",
		Category:  "professional",
		Thumbnail: "/templates/tech-startup.jpg",
		Features: []string{
			"Diseño minimalista",
			"Animaciones modernas",
			"Integración API",
			"Panel de precios",
			"Demo interactiva",
			"Chat en vivo",
		},
		DefaultTheme: models.Theme{
			PrimaryColor:   "#6C63FF",
			SecondaryColor: "#2F2E41",
			FontFamily:     "sans",
			HeaderStyle:    "minimal",
			FooterStyle:    "simple",
		},
		DefaultSections: []models.Section{
			{
				ID:      "hero-1",
				Type:    models.SectionHero,
				Visible: true,
				Order:   0,
				Content: models.SectionContent{
					Title:       "Innovación que transforma",
					Description: "Tecnología del futuro, hoy",
				},
			},
		},
	},
}

// TemplateByID looks up a catalog entry.
func TemplateByID(id string) (models.PageTemplate, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return models.PageTemplate{}, false
}

// ContentFromTemplate builds a new page document from a template. Every
// section is deep-cloned with a fresh id and a dense rank; the catalog entry
// keeps no live references into the new page.
func ContentFromTemplate(t models.PageTemplate) models.PageContent {
	sections := make([]models.Section, len(t.DefaultSections))
	for i, section := range t.DefaultSections {
		section.ID = uuid.New().String()
		section.Order = i
		section.Content = section.Content.Clone()
		sections[i] = section
	}

	return models.PageContent{
		Sections: sections,
		Theme:    t.DefaultTheme,
	}
}
