package builder

import (
	"bizhub-backend/internal/models"
)

// DefaultContent returns the starter payload a freshly dropped section of the
// given variant is seeded with. The payloads are placeholders the owner is
// expected to replace; repeated-item lists come pre-filled so the section
// looks populated in the editor immediately.
func DefaultContent(t models.SectionType) models.SectionContent {
	switch t {
	case models.SectionHero:
		return models.SectionContent{
			Title:           "Título principal",
			Description:     "Descripción breve que capture la atención",
			ButtonText:      "Llamada a la acción",
			ButtonLink:      "#",
			BackgroundImage: "/placeholder.jpg",
		}

	case models.SectionFeatures:
		return models.SectionContent{
			Title: "Nuestras características",
			Features: []models.Feature{
				{Title: "Característica 1", Description: "Descripción breve"},
				{Title: "Característica 2", Description: "Descripción breve"},
			},
		}

	case models.SectionProducts:
		return models.SectionContent{
			Title:       "Productos destacados",
			Description: "Explora nuestra selección de productos",
			Products: []models.ProductItem{
				{Name: "Producto 1", Description: "Descripción del producto", Price: 99.99, Image: "/placeholder.jpg"},
				{Name: "Producto 2", Description: "Descripción del producto", Price: 149.99, Image: "/placeholder.jpg"},
				{Name: "Producto 3", Description: "Descripción del producto", Price: 199.99, Image: "/placeholder.jpg"},
			},
		}

	case models.SectionTestimonials:
		return models.SectionContent{
			Title:       "Lo que dicen nuestros clientes",
			Description: "Testimonios de clientes satisfechos",
			Testimonials: []models.Testimonial{
				{
					Name:  "Cliente 1",
					Role:  "CEO",
					Text:  "Excelente servicio y atención al cliente. Superaron todas nuestras expectativas.",
					Image: "/placeholder.jpg",
				},
				{
					Name:  "Cliente 2",
					Role:  "Director de Marketing",
					Text:  "Un equipo profesional y comprometido. Resultados excepcionales.",
					Image: "/placeholder.jpg",
				},
				{
					Name:  "Cliente 3",
					Role:  "Gerente General",
					Text:  "La mejor decisión que tomamos fue trabajar con ellos. Altamente recomendados.",
					Image: "/placeholder.jpg",
				},
			},
		}

	case models.SectionContact:
		return models.SectionContent{
			Title:           "Contáctanos",
			Description:     "Estamos aquí para ayudarte",
			Email:           "contacto@empresa.com",
			Phone:           "+1234567890",
			Address:         "Dirección de la empresa",
			MapEmbed:        `<iframe src="https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3963.952912260219!2d3.375295414770757!3d6.524379695281496!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x103b8b2ae68280c1%3A0xdc9e87a367c3d9cb!2sLagos!5e0!3m2!1sen!2sng!4v1629291962087!5m2!1sen!2sng" width="100%" height="300" style="border:0;" allowfullscreen="" loading="lazy"></iframe>`,
			ShowSocialMedia: true,
			SocialLinks: &models.SocialLinks{
				Facebook:  "https://facebook.com/empresa",
				Instagram: "https://instagram.com/empresa",
				Twitter:   "https://twitter.com/empresa",
			},
		}

	case models.SectionAbout:
		return models.SectionContent{
			Title:       "Sobre nosotros",
			Description: "Nuestra historia y experiencia",
			Body:        "Contenido detallado sobre la empresa...",
			Image:       "/placeholder.jpg",
			Stats: []models.Stat{
				{Label: "Años de experiencia", Value: "10+"},
				{Label: "Clientes satisfechos", Value: "1000+"},
			},
		}
	}

	return models.SectionContent{}
}
