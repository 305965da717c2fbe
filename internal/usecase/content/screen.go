package content

import "stock-admin/internal/domain/entity"

// Section is a management area embedded in the screen. Each section loads
// and edits its own data through its own resource.
type Section struct {
	Key         string
	Title       string
	Description string
	Href        string
}

// Screen is the initial state of the content management screen.
type Screen struct {
	Title       string
	Description string
	BackRoute   string
	Units       []entity.Unit
	Form        Form
	ModalOpen   bool
	Seeding     bool
	Sections    []Section
}

const (
	screenTitle       = "Gestion du contenu"
	screenDescription = "Gérez les données de référence utilisées dans tout le système."
	defaultBackRoute  = "/admin"
)

func sections() []Section {
	return []Section{
		{
			Key:         "article_names",
			Title:       "Noms d'articles",
			Description: "Articles disponibles pour le stock",
			Href:        "/admin/article-names",
		},
		{
			Key:         "supervisors",
			Title:       "Superviseurs",
			Description: "Superviseurs pour l'assignation",
			Href:        "/admin/supervisors",
		},
	}
}
