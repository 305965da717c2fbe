package content

// Variant selects how a notification is styled.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is the transient feedback shown after an action.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// 画面に表示する固定メッセージ
var (
	UnauthorizedNotification = Notification{
		Title:       "Accès non autorisé",
		Description: "Seuls les super administrateurs peuvent accéder à cette page.",
		Variant:     VariantDestructive,
	}
	NameRequiredNotification = Notification{
		Title:       "Erreur",
		Description: "Le nom de l'article est obligatoire",
		Variant:     VariantDestructive,
	}
	InvalidUnitNotification = Notification{
		Title:       "Erreur",
		Description: "L'unité sélectionnée n'est pas valide",
		Variant:     VariantDestructive,
	}
	CreatedNotification = Notification{
		Title:       "Succès",
		Description: "Article ajouté avec succès",
		Variant:     VariantDefault,
	}
	CreateFailedNotification = Notification{
		Title:       "Erreur",
		Description: "Impossible d'ajouter l'article",
		Variant:     VariantDestructive,
	}
	SeedFailedNotification = Notification{
		Title:       "Erreur",
		Description: "Erreur lors de la création des articles d'exemple",
		Variant:     VariantDestructive,
	}
	SeedInProgressNotification = Notification{
		Title:       "Patientez",
		Description: "La création des articles d'exemple est déjà en cours",
		Variant:     VariantDefault,
	}
)
