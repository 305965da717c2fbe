package content

import (
	"stock-admin/internal/handler/http/articlename"
	contentUC "stock-admin/internal/usecase/content"
)

type NotificationDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

type FormDTO struct {
	Name        string `json:"name"`
	DefaultUnit string `json:"default_unit"`
	Description string `json:"description"`
}

type SectionDTO struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href"`
}

type ScreenDTO struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	BackRoute   string       `json:"back_route"`
	Units       []string     `json:"units"`
	Form        FormDTO      `json:"form"`
	ModalOpen   bool         `json:"modal_open"`
	Seeding     bool         `json:"seeding"`
	Sections    []SectionDTO `json:"sections"`
}

// UnauthorizedDTO is the only body sent to non-super-admins.
type UnauthorizedDTO struct {
	Notification NotificationDTO `json:"notification"`
}

type SubmitDTO struct {
	Notification NotificationDTO  `json:"notification"`
	Form         FormDTO          `json:"form"`
	ModalOpen    bool             `json:"modal_open"`
	Article      *articlename.DTO `json:"article,omitempty"`
}

type SeedDTO struct {
	Notification NotificationDTO `json:"notification"`
	Created      int             `json:"created"`
}

func toNotificationDTO(n contentUC.Notification) NotificationDTO {
	return NotificationDTO{Title: n.Title, Description: n.Description, Variant: string(n.Variant)}
}

func toFormDTO(f contentUC.Form) FormDTO {
	return FormDTO{Name: f.Name, DefaultUnit: f.DefaultUnit, Description: f.Description}
}

func (f FormDTO) toForm() contentUC.Form {
	return contentUC.Form{Name: f.Name, DefaultUnit: f.DefaultUnit, Description: f.Description}
}

func toScreenDTO(s *contentUC.Screen) ScreenDTO {
	units := make([]string, 0, len(s.Units))
	for _, u := range s.Units {
		units = append(units, string(u))
	}
	sections := make([]SectionDTO, 0, len(s.Sections))
	for _, sec := range s.Sections {
		sections = append(sections, SectionDTO{Key: sec.Key, Title: sec.Title, Description: sec.Description, Href: sec.Href})
	}
	return ScreenDTO{
		Title:       s.Title,
		Description: s.Description,
		BackRoute:   s.BackRoute,
		Units:       units,
		Form:        toFormDTO(s.Form),
		ModalOpen:   s.ModalOpen,
		Seeding:     s.Seeding,
		Sections:    sections,
	}
}

func unauthorizedBody() UnauthorizedDTO {
	return UnauthorizedDTO{Notification: toNotificationDTO(contentUC.UnauthorizedNotification)}
}
