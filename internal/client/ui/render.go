package ui

import "github.com/reomoon/memo/internal/client/models"

// Form is the editable content of the memo editor.
type Form struct {
	Title string
	URL   string
	Body  string
}

// ModalState is the editor state. EditingID is nil while creating.
type ModalState struct {
	Open            bool
	EditingID       *int64
	Form            Form
	PasswordEnabled bool
	Generating      bool
}

// ViewState is everything BuildRenderModel needs.
type ViewState struct {
	Memos          []models.Memo
	Page           int
	TotalPages     int
	Categories     []string
	ActiveCategory *string
	Unlocked       map[int64]bool
	Modal          ModalState
}

type RenderModel struct {
	Cards        []Card
	EmptyMessage string
	Pagination   Pagination
	Chips        []Chip
	Modal        *ModalView
}

// Card is one memo as displayed. Body and URL are blank while Locked.
type Card struct {
	ID        int64
	Title     string
	URL       string
	Body      string
	Category  string
	CreatedAt string
	Protected bool
	Locked    bool
	CanCopy   bool
}

type Pagination struct {
	Visible  bool
	Current  int
	Total    int
	ShowPrev bool
	ShowNext bool
	Pages    []PageButton
}

type PageButton struct {
	Number int
	Active bool
}

// Chip is a category filter button. The "all" chip has a nil Category.
type Chip struct {
	Label    string
	Category *string
	Active   bool
}

type ModalView struct {
	Heading         string
	Editing         bool
	Form            Form
	PasswordEnabled bool
	TitleDisabled   bool
}

// BuildRenderModel is a pure function of s.
func BuildRenderModel(s ViewState) RenderModel {
	rm := RenderModel{
		Cards:      buildCards(s.Memos, s.Unlocked),
		Pagination: buildPagination(s.Page, s.TotalPages),
		Chips:      buildChips(s.Categories, s.ActiveCategory),
	}
	if len(rm.Cards) == 0 {
		rm.EmptyMessage = EmptyMessage
	}
	if s.Modal.Open {
		rm.Modal = buildModal(s.Modal)
	}
	return rm
}

func buildCards(memos []models.Memo, unlocked map[int64]bool) []Card {
	cards := make([]Card, 0, len(memos))
	for _, m := range memos {
		c := Card{
			ID:        m.ID,
			Title:     m.Title,
			Category:  m.CategoryOrDefault(),
			CreatedAt: m.CreatedAt,
			Protected: m.Locked(),
		}
		c.Locked = c.Protected && !unlocked[m.ID]
		if c.Locked {
			c.Body = LockedBody
		} else {
			c.Body = m.Body
			c.URL = m.URL
			c.CanCopy = true
		}
		cards = append(cards, c)
	}
	return cards
}

func buildPagination(page, total int) Pagination {
	if total <= 1 {
		return Pagination{Current: page, Total: total}
	}
	p := Pagination{
		Visible:  true,
		Current:  page,
		Total:    total,
		ShowPrev: page > 1,
		ShowNext: page < total,
		Pages:    make([]PageButton, 0, total),
	}
	for i := 1; i <= total; i++ {
		p.Pages = append(p.Pages, PageButton{Number: i, Active: i == page})
	}
	return p
}

func buildChips(categories []string, active *string) []Chip {
	chips := make([]Chip, 0, len(categories)+1)
	chips = append(chips, Chip{Label: AllChipLabel, Active: active == nil})
	for _, c := range categories {
		c := c
		chips = append(chips, Chip{
			Label:    c,
			Category: &c,
			Active:   active != nil && *active == c,
		})
	}
	return chips
}

func buildModal(m ModalState) *ModalView {
	v := &ModalView{
		Heading:         HeadingNew,
		Editing:         m.EditingID != nil,
		Form:            m.Form,
		PasswordEnabled: m.PasswordEnabled,
		TitleDisabled:   m.Generating,
	}
	if v.Editing {
		v.Heading = HeadingEdit
	}
	return v
}
