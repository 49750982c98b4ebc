// Package models defines client-side data models used by the memo CLI.
package models

// Category labels offered to the classifier. Values are what gets stored.
const (
	CategoryDaily    = "일상"
	CategoryWork     = "업무"
	CategoryIdea     = "아이디어"
	CategoryLearning = "학습"
	CategoryHealth   = "건강"
	CategoryFinance  = "금융"
	CategoryHobby    = "취미"
	CategoryShopping = "쇼핑"
	CategoryOther    = "기타"
)

// DefaultCategory is assigned on creation and whenever classification fails.
const DefaultCategory = CategoryOther

// Categories is the closed label set in prompt order.
var Categories = []string{
	CategoryDaily, CategoryWork, CategoryIdea, CategoryLearning, CategoryHealth,
	CategoryFinance, CategoryHobby, CategoryShopping, CategoryOther,
}

// Memo is the single persisted entity. The JSON tags are the storage format
// of the "memos" key.
type Memo struct {
	// ID is the creation time in Unix milliseconds.
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Body  string `json:"body"`
	// Password is nil for unprotected memos, otherwise the checksum of the code.
	Password  *string `json:"password"`
	Category  string  `json:"category"`
	CreatedAt string  `json:"createdAt"`
}

// Locked reports whether the memo body is gated by a code.
func (m Memo) Locked() bool {
	return m.Password != nil
}

// CategoryOrDefault returns the memo category, or DefaultCategory when unset.
func (m Memo) CategoryOrDefault() string {
	if m.Category == "" {
		return DefaultCategory
	}
	return m.Category
}
