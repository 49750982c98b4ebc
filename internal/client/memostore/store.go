package memostore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/reomoon/memo/internal/client/models"
	"github.com/reomoon/memo/internal/client/repositories/storage"
	"github.com/reomoon/memo/internal/common"
	"github.com/reomoon/memo/internal/logging"
)

// DefaultPageSize is the number of memos per page.
const DefaultPageSize = 10

// Classifier assigns a category label to free text.
type Classifier interface {
	ClassifyCategory(ctx context.Context, text string) (string, error)
}

// Input carries the editable fields of a memo.
type Input struct {
	Title string
	URL   string
	Body  string
	// Password is the plaintext code; nil or empty means "no new code".
	Password *string
	// Category is applied when non-empty. Create falls back to DefaultCategory.
	Category string
}

type Store struct {
	repo       storage.Repository
	classifier Classifier
	logger     logging.Logger
	now        func() time.Time
	pageSize   int

	memos  []models.Memo
	filter *string
}

type Option func(*Store)

// WithPageSize overrides DefaultPageSize; non-positive values are ignored.
func WithPageSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New returns an empty store. Call Load to restore the persisted collection.
func New(repo storage.Repository, classifier Classifier, opts ...Option) *Store {
	s := &Store{
		repo:       repo,
		classifier: classifier,
		logger:     logging.NewNop(),
		now:        time.Now,
		pageSize:   DefaultPageSize,
		memos:      []models.Memo{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load restores the collection from storage. A missing, unreadable or corrupt
// value leaves the store empty; the cause is only logged.
func (s *Store) Load(ctx context.Context) {
	s.memos = []models.Memo{}

	raw, err := s.repo.Get(ctx, common.MemosKey)
	if err != nil {
		s.logger.Warn(ctx, "memos unavailable, starting empty", "error", err)
		return
	}
	if len(raw) == 0 {
		return
	}

	var memos []models.Memo
	if err := json.Unmarshal(raw, &memos); err != nil {
		s.logger.Warn(ctx, "memos corrupt, starting empty", "error", err)
		return
	}
	if memos != nil {
		s.memos = memos
	}
}

func (s *Store) save(ctx context.Context) error {
	b, err := json.Marshal(s.memos)
	if err != nil {
		return fmt.Errorf("failed to encode memos: %w", err)
	}
	if err := s.repo.Set(ctx, common.MemosKey, b); err != nil {
		return fmt.Errorf("failed to save memos: %w", err)
	}
	return nil
}

func validate(in Input) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Body) == "" {
		return fmt.Errorf("%w: title and body are required", common.ErrorValidation)
	}
	return nil
}

func hashed(code *string) *string {
	if code == nil || *code == "" {
		return nil
	}
	h := Checksum(*code)
	return &h
}

// nextID returns the current time in milliseconds, bumped past the newest id
// when two memos are created within the same millisecond.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	for _, m := range s.memos {
		if m.ID >= id {
			id = m.ID + 1
		}
	}
	return id
}

// Create inserts a new memo at the front of the collection and persists it.
// A failed write leaves the in-memory collection unchanged.
func (s *Store) Create(ctx context.Context, in Input) (models.Memo, error) {
	if err := validate(in); err != nil {
		return models.Memo{}, err
	}

	category := in.Category
	if category == "" {
		category = models.DefaultCategory
	}

	memo := models.Memo{
		ID:        s.nextID(),
		Title:     in.Title,
		URL:       in.URL,
		Body:      in.Body,
		Password:  hashed(in.Password),
		Category:  category,
		CreatedAt: FormatCreatedAt(s.now()),
	}

	prev := s.memos
	s.memos = append([]models.Memo{memo}, s.memos...)
	if err := s.save(ctx); err != nil {
		s.memos = prev
		return models.Memo{}, err
	}
	return memo, nil
}

// Update edits the memo in place. An unknown id is a silent no-op; a nil or
// empty Input.Password keeps the stored checksum.
func (s *Store) Update(ctx context.Context, id int64, in Input) error {
	if err := validate(in); err != nil {
		return err
	}

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	prev := s.memos[i]
	m := &s.memos[i]
	m.Title = in.Title
	m.URL = in.URL
	m.Body = in.Body
	if p := hashed(in.Password); p != nil {
		m.Password = p
	}
	if in.Category != "" {
		m.Category = in.Category
	}

	if err := s.save(ctx); err != nil {
		s.memos[i] = prev
		return err
	}
	return nil
}

// Delete removes the memo with id, if any, and persists the collection.
func (s *Store) Delete(ctx context.Context, id int64) error {
	kept := make([]models.Memo, 0, len(s.memos))
	for _, m := range s.memos {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	prev := s.memos
	s.memos = kept
	if err := s.save(ctx); err != nil {
		s.memos = prev
		return err
	}
	return nil
}

func (s *Store) indexOf(id int64) int {
	for i := range s.memos {
		if s.memos[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns a copy of the memo with id.
func (s *Store) Get(id int64) (models.Memo, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Memo{}, false
	}
	return s.memos[i], true
}

// All returns a copy of the whole collection, newest first.
func (s *Store) All() []models.Memo {
	return append([]models.Memo{}, s.memos...)
}

// SetCategoryFilter restricts Page and TotalPages to one category; nil clears it.
func (s *Store) SetCategoryFilter(category *string) {
	if category == nil {
		s.filter = nil
		return
	}
	c := *category
	s.filter = &c
}

// CategoryFilter returns the active filter, or nil.
func (s *Store) CategoryFilter() *string {
	if s.filter == nil {
		return nil
	}
	c := *s.filter
	return &c
}

// Filtered returns the memos matching the current filter, newest first.
func (s *Store) Filtered() []models.Memo {
	if s.filter == nil {
		return s.All()
	}
	out := make([]models.Memo, 0, len(s.memos))
	for _, m := range s.memos {
		if m.Category == *s.filter {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) PageSize() int {
	return s.pageSize
}

// Page returns the 1-indexed page of the filtered sequence. Pages outside
// 1..TotalPages are empty.
func (s *Store) Page(n int) []models.Memo {
	filtered := s.Filtered()
	start := (n - 1) * s.pageSize
	if n < 1 || start >= len(filtered) {
		return []models.Memo{}
	}
	end := start + s.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// TotalPages is ceil(filtered count / page size); 0 when nothing matches.
func (s *Store) TotalPages() int {
	n := len(s.Filtered())
	return (n + s.pageSize - 1) / s.pageSize
}

// Categories lists the distinct categories of all memos, ignoring the filter.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, m := range s.memos {
		c := m.CategoryOrDefault()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Classify asks the classifier for a label of "title body". Any failure or an
// empty answer yields DefaultCategory; Classify never fails.
func (s *Store) Classify(ctx context.Context, title, body string) string {
	if s.classifier == nil {
		return models.DefaultCategory
	}
	category, err := s.classifier.ClassifyCategory(ctx, title+" "+body)
	if err != nil {
		s.logger.Warn(ctx, "classification failed", "error", err)
		return models.DefaultCategory
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return models.DefaultCategory
	}
	return category
}

// VerifyPassword reports whether candidate matches the stored checksum.
func (s *Store) VerifyPassword(stored, candidate string) bool {
	return VerifyPassword(stored, candidate)
}
