// Package seed loads vocabulary into the database: built-in defaults,
// validated JSON files, or teacher-authored spreadsheets.
package seed

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ssantos/wordkids/internal/catalog"
)

// Writer is the slice of the repository the seeder inserts through.
type Writer interface {
	InsertItem(ctx context.Context, item catalog.LearningItem) error
	ListItemsByCategory(ctx context.Context, category catalog.CategoryKey) ([]catalog.LearningItem, error)
}

// Result reports one import run.
type Result struct {
	Imported int
	Skipped  int
	Problems []string
}

// Seeder inserts vocabulary items.
type Seeder struct {
	store Writer
}

// New creates a seeder over the item store.
func New(store Writer) *Seeder {
	return &Seeder{store: store}
}

// Defaults inserts the built-in vocabulary for every category that has
// no items yet. Categories already populated are left alone.
func (s *Seeder) Defaults(ctx context.Context) (*Result, error) {
	res := &Result{}
	populated := make(map[catalog.CategoryKey]bool)
	for _, cat := range catalog.Categories {
		items, err := s.store.ListItemsByCategory(ctx, cat.Key)
		if err != nil {
			return nil, fmt.Errorf("seed defaults: %w", err)
		}
		populated[cat.Key] = len(items) > 0
	}
	for _, item := range DefaultItems() {
		if populated[item.Category] {
			res.Skipped++
			continue
		}
		if err := s.insert(ctx, item); err != nil {
			return res, err
		}
		res.Imported++
	}
	return res, nil
}

// File imports a seed file, dispatching on extension: .json for
// schema-validated JSON, .xlsx for spreadsheets.
func (s *Seeder) File(ctx context.Context, path, sheet string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		items, err := ParseJSON(path)
		if err != nil {
			return nil, err
		}
		return s.insertAll(ctx, items, nil)
	case ".xlsx":
		items, problems, err := ParseExcel(path, sheet)
		if err != nil {
			return nil, err
		}
		return s.insertAll(ctx, items, problems)
	}
	return nil, fmt.Errorf("seed: unsupported file type %q", filepath.Ext(path))
}

func (s *Seeder) insertAll(ctx context.Context, items []catalog.LearningItem, problems []string) (*Result, error) {
	res := &Result{Problems: problems, Skipped: len(problems)}
	for _, item := range items {
		if err := s.insert(ctx, item); err != nil {
			return res, err
		}
		res.Imported++
	}
	return res, nil
}

func (s *Seeder) insert(ctx context.Context, item catalog.LearningItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := s.store.InsertItem(ctx, item); err != nil {
		return fmt.Errorf("seed: insert %q: %w", item.EnglishWord, err)
	}
	return nil
}
