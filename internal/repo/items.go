package repo

import (
	"context"

	"github.com/ssantos/wordkids/internal/catalog"
)

// ListItemsByCategory returns the category's items ordered by order_index.
// Uniqueness of item ids within a category is enforced by the store.
func (s *Store) ListItemsByCategory(ctx context.Context, category catalog.CategoryKey) ([]catalog.LearningItem, error) {
	query := s.db.Rebind(`
		SELECT id, category, english_word, portuguese_word, image_url,
		       pronunciation, audio_text, order_index
		FROM learning_items
		WHERE category = ?
		ORDER BY order_index`)

	var items []catalog.LearningItem
	if err := s.db.SelectContext(ctx, &items, query, string(category)); err != nil {
		return nil, &RepositoryError{Op: "list items", Err: err}
	}
	return items, nil
}

// ListCategoriesWithLessons fetches categories, lessons, audios and videos
// in four ordered queries and groups them hierarchically.
func (s *Store) ListCategoriesWithLessons(ctx context.Context) ([]catalog.ClassCategoryWithLessons, error) {
	var categories []catalog.ClassCategory
	if err := s.db.SelectContext(ctx, &categories,
		`SELECT id, name, order_index FROM class_categories ORDER BY order_index`); err != nil {
		return nil, &RepositoryError{Op: "list class categories", Err: err}
	}

	var lessons []catalog.Lesson
	if err := s.db.SelectContext(ctx, &lessons,
		`SELECT id, category_id, title, order_index FROM lessons ORDER BY order_index`); err != nil {
		return nil, &RepositoryError{Op: "list lessons", Err: err}
	}

	var audios []catalog.LessonAudio
	if err := s.db.SelectContext(ctx, &audios,
		`SELECT id, lesson_id, type, audio_url, order_index FROM lesson_audios ORDER BY order_index`); err != nil {
		return nil, &RepositoryError{Op: "list lesson audios", Err: err}
	}

	// Category videos are a later addition; a missing table degrades to none.
	var videos []catalog.CategoryVideo
	if err := s.db.SelectContext(ctx, &videos,
		`SELECT id, category_id, video_url, order_index FROM class_category_videos ORDER BY order_index`); err != nil {
		videos = nil
	}

	audiosByLesson := make(map[string][]catalog.LessonAudio)
	for _, a := range audios {
		audiosByLesson[a.LessonID] = append(audiosByLesson[a.LessonID], a)
	}

	lessonsByCategory := make(map[string][]catalog.LessonWithAudios)
	for _, l := range lessons {
		lw := catalog.LessonWithAudios{Lesson: l}
		for _, a := range audiosByLesson[l.ID] {
			if a.Type == "class" {
				lw.ClassAudios = append(lw.ClassAudios, a)
			} else {
				lw.PracticeAudios = append(lw.PracticeAudios, a)
			}
		}
		lessonsByCategory[l.CategoryID] = append(lessonsByCategory[l.CategoryID], lw)
	}

	videosByCategory := make(map[string][]catalog.CategoryVideo)
	for _, v := range videos {
		videosByCategory[v.CategoryID] = append(videosByCategory[v.CategoryID], v)
	}

	result := make([]catalog.ClassCategoryWithLessons, 0, len(categories))
	for _, c := range categories {
		result = append(result, catalog.ClassCategoryWithLessons{
			ClassCategory: c,
			Lessons:       lessonsByCategory[c.ID],
			Videos:        videosByCategory[c.ID],
		})
	}
	return result, nil
}

// InsertItem stores one learning item. Used by the seed importer.
func (s *Store) InsertItem(ctx context.Context, item catalog.LearningItem) error {
	query := s.db.Rebind(`
		INSERT INTO learning_items
			(id, category, english_word, portuguese_word, image_url, pronunciation, audio_text, order_index)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := s.db.ExecContext(ctx, query,
		item.ID, item.Category, item.EnglishWord, item.PortugueseWord,
		item.ImageURL, item.Pronunciation, item.AudioText, item.OrderIndex)
	if err != nil {
		return &RepositoryError{Op: "insert item", Err: err}
	}
	return nil
}
