package catalog

// CategoryKey identifies one of the fixed vocabulary categories.
// It is also the partition key for the asset cache.
type CategoryKey string

const (
	CategoryColors  CategoryKey = "colors"
	CategoryNumbers CategoryKey = "numbers"
	CategoryAnimals CategoryKey = "animals"
	CategoryFruits  CategoryKey = "fruits"
)

// Category carries the display metadata for one vocabulary category.
type Category struct {
	Key      CategoryKey
	Label    string // Portuguese label shown to the child
	VideoURL string // lesson video for the category's video mode
}

// Categories is the fixed category list, in display order.
var Categories = []Category{
	{Key: CategoryColors, Label: "Cores", VideoURL: "https://www.youtube.com/embed/SLZcWGQQsmg"},
	{Key: CategoryNumbers, Label: "Números", VideoURL: "https://www.youtube.com/embed/o0IsBUaoTrQ"},
	{Key: CategoryAnimals, Label: "Animais", VideoURL: "https://www.youtube.com/embed/4jeHK_9NiXI"},
	{Key: CategoryFruits, Label: "Frutas", VideoURL: "https://www.youtube.com/embed/mfReSbQ7jzE"},
}

// CategoryByKey returns the category metadata for key, or nil if unknown.
func CategoryByKey(key CategoryKey) *Category {
	for i := range Categories {
		if Categories[i].Key == key {
			return &Categories[i]
		}
	}
	return nil
}

// LearningItem is one vocabulary flashcard. Items are immutable once
// fetched; a category's list is ordered by OrderIndex.
type LearningItem struct {
	ID             string      `db:"id" json:"id"`
	Category       CategoryKey `db:"category" json:"category"`
	EnglishWord    string      `db:"english_word" json:"english_word"`
	PortugueseWord string      `db:"portuguese_word" json:"portuguese_word"`
	ImageURL       string      `db:"image_url" json:"image_url"`
	Pronunciation  string      `db:"pronunciation" json:"pronunciation"`
	AudioText      string      `db:"audio_text" json:"audio_text"`
	OrderIndex     int         `db:"order_index" json:"order_index"`
}

// SpokenText returns the text to feed the speech synthesizer. Some items
// carry a dedicated audio_text; the English word is the fallback.
func (it LearningItem) SpokenText() string {
	if it.AudioText != "" {
		return it.AudioText
	}
	return it.EnglishWord
}

// ActivityType classifies an activity log entry.
type ActivityType string

const (
	ActivityLessonView     ActivityType = "lesson_view"
	ActivityGameStart      ActivityType = "game_start"
	ActivityGameComplete   ActivityType = "game_complete"
	ActivityVideoWatch     ActivityType = "video_watch"
	ActivityVocabularyView ActivityType = "vocabulary_view"
)

// Lesson is one lesson within a category's class section.
type Lesson struct {
	ID         string `db:"id"`
	CategoryID string `db:"category_id"`
	Title      string `db:"title"`
	OrderIndex int    `db:"order_index"`
}

// LessonAudio is a recorded audio attached to a lesson, either a class
// recording or a practice track.
type LessonAudio struct {
	ID         string `db:"id"`
	LessonID   string `db:"lesson_id"`
	Type       string `db:"type"` // "class" or "practice"
	AudioURL   string `db:"audio_url"`
	OrderIndex int    `db:"order_index"`
}

// CategoryVideo is a video attached directly to a class category.
type CategoryVideo struct {
	ID         string `db:"id"`
	CategoryID string `db:"category_id"`
	VideoURL   string `db:"video_url"`
	OrderIndex int    `db:"order_index"`
}

// LessonWithAudios groups a lesson with its audios split by type.
type LessonWithAudios struct {
	Lesson
	ClassAudios    []LessonAudio
	PracticeAudios []LessonAudio
}

// ClassCategory is a themed group of lessons.
type ClassCategory struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	OrderIndex int    `db:"order_index"`
}

// ClassCategoryWithLessons is the hierarchical structure returned by the
// repository: category → lessons (with audios) → videos.
type ClassCategoryWithLessons struct {
	ClassCategory
	Lessons []LessonWithAudios
	Videos  []CategoryVideo
}
