package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/ssantos/wordkids/internal/catalog"
)

// itemsSchema validates a JSON seed file before any row touches the
// database, so a bad file imports nothing instead of half of itself.
const itemsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["category", "english_word", "portuguese_word"],
    "properties": {
      "category": {"enum": ["colors", "numbers", "animals", "fruits"]},
      "english_word": {"type": "string", "minLength": 1},
      "portuguese_word": {"type": "string", "minLength": 1},
      "image_url": {"type": "string"},
      "pronunciation": {"type": "string"},
      "audio_text": {"type": "string"},
      "order_index": {"type": "integer", "minimum": 0}
    },
    "additionalProperties": false
  }
}`

var itemsSchemaCompiled = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(itemsSchema))
	if err != nil {
		panic(fmt.Sprintf("seed: parse schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("items.schema.json", doc); err != nil {
		panic(fmt.Sprintf("seed: add schema: %v", err))
	}
	sch, err := c.Compile("items.schema.json")
	if err != nil {
		panic(fmt.Sprintf("seed: compile schema: %v", err))
	}
	return sch
}

// ParseJSON reads and validates a JSON seed file and returns its items.
func ParseJSON(path string) ([]catalog.LearningItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed json: %w", err)
	}
	defer f.Close()

	doc, err := jsonschema.UnmarshalJSON(f)
	if err != nil {
		return nil, fmt.Errorf("seed json: %w", err)
	}
	if err := itemsSchemaCompiled.Validate(doc); err != nil {
		return nil, fmt.Errorf("seed json: %w", err)
	}

	// Re-marshal the validated document into the typed slice; the
	// schema guarantees the shape fits.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("seed json: %w", err)
	}
	var items []catalog.LearningItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("seed json: %w", err)
	}
	return items, nil
}
