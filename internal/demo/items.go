package demo

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/ytget/masonry/internal/errors"
	"github.com/ytget/masonry/internal/model"
)

// IDPrefix starts every generated card id
const IDPrefix = "card-"

// Card is one demo card as stored in an item file
type Card struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`
	Text  string `toml:"text,omitempty"`
	Tag   string `toml:"tag,omitempty"`
	Image string `toml:"image,omitempty"`
}

// Item returns the layout item of the card
func (c Card) Item() model.Item {
	return model.Item{ID: model.ItemID(c.ID), Tag: c.Tag}
}

type itemFile struct {
	Items []Card `toml:"item"`
}

// NewCardID generates a unique, time ordered card id
func NewCardID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(IDPrefix+"%d", time.Now().UnixNano())
	}
	return IDPrefix + id.String()
}

// LoadCards reads an item file. Cards without an id get a generated one;
// duplicate ids are rejected.
func LoadCards(path string) ([]Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read item file %s", path)
	}
	return ParseCards(data)
}

// ParseCards decodes item file contents
func ParseCards(data []byte) ([]Card, error) {
	var f itemFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode item file")
	}

	seen := make(map[string]bool, len(f.Items))
	for i := range f.Items {
		if f.Items[i].ID == "" {
			f.Items[i].ID = NewCardID()
		}
		if seen[f.Items[i].ID] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate card id %q", f.Items[i].ID)
		}
		seen[f.Items[i].ID] = true
	}
	return f.Items, nil
}

// SaveCards writes cards as an item file
func SaveCards(path string, cards []Card) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(itemFile{Items: cards}); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "encode item file")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "write item file %s", path)
	}
	return nil
}
