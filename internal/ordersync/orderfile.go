package ordersync

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ytget/masonry/internal/errors"
	"github.com/ytget/masonry/internal/model"
)

type orderFile struct {
	Order []string `toml:"order"`
}

// ReadOrder loads the ids listed in an order file
func ReadOrder(path string) ([]model.ItemID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read order file %s", path)
	}
	var f orderFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode order file %s", path)
	}
	ids := make([]model.ItemID, len(f.Order))
	for i, s := range f.Order {
		ids[i] = model.ItemID(s)
	}
	return ids, nil
}

// WriteOrder replaces the order file atomically
func WriteOrder(path string, ids []model.ItemID) error {
	f := orderFile{Order: make([]string, len(ids))}
	for i, id := range ids {
		f.Order[i] = string(id)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "encode order file")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".order-*.toml")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create temp order file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "write order file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "close order file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "replace order file %s", path)
	}
	return nil
}

// Normalize turns a desired order into a permutation of current: unknown
// and repeated ids are dropped, members the desired order does not mention
// keep their relative order and go last.
func Normalize(desired, current []model.ItemID) []model.ItemID {
	known := make(map[model.ItemID]bool, len(current))
	for _, id := range current {
		known[id] = true
	}

	out := make([]model.ItemID, 0, len(current))
	used := make(map[model.ItemID]bool, len(current))
	for _, id := range desired {
		if known[id] && !used[id] {
			used[id] = true
			out = append(out, id)
		}
	}
	for _, id := range current {
		if !used[id] {
			out = append(out, id)
		}
	}
	return out
}
