package reconcile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/masonry/internal/model"
)

// wrapperPrefix starts every wrapper id
const wrapperPrefix = "masonry-"

// Wrapper is the rendered container of one item
type Wrapper struct {
	ID      string
	Item    model.ItemID
	Tag     string
	Dragged bool
}

// SizeClass returns the wrapper's tag as a size class
func (w *Wrapper) SizeClass() model.SizeClass {
	return model.SizeClass(w.Tag)
}

// FormatWrapperID builds the id of the n-th wrapper created by a layout
func FormatWrapperID(layoutID string, n int) string {
	return fmt.Sprintf("%s%s-%d", wrapperPrefix, layoutID, n)
}

// WrapperBelongsTo reports whether id was allocated by the given layout
func WrapperBelongsTo(id, layoutID string) bool {
	if layoutID == "" {
		return false
	}
	rest, ok := strings.CutPrefix(id, wrapperPrefix+layoutID+"-")
	if !ok || rest == "" {
		return false
	}
	n, err := strconv.Atoi(rest)
	return err == nil && n >= 0
}
