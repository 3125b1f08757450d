package dnd

import "github.com/ytget/masonry/internal/model"

// Session is the state of one drag, from start until drop or cancel
type Session struct {
	Dragged           model.ItemID
	Origin            model.Snapshot // committed order when the drag started
	Preview           []model.ItemID // speculative order shown while dragging
	HasPendingPreview bool
	LastTarget        model.ItemID // last hover target that was processed
}

func (s *Session) clone() Session {
	cp := *s
	cp.Preview = append([]model.ItemID(nil), s.Preview...)
	return cp
}

func (s *Session) previewIndex(id model.ItemID) int {
	for i, v := range s.Preview {
		if v == id {
			return i
		}
	}
	return -1
}

// moveDraggedTo takes the dragged item out of the preview and puts it at index
func (s *Session) moveDraggedTo(index int) {
	if cur := s.previewIndex(s.Dragged); cur >= 0 {
		s.Preview = append(s.Preview[:cur], s.Preview[cur+1:]...)
	}
	if index > len(s.Preview) {
		index = len(s.Preview)
	}
	if index < 0 {
		index = 0
	}
	s.Preview = append(s.Preview, "")
	copy(s.Preview[index+1:], s.Preview[index:])
	s.Preview[index] = s.Dragged
}
