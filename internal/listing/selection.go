package listing

import "encoding/json"

// Selection é um conjunto de ids na ordem de inserção. Todo método devolve um valor novo.
type Selection struct {
	ids []string
	set map[string]struct{}
}

func NewSelection(ids ...string) Selection {
	s := Selection{set: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if _, ok := s.set[id]; ok {
			continue
		}
		s.set[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
	return s
}

func (s Selection) Has(id string) bool {
	_, ok := s.set[id]
	return ok
}

func (s Selection) Len() int { return len(s.ids) }

func (s Selection) IDs() []string {
	return append([]string{}, s.ids...)
}

func (s Selection) Toggle(id string) Selection {
	if s.Has(id) {
		return s.Without(id)
	}
	return NewSelection(append(s.IDs(), id)...)
}

func (s Selection) Without(ids ...string) Selection {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		if _, ok := drop[id]; !ok {
			kept = append(kept, id)
		}
	}
	return NewSelection(kept...)
}

// AllSelected é falso para página vazia.
func (s Selection) AllSelected(pageIDs []string) bool {
	if len(pageIDs) == 0 {
		return false
	}
	for _, id := range pageIDs {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

func (s Selection) SomeSelected(pageIDs []string) bool {
	for _, id := range pageIDs {
		if s.Has(id) {
			return true
		}
	}
	return false
}

// TogglePage remove os ids da página quando todos já estão marcados; senão adiciona.
func (s Selection) TogglePage(pageIDs []string) Selection {
	if s.AllSelected(pageIDs) {
		return s.Without(pageIDs...)
	}
	return NewSelection(append(s.IDs(), pageIDs...)...)
}

// Prune descarta os ids para os quais keep devolve false.
func (s Selection) Prune(keep func(id string) bool) Selection {
	kept := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		if keep(id) {
			kept = append(kept, id)
		}
	}
	return NewSelection(kept...)
}

func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

func (s *Selection) UnmarshalJSON(b []byte) error {
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	*s = NewSelection(ids...)
	return nil
}
