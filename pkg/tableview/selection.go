package tableview

import "sort"

// Selection é o conjunto de ids selecionados para mutação em massa.
// "Selecionar tudo" é sempre relativo ao conjunto exibido (filtrado), nunca
// à coleção completa.
type Selection struct {
	ids map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

func (s *Selection) Add(id string) {
	s.ids[id] = struct{}{}
}

func (s *Selection) Remove(id string) {
	delete(s.ids, id)
}

// Toggle inverte a seleção de um id
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

func (s *Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.ids)
}

// SelectAll substitui a seleção pelo conjunto de ids exibidos
func (s *Selection) SelectAll(displayed []string) {
	s.ids = make(map[string]struct{}, len(displayed))
	for _, id := range displayed {
		s.ids[id] = struct{}{}
	}
}

func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// IDs retorna os ids selecionados em ordem estável
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
