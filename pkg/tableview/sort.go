// Package tableview contém os auxiliares de apresentação de tabelas:
// ordenação, paginação e seleção em massa sobre conjuntos já filtrados.
package tableview

import (
	"sort"
	"strings"
	"time"
)

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// SortState é o estado de ordenação de uma tabela
type SortState struct {
	Key       string
	Direction Direction
}

// Toggle alterna a direção quando a mesma chave é reselecionada; uma chave
// nova redefine a direção para crescente
func (s *SortState) Toggle(key string) {
	if s.Key == key && s.Direction == Ascending {
		s.Direction = Descending
		return
	}
	s.Key = key
	s.Direction = Ascending
}

// KeyFunc extrai o valor de ordenação de um registro. Um retorno nil indica
// valor ausente, que ordena por último independentemente da direção.
type KeyFunc[T any] func(T) any

// SortRecords retorna uma cópia ordenada dos registros. Valores ausentes
// (nil) vão sempre para o final; a ordenação é estável.
func SortRecords[T any](items []T, key KeyFunc[T], direction Direction) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		a := key(sorted[i])
		b := key(sorted[j])

		// nil ordena por último nas duas direções
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}

		cmp := compareValues(a, b)
		if direction == Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	return sorted
}

// compareValues compara dois valores de ordenação do mesmo tipo
func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return strings.Compare(av, bv)
	case int:
		bv, _ := b.(int)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case float64:
		bv, _ := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case time.Time:
		bv, _ := b.(time.Time)
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	}
	return 0
}
