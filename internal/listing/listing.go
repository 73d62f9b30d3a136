// Package listing monta visões filtradas, ordenadas e paginadas de uma
// coleção em memória. Todas as funções são puras: a entrada nunca muda.
package listing

import (
	"errors"
	"slices"
	"strings"
	"time"
)

// StatusAll desliga o filtro de status.
const StatusAll = "all"

const DefaultPageSize = 10

var ErrUnknownSortField = errors.New("campo de ordenação inválido")

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type SortState struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Toggle inverte a direção do campo ativo; campo novo começa ascendente.
func (s SortState) Toggle(field string) SortState {
	if s.Field == field {
		if s.Direction == Asc {
			return SortState{Field: field, Direction: Desc}
		}
		return SortState{Field: field, Direction: Asc}
	}
	return SortState{Field: field, Direction: Asc}
}

type Query struct {
	Search   string    `json:"search"`
	Status   string    `json:"status"`
	Sort     SortState `json:"sort"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}

type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
}

// Schema diz ao engine como ler um T.
type Schema[T any] struct {
	ID      func(T) string
	Status  func(T) string
	Matches func(item T, term string) bool
	Fields  map[string]func(a, b T) int
}

// Filter mantém os itens que batem com a busca e o status, na ordem original.
func Filter[T any](items []T, schema Schema[T], search, status string) []T {
	term := strings.TrimSpace(search)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if term != "" && schema.Matches != nil && !schema.Matches(item, term) {
			continue
		}
		if status != "" && status != StatusAll && schema.Status != nil && schema.Status(item) != status {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Sort devolve uma cópia ordenada de forma estável; empates mantêm a ordem.
func Sort[T any](items []T, schema Schema[T], s SortState) ([]T, error) {
	out := slices.Clone(items)
	if s.Field == "" {
		return out, nil
	}
	cmp, ok := schema.Fields[s.Field]
	if !ok {
		return nil, ErrUnknownSortField
	}
	slices.SortStableFunc(out, func(a, b T) int {
		if s.Direction == Desc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return out, nil
}

// TotalPages = ceil(total/pageSize).
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage limita page a [1, totalPages]; sem páginas devolve 1.
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	pages := TotalPages(total, pageSize)
	page = ClampPage(page, pages)

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	if start > total {
		start = total
	}
	return Page[T]{
		Items:      slices.Clone(items[start:end]),
		Total:      total,
		TotalPages: pages,
		Page:       page,
	}
}

// View aplica filtro, ordenação e paginação, nessa ordem.
func View[T any](items []T, schema Schema[T], q Query) (Page[T], error) {
	filtered := Filter(items, schema, q.Search, q.Status)
	sorted, err := Sort(filtered, schema, q.Sort)
	if err != nil {
		return Page[T]{}, err
	}
	return Paginate(sorted, q.Page, q.PageSize), nil
}

// ContainsFold é o "contém" sem diferenciar maiúsculas usado na busca.
func ContainsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

func CompareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func CompareTime(a, b time.Time) int {
	return a.Compare(b)
}

func CompareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
