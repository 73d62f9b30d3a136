package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Product é uma opção do catálogo usada na captura de venda.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

func NewProduct(name string) *Product {
	return &Product{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      Slugify(name),
		CreatedAt: time.Now(),
	}
}

// Catalog agrupa produtos e vendedores oferecidos no modal de venda.
type Catalog struct {
	Products     []Product `json:"products"`
	Salespersons []string  `json:"salespersons"`
}

// Slugify remove acentos antes de montar o slug ("Película de Vidro" -> "pelicula-de-vidro").
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}

	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(plain)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash && b.Len() > 0:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
