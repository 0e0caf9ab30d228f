// Package presentation renders the destination catalogue page.
//
// Cards are rendered on the server. Each card carries a map container that the
// page script turns into a Leaflet map centred on the destination with one
// marker. The same page hosts the submission form.
package presentation

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/njprem/Travel_Diary_BackEnd/internal/domain"
)

const LoadErrorMessage = "Error cargando los destinos"

//go:embed templates/*.tmpl
var templateFS embed.FS

type Card struct {
	MapID       string
	ImageURL    string
	Name        string
	Country     string
	BestMonths  string
	Festivals   string
	Lat         string
	Lng         string
	IsUserAdded bool
}

type Page struct {
	Title string
	Cards template.HTML
	Error string
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func MapID(d domain.Destination) string {
	return "map-" + strconv.FormatInt(d.ID, 10)
}

// CardsFor pairs every destination with its resolved image url. Both slices share an index.
func CardsFor(destinations []domain.Destination, imageURLs []string) []Card {
	cards := make([]Card, len(destinations))
	for i, d := range destinations {
		var url string
		if i < len(imageURLs) {
			url = imageURLs[i]
		}
		cards[i] = Card{
			MapID:       MapID(d),
			ImageURL:    url,
			Name:        d.Name,
			Country:     d.Country,
			BestMonths:  d.BestMonths,
			Festivals:   d.Festivals,
			Lat:         d.Lat,
			Lng:         d.Lng,
			IsUserAdded: d.IsUserAdded,
		}
	}
	return cards
}

func (r *Renderer) RenderCards(w io.Writer, cards []Card) error {
	return r.tmpl.ExecuteTemplate(w, "cards", cards)
}

func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	if page.Title == "" {
		page.Title = "Travel Diary"
	}
	return r.tmpl.ExecuteTemplate(w, "page", page)
}

// LoadError is the banner the page script shows when reloading the list fails.
func (Page) LoadError() string {
	return LoadErrorMessage
}
