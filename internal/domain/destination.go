package domain

import (
	"errors"
	"strings"
)

var ErrDestinationExists = errors.New("destination already exists")

// Messages the API returns to visitors.
const (
	MessageInvalidBody       = "Cuerpo de la solicitud no válido"
	MessageDestinationExists = "Este destino ya existe"
	MessageSaveFailed        = "Error guardando destino"
)

type Destination struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Country     string `db:"country" json:"country"`
	BestMonths  string `db:"best_months" json:"bestMonths"`
	Festivals   string `db:"festivals" json:"festivals"`
	Lat         string `db:"lat" json:"lat"`
	Lng         string `db:"lng" json:"lng"`
	ImageQuery  string `db:"image_query" json:"imageQuery"`
	IsUserAdded bool   `db:"-" json:"isUserAdded"`
}

// DestinationInput is the body accepted when a visitor submits a destination.
type DestinationInput struct {
	Name       string `json:"name"`
	Country    string `json:"country"`
	BestMonths string `json:"bestMonths"`
	Festivals  string `json:"festivals"`
	Lat        string `json:"lat"`
	Lng        string `json:"lng"`
	ImageQuery string `json:"imageQuery"`
}

func (in DestinationInput) Destination() Destination {
	return Destination{
		Name:       in.Name,
		Country:    in.Country,
		BestMonths: in.BestMonths,
		Festivals:  in.Festivals,
		Lat:        in.Lat,
		Lng:        in.Lng,
		ImageQuery: in.ImageQuery,
	}
}

// SameLocation reports whether two destinations share the (name, country) identity.
func (d Destination) SameLocation(name, country string) bool {
	return d.Name == name && d.Country == country
}

func ImageQueryFor(name, country string) string {
	return strings.TrimSpace(name) + ", " + strings.TrimSpace(country) + ", city, travel"
}
