package domain

var builtinDestinations = []Destination{
	{
		ID:         1,
		Name:       "Estambul",
		Country:    "Turquía",
		BestMonths: "Abril-Mayo, Septiembre-Octubre",
		Festivals:  "Festival del Tulipán (Abril), Beyoğlu Culture Route Festival (Septiembre-Octubre)",
		Lat:        "41.010",
		Lng:        "28.960",
		ImageQuery: "Istanbul city Turkey skyline",
	},
	{
		ID:         2,
		Name:       "Moscú",
		Country:    "Rusia",
		BestMonths: "Primavera (Abril-Mayo), Verano (Junio-Agosto), Otoño (Septiembre-Noviembre)",
		Festivals:  "Maslenitsa (7 días antes de la Cuaresma), Día de la Victoria (9 de mayo), Internacional Art November (Noviembre)",
		Lat:        "55.752222",
		Lng:        "37.615556",
		ImageQuery: "Moscow city Russia Kremlin",
	},
	{
		ID:         3,
		Name:       "Ereván",
		Country:    "Armenia",
		BestMonths: "Primavera (Abril-Junio), Otoño (Septiembre-Octubre)",
		Festivals:  "Festival de Dolma (Mayo), Festival de los Días del Vino (Junio), Festival del Té y del Café (Primeros días de Octubre), Festival de Vardavar (98 días despues de Pascua)",
		Lat:        "40.18",
		Lng:        "44.50",
		ImageQuery: "Yerevan city Armenia",
	},
	{
		ID:         4,
		Name:       "Quba",
		Country:    "Azerbaiyán",
		BestMonths: "Primavera (Marzo-Mayo), Otoño (Septiembre-Octubre)",
		Festivals:  "Festival de la Manzana (Octubre-Noviembre)",
		Lat:        "41.37",
		Lng:        "48.52",
		ImageQuery: "Quba Azerbaijan landscape mountains",
	},
	{
		ID:         5,
		Name:       "Minsk",
		Country:    "Bielorrusia",
		BestMonths: "Mayo, Junio, Septiembre y Octubre",
		Festivals:  "Parada de Papá Noel (31 de diciembre), Año Nuevo",
		Lat:        "53.902",
		Lng:        "27.562",
		ImageQuery: "Minsk city Belarus architecture",
	},
	{
		ID:         6,
		Name:       "Jingdezhen",
		Country:    "China",
		BestMonths: "Primavera (Abril-Mayo), Otoño (Septiembre-Octubre)",
		Festivals:  "Feria de Cerámica de Taoxichuan (30 de abril - 5 de mayo y 17 - 19 de octubre)",
		Lat:        "29.29",
		Lng:        "117.20",
		ImageQuery: "Jingdezhen ceramics China porcelain",
	},
}

// BuiltinDestinations returns a copy of the compiled-in catalogue in declaration order.
func BuiltinDestinations() []Destination {
	out := make([]Destination, len(builtinDestinations))
	copy(out, builtinDestinations)
	return out
}
