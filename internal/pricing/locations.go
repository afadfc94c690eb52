package pricing

// LocationFee is a flat EUR fee for delivering or collecting a vehicle at a named place.
type LocationFee struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

var locationFees = []LocationFee{
	{Name: "Cluj-Napoca", Price: 10},
	{Name: "Aeroport Cluj-Napoca", Price: 0},
	{Name: "Florești", Price: 15},
	{Name: "Apahida", Price: 15},
	{Name: "Gherla", Price: 35},
	{Name: "Turda", Price: 35},
	{Name: "Dej", Price: 45},
	{Name: "Huedin", Price: 45},
	{Name: "Câmpia Turzii", Price: 40},
	{Name: "Zalău", Price: 70},
	{Name: "Bistrița", Price: 80},
	{Name: "Alba Iulia", Price: 90},
	{Name: "Târgu Mureș", Price: 100},
	{Name: "Oradea", Price: 130},
	{Name: "București", Price: 220},
}

var locationFeeIndex = func() map[string]float64 {
	m := make(map[string]float64, len(locationFees))
	for _, l := range locationFees {
		m[l.Name] = l.Price
	}
	return m
}()

// LocationFeeFor returns the fee for an exact, case-sensitive location name; unknown names cost 0.
func LocationFeeFor(name string) float64 {
	return locationFeeIndex[name]
}

// Locations returns a copy of the fee table in display order.
func Locations() []LocationFee {
	out := make([]LocationFee, len(locationFees))
	copy(out, locationFees)
	return out
}
