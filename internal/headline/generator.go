// internal/headline/generator.go
//
// Random "bad news" headline generator.
//
// Context
// -------
// A headline has the form "<event> in <place>", e.g. "Smog-Alarm in
// Estland".  The place is drawn from the domestic list with probability
// 0.3 and from the foreign list otherwise; the list used decides the
// Domestic flag.  The event is drawn independently.
//
// The candidate lists are package-level slices that are never written
// after init, so concurrent readers need no locking.
package headline

import (
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"
)

// DomesticShare is the probability that a headline uses a domestic place.
const DomesticShare = 0.3

// Events holds the negative events.
var Events = []string{
	"Altersarmut", "Amoklauf", "Ausgangs-Sperre", "Ärztemangel", "Ausschreitungen",
	"Bankrott", "Bildungsnotstand", "Busunfall", "Brandstiftung", "Chemie-Unfall",
	"Cyberangriff", "Doping-Skandal", "Drogenkriminalität", "Dürre", "Entführung",
	"Erdbeben", "Erdrutsch", "Erpressung", "Explosion", "Finanzkrise", "Gasexplosion",
	"Gewaltserie", "Geflügelpest", "Großbrand", "Großschadenslage", "Hausbesetzung",
	"Handwerkermangel", "Hitzewelle", "Korruption", "Lawine", "Lebensmittelskandal",
	"Lehrermangel", "Massenkarambolage", "Massenpanik", "Mord", "Ölkatastrophe",
	"Regierungskrise", "Rinderwahn", "Rohstoffknappheit", "Schiffskollision", "Skandal",
	"Smog-Alarm", "Studierendenproteste", "Stromausfall", "Tierseuche", "Unwetter",
	"Überfall", "Überschwemmung", "Wahlmanipulation", "Waldbrand", "Waldsterben",
	"Wirtschaftskrise", "Vulkanausbruch",
}

// DomesticPlaces holds the German states followed by a few regions.
var DomesticPlaces = []string{
	"Baden-Württemberg", "Bayern", "Bremen", "Berlin", "Brandenburg",
	"Hamburg", "Hessen", "Mecklenburg-Vorpommern", "Niedersachsen",
	"Nordrhein-Westfalen", "Rheinland-Pfalz", "Saarland", "Sachsen",
	"Sachsen-Anhalt", "Schleswig-Holstein", "Thüringen",

	"Breisgau", "Franken", "Nordseeküste", "Ostseeküste", "Ostfriesland", "Schwarzwald",
}

// ForeignPlaces holds other countries.
var ForeignPlaces = []string{
	"Albanien", "Amerika", "Andorra", "Argentinien", "Armenien", "Australien",
	"Belgien", "Bosnien und Herzegowina", "Bulgarien", "China",
	"Dänemark", "Estland", "Finnland", "Frankreich", "Griechenland",
	"Irland", "Island", "Italien", "Japan", "Kanada", "Kosovo", "Kolumbien",
	"Kroatien", "Lettland", "Liechtenstein", "Litauen", "Luxemburg",
	"Malta", "Mazedonien", "Moldawien", "Monaco", "Montenegro",
	"Niederlande", "Norwegen", "Österreich", "Panama", "Polen",
	"Portugal", "Rumänien", "Russland", "San Marino", "Schweden",
	"Schweiz", "Serbien", "Singapur", "Slowakei", "Slowenien",
	"Spanien", "Taiwan", "Tschechien", "Türkei", "Ukraine",
	"Ungarn", "Vatikanstadt", "Vereinigtes Königreich", "Weißrussland",
}

// Generator produces random headlines.  The zero value is not usable;
// construct with NewGenerator or NewGeneratorWithSource.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand // nil → math/rand/v2 global functions (goroutine-safe)
	log *zap.SugaredLogger
}

// NewGenerator returns a Generator backed by the global random source.
func NewGenerator() *Generator {
	return &Generator{log: zap.S()}
}

// NewGeneratorWithSource returns a Generator drawing from src.  Access to
// src is serialized, so the Generator stays safe for concurrent use.
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src), log: zap.S()}
}

// One returns a single random headline with ID zero.
func (g *Generator) One() Headline {
	event := g.pick(Events)

	var (
		place    string
		domestic bool
	)
	if g.float64() < DomesticShare {
		place = g.pick(DomesticPlaces)
		domestic = true
	} else {
		place = g.pick(ForeignPlaces)
	}

	return Headline{Text: event + " in " + place, Domestic: domestic}
}

// Many returns n independently generated headlines.  Duplicates are
// possible.  n < 1 yields an empty slice and a warning, not an error.
func (g *Generator) Many(n int) []Headline {
	if n < 1 {
		g.log.Warnw("headline generation requested with non-positive count", "count", n)
		return []Headline{}
	}
	out := make([]Headline, 0, n)
	for range n {
		out = append(out, g.One())
	}
	return out
}

// pick returns a uniformly chosen element, or "" for an empty list.
func (g *Generator) pick(list []string) string {
	if len(list) == 0 {
		g.log.Warn("random pick from empty candidate list")
		return ""
	}
	return list[g.intN(len(list))]
}

func (g *Generator) intN(n int) int {
	if g.rnd == nil {
		return rand.IntN(n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.IntN(n)
}

func (g *Generator) float64() float64 {
	if g.rnd == nil {
		return rand.Float64()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Float64()
}
