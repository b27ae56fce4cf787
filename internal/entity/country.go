package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Country is one selectable entity of the world map: the display name doubles as its identifier.
type Country struct {
	Name string `json:"name" yaml:"name"`
	Mesh string `json:"mesh" yaml:"mesh"`
}

// DefaultCatalog mirrors the mesh names of the bundled world map model.
var DefaultCatalog = []Country{
	{Name: "Canada", Mesh: "Plane752_Material003_0"},
	{Name: "USA", Mesh: "Plane750_Material003_0"},
	{Name: "France", Mesh: "Plane550_Material003_0"},
	{Name: "China", Mesh: "Plane751_Material003_0"},
}

// Catalog indexes countries by name and by mesh.
type Catalog struct {
	countries []Country
	byName    map[string]Country
	byMesh    map[string]Country
}

func NewCatalog(countries []Country) (*Catalog, error) {
	catalog := &Catalog{
		countries: make([]Country, 0, len(countries)),
		byName:    make(map[string]Country, len(countries)),
		byMesh:    make(map[string]Country, len(countries)),
	}

	for _, country := range countries {
		if country.Name == "" || country.Mesh == "" {
			return nil, fmt.Errorf("catalog entry %+v: name and mesh are required", country)
		}

		if _, ok := catalog.byName[country.Name]; ok {
			return nil, fmt.Errorf("duplicate country in catalog: %s", country.Name)
		}

		if _, ok := catalog.byMesh[country.Mesh]; ok {
			return nil, fmt.Errorf("duplicate mesh in catalog: %s", country.Mesh)
		}

		catalog.countries = append(catalog.countries, country)
		catalog.byName[country.Name] = country
		catalog.byMesh[country.Mesh] = country
	}

	return catalog, nil
}

func (that *Catalog) Names() []string {
	names := make([]string, 0, len(that.countries))
	for _, country := range that.countries {
		names = append(names, country.Name)
	}

	return names
}

func (that *Catalog) Meshes() []string {
	meshes := make([]string, 0, len(that.countries))
	for _, country := range that.countries {
		meshes = append(meshes, country.Mesh)
	}

	return meshes
}

func (that *Catalog) ByName(name string) (Country, bool) {
	country, ok := that.byName[name]
	return country, ok
}

func (that *Catalog) ByMesh(mesh string) (Country, bool) {
	country, ok := that.byMesh[mesh]
	return country, ok
}

// CountryInfo is the subset of country data used for hints.
type CountryInfo struct {
	Name       string   `json:"name"`
	Population int64    `json:"population"`
	Area       float64  `json:"area"`
	Capital    []string `json:"capital"`
}

// HintValue renders the part of the record a hint kind reveals.
func (that *CountryInfo) HintValue(kind HintKind) string {
	switch kind {
	case HintPopulation:
		return strconv.FormatInt(that.Population, 10)
	case HintArea:
		return strconv.FormatFloat(that.Area, 'f', -1, 64) + " km²"
	case HintCapital:
		return strings.Join(that.Capital, ", ")
	default:
		return ""
	}
}
