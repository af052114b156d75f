package deck

import (
	"fmt"

	"github.com/duelforge/duel-server-go/internal/catalog"
)

// standardList is the default 30-card list built from the basic set:
// fourteen doubles plus both legendaries.
var standardList = map[string]int{
	"basic_squire":     2,
	"basic_wolf":       2,
	"basic_footman":    2,
	"basic_raider":     2,
	"basic_acolyte":    2,
	"basic_harpy":      2,
	"basic_protector":  2,
	"basic_chaplain":   2,
	"basic_golem":      2,
	"basic_pyromancer": 2,
	"basic_spark":      2,
	"basic_insight":    2,
	"basic_firestorm":  2,
	"basic_waraxe":     2,
	"basic_warbringer": 1,
	"basic_dragon":     1,
}

// Standard builds the default legal deck from a catalog holding the basic set.
func Standard(c *catalog.Catalog, name, heroClass string) (*Deck, error) {
	d, err := FromCatalog(c, name, heroClass, standardList)
	if err != nil {
		return nil, err
	}
	if errs := d.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("standard deck invalid: %v", errs[0])
	}
	return d, nil
}
