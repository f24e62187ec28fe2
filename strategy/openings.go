package strategy

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ODawson-Git/quoridor/game"
)

//go:embed openings.yaml
var openingsYAML []byte

type openingEntry struct {
	Name    string   `yaml:"name"`
	Player1 []string `yaml:"player1"`
	Player2 []string `yaml:"player2"`
}

var (
	openingBook  map[string]openingEntry
	openingOrder []string
)

func init() {
	var doc struct {
		Openings []openingEntry `yaml:"openings"`
	}
	if err := yaml.Unmarshal(openingsYAML, &doc); err != nil {
		panic(fmt.Sprintf("opening book: %v", err))
	}
	openingBook = make(map[string]openingEntry, len(doc.Openings))
	for _, o := range doc.Openings {
		openingBook[o.Name] = o
		openingOrder = append(openingOrder, o.Name)
	}
}

// OpeningNames lists the known scripted openings in book order.
func OpeningNames() []string {
	return append([]string(nil), openingOrder...)
}

// OpeningMoves returns the scripted move list for one side of the named
// opening.
func OpeningMoves(name string, p game.Player) ([]string, error) {
	o, ok := openingBook[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOpening, name)
	}
	if p == game.Player1 {
		return o.Player1, nil
	}
	return o.Player2, nil
}
