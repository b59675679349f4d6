package models

import "strings"

// Game identifies one of the lottery games tracked by the ALC results API
type Game string

const (
	GameHitorMiss    Game = "HitorMiss"
	GameDailyGrand   Game = "DailyGrand"
	GameLotto4       Game = "Lotto4"
	GamePokerLotto   Game = "PokerLotto"
	GameShaBam       Game = "ShaBam"
	GamePik4         Game = "Pik4"
	GameSalsaBingo   Game = "SalsaBingo"
	GameLottoMax     Game = "LottoMax"
	GameLotto649     Game = "Lotto649"
	GameKenoAtlantic Game = "KenoAtlantic"
	GameBucko        Game = "Bucko"
	GameAtlantic49   Game = "Atlantic49"
)

// ValidGames lists every supported game in the order used by error messages
var ValidGames = []Game{
	GameHitorMiss,
	GameDailyGrand,
	GameLotto4,
	GamePokerLotto,
	GameShaBam,
	GamePik4,
	GameSalsaBingo,
	GameLottoMax,
	GameLotto649,
	GameKenoAtlantic,
	GameBucko,
	GameAtlantic49,
}

var gameSet = func() map[Game]struct{} {
	set := make(map[Game]struct{}, len(ValidGames))
	for _, g := range ValidGames {
		set[g] = struct{}{}
	}
	return set
}()

// ParseGame returns the Game for s if it is one of ValidGames. Matching is exact.
func ParseGame(s string) (Game, bool) {
	g := Game(s)
	return g, g.IsValid()
}

// IsValid reports whether g is a member of ValidGames
func (g Game) IsValid() bool {
	_, ok := gameSet[g]
	return ok
}

func (g Game) String() string {
	return string(g)
}

// GameList joins ValidGames with ", "
func GameList() string {
	names := make([]string, len(ValidGames))
	for i, g := range ValidGames {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}
