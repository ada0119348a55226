package orchard

// Level defines one campaign round: the size of the line, how much fruit is
// scattered on it and how many steps the player gets.
type Level struct {
	ID        int
	Name      string
	Positions int
	Fruits    int
	MinValue  int
	MaxValue  int
	Steps     int
}

// Levels defines the 10 campaign levels. Level 7 is the classic 50-position,
// 12-fruit, 20-step round.
var Levels = []Level{
	{ID: 1, Name: "Seedling", Positions: 20, Fruits: 5, MinValue: 1, MaxValue: 3, Steps: 8},
	{ID: 2, Name: "Sprout", Positions: 24, Fruits: 6, MinValue: 1, MaxValue: 4, Steps: 10},
	{ID: 3, Name: "Orchard Path", Positions: 30, Fruits: 8, MinValue: 1, MaxValue: 5, Steps: 12},
	{ID: 4, Name: "Berry Lane", Positions: 34, Fruits: 9, MinValue: 1, MaxValue: 5, Steps: 14},
	{ID: 5, Name: "Harvest Moon", Positions: 40, Fruits: 10, MinValue: 1, MaxValue: 6, Steps: 16},
	{ID: 6, Name: "Windfall", Positions: 44, Fruits: 11, MinValue: 1, MaxValue: 7, Steps: 18},
	{ID: 7, Name: "Long Rows", Positions: 50, Fruits: 12, MinValue: 1, MaxValue: 5, Steps: 20},
	{ID: 8, Name: "Bramble", Positions: 56, Fruits: 14, MinValue: 1, MaxValue: 8, Steps: 20},
	{ID: 9, Name: "Golden Field", Positions: 64, Fruits: 16, MinValue: 1, MaxValue: 9, Steps: 22},
	{ID: 10, Name: "Grand Harvest", Positions: 70, Fruits: 18, MinValue: 1, MaxValue: 9, Steps: 24},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}
