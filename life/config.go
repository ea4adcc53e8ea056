package life

type Config struct {
	Rows, Cols int
	Mode       Mode

	// Number of random crosses drawn by Reset
	Crosses int
	Seed    int64

	// Rows of a generation are split across this many goroutines
	Workers int

	// Snapshot to load the initial grid from, instead of seeding one
	Snapshot *GridSnapshot
}

func NewConfig() Config {
	return Config{
		Rows:    32,
		Cols:    32,
		Mode:    Cross,
		Crosses: 2,
		Workers: 1,
	}
}
