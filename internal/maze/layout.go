package maze

// level1Rows is the shipped 15x15 level. The top corridor and the
// right-hand column form the main route: spawn at (1,1), checkpoint at
// (13,5) on the way down, finish at (13,13). Two more checkpoints sit on
// optional detours at (1,9) and (6,13).
var level1Rows = []string{
	"###############",
	"#.............#",
	"#.###.#####.#.#",
	"#.#...#...#.#.#",
	"#.#.###.#.#.#.#",
	"#.#.....#.#.#C#",
	"#.#####.#.#.#.#",
	"#.....#.#...#.#",
	"#####.#.#####.#",
	"#C....#.....#.#",
	"#.#########.#.#",
	"#.#.....#...#.#",
	"#.#.###.#.###.#",
	"#...#.C.....#F#",
	"###############",
}

// Level1 parses the shipped level layout.
func Level1() (*Grid, error) {
	return Parse(level1Rows)
}
