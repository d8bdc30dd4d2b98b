package cli

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Hypercubers/rocket"
	"github.com/Hypercubers/rocket/internal/config"
)

func TestOutputBuffer_AppendAndSnapshot(t *testing.T) {
	var buf outputBuffer

	buf.Append("first")
	buf.Append("second")

	if got := buf.String(); got != "first\nsecond" {
		t.Errorf("String() = %q", got)
	}

	lines := buf.Lines()
	lines[0] = "mutated"
	if buf.Lines()[0] != "first" {
		t.Error("Lines() must return a copy")
	}

	buf.Reset()
	if buf.Len() != 0 {
		t.Errorf("Len() after Reset = %d", buf.Len())
	}
}

func TestOutputBuffer_ConcurrentAppend(t *testing.T) {
	var buf outputBuffer
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				buf.Append("line")
			}
		}()
	}
	wg.Wait()

	if buf.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", buf.Len())
	}
}

func TestConfigInit_WritesDefaultsOnce(t *testing.T) {
	old := configPath
	configPath = filepath.Join(t.TempDir(), "config.yaml")
	defer func() { configPath = old }()

	if err := runConfigInit(configInitCmd, nil); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != config.Default() {
		t.Errorf("written config = %+v, want defaults", cfg)
	}

	if err := runConfigInit(configInitCmd, nil); err == nil {
		t.Error("second init must refuse to overwrite the file")
	}
}

func TestHistory_EmptyDatabase(t *testing.T) {
	old := dbPath
	dbPath = filepath.Join(t.TempDir(), "rocket.db")
	defer func() { dbPath = old }()

	if err := runHistory(historyCmd, nil); err != nil {
		t.Fatal(err)
	}
}

func TestTrimLastRune(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"R", ""},
		{"R U2", "R U"},
		{"R′", "R"}, // multibyte prime must go in one keystroke
	}
	for _, c := range cases {
		if got := trimLastRune(c.in); got != c.want {
			t.Errorf("trimLastRune(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func searchLines(t *testing.T, alg string, opts ...rocket.Option) []string {
	t.Helper()
	moves, err := rocket.ParseMoves(alg)
	if err != nil {
		t.Fatal(err)
	}
	result, err := rocket.Search(moves, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return reportLines(result, 0, false, false)
}

func TestReportLines_SingleReorient(t *testing.T) {
	lines := searchLines(t, "R U R' U'")

	if lines[0] != "Found 1 solutions with 1 reorients (5 STM)." {
		t.Errorf("summary = %q", lines[0])
	}
	if lines[1] != "1 of them add only 3 ETM." {
		t.Errorf("cost line = %q", lines[1])
	}
	if lines[2] != "R U Ozx2 R' U'" {
		t.Errorf("solution = %q", lines[2])
	}
}

func TestReportLines_ZeroReorientsStillReportsCost(t *testing.T) {
	lines := searchLines(t, "R U U' R'")

	if !strings.Contains(lines[0], "with 0 reorients") {
		t.Errorf("summary = %q", lines[0])
	}
	if lines[1] != "1 of them add only 0 ETM." {
		t.Errorf("cost line = %q", lines[1])
	}
	if lines[2] != "R U U' R'" {
		t.Errorf("solution = %q", lines[2])
	}
}

func TestReportLines_NotFound(t *testing.T) {
	lines := searchLines(t, "R U R' U'", rocket.WithMaxDepth(0))

	if len(lines) != 1 || lines[0] != "No solutions?" {
		t.Errorf("lines = %q", lines)
	}
}

func TestReportLines_ShowAll(t *testing.T) {
	moves, err := rocket.ParseMoves("R U2 R2 U' R2 U' R2 U2 R")
	if err != nil {
		t.Fatal(err)
	}
	result, err := rocket.Search(moves)
	if err != nil {
		t.Fatal(err)
	}

	winners := reportLines(result, 0, false, false)
	all := reportLines(result, 0, false, true)

	// showAll lists every solution after the summary and prints no cost
	// line; the filtered report adds the cost line and keeps only the
	// cheapest solutions.
	if len(all)-1 != len(result.Solutions) {
		t.Errorf("showAll printed %d solutions, want %d", len(all)-1, len(result.Solutions))
	}
	for _, line := range all {
		if strings.Contains(line, "ETM") {
			t.Errorf("showAll printed a cost line: %q", line)
		}
	}
	if !strings.Contains(winners[1], "ETM") {
		t.Errorf("filtered report missing cost line: %q", winners[1])
	}
	if len(winners)-2 >= len(result.Solutions) {
		t.Errorf("filtered report printed %d solutions, want fewer than %d", len(winners)-2, len(result.Solutions))
	}
}
