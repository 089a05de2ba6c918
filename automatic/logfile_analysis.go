package automatic

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/reversi/stats"
)

// AnalyzeLogFile reads a per-game CSV log and summarizes the outcomes,
// followed by a histogram of black's final margin.
func AnalyzeLogFile(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	r := csv.NewReader(file)

	// Record looks like:
	// gameID,opening,black,white,blackDepth,whiteDepth

	tally := &stats.Tally{}
	openings := map[string]int{}
	depths := map[string]int{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if record[0] == "gameID" {
			continue
		}
		if len(record) < 6 {
			return "", fmt.Errorf("short record for game %v", record[0])
		}
		black, err := strconv.Atoi(record[2])
		if err != nil {
			return "", err
		}
		white, err := strconv.Atoi(record[3])
		if err != nil {
			return "", err
		}
		tally.Add(black, white)
		openings[record[1]]++
		depths[record[4]+" vs "+record[5]]++
	}

	var sb strings.Builder
	sb.WriteString(tally.String())
	fmt.Fprintf(&sb, "Distinct openings: %d\n", len(openings))
	matchups := lo.Keys(depths)
	slices.Sort(matchups)
	for _, d := range matchups {
		fmt.Fprintf(&sb, "Depths %s: %d games\n", d, depths[d])
	}
	sb.WriteString("Black margin histogram:\n")
	if err := tally.FprintHistogram(&sb, 10, 40); err != nil {
		return "", err
	}
	return sb.String(), nil
}
