package window

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/hmmm42/lancetgo/internal/errs"
)

// ParseBedFile reads chrom/start/end regions from a 3-column BED
// file, 0-based half-open. Blank lines are skipped; any other line
// must have exactly three tab-separated columns.
func ParseBedFile(path string) ([]Window, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidArgument, err, "opening bed file")
	}
	defer f.Close()

	var results []Window
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) != 3 {
			return nil, errs.Newf(errs.InvalidArgument, "invalid bed line with %d columns at line num %d", len(cols), lineNum)
		}

		start, errStart := strconv.ParseInt(cols[1], 10, 64)
		end, errEnd := strconv.ParseInt(cols[2], 10, 64)
		if errStart != nil || errEnd != nil {
			return nil, errs.Newf(errs.Internal, "could not parse bed line: %s", line)
		}

		results = append(results, Window{Chromosome: cols[0], Start0: start, End0: end})
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.Wrap(errs.Internal, err, "reading bed file")
	}
	return results, nil
}
