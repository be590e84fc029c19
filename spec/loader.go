// Package spec parses a test-spec text file into the stat.StatProc
// instances it names.
package spec

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"statsmc/errs"
	"statsmc/stat"
)

// Load reads path and returns, in file order, the procedures named by its
// non-empty, non-comment lines. An empty result (no valid lines) is not an
// error: the caller decides what "no tests requested" means.
func Load(path string) ([]stat.StatProc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errs.CannotOpenFile{Path: path, Err: err}
	}
	defer f.Close()

	var procs []stat.StatProc
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		procs = append(procs, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, &errs.CannotOpenFile{Path: path, Err: err}
	}
	return procs, nil
}

// parseLine parses one non-comment, non-empty spec line into a StatProc.
func parseLine(line string) (stat.StatProc, error) {
	fields := strings.Fields(line)
	keyword := strings.ToUpper(fields[0])
	args := fields[1:]

	nums := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, &errs.BadSpec{Line: line, Reason: fmt.Sprintf("parameter %q is not numeric", a)}
		}
		nums[i] = v
	}

	switch keyword {
	case "SPRT":
		if len(nums) != 3 {
			return nil, arityErr(line, keyword, 3)
		}
		return stat.NewSPRT(line, nums[0], nums[1], nums[2])
	case "BFT":
		if len(nums) != 4 {
			return nil, arityErr(line, keyword, 4)
		}
		return stat.NewBFT(line, nums[0], nums[1], nums[2], nums[3])
	case "BFTI":
		if len(nums) != 5 {
			return nil, arityErr(line, keyword, 5)
		}
		return stat.NewBFTI(line, nums[0], nums[1], nums[2], nums[3], nums[4])
	case "LAI":
		if len(nums) != 2 {
			return nil, arityErr(line, keyword, 2)
		}
		return stat.NewLAI(line, nums[0], nums[1])
	case "CHB":
		if len(nums) != 2 {
			return nil, arityErr(line, keyword, 2)
		}
		return stat.NewCHB(line, nums[0], nums[1])
	case "BEST":
		if len(nums) != 4 {
			return nil, arityErr(line, keyword, 4)
		}
		return stat.NewBEST(line, nums[0], nums[1], nums[2], nums[3])
	case "NSAM":
		if len(nums) != 1 {
			return nil, arityErr(line, keyword, 1)
		}
		if nums[0] < 0 {
			return nil, &errs.BadSpec{Line: line, Reason: "N must be non-negative"}
		}
		return stat.NewNSAM(line, uint64(nums[0]))
	default:
		return nil, &errs.UnknownKeyword{Line: line}
	}
}

func arityErr(line, keyword string, n int) error {
	return &errs.BadSpec{Line: line, Reason: fmt.Sprintf("%s requires %d parameters", keyword, n)}
}
