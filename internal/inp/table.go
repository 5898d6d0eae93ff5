package inp

import (
	"strconv"
	"strings"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// ParseTableSection parses one columnar section through the shared
// header and row parsers. A section with zero parseable header fields
// returns a nil table; the caller logs and skips it. Data rows whose
// field count mismatches the header are skipped and counted.
func ParseTableSection(lines []string, comment string) (*domain.Table, int) {
	h := ParseHeader(lines, comment)
	if len(h.Columns) == 0 {
		return nil, 0
	}

	t := domain.NewTable(h.Columns)
	skipped := 0

	for _, raw := range lines[h.DataStart:] {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, comment) || strings.HasPrefix(line, "---") {
			continue
		}

		rec, ok := ParseRow(h.Columns, h.Delim, line)
		if !ok {
			skipped++
			continue
		}
		t.Append(rec)
	}
	return t, skipped
}

// ParseMultiBlockTable parses sections whose content is several
// header+rows blocks describing the same entities (control valves,
// assigned pressures). Blocks are joined on the leading identifier
// column; later blocks' columns that collide with earlier names are
// suffixed "_b<index>".
func ParseMultiBlockTable(lines []string, comment string) (*domain.Table, int) {
	blocks := splitBlocks(lines, comment)
	if len(blocks) == 0 {
		return nil, 0
	}

	var merged *domain.Table
	skipped := 0

	for idx, block := range blocks {
		t, s := ParseTableSection(block, comment)
		skipped += s
		if t == nil || len(t.Columns) == 0 {
			continue
		}
		if merged == nil {
			merged = t
			continue
		}
		mergeBlock(merged, t, idx)
	}

	if merged == nil {
		return nil, skipped
	}
	return merged, skipped
}

// splitBlocks groups section lines into header+data blocks. A header
// line appearing after data rows have begun starts a new block.
func splitBlocks(lines []string, comment string) [][]string {
	var blocks [][]string
	var current []string
	inData := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, comment) || strings.HasPrefix(line, "---") {
			continue
		}

		isHeader := !isDataLine(line) && !strings.HasPrefix(line, "(")
		if isHeader && inData {
			if len(current) > 0 {
				blocks = append(blocks, current)
			}
			current = nil
			inData = false
		}
		if !isHeader {
			inData = true
		}
		current = append(current, raw)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// mergeBlock outer-joins one block into the merged table on the value
// of each table's first column.
func mergeBlock(merged, block *domain.Table, blockIdx int) {
	if len(block.Columns) == 0 {
		return
	}
	blockID := block.Columns[0].Key()
	mergedID := merged.Columns[0].Key()

	// Map the block's non-ID columns onto merged, renaming collisions.
	existing := make(map[string]bool, len(merged.Columns))
	for _, c := range merged.Columns {
		existing[c.Key()] = true
	}

	rename := make(map[string]string, len(block.Columns)-1)
	for _, c := range block.Columns[1:] {
		key := c.Key()
		col := c
		if existing[key] {
			col.Name = c.Name + "_b" + strconv.Itoa(blockIdx)
		}
		merged.Columns = append(merged.Columns, col)
		existing[col.Key()] = true
		rename[key] = col.Key()
	}

	byID := make(map[string]domain.Record, len(merged.Rows))
	for _, r := range merged.Rows {
		byID[r[mergedID].String()] = r
	}

	for _, row := range block.Rows {
		id := row[blockID].String()
		target, ok := byID[id]
		if !ok {
			target = domain.Record{mergedID: row[blockID]}
			merged.Append(target)
			byID[id] = target
		}
		for _, c := range block.Columns[1:] {
			target[rename[c.Key()]] = row[c.Key()]
		}
	}
}
