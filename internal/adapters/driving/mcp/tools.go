package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// ListSectionsInput is the input schema for the list_sections tool.
type ListSectionsInput struct {
	File string `json:"file" jsonschema:"path to the .inp report file"`
}

// SectionInfo describes one parsed section.
type SectionInfo struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

// ListSectionsOutput is the output schema for the list_sections tool.
type ListSectionsOutput struct {
	Sections []SectionInfo `json:"sections"`
	Count    int           `json:"count"`
}

// GetSectionInput is the input schema for the get_section tool.
type GetSectionInput struct {
	File    string `json:"file" jsonschema:"path to the .inp report file"`
	Section string `json:"section" jsonschema:"canonical section name, e.g. Pipe_Detail_Summary"`
}

// TableOutput is a table rendered as JSON rows.
type TableOutput struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
	Count   int              `json:"count"`
}

// PipeElevationsInput is the input schema for the pipe_elevations tool.
type PipeElevationsInput struct {
	File string `json:"file" jsonschema:"path to the .inp report file"`
	Pipe string `json:"pipe,omitempty" jsonschema:"pipe ID for the full profile, e.g. P2; omit for the summary"`
}

// TransientDataInput is the input schema for the transient_data tool.
type TransientDataInput struct {
	File      string `json:"file" jsonschema:"path to the .inp report file"`
	Equipment string `json:"equipment,omitempty" jsonschema:"equipment ID, e.g. J1; omit to list available IDs"`
}

// TransientListOutput lists equipment IDs carrying transient data.
type TransientListOutput struct {
	Equipment []string `json:"equipment"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sections",
		Description: "Parse a .inp report file and list its sections",
	}, s.handleListSections)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_section",
		Description: "Return one parsed section as rows of column/value pairs",
	}, s.handleGetSection)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "pipe_elevations",
		Description: "Return per-pipe elevation statistics, or one pipe's full profile",
	}, s.handlePipeElevations)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "transient_data",
		Description: "Return transient time series for a piece of equipment",
	}, s.handleTransientData)
}

func (s *Server) handleListSections(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListSectionsInput,
) (*mcp.CallToolResult, ListSectionsOutput, error) {
	network, err := s.load(ctx, input.File)
	if err != nil {
		return nil, ListSectionsOutput{}, err
	}

	names := network.SectionNames()
	output := ListSectionsOutput{
		Sections: make([]SectionInfo, 0, len(names)),
		Count:    len(names),
	}
	for _, name := range names {
		output.Sections = append(output.Sections, SectionInfo{Name: name, Rows: network.Section(name).NumRows()})
	}
	return nil, output, nil
}

func (s *Server) handleGetSection(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetSectionInput,
) (*mcp.CallToolResult, TableOutput, error) {
	network, err := s.load(ctx, input.File)
	if err != nil {
		return nil, TableOutput{}, err
	}

	return nil, tableOutput(network.Section(input.Section)), nil
}

func (s *Server) handlePipeElevations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PipeElevationsInput,
) (*mcp.CallToolResult, TableOutput, error) {
	network, err := s.load(ctx, input.File)
	if err != nil {
		return nil, TableOutput{}, err
	}

	if input.Pipe == "" {
		return nil, tableOutput(network.PipeElevationsSummary()), nil
	}

	t, err := network.PipeElevationsDetailed(input.Pipe)
	if err != nil {
		return nil, TableOutput{}, err
	}
	return nil, tableOutput(t), nil
}

func (s *Server) handleTransientData(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TransientDataInput,
) (*mcp.CallToolResult, TableOutput, error) {
	network, err := s.load(ctx, input.File)
	if err != nil {
		return nil, TableOutput{}, err
	}

	if input.Equipment == "" {
		// Equipment listing reuses the table shape with a single column.
		t := domain.NewTable([]domain.ColumnDescriptor{{Name: "Equipment"}})
		for _, eq := range network.TransientEquipment() {
			t.Append(domain.Record{"Equipment": domain.TextValue(eq)})
		}
		return nil, tableOutput(t), nil
	}

	t, err := network.TransientData(input.Equipment)
	if err != nil {
		return nil, TableOutput{}, err
	}
	return nil, tableOutput(t), nil
}

// tableOutput converts a domain table to its JSON form.
func tableOutput(t *domain.Table) TableOutput {
	out := TableOutput{
		Columns: t.Keys(),
		Rows:    make([]map[string]any, 0, t.NumRows()),
		Count:   t.NumRows(),
	}
	for i := range t.Rows {
		row := make(map[string]any, len(out.Columns))
		for _, key := range out.Columns {
			v := t.Cell(i, key)
			switch {
			case v.IsMissing():
				row[key] = nil
			case v.Numeric:
				row[key] = v.Number
			default:
				row[key] = v.Text
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}
