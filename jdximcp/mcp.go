package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"gitlab.com/gomidi/midi/v2"

	jdxi "github.com/markxbrooks/go-jdxi"
)

func runMCP(inPortIdx int, dev *jdxi.Device) {

	s := server.NewMCPServer(
		"JD-Xi MCP",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	docTool := mcp.NewTool("jdxi_describe-parameters",
		mcp.WithDescription("Returns the SysEx parameter map of the Roland JD-Xi: every addressable parameter per family with its offset, MIDI range and display range."),
	)
	s.AddTool(docTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log.Println("[mcp] Handling parameter map request.")

		asJson, err := json.MarshalIndent(parameterMap(dev.Registries()), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal parameter map: %v", err)
		}
		return mcp.NewToolResultText(string(asJson)), nil
	})

	identityTool := mcp.NewTool("jdxi_identity",
		mcp.WithDescription("Sends a Universal Identity Request and reports whether a JD-Xi answered, with its device ID and firmware version."),
	)
	s.AddTool(identityTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log.Println("[mcp] Handling identity request.")

		id, err := dev.RequestIdentity(midi.GetInPorts()[inPortIdx])
		if err != nil {
			return nil, fmt.Errorf("identity request failed: %v", err)
		}

		asJson, err := json.MarshalIndent(id, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal identity reply: %v", err)
		}
		return mcp.NewToolResultText(string(asJson)), nil
	})

	getToneTool := mcp.NewTool("jdxi_get-tone",
		mcp.WithDescription("Reads the current tone block of one JD-Xi part and returns its decoded parameters."),
		mcp.WithString("part", mcp.Required(), mcp.Description("The synth part: analog, digital1, digital2, drums or program.")),
		mcp.WithNumber("partial", mcp.Description("Partial selector: 1-3 for digital partial blocks, 1-36 for drum keys. Omit for common blocks.")),
	)
	s.AddTool(getToneTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log.Println("[mcp] Handling get tone request.")

		partName, err := request.RequireString("part")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		part, err := partByName(partName)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		partial := request.GetInt("partial", 0)

		family := part.family
		if partial > 0 && family == jdxi.FamilyDigitalCommon {
			family = jdxi.FamilyDigitalPartial
		}
		if partial == 0 && part.multi {
			partial = 1
		}

		size := uint32(dev.Registries().Family(family).Span())
		td, err := dev.RequestBlockDump(midi.GetInPorts()[inPortIdx], part.base, family, partial, size)
		if err != nil {
			return nil, fmt.Errorf("failed to read tone: %v", err)
		}

		asJson, err := json.MarshalIndent(td, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal tone to JSON: %v", err)
		}
		return mcp.NewToolResultText(string(asJson)), nil
	})

	setParamTool := mcp.NewTool("jdxi_set-parameter",
		mcp.WithDescription("Writes one parameter value to a JD-Xi part. Values are display values: bipolar parameters take negative numbers directly."),
		mcp.WithString("part", mcp.Required(), mcp.Description("The synth part: analog, digital1, digital2, drums or program.")),
		mcp.WithString("parameter", mcp.Required(), mcp.Description("The parameter name, e.g. FILTER_CUTOFF or AMP_LEVEL.")),
		mcp.WithNumber("value", mcp.Required(), mcp.Description("The display value to write.")),
		mcp.WithNumber("partial", mcp.Description("Partial selector: 1-3 for digital partial parameters, 1-36 for drum keys.")),
	)
	s.AddTool(setParamTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		partName, err := request.RequireString("part")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		name, err := request.RequireString("parameter")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		value, err := request.RequireInt("value")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		partial := request.GetInt("partial", 0)

		part, err := partByName(partName)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		log.Println("[mcp] Setting", name, "=", value, "on", partName)

		if err := dev.SetParameter(part.base, name, value, partial); err != nil {
			return nil, fmt.Errorf("failed to set %s: %v", name, err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s set to %d.", name, value)), nil
	})

	playNotesTool := mcp.NewTool("jdxi_play-test-notes",
		mcp.WithDescription("Plays a few test notes on one JD-Xi part so edits can be heard."),
		mcp.WithString("part", mcp.Description("The synth part to play on; defaults to digital1.")),
	)
	s.AddTool(playNotesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		channel := digitalSynth1Channel
		if partName := request.GetString("part", ""); partName != "" {
			part, err := partByName(partName)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			channel = part.channel
		}
		if err := playTestNotes(dev, channel); err != nil {
			return nil, fmt.Errorf("failed to play test notes: %v", err)
		}
		return mcp.NewToolResultText("Test notes played successfully."), nil
	})

	melodyTool := mcp.NewTool("jdxi_play-notes",
		mcp.WithDescription("Plays a sequence of notes on one JD-Xi part. Notes are names like C4, F#3, Bb5; 'r' is a rest."),
		mcp.WithString("notes", mcp.Required(), mcp.Description("Whitespace or comma separated note names.")),
		mcp.WithString("part", mcp.Description("The synth part to play on; defaults to digital1.")),
	)
	s.AddTool(melodyTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		notes, err := request.RequireString("notes")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		channel := digitalSynth1Channel
		if partName := request.GetString("part", ""); partName != "" {
			part, err := partByName(partName)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			channel = part.channel
		}
		if err := playNotesFromText(dev, channel, notes); err != nil {
			return nil, fmt.Errorf("failed to play notes: %v", err)
		}
		return mcp.NewToolResultText("Notes played successfully."), nil
	})

	log.Println("Starting JD-Xi MCP server...")

	if err := server.ServeStdio(s); err != nil {
		fmt.Printf("Server error: %v\n", err)
	}

}

// paramDoc is the wire shape of one parameter in the describe tool output.
type paramDoc struct {
	Name       string `json:"name"`
	Offset     string `json:"offset"`
	Min        int    `json:"min"`
	Max        int    `json:"max"`
	DisplayMin int    `json:"displayMin"`
	DisplayMax int    `json:"displayMax"`
	Bytes      int    `json:"bytes"`
	Switch     bool   `json:"switch,omitempty"`
	Hint       string `json:"hint,omitempty"`
}

func parameterMap(rs *jdxi.RegistrySet) map[string][]paramDoc {
	families := []jdxi.Family{
		jdxi.FamilyAnalog,
		jdxi.FamilyDigitalCommon,
		jdxi.FamilyDigitalPartial,
		jdxi.FamilyDrumPartial,
		jdxi.FamilyProgramCommon,
		jdxi.FamilyArpeggio,
		jdxi.FamilyVocalFx,
	}

	out := make(map[string][]paramDoc, len(families))
	for _, f := range families {
		reg := rs.Family(f)
		docs := make([]paramDoc, 0, reg.Len())
		for _, p := range reg.Params() {
			docs = append(docs, paramDoc{
				Name:       p.Name,
				Offset:     fmt.Sprintf("0x%02X", p.Offset),
				Min:        p.Min,
				Max:        p.Max,
				DisplayMin: p.DisplayMin,
				DisplayMax: p.DisplayMax,
				Bytes:      p.Size,
				Switch:     p.Switch,
				Hint:       p.Hint,
			})
		}
		out[f.String()] = docs
	}
	return out
}
