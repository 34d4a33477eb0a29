package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "embed"

	"github.com/Pallinder/go-randomdata"
	"github.com/xeipuuv/gojsonschema"

	jdxi "github.com/markxbrooks/go-jdxi"
)

//go:embed analog_tone_schema.json
var schemaData []byte

// propSchema holds the range constraints of one schema property.
type propSchema struct {
	Minimum int `json:"minimum"`
	Maximum int `json:"maximum"`
}

func main() {
	rand.Seed(time.Now().UnixNano())

	describeFile := flag.String("describe", "", "SysEx file to decode and describe")
	exportPart := flag.String("export", "", "Part whose parameter map to export as JSON (analog, digital1, digital2, drums, program)")
	validateFile := flag.String("validate", "", "Tone JSON file to validate against the analog tone schema")
	count := flag.Int("count", 0, "Number of random analog tones to generate")
	outDir := flag.String("out", "tones", "Output directory for generated tones")
	flag.Parse()

	switch {
	case *describeFile != "":
		runDescribe(*describeFile)
	case *exportPart != "":
		runExport(*exportPart)
	case *validateFile != "":
		runValidate(*validateFile)
	case *count > 0:
		runGenerate(*count, *outDir)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

// runDescribe splits a .syx capture into frames and decodes every DT1 it
// contains.
func runDescribe(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read sysex file: %v", err)
	}

	parser := jdxi.NewParser(jdxi.NewRegistrySet())

	frames := splitFrames(data)
	if len(frames) == 0 {
		log.Fatalf("%s contains no SysEx frames", path)
	}
	fmt.Printf("%d frames found in %s:\n", len(frames), path)

	for i, frame := range frames {
		td, err := parser.Parse(frame)
		if err != nil {
			fmt.Printf("%2d: skipped (%v)\n", i+1, err)
			continue
		}

		label := td.Name
		if label == "" {
			label = "-"
		}
		fmt.Printf("%2d: %s %s at %s: %d parameters", i+1, td.Area, label, td.Address.Hex(), len(td.Successes))
		if len(td.Failures) > 0 {
			fmt.Printf(", %d truncated", len(td.Failures))
		}
		fmt.Println()

		for _, name := range td.Successes {
			fmt.Printf("      %-28s %d\n", name, td.Values[name])
		}
	}
}

// runExport prints the registry of one part as JSON, offsets included, so
// external tools can consume the parameter map.
func runExport(partName string) {
	family, ok := exportFamilies[strings.ToLower(partName)]
	if !ok {
		log.Fatalf("unknown part %q (want analog, digital1, digital2, drums or program)", partName)
	}

	reg := jdxi.NewRegistrySet().Family(family)

	type entry struct {
		Name       string `json:"name"`
		Offset     string `json:"offset"`
		Min        int    `json:"min"`
		Max        int    `json:"max"`
		DisplayMin int    `json:"displayMin"`
		DisplayMax int    `json:"displayMax"`
		Bytes      int    `json:"bytes"`
		Hint       string `json:"hint,omitempty"`
	}

	entries := make([]entry, 0, reg.Len())
	for _, p := range reg.Params() {
		entries = append(entries, entry{
			Name:       p.Name,
			Offset:     fmt.Sprintf("0x%02X", p.Offset),
			Min:        p.Min,
			Max:        p.Max,
			DisplayMin: p.DisplayMin,
			DisplayMax: p.DisplayMax,
			Bytes:      p.Size,
			Hint:       p.Hint,
		})
	}

	asJson, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal parameter map: %v", err)
	}
	fmt.Println(string(asJson))
}

var exportFamilies = map[string]jdxi.Family{
	"analog":   jdxi.FamilyAnalog,
	"digital1": jdxi.FamilyDigitalCommon,
	"digital2": jdxi.FamilyDigitalPartial,
	"drums":    jdxi.FamilyDrumPartial,
	"program":  jdxi.FamilyProgramCommon,
}

// runValidate checks a display-value tone JSON against the embedded schema.
func runValidate(path string) {
	doc, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read tone JSON: %v", err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaData))
	if err != nil {
		log.Fatalf("failed to compile tone schema: %v", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		log.Fatalf("validation failed: %v", err)
	}

	if result.Valid() {
		fmt.Printf("%s is a valid analog tone\n", path)
		return
	}
	fmt.Printf("%s is not valid:\n", path)
	for _, desc := range result.Errors() {
		fmt.Printf("  - %s\n", desc)
	}
	os.Exit(1)
}

// runGenerate produces random analog tones as DT1 block dump .syx files.
// Candidate value sets come from the registry ranges intersected with the
// schema; every generated tone is validated before it is written.
func runGenerate(count int, outDir string) {
	reg := jdxi.NewRegistrySet().Family(jdxi.FamilyAnalog)

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaData))
	if err != nil {
		log.Fatalf("failed to compile tone schema: %v", err)
	}
	var schemaStruct struct {
		Properties map[string]propSchema `json:"properties"`
	}
	if err := json.Unmarshal(schemaData, &schemaStruct); err != nil {
		log.Fatalf("failed to parse tone schema: %v", err)
	}

	// Schema properties and registry names must agree; a drifted schema is
	// a bug, not something to paper over at run time.
	for name := range schemaStruct.Properties {
		if _, ok := reg.ByName(name); !ok {
			log.Fatalf("schema property %q is not a registered analog parameter", name)
		}
	}

	allowed := make(map[string][2]int, reg.Len())
	for _, p := range reg.Params() {
		lo, hi := p.DisplayMin, p.DisplayMax
		if sch, ok := schemaStruct.Properties[p.Name]; ok {
			if sch.Minimum > lo {
				lo = sch.Minimum
			}
			if sch.Maximum < hi {
				hi = sch.Maximum
			}
		}
		if hi < lo {
			hi = lo
		}
		allowed[p.Name] = [2]int{lo, hi}
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	timeStr := strconv.FormatInt(time.Now().Unix(), 10)
	seen := make(map[string]struct{})

	written := 0
	for written < count {
		cfg := make(map[string]int, len(allowed))
		for name, rng := range allowed {
			cfg[name] = rng[0] + rand.Intn(rng[1]-rng[0]+1)
		}

		result, err := schema.Validate(gojsonschema.NewGoLoader(cfg))
		if err != nil {
			log.Fatalf("validation failed: %v", err)
		}
		if !result.Valid() {
			continue
		}

		name := uniqueToneName(seen)
		seen[name] = struct{}{}

		frame, err := buildToneDump(reg, name, cfg)
		if err != nil {
			log.Fatalf("failed to build tone %q: %v", name, err)
		}

		fname := fmt.Sprintf("analog_%s_%s.syx", name, timeStr)
		if err := os.WriteFile(filepath.Join(outDir, fname), frame, 0644); err != nil {
			log.Fatalf("failed to write %s: %v", fname, err)
		}
		fmt.Printf("%2d: %s -> %s\n", written+1, name, fname)
		written++
	}

	fmt.Printf("Wrote %d analog tones to %s\n", count, outDir)
}

// uniqueToneName picks a random adjective that fits the 12-character name
// field and has not been used this run.
func uniqueToneName(existing map[string]struct{}) string {
	for {
		n := randomdata.Adjective()
		if len(n) > jdxi.ToneNameLength {
			n = n[:jdxi.ToneNameLength]
		}
		if _, ok := existing[n]; !ok {
			return n
		}
	}
}

// buildToneDump assembles a full analog block dump frame: name field, one
// byte per parameter at its block offset, Roland framing and checksum.
func buildToneDump(reg *jdxi.Registry, name string, cfg map[string]int) ([]byte, error) {
	block := make([]byte, reg.Span())
	for i := 0; i < jdxi.ToneNameLength; i++ {
		if i < len(name) {
			block[i] = name[i]
		} else {
			block[i] = ' '
		}
	}

	for pname, display := range cfg {
		p, ok := reg.ByName(pname)
		if !ok {
			return nil, fmt.Errorf("unknown parameter %q", pname)
		}
		raw, err := p.ToMIDI(display)
		if err != nil {
			return nil, err
		}
		block[p.Offset] = byte(raw)
	}

	addr := jdxi.AddrAnalog
	body := append(addr[:], block...)

	frame := []byte{jdxi.SysExStart, jdxi.ManufacturerRoland, jdxi.DefaultDeviceID}
	frame = append(frame, jdxi.ModelID[:]...)
	frame = append(frame, jdxi.CmdDT1)
	frame = append(frame, body...)
	return append(frame, jdxi.Checksum(body), jdxi.SysExEnd), nil
}

// splitFrames cuts a raw capture into individual F0..F7 frames, ignoring
// anything between frames.
func splitFrames(data []byte) [][]byte {
	var frames [][]byte
	start := -1
	for i, b := range data {
		switch b {
		case jdxi.SysExStart:
			start = i
		case jdxi.SysExEnd:
			if start >= 0 {
				frames = append(frames, data[start:i+1])
				start = -1
			}
		}
	}
	return frames
}
