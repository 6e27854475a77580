// Package main generates the pinyin phonology tables from a syllable inventory.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
)

const (
	defaultInput   = "syllables.txt"
	outputFilename = "../../tables.go"
	zeroInitial    = "∅"
)

type inventory struct {
	initials []string
	finals   []string
	valid    [][]bool // [initial][final]
}

func main() {
	var inputPath string
	var outputPath string

	flag.StringVar(&inputPath, "input", defaultInput, "path to the syllable inventory")
	flag.StringVar(&outputPath, "output", outputFilename, "path of the generated Go file")
	flag.Parse()

	content, err := os.ReadFile(inputPath)
	if err != nil {
		fail(fmt.Errorf("read input file: %w", err))
	}

	inv, err := parseInventory(content)
	if err != nil {
		fail(err)
	}

	src, err := generateTablesSource(inv, inputPath)
	if err != nil {
		fail(err)
	}
	formatted, err := format.Source(src)
	if err != nil {
		fail(fmt.Errorf("format tables file: %w", err))
	}
	if err := os.WriteFile(outputPath, formatted, 0o644); err != nil {
		fail(fmt.Errorf("write %s: %w", outputPath, err))
	}

	fmt.Fprintf(os.Stderr, "wrote %s: %d initials, %d finals\n", outputPath, len(inv.initials), len(inv.finals))
}

func parseInventory(content []byte) (*inventory, error) {
	scanner := bufio.NewScanner(bytes.NewReader(content))

	inv := &inventory{}
	finalIndex := map[string]int{}
	seen := map[string]bool{}
	sawZero := false

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		colon := strings.IndexRune(line, ':')
		if colon == -1 {
			return nil, fmt.Errorf("line %d: missing ':'", lineNo)
		}
		key := strings.TrimSpace(line[:colon])
		fields := strings.Fields(line[colon+1:])

		if key == "finals" {
			if inv.finals != nil {
				return nil, fmt.Errorf("line %d: finals declared twice", lineNo)
			}
			if len(fields) == 0 {
				return nil, fmt.Errorf("line %d: no finals declared", lineNo)
			}
			for _, f := range fields {
				f = strings.ToLower(f)
				if _, ok := finalIndex[f]; ok {
					return nil, fmt.Errorf("line %d: duplicate final %q", lineNo, f)
				}
				if !strings.ContainsAny(f, "aeiouv") {
					return nil, fmt.Errorf("line %d: final %q has no vowel", lineNo, f)
				}
				finalIndex[f] = len(inv.finals)
				inv.finals = append(inv.finals, f)
			}
			continue
		}

		if inv.finals == nil {
			return nil, fmt.Errorf("line %d: initial %q before finals row", lineNo, key)
		}
		if sawZero {
			return nil, fmt.Errorf("line %d: initial %q after the zero initial", lineNo, key)
		}

		initial := strings.ToLower(key)
		if key == zeroInitial {
			initial = ""
			sawZero = true
		} else if key == "" || strings.Trim(initial, "abcdefghijklmnopqrstuvwxyz") != "" {
			return nil, fmt.Errorf("line %d: malformed initial %q", lineNo, key)
		}
		if seen[initial] {
			return nil, fmt.Errorf("line %d: duplicate initial %q", lineNo, key)
		}
		seen[initial] = true

		row := make([]bool, len(inv.finals))
		for _, f := range fields {
			i, ok := finalIndex[strings.ToLower(f)]
			if !ok {
				return nil, fmt.Errorf("line %d: unknown final %q", lineNo, f)
			}
			row[i] = true
		}

		inv.initials = append(inv.initials, initial)
		inv.valid = append(inv.valid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan inventory: %w", err)
	}

	if len(inv.initials) == 0 {
		return nil, fmt.Errorf("inventory has no initials")
	}
	if !sawZero {
		return nil, fmt.Errorf("inventory has no %s row", zeroInitial)
	}
	return inv, nil
}

func generateTablesSource(inv *inventory, sourceLabel string) ([]byte, error) {
	if len(inv.valid) != len(inv.initials) {
		return nil, fmt.Errorf("validity has %d rows, want %d", len(inv.valid), len(inv.initials))
	}

	buf := bytes.Buffer{}
	fmt.Fprintln(&buf, "package pinyin")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// Code generated by internal/gen; DO NOT EDIT.")
	fmt.Fprintf(&buf, "// Source: %s\n\n", sourceLabel)

	fmt.Fprintln(&buf, "// initials are the legal initial clusters, in validity row order.")
	fmt.Fprintln(&buf, "var initials = [...]string{")
	for _, s := range inv.initials {
		fmt.Fprintf(&buf, "%q,\n", s)
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// finals are the legal final clusters, in validity column order.")
	fmt.Fprintln(&buf, "var finals = [...]string{")
	for _, s := range inv.finals {
		fmt.Fprintf(&buf, "%q,\n", s)
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// validity[i][f] reports whether initials[i]+finals[f] is an attested syllable.")
	fmt.Fprintln(&buf, "var validity = [len(initials)][len(finals)]bool{")
	for i, row := range inv.valid {
		if len(row) != len(inv.finals) {
			return nil, fmt.Errorf("validity row %d has %d columns, want %d", i, len(row), len(inv.finals))
		}
		label := inv.initials[i]
		if label == "" {
			label = zeroInitial
		}
		fmt.Fprintf(&buf, "// %s\n", label)
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprint(v)
		}
		fmt.Fprintf(&buf, "{%s},\n", strings.Join(cells, ", "))
	}
	fmt.Fprintln(&buf, "}")

	return buf.Bytes(), nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
