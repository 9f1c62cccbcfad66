//go:build ignore

// Codegen reads the ISO 4217 data from currency_data.csv and regenerates
// currency_data.go. Run it from the repository root:
//
//	go generate ./...
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

type currency struct {
	Code  string
	Scale string
}

const fileTemplate = `// Code generated by scripts/currency/codegen.go; DO NOT EDIT.

package money

// Supported currencies.
// [XXX] indicates an unknown currency and [XTS] is reserved for testing.
const (
{{- range $i, $c := .}}
	{{$c.Code}}{{if eq $i 0}} Currency = iota{{end}}
{{- end}}
)

var codeLookup = [...]string{
{{- range .}}
	{{.Code}}: "{{.Code}}",
{{- end}}
}

var scaleLookup = [...]uint8{
{{- range .}}
	{{.Code}}: {{.Scale}},
{{- end}}
}

var currLookup = map[string]Currency{
{{- range .}}
	"{{.Code}}": {{.Code}},
{{- end}}
}
`

func main() {
	currs, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	code, err := generateGoCode(currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	err = os.WriteFile("currency_data.go", code, 0o644)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([]currency, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	currs := make([]currency, 0, len(recs))
	for _, rec := range recs {
		currs = append(currs, currency{Code: rec[0], Scale: rec[1]})
	}
	return currs, nil
}

func generateGoCode(currs []currency) ([]byte, error) {
	tmpl, err := template.New("currency_data").Parse(fileTemplate)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, currs)
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
