// Package mane resolves gene symbols to their MANE Select transcript.
package mane

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Table maps gene symbol -> versioned MANE Select RefSeq transcript.
type Table map[string]string

// NCBI MANE summary file.
const (
	DefaultURL      = "https://ftp.ncbi.nlm.nih.gov/refseq/MANE/MANE_human/current/MANE.GRCh38.current.summary.txt.gz"
	summaryFileName = "MANE.summary.txt.gz"
)

// DefaultPath returns the local path of the MANE summary file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".exonviz", summaryFileName), nil
}

// Load reads a gzipped MANE summary table from disk.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open MANE summary: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("read MANE summary: %w", err)
	}
	defer gz.Close()

	return parseTable(gz)
}

// parseTable parses the TSV content. The header names the columns; we keep
// the gene symbol and the versioned RefSeq transcript of MANE Select rows.
func parseTable(reader io.Reader) (Table, error) {
	table := make(Table)
	scanner := bufio.NewScanner(reader)

	if !scanner.Scan() {
		return table, nil
	}
	header := strings.Split(scanner.Text(), "\t")
	symbolCol, nucCol, statusCol := -1, -1, -1
	for i, name := range header {
		switch strings.TrimPrefix(name, "#") {
		case "symbol":
			symbolCol = i
		case "RefSeq_nuc":
			nucCol = i
		case "MANE_status":
			statusCol = i
		}
	}
	if symbolCol < 0 || nucCol < 0 {
		return nil, fmt.Errorf("MANE summary header misses the symbol or RefSeq_nuc column")
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) <= symbolCol || len(fields) <= nucCol {
			continue
		}
		if statusCol >= 0 && len(fields) > statusCol && fields[statusCol] != "MANE Select" {
			continue
		}

		symbol := fields[symbolCol]
		transcript := fields[nucCol]
		if symbol == "" || transcript == "" {
			continue
		}
		table[symbol] = transcript
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan MANE summary: %w", err)
	}
	return table, nil
}

// Resolve returns the MANE Select transcript for a gene symbol. The second
// return value is false when the name is not a known gene; the input is
// then returned unchanged.
func (t Table) Resolve(name string) (string, bool) {
	if transcript, ok := t[name]; ok {
		return transcript, true
	}
	return name, false
}

// Download fetches the MANE summary file to the given path.
func Download(url, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	client := &http.Client{Timeout: 5 * time.Minute}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("download MANE summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download MANE summary: HTTP %s", resp.Status)
	}

	f, err := os.Create(destPath + ".tmp")
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(destPath + ".tmp")
		return fmt.Errorf("write MANE summary: %w", err)
	}
	f.Close()

	if err := os.Rename(destPath+".tmp", destPath); err != nil {
		os.Remove(destPath + ".tmp")
		return fmt.Errorf("rename MANE summary: %w", err)
	}

	return nil
}
