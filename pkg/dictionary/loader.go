// Package dictionary reads wordlists from disk into anything that accepts words.
package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Inserter receives dictionary words. Implementations normalize them.
type Inserter interface {
	AddWord(word string)
}

// ChunkInfo contains metadata about a chunk file
type ChunkInfo struct {
	ID        int
	Filename  string
	WordCount int
}

// Stats describes a finished load.
type Stats struct {
	Path     string
	Format   FileFormat
	Files    int
	Words    int
	Duration time.Duration
}

// Load reads path into ins. A directory is scanned for dict_*.bin chunks,
// a file is read in the format DetectFileFormat finds.
func Load(path string, ins Inserter) (Stats, error) {
	start := time.Now()
	stats := Stats{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return stats, fmt.Errorf("failed to stat dictionary %s: %w", path, err)
	}

	if info.IsDir() {
		chunks, err := GetAvailableChunks(path)
		if err != nil {
			return stats, err
		}
		if len(chunks) == 0 {
			return stats, fmt.Errorf("no chunk files found in %s", path)
		}
		stats.Format = FormatChunk
		for _, chunk := range chunks {
			n, err := LoadChunk(chunk.Filename, ins)
			stats.Words += n
			if err != nil {
				return stats, err
			}
			stats.Files++
		}
		stats.Duration = time.Since(start)
		log.Debugf("Loaded %d words from %d chunks in %v", stats.Words, stats.Files, stats.Duration)
		return stats, nil
	}

	format, err := DetectFileFormat(path)
	if err != nil {
		return stats, err
	}
	stats.Format = format
	stats.Files = 1

	switch format {
	case FormatChunk:
		stats.Words, err = LoadChunk(path, ins)
	case FormatText:
		stats.Words, err = LoadTextFile(path, ins)
	}
	stats.Duration = time.Since(start)
	if err != nil {
		return stats, err
	}
	log.Debugf("Loaded %d words from %s in %v", stats.Words, path, stats.Duration)
	return stats, nil
}

// LoadTextFile opens a plain wordlist and passes it to LoadText.
func LoadTextFile(path string, ins Inserter) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	n, err := LoadText(file, ins)
	if err != nil {
		return n, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	return n, nil
}

// LoadText reads one word per line. Lines are trimmed and lowercased,
// blank lines are skipped.
func LoadText(r io.Reader, ins Inserter) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		ins.AddWord(word)
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}
	return count, nil
}

// LoadChunk reads a binary chunk: an int32 word count, then for each word a
// uint16 length, the word bytes and a uint16 rank, all little endian.
// Ranks are not used for correction and are skipped.
func LoadChunk(path string, ins Inserter) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open chunk file %s: %w", path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	var totalEntries int32
	if err := binary.Read(reader, binary.LittleEndian, &totalEntries); err != nil {
		return 0, fmt.Errorf("failed to read chunk header: %w", err)
	}
	if totalEntries < 0 {
		return 0, fmt.Errorf("invalid word count in %s: %d", path, totalEntries)
	}

	log.Debugf("Loading chunk %s with %d words", filepath.Base(path), totalEntries)

	count := 0
	for count < int(totalEntries) {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			if err == io.EOF {
				log.Warnf("Chunk %s ended after %d of %d words", path, count, totalEntries)
				break
			}
			return count, fmt.Errorf("failed to read word length: %w", err)
		}

		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, wordBytes); err != nil {
			return count, fmt.Errorf("failed to read word: %w", err)
		}

		var rank uint16
		if err := binary.Read(reader, binary.LittleEndian, &rank); err != nil {
			return count, fmt.Errorf("failed to read rank: %w", err)
		}

		ins.AddWord(strings.ToLower(string(wordBytes)))
		count++
	}
	return count, nil
}

// GetAvailableChunks scans dir for dict_NNNN.bin files, sorted by id.
func GetAvailableChunks(dir string) ([]ChunkInfo, error) {
	pattern := filepath.Join(dir, "dict_*.bin")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for chunk files: %w", err)
	}

	var chunks []ChunkInfo
	for _, file := range files {
		idStr := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(file), "dict_"), ".bin")
		chunkID, err := strconv.Atoi(idStr)
		if err != nil {
			log.Debugf("Skipping %s: not a numbered chunk", file)
			continue
		}
		wordCount, err := getChunkWordCount(file)
		if err != nil {
			log.Warnf("Failed to get word count for chunk %s: %v", file, err)
			wordCount = 0
		}
		chunks = append(chunks, ChunkInfo{
			ID:        chunkID,
			Filename:  file,
			WordCount: wordCount,
		})
	}

	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].ID < chunks[j].ID
	})
	return chunks, nil
}

// getChunkWordCount reads the word count from a chunk file's header
func getChunkWordCount(filename string) (int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var wordCount int32
	if err := binary.Read(file, binary.LittleEndian, &wordCount); err != nil {
		return 0, err
	}
	return int(wordCount), nil
}
