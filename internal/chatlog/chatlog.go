// Package chatlog keeps an append-only CSV audit trail of assistant
// exchanges: what the user said and what the assistant did with it.
package chatlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Action categorizes the assistant's handling of one message.
type Action string

const (
	ActionRecorded Action = "recorded"  // parsed and written to the ledger
	ActionAnswered Action = "answered"  // informational reply (balance, help)
	ActionNoAmount Action = "no-amount" // parse failed: no numeric value
)

// Entry is one row in the chat log.
type Entry struct {
	Timestamp  time.Time
	MessageID  string
	Input      string
	Action     Action
	PostingIDs string // semicolon-separated
	Amount     string // formatted per-posting amount, empty if none
}

// Header is the CSV header for chat-log.csv.
const Header = "timestamp,message_id,input,action,posting_ids,amount"

const (
	numFields     = 6
	logDir        = "logs"
	logFile       = "logs/chat-log.csv"
	colTimestamp  = 0
	colMessageID  = 1
	colInput      = 2
	colAction     = 3
	colPostingIDs = 4
	colAmount     = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colMessageID] = e.MessageID
	row[colInput] = e.Input
	row[colAction] = string(e.Action)
	row[colPostingIDs] = e.PostingIDs
	row[colAmount] = e.Amount
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp:  ts,
		MessageID:  record[colMessageID],
		Input:      record[colInput],
		Action:     Action(record[colAction]),
		PostingIDs: record[colPostingIDs],
		Amount:     record[colAmount],
	}, nil
}

// Append writes entries to <root>/logs/chat-log.csv, creating the file and
// header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening chat log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/chat-log.csv. Returns an empty
// slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening chat log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chat log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
