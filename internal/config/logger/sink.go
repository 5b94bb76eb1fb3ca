package logger

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSinkSize is the number of records kept for the log panel
const DefaultSinkSize = 200

// Field is a single extra key/value of a record
type Field struct {
	Key   string
	Value string
}

// Record is a decoded log event kept for the in-app log panel
type Record struct {
	Time      time.Time
	Level     string
	Component string
	Message   string
	Fields    []Field
}

// Sink keeps the most recent log records in a ring buffer
type Sink struct {
	mu      sync.RWMutex
	records []Record
	head    int
	count   int
	serial  uint64
}

// NewSink creates a sink holding DefaultSinkSize records
func NewSink() *Sink {
	return NewSinkWithSize(DefaultSinkSize)
}

// NewSinkWithSize creates a sink holding at most size records
func NewSinkWithSize(size int) *Sink {
	if size <= 0 {
		size = DefaultSinkSize
	}

	return &Sink{records: make([]Record, size)}
}

// Write implements io.Writer for zerolog JSON events
func (s *Sink) Write(p []byte) (int, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(p, &raw); err != nil {
		return len(p), nil
	}

	s.add(decode(raw))

	return len(p), nil
}

// Records returns the buffered records, oldest first
func (s *Sink) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, s.count)
	for i := 0; i < s.count; i++ {
		out[i] = s.records[(s.head+i)%len(s.records)]
	}

	return out
}

// Serial returns the number of records ever written
func (s *Sink) Serial() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.serial
}

func (s *Sink) add(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tail := (s.head + s.count) % len(s.records)
	s.records[tail] = r

	if s.count < len(s.records) {
		s.count++
	} else {
		s.head = (s.head + 1) % len(s.records)
	}

	s.serial++
}

// decode maps a zerolog event to a Record, dropping the bookkeeping fields
func decode(raw map[string]interface{}) Record {
	r := Record{}

	for key, value := range raw {
		switch key {
		case zerolog.TimestampFieldName:
			if s, ok := value.(string); ok {
				r.Time, _ = time.Parse(time.RFC3339, s)
			}
		case zerolog.LevelFieldName:
			r.Level, _ = value.(string)
		case zerolog.MessageFieldName:
			r.Message, _ = value.(string)
		case "component":
			r.Component, _ = value.(string)
		case "version", "session":
		default:
			r.Fields = append(r.Fields, Field{Key: key, Value: stringify(value)})
		}
	}

	sort.Slice(r.Fields, func(i, j int) bool {
		return r.Fields[i].Key < r.Fields[j].Key
	})

	return r
}

func stringify(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}

	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}

	return string(data)
}
